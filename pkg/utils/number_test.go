package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(200.0/3))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 83.33, RoundWithTwoDecimalPlace(83.3333))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00 ₽"},
		{250, "250.00 ₽"},
		{1234.5, "1,234.50 ₽"},
		{1234567.891, "1,234,567.89 ₽"},
		{-1500, "-1,500.00 ₽"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in))
	}
}

func TestFormatThousands_NoDecimals(t *testing.T) {
	assert.Equal(t, "150,000", FormatThousands(149999.6, 0))
	assert.Equal(t, "999", FormatThousands(999, 0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "66.67%", FormatPercent(200.0/3))
	assert.Equal(t, "0.00%", FormatPercent(0))
}
