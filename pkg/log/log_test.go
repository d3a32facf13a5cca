package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	assert.True(t, keepField("correlation_id"))
	assert.True(t, keepField("user_telegram_id"))
	assert.False(t, keepField("payload"))

	t.Setenv("APP_ENV", "production")

	assert.True(t, keepField("payload"))
}
