package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata no padrão "1,234,567.89 ₽"
func FormatMoney(f float64) string {
	return FormatThousands(f, 2) + " ₽"
}

// FormatPercent formata com duas casas, ex.: "66.67%"
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.2f%%", RoundWithTwoDecimalPlace(f))
}

// FormatThousands separa milhares com vírgula e usa ponto para decimais
func FormatThousands(f float64, decimals int) string {
	raw := fmt.Sprintf("%.*f", decimals, math.Abs(f))

	intPart, fracPart := raw, ""
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		intPart, fracPart = raw[:idx], raw[idx:]
	}

	var b strings.Builder
	if f < 0 && strings.Trim(raw, "0.") != "" {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)

	return b.String()
}
