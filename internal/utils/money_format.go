package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount as Brazilian reais, e.g. "R$ 1.234,56" or "-R$ 10,00".
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.RoundBank(2).StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
