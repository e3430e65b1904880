package utils

import (
	"fmt"
	"strings"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

// AmountInWords spells out an amount for printed invoices.
// Example: 1250.5 returns "One thousand two hundred fifty and 50/100"
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Shift(2).IntPart()

	words := num2words.Convert(int(whole.IntPart()))
	if words == "" {
		words = "zero"
	}
	words = strings.ToUpper(words[:1]) + words[1:]
	return fmt.Sprintf("%s and %02d/100", words, cents)
}
