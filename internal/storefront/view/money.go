package view

import (
	"strings"

	"github.com/shopspring/decimal"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
}

// FormatMoney renders cents with two decimals behind the currency symbol,
// e.g. "$54.97". Currencies without a known symbol use the code.
func FormatMoney(currency string, cents int64) string {
	amount := decimal.New(cents, -2).StringFixed(2)
	code := strings.ToUpper(strings.TrimSpace(currency))
	if sym, ok := symbols[code]; ok {
		return sym + amount
	}
	if code == "" {
		return "$" + amount
	}
	return code + " " + amount
}
