package utils

import "github.com/shopspring/decimal"

// MoneyPrecision is the display precision for all amounts. The store keeps a
// single currency.
const MoneyPrecision = 2

// FormatMoney formats an amount for display and export.
// Example: 12.3456 returns "12.35".
func FormatMoney(amount decimal.Decimal) string {
	return amount.Round(MoneyPrecision).StringFixed(MoneyPrecision)
}
