package models

import "github.com/shopspring/decimal"

// FormatMoney renders an amount as a dollar price with two decimals, e.g. "$150.00".
func FormatMoney(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}
