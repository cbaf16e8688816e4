package entity

import (
	"github.com/shopspring/decimal"
)

// CurrencyINR is the only settlement currency supported
const CurrencyINR = "INR"

// paiseExponent scales integer paise into rupees
const paiseExponent = -2

// PaiseToRupees converts an integer amount in paise to a decimal rupee value
func PaiseToRupees(paise int64) decimal.Decimal {
	return decimal.New(paise, paiseExponent)
}

// FormatRupees renders paise as a rupee string with exactly 2 decimal places
// For example:
// - 1015 becomes "₹10.15"
// - -50 becomes "-₹0.50"
func FormatRupees(paise int64) string {
	amount := PaiseToRupees(paise)
	if amount.IsNegative() {
		return "-₹" + amount.Abs().StringFixed(2)
	}
	return "₹" + amount.StringFixed(2)
}
