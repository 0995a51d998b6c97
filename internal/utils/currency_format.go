package utils

import (
	"github.com/shopspring/decimal"
)

// currencyPrecision maps the supported currency codes to the number of
// fraction digits used when rendering amounts. Unlisted currencies default
// to 2. Must stay in sync with the currency whitelist on
// dto.UpdateSettingsRequest.
var currencyPrecision = map[string]int32{
	"VND": 0,
	"JPY": 0,
	"USD": 2,
}

// FormatWithCurrencyPrecision formats an amount with the correct precision for
// a given currency code.
// Example: amount 12.3456 with USD returns "12.35"
// Example: amount 12.3456 with VND returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency string) string {
	precision, ok := currencyPrecision[currency]
	if !ok {
		precision = 2
	}
	return amount.Round(precision).String()
}

// FormatWithPrecision formats an amount with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
