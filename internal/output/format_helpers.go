package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatDepletionAge renders an optional depletion age, using "never" when
// the balance lasted the whole projection.
func FormatDepletionAge(age *int) string {
	if age == nil {
		return "never"
	}
	return intToString(*age)
}

func intToString(v int) string { return strconv.Itoa(v) }
