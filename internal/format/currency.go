// internal/format/currency.go

// Package format holds pure display formatters shared by the API layer.
package format

import (
	"math"
	"strconv"
	"strings"
)

// NotAvailable is rendered for missing or zero monetary values.
const NotAvailable = "N/A"

// Currency formats a millions-of-USD value as a dollar string: values with
// absolute magnitude >= 1000 are shown in billions ("$1.5B"), everything
// else in millions ("$999M"). At most one decimal place is kept, with a
// trailing ".0" trimmed. Zero means "not available" and renders as N/A.
func Currency(v float64) string {
	if v == 0 {
		return NotAvailable
	}

	abs := math.Abs(v)
	suffix := "M"
	if abs >= 1000 {
		abs /= 1000
		suffix = "B"
	}

	s := strconv.FormatFloat(abs, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")

	if v < 0 {
		return "-$" + s + suffix
	}
	return "$" + s + suffix
}

// CurrencyPtr is Currency for optional values; nil renders as N/A.
func CurrencyPtr(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return Currency(*v)
}
