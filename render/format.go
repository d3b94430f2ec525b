package render

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// places is the rounding used for all displayed day/hour quantities.
const places = 2

var (
	one   = decimal.NewFromInt(1)
	eight = decimal.NewFromInt(8)
)

func itoa(n int) string { return strconv.Itoa(n) }

// FormatDays renders a day count rounded to two places with trailing
// zeros stripped ("1.5", not "1.50").
func FormatDays(d decimal.Decimal) string {
	return d.Round(places).String()
}

// FormatDaysHours renders a quantity as both days and hours, e.g.
// "2.5 days (20 hours)", with singular forms where the count is one.
func FormatDaysHours(d decimal.Decimal) string {
	hours := d.Mul(eight)

	var b strings.Builder
	b.WriteString(FormatDays(d))
	if d.Equal(one) {
		b.WriteString(" day (")
	} else {
		b.WriteString(" days (")
	}
	b.WriteString(FormatDays(hours))
	if hours.Equal(one) {
		b.WriteString(" hour)")
	} else {
		b.WriteString(" hours)")
	}
	return b.String()
}

// carryInText renders the legend arithmetic for a carried-in balance:
// " + 3 days carryover = 13" (or " - ..." when borrowed). A carry that
// rounds to zero collapses to just " days" so the legend reads
// "Vacation (10 days total)".
func carryInText(carryIn, annual decimal.Decimal) string {
	if carryIn.Round(places).IsZero() {
		return " days"
	}

	var b strings.Builder
	if carryIn.IsNegative() {
		b.WriteString(" - ")
		b.WriteString(FormatDays(carryIn.Neg()))
	} else {
		b.WriteString(" + ")
		b.WriteString(FormatDays(carryIn))
	}
	b.WriteString(" days carryover = ")
	b.WriteString(FormatDays(carryIn.Add(annual)))
	return b.String()
}
