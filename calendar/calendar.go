/*
Package calendar provides the date-level building blocks for the PTO
calendar generator.

PURPOSE:
  This package contains the pure, stateless pieces of the engine: date
  arithmetic for the Gregorian calendar, the PTO event model with its
  category enumeration, the per-year event table, and the day colorizer
  that maps (weekday, event) to a display style.

KEY CONCEPTS:
  - Event: one calendar date's leave record (category, amount, note)
  - Table: read-only lookup from (month, day) to at most one Event
  - Category: the fixed leave-category enumeration plus its short codes
  - Colorize: style/color resolution, including partial-day lightening

DESIGN PRINCIPLES:
  1. Purity: nothing in this package performs I/O or holds state
  2. Precision: day amounts are decimal.Decimal, never float64
  3. Structured keys: the table is keyed by a (month, day) pair, not a
     formatted string
  4. Permissiveness where harmless: unknown category codes annotate a
     date without coloring it or touching any balance

SEE ALSO:
  - balance: the mutable leave-balance tracker fed by these events
  - render: the month/year renderers that walk the table
*/
package calendar

import "time"

// DaysInMonth returns the number of days in month (1..12) of year,
// accounting for leap years.
func DaysInMonth(month, year int) int {
	// Day zero of the following month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 of month (0 = Sunday).
func FirstWeekday(month, year int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsWeekend reports whether a weekday index (0 = Sunday) falls on a
// Saturday or Sunday.
func IsWeekend(weekday int) bool {
	return weekday == 0 || weekday == 6
}

// MonthName returns the English month name for month (1..12).
func MonthName(month int) string {
	return time.Month(month).String()
}
