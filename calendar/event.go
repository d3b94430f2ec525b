package calendar

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CATEGORIES
// =============================================================================

// Category identifies the kind of leave taken on a date. The string
// value doubles as the display style name for the day cell.
type Category string

const (
	CategoryBereavement Category = "bereavement"
	CategoryFloating    Category = "floating"
	CategoryHoliday     Category = "holiday" // company closed
	CategoryPersonal    Category = "personal"
	CategorySick        Category = "sick"
	CategoryUnofficial  Category = "unofficial" // unpaid, tracked as usage
	CategoryVacation    Category = "vacation"
	CategoryVolunteer   Category = "volunteer"
	CategoryWorkday     Category = "workday" // working on a weekend
)

// categoryCodes maps the short input codes used in event records to
// categories.
var categoryCodes = map[string]Category{
	"b":  CategoryBereavement,
	"f":  CategoryFloating,
	"h":  CategoryHoliday,
	"p":  CategoryPersonal,
	"s":  CategorySick,
	"u":  CategoryUnofficial,
	"v":  CategoryVacation,
	"vo": CategoryVolunteer,
	"w":  CategoryWorkday,
}

// ParseCategory resolves a short category code. Unknown codes return
// ok=false; they are not an error, the date simply carries no category.
func ParseCategory(code string) (Category, bool) {
	c, ok := categoryCodes[code]
	return c, ok
}

// =============================================================================
// EVENTS
// =============================================================================

// Record is a raw PTO event tuple as supplied by the caller:
// (month, day, category code, days, description).
type Record struct {
	Month       int
	Day         int
	Code        string
	Days        float64
	Description string
}

// Event is one calendar date's leave record after parsing. Category is
// empty when the record carried an unknown code; such events still
// annotate the date but have no color or balance effect.
type Event struct {
	Month       int
	Day         int
	Category    Category
	Amount      decimal.Decimal
	Description string
}

// PartialDay reports whether the event's amount should lighten the day
// color: strictly between 0 (inclusive) and 1. Amounts >= 1 render as
// full days; negative amounts are corrections, not partial days.
func (e Event) PartialDay() bool {
	return !e.Amount.IsNegative() && e.Amount.LessThan(decimal.NewFromInt(1))
}

// Tooltip returns the annotation for the date. Partial days append the
// hour count so the cell explains its lighter shade.
func (e Event) Tooltip() string {
	if e.Description == "" {
		return ""
	}
	if e.Amount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return e.Description
	}
	hours := e.Amount.Mul(decimal.NewFromInt(8))
	return fmt.Sprintf("%s (%s hours PTO)", e.Description, hours.Round(2).String())
}

// =============================================================================
// EVENT TABLE
// =============================================================================

// DateKey is the structured (month, day) lookup key for the table.
type DateKey struct {
	Month int
	Day   int
}

// Table maps each date to at most one event. Built once per year and
// treated as read-only while rendering.
type Table map[DateKey]Event

// Lookup returns the event for (month, day), if any.
func (t Table) Lookup(month, day int) (Event, bool) {
	e, ok := t[DateKey{Month: month, Day: day}]
	return e, ok
}

// Table construction errors. Duplicate dates and impossible dates are
// configuration mistakes; the table refuses them instead of letting
// one entry silently shadow another.
var (
	ErrDuplicateEvent  = errors.New("duplicate event for date")
	ErrDayOutOfRange   = errors.New("day out of range for month")
	ErrMonthOutOfRange = errors.New("month out of range")
)

// BuildTable converts raw records into a Table for the given year.
// The year is needed to validate day-in-month (February 29 exists only
// in leap years). Records with unknown category codes are kept as
// annotation-only events.
func BuildTable(year int, records []Record) (Table, error) {
	table := make(Table, len(records))
	for _, r := range records {
		if r.Month < 1 || r.Month > 12 {
			return nil, fmt.Errorf("event %d/%d: %w", r.Month, r.Day, ErrMonthOutOfRange)
		}
		if r.Day < 1 || r.Day > DaysInMonth(r.Month, year) {
			return nil, fmt.Errorf("event %d/%d of %d: %w", r.Month, r.Day, year, ErrDayOutOfRange)
		}
		key := DateKey{Month: r.Month, Day: r.Day}
		if _, exists := table[key]; exists {
			return nil, fmt.Errorf("event %d/%d: %w", r.Month, r.Day, ErrDuplicateEvent)
		}
		category, _ := ParseCategory(r.Code)
		table[key] = Event{
			Month:       r.Month,
			Day:         r.Day,
			Category:    category,
			Amount:      decimal.NewFromFloat(r.Days),
			Description: r.Description,
		}
	}
	return table, nil
}
