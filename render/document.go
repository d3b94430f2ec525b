/*
Package render builds the yearly PTO calendar document.

PURPOSE:
  Walks the twelve months of a year in strict calendar order, applying
  the balance tracker's monthly accrual and daily depletion while
  assembling a structured Document. Writers (HTML, PDF) serialize the
  Document; nothing in the build path writes output directly, so tests
  inspect the built structure.

PIPELINE:
  BuildYear -> (for month 1..12) BuildMonth -> (for day 1..n) Colorize +
  ApplyEvent. Single pass, no backtracking; the tracker is owned by
  BuildYear and discarded with the Document.

KEY CONCEPTS:
  - Document: nav, twelve MonthPanels, legend, warnings, hint
  - MonthPanel: the day grid (weeks of cells) plus summary lines
  - SummaryLine: a labeled day count with an alert flag; exact-zero
    values are never emitted

SEE ALSO:
  - calendar: date math, events, day colorizer
  - balance: the tracker mutated during the walk
*/
package render

import "github.com/shopspring/decimal"

// Document is the fully rendered calendar for one year, independent of
// output format.
type Document struct {
	Company  string
	Employee string
	Year     int

	// Months in calendar order, January first.
	Months [12]MonthPanel

	Legend   []LegendEntry
	Warnings []Warning

	// Hint is the closing usage note shown under the warnings.
	Hint string
}

// Title returns the document heading, e.g. `Ada's PTO for 2024`.
func (d *Document) Title() string {
	return d.Employee + "'s PTO for " + itoa(d.Year)
}

// MonthPanel is one month's grid and summary.
type MonthPanel struct {
	Month int
	Name  string

	// Weeks holds rows of up to seven cells. Gap cells (Day == 0) pad
	// the first week so day 1 lands on its weekday; the last week is
	// ragged.
	Weeks [][]DayCell

	Summary []SummaryLine
}

// DayCell is a single date cell.
type DayCell struct {
	Day     int    // 0 for a gap cell
	Style   string // stylesheet class: workday, weekend, or a category
	Color   string // lightened background override, empty when none
	Tooltip string
}

// Gap reports whether the cell is alignment padding rather than a date.
func (c DayCell) Gap() bool { return c.Day == 0 }

// SummaryLine is one line of a month's balance summary.
type SummaryLine struct {
	Label string
	Days  decimal.Decimal

	// Alert marks values that are negative or above their advisory cap.
	Alert bool

	// Plain lines carry no day count (e.g. "3 paychecks this month").
	Plain bool
}

// LegendEntry describes one leave category in the year legend.
type LegendEntry struct {
	Style string
	Text  string
}

// Warning is an advisory carry-in/out message. Text omits the leading
// "WARNING:" marker; writers add their own emphasis.
type Warning struct {
	Text string
}
