package render

import (
	"github.com/shopspring/decimal"

	"github.com/warp/pto-calendar/balance"
	"github.com/warp/pto-calendar/calendar"
)

// Input is everything needed to render one year's calendar.
type Input struct {
	Company  string
	Employee string
	Year     int
	Policy   balance.Policy
	Events   []calendar.Record
}

// BuildYear renders the full document: twelve months in strict calendar
// order, then the legend and carryover warnings. Carry-out warnings use
// the tracker's state after December has been fully processed.
func BuildYear(in Input) (*Document, error) {
	table, err := calendar.BuildTable(in.Year, in.Events)
	if err != nil {
		return nil, err
	}

	tr := balance.NewTracker(in.Policy)

	doc := &Document{
		Company:  in.Company,
		Employee: in.Employee,
		Year:     in.Year,
		Hint:     "Hover your mouse over a time-off date for an explanation.",
	}

	for month := 1; month <= 12; month++ {
		doc.Months[month-1] = BuildMonth(month, in.Year, table, tr)
	}

	doc.Legend = buildLegend(in.Company, in.Policy, tr)
	doc.Warnings = buildWarnings(in.Policy, tr)

	return doc, nil
}

// =============================================================================
// LEGEND
// =============================================================================

func buildLegend(company string, p balance.Policy, tr *balance.Tracker) []LegendEntry {
	entries := []LegendEntry{{
		Style: string(calendar.CategoryHoliday),
		Text:  company + " Closed",
	}}

	if p.Floating > 0 {
		entries = append(entries, LegendEntry{
			Style: string(calendar.CategoryFloating),
			Text:  "Floating holiday (" + FormatDays(decimal.NewFromFloat(p.Floating)) + " total)",
		})
	}
	if p.Vacation > 0 {
		entries = append(entries, LegendEntry{
			Style: string(calendar.CategoryVacation),
			Text: grantText("Vacation", p.Vacation, p.VacationCarryIn) +
				accrualText(tr.VacationRate, tr.MaxVacation),
		})
	}
	if p.Personal > 0 {
		entries = append(entries, LegendEntry{
			Style: string(calendar.CategoryPersonal),
			Text:  "Personal days (" + FormatDays(decimal.NewFromFloat(p.Personal)) + " total)",
		})
	}
	if p.Volunteer > 0 {
		entries = append(entries, LegendEntry{
			Style: string(calendar.CategoryVolunteer),
			Text:  "Volunteer leave (" + FormatDays(decimal.NewFromFloat(p.Volunteer)) + " total)",
		})
	}
	if p.Sick > 0 {
		entries = append(entries, LegendEntry{
			Style: string(calendar.CategorySick),
			Text: grantText("Sick leave", p.Sick, p.SickCarryIn) +
				accrualText(tr.SickRate, tr.MaxSick),
		})
	}
	if tr.Unofficial.IsPositive() {
		entries = append(entries, LegendEntry{
			Style: string(calendar.CategoryUnofficial),
			Text:  "Unofficial/unpaid time off (" + FormatDays(tr.Unofficial) + " total)",
		})
	}

	return entries
}

// grantText renders "Vacation (10 + 3 days carryover = 13 total)", or
// just "Vacation (10 days total)" when nothing carried in.
func grantText(label string, annual, carryIn float64) string {
	a := decimal.NewFromFloat(annual)
	return label + " (" + FormatDays(a) + carryInText(decimal.NewFromFloat(carryIn), a) + " total)"
}

// accrualText renders the per-paycheck suffix for accruing categories.
func accrualText(rate decimal.Decimal, cap *decimal.Decimal) string {
	if !rate.IsPositive() {
		return ""
	}
	text := " (accruing " + FormatDays(rate) + " days per paycheck"
	if cap != nil && cap.IsPositive() {
		text += ", capped at " + FormatDays(*cap) + " days"
	}
	return text + ")"
}

// =============================================================================
// CARRYOVER WARNINGS
// =============================================================================

func buildWarnings(p balance.Policy, tr *balance.Tracker) []Warning {
	var warnings []Warning

	appendCheck := func(label string, carry decimal.Decimal, limit *float64, out bool) {
		check, ok := balance.CheckCarry(carry, limit)
		if !ok {
			return
		}
		warnings = append(warnings, Warning{Text: carryText(label, check, out)})
	}

	appendCheck("Sick leave", decimal.NewFromFloat(p.SickCarryIn), p.SickCarryoverLimit, false)
	appendCheck("Vacation", decimal.NewFromFloat(p.VacationCarryIn), p.VacationCarryoverLimit, false)
	appendCheck("Sick leave", tr.Sick, p.SickCarryoverLimit, true)
	appendCheck("Vacation", tr.Vacation, p.VacationCarryoverLimit, true)

	return warnings
}

func carryText(label string, check balance.CarryCheck, out bool) string {
	var movement string
	switch {
	case out && check.Borrowed:
		movement = "borrowed from the next year"
	case out:
		movement = "carried over to the next year"
	case check.Borrowed:
		movement = "borrowed from the previous year"
	default:
		movement = "carried over from the previous year"
	}

	return FormatDays(check.Days) + " days " + label + " have been " + movement +
		". This is " + FormatDays(check.Excess) + " days over the " +
		FormatDays(check.Limit) + " day limit"
}
