package render

import (
	"github.com/shopspring/decimal"

	"github.com/warp/pto-calendar/balance"
	"github.com/warp/pto-calendar/calendar"
)

// BuildMonth renders one month: accrual first, then every day in
// ascending order (colorize + deplete), then the summary computed from
// the post-depletion balances. The tracker is mutated in place.
func BuildMonth(month, year int, table calendar.Table, tr *balance.Tracker) MonthPanel {
	tr.AccrueMonth(month)

	// Vacation sold is a December adjustment. It lands after the
	// month's accrual and before its day-level depletions.
	var sold decimal.Decimal
	if month == 12 {
		sold = tr.SellVacation()
	}

	panel := MonthPanel{
		Month: month,
		Name:  calendar.MonthName(month),
	}

	days := calendar.DaysInMonth(month, year)
	weekday := calendar.FirstWeekday(month, year)

	week := make([]DayCell, 0, 7)
	for i := 0; i < weekday; i++ {
		week = append(week, DayCell{})
	}

	for day := 1; day <= days; day++ {
		if len(week) == 7 {
			panel.Weeks = append(panel.Weeks, week)
			week = make([]DayCell, 0, 7)
			weekday = 0
		}

		cell := DayCell{Day: day}
		if event, ok := table.Lookup(month, day); ok {
			cell.Style, cell.Color = calendar.Colorize(weekday, &event)
			cell.Tooltip = event.Tooltip()
			tr.ApplyEvent(event)
		} else {
			cell.Style, cell.Color = calendar.Colorize(weekday, nil)
		}

		week = append(week, cell)
		weekday++
	}
	panel.Weeks = append(panel.Weeks, week)

	panel.Summary = monthSummary(month, tr, sold)
	return panel
}

// monthSummary builds the post-grid summary. Lines whose value is
// exactly zero are suppressed; negative or over-cap values are flagged.
func monthSummary(month int, tr *balance.Tracker, sold decimal.Decimal) []SummaryLine {
	var lines []SummaryLine

	if checks := tr.MonthPaychecks(month); checks > 2 {
		lines = append(lines, SummaryLine{
			Label: itoa(checks) + " paychecks this month",
			Plain: true,
		})
	}

	if tr.VacationRate.IsPositive() {
		lines = append(lines, SummaryLine{
			Label: "Vacation accrued",
			Days:  tr.MonthAccrual(tr.VacationRate, month),
		})
	}
	if tr.SickRate.IsPositive() {
		lines = append(lines, SummaryLine{
			Label: "Sick leave accrued",
			Days:  tr.MonthAccrual(tr.SickRate, month),
		})
	}

	if !sold.IsZero() {
		lines = append(lines, SummaryLine{Label: "Sale of vacation", Days: sold})
	}

	lines = appendBalance(lines, "Vacation", tr.Vacation, tr.MaxVacation)
	lines = appendBalance(lines, "Personal days", tr.Personal, nil)
	lines = appendBalance(lines, "Floating holidays", tr.Floating, nil)
	lines = appendBalance(lines, "Volunteer days", tr.Volunteer, nil)
	lines = appendBalance(lines, "Sick leave", tr.Sick, tr.MaxSick)

	return lines
}

func appendBalance(lines []SummaryLine, label string, days decimal.Decimal, cap *decimal.Decimal) []SummaryLine {
	if days.IsZero() {
		return lines
	}
	alert := days.IsNegative() || (cap != nil && days.GreaterThan(*cap))
	return append(lines, SummaryLine{Label: label, Days: days, Alert: alert})
}
