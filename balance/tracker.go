package balance

import (
	"github.com/shopspring/decimal"

	"github.com/warp/pto-calendar/calendar"
)

// =============================================================================
// TRACKER - Mutable balance state carried across the month loop
// =============================================================================

// Tracker holds the running leave balances for one year. It is mutated
// by exactly one pass: AccrueMonth once per month in calendar order,
// ApplyEvent once per event day in ascending day order, SellVacation
// once during December.
type Tracker struct {
	Floating  decimal.Decimal
	Personal  decimal.Decimal
	Sick      decimal.Decimal
	Vacation  decimal.Decimal
	Volunteer decimal.Decimal

	// Unofficial accumulates unpaid days USED, not days remaining.
	// Unpaid time has no capacity to deplete.
	Unofficial decimal.Decimal

	// Per-paycheck accrual rates; zero when block-granted.
	VacationRate decimal.Decimal
	SickRate     decimal.Decimal

	// Paychecks per month, January first.
	Paychecks [12]int

	// TotalPaychecks is the accrual-rate denominator for the year.
	TotalPaychecks int

	// VacationSold is the December sale amount; zero when none.
	VacationSold decimal.Decimal

	// Advisory caps for summary highlighting; nil means uncapped.
	MaxVacation *decimal.Decimal
	MaxSick     *decimal.Decimal

	sold bool
}

// NewTracker initializes the year's balance state from a policy.
func NewTracker(p Policy) *Tracker {
	t := &Tracker{
		Floating:     decimal.NewFromFloat(p.Floating),
		Personal:     decimal.NewFromFloat(p.Personal),
		Sick:         decimal.NewFromFloat(p.Sick),
		Vacation:     decimal.NewFromFloat(p.Vacation),
		Volunteer:    decimal.NewFromFloat(p.Volunteer),
		VacationSold: decimal.NewFromFloat(p.VacationSold),
	}

	for i := range t.Paychecks {
		t.Paychecks[i] = 2
	}
	for _, m := range p.ExtraPaycheckMonths {
		if m >= 1 && m <= 12 {
			t.Paychecks[m-1]++
		}
	}
	t.TotalPaychecks = 24 + len(p.ExtraPaycheckMonths)

	total := decimal.NewFromInt(int64(t.TotalPaychecks))
	if p.VacationAccrual {
		t.Vacation = decimal.Zero
		t.VacationRate = decimal.NewFromFloat(p.Vacation).Div(total)
	}
	if p.SickAccrual {
		t.Sick = decimal.Zero
		t.SickRate = decimal.NewFromFloat(p.Sick).Div(total)
	}

	if p.MaxVacationAccrual != nil {
		max := decimal.NewFromFloat(*p.MaxVacationAccrual)
		t.MaxVacation = &max
	}
	if p.MaxSickAccrual != nil {
		max := decimal.NewFromFloat(*p.MaxSickAccrual)
		t.MaxSick = &max
	}

	// Carry-in applies after accrual setup so an accruing category
	// starts at carry-in, not zero.
	t.Sick = t.Sick.Add(decimal.NewFromFloat(p.SickCarryIn))
	t.Vacation = t.Vacation.Add(decimal.NewFromFloat(p.VacationCarryIn))

	return t
}

// MonthPaychecks returns the paycheck count for month (1..12).
func (t *Tracker) MonthPaychecks(month int) int {
	return t.Paychecks[month-1]
}

// MonthAccrual returns the amount an accruing category adds in the
// given month: rate * paychecks.
func (t *Tracker) MonthAccrual(rate decimal.Decimal, month int) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(t.MonthPaychecks(month))))
}

// AccrueMonth applies the monthly accrual for both accruing categories.
// Must be called before any of the month's events are applied.
func (t *Tracker) AccrueMonth(month int) {
	t.Vacation = t.Vacation.Add(t.MonthAccrual(t.VacationRate, month))
	t.Sick = t.Sick.Add(t.MonthAccrual(t.SickRate, month))
}

// SellVacation subtracts the configured sale amount from the vacation
// balance. Idempotent; the December pass invokes it exactly once.
func (t *Tracker) SellVacation() decimal.Decimal {
	if t.sold || t.VacationSold.IsZero() {
		return decimal.Zero
	}
	t.sold = true
	t.Vacation = t.Vacation.Sub(t.VacationSold)
	return t.VacationSold
}

// ApplyEvent depletes the balance matching the event's category.
// Bereavement, company holidays, and working weekends are display-only.
// Amounts are not clamped; balances may go negative.
func (t *Tracker) ApplyEvent(e calendar.Event) {
	switch e.Category {
	case calendar.CategoryFloating:
		t.Floating = t.Floating.Sub(e.Amount)
	case calendar.CategoryPersonal:
		t.Personal = t.Personal.Sub(e.Amount)
	case calendar.CategorySick:
		t.Sick = t.Sick.Sub(e.Amount)
	case calendar.CategoryUnofficial:
		t.Unofficial = t.Unofficial.Add(e.Amount)
	case calendar.CategoryVacation:
		t.Vacation = t.Vacation.Sub(e.Amount)
	case calendar.CategoryVolunteer:
		t.Volunteer = t.Volunteer.Sub(e.Amount)
	}
}

// =============================================================================
// CARRYOVER CHECKS
// =============================================================================

// CarryCheck describes a carry amount that exceeds its advisory limit.
type CarryCheck struct {
	Days     decimal.Decimal // absolute days carried or borrowed
	Limit    decimal.Decimal
	Excess   decimal.Decimal // Days - Limit
	Borrowed bool            // true when the carry value was negative
}

// CheckCarry compares a signed carry amount against an optional limit.
// It returns ok=true only when a warning should be shown: a nil limit
// never warns, and neither does |carry| <= limit.
func CheckCarry(carry decimal.Decimal, limit *float64) (CarryCheck, bool) {
	if limit == nil {
		return CarryCheck{}, false
	}
	lim := decimal.NewFromFloat(*limit)
	days := carry.Abs()
	if days.LessThanOrEqual(lim) {
		return CarryCheck{}, false
	}
	return CarryCheck{
		Days:     days,
		Limit:    lim,
		Excess:   days.Sub(lim),
		Borrowed: carry.IsNegative(),
	}, true
}
