/*
Package balance implements the leave-balance accrual engine.

PURPOSE:
  Holds the per-year leave policy and the mutable tracker that carries
  running balances across the twelve-month rendering pass. The tracker
  is created once from the policy, accrues once per month, depletes once
  per event day, and is discarded after the year's output is produced.

KEY CONCEPTS:
  - Policy: immutable per-year configuration (grants, accrual flags,
    carry-in/out, caps, extra-paycheck months)
  - Tracker: running balances for each leave category
  - Paychecks: accrual is per paycheck; months default to two, with
    extra-paycheck months adding one each (duplicates compound)

ACCRUAL ALGORITHM:
  - Total paychecks = 24 + one per entry in ExtraPaycheckMonths
  - Accruing categories (sick, vacation) start at zero with rate
    annual / total paychecks; block-granted categories start at the
    full annual amount with rate zero
  - Each month adds rate * that month's paycheck count
  - Carry-in amounts (signed) are added to the starting balances

DESIGN PRINCIPLES:
  1. Precision: all quantities are decimal.Decimal
  2. No clamping: balances go negative; the renderer flags them
  3. Totality: a zero-value Policy is valid and renders a full year

SEE ALSO:
  - calendar: the event model that drives daily depletion
  - render: applies the monthly/daily updates in strict calendar order
*/
package balance

// Policy is the per-year leave configuration. Unset fields mean zero or
// false; a nil limit or cap means "no limit", not "limit zero".
type Policy struct {
	// Annual grants, in days.
	Floating  float64 `koanf:"floating" validate:"gte=0"`
	Personal  float64 `koanf:"personal" validate:"gte=0"`
	Sick      float64 `koanf:"sick" validate:"gte=0"`
	Vacation  float64 `koanf:"vacation" validate:"gte=0"`
	Volunteer float64 `koanf:"volunteer" validate:"gte=0"`

	// Accrual flags: when set, the grant accrues per paycheck instead of
	// being available in full on January 1.
	VacationAccrual bool `koanf:"vacation_accrual"`
	SickAccrual     bool `koanf:"sick_accrual"`

	// Days carried in from the prior year. Negative values mean the
	// prior year borrowed from this one.
	VacationCarryIn float64 `koanf:"vacation_carryin"`
	SickCarryIn     float64 `koanf:"sick_carryin"`

	// Advisory carryover limits. Exceeding one produces a warning in the
	// output, never a computational change.
	VacationCarryoverLimit *float64 `koanf:"vacation_carryover_limit" validate:"omitempty,gte=0"`
	SickCarryoverLimit     *float64 `koanf:"sick_carryover_limit" validate:"omitempty,gte=0"`

	// Days of vacation sold back (cash in lieu), applied in December.
	VacationSold float64 `koanf:"vacation_sold"`

	// Advisory accrual caps; balances above these are highlighted.
	MaxVacationAccrual *float64 `koanf:"max_vacation_accrual" validate:"omitempty,gte=0"`
	MaxSickAccrual     *float64 `koanf:"max_sick_accrual" validate:"omitempty,gte=0"`

	// Months (1..12) with a third paycheck. A month listed twice gets
	// two extra paychecks.
	ExtraPaycheckMonths []int `koanf:"extra_paycheck_months" validate:"dive,gte=1,lte=12"`
}
