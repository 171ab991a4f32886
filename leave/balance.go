package leave

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// BALANCE - Derived allowance figures, recomputed on every query
// =============================================================================

// Balance is the reconciled view of an employee's leave year. It is
// derived from current record sets on every request and never persisted.
type Balance struct {
	Allowed            decimal.Decimal
	TotalTaken         decimal.Decimal
	PerTypeTaken       map[Type]decimal.Decimal
	PublicHolidayHours decimal.Decimal
	RemainingHoliday   decimal.Decimal
}

// Reconcile computes the balance for one employee-year.
//
// Only holiday-type hours and the whole-year public-holiday deduction
// draw down the allowance; sick/unpaid/other totals are reported but
// never deducted. The remaining figure is floored at zero: it never
// goes negative even when taken plus holidays exceed the allowance.
func Reconcile(allowed decimal.Decimal, records []Record, publicHolidayHours decimal.Decimal) Balance {
	perType := make(map[Type]decimal.Decimal, len(Types()))
	for _, t := range Types() {
		perType[t] = decimal.Zero
	}

	total := decimal.Zero
	for _, r := range records {
		h := r.Hours
		if h.IsNegative() {
			h = decimal.Zero
		}
		t := NormalizeType(string(r.Type))
		perType[t] = perType[t].Add(h)
		total = total.Add(h)
	}

	if allowed.IsNegative() {
		allowed = decimal.Zero
	}
	if publicHolidayHours.IsNegative() {
		publicHolidayHours = decimal.Zero
	}

	remaining := allowed.Sub(perType[TypeHoliday]).Sub(publicHolidayHours)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	for t := range perType {
		perType[t] = perType[t].Round(2)
	}

	return Balance{
		Allowed:            allowed.Round(2),
		TotalTaken:         total.Round(2),
		PerTypeTaken:       perType,
		PublicHolidayHours: publicHolidayHours.Round(2),
		RemainingHoliday:   remaining.Round(2),
	}
}
