package schedule

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// RANGE HOURS - Sum of scheduled hours over an inclusive date range
// =============================================================================

// RangeHours sums the scheduled hours for every day in [startISO, endISO]
// inclusive, contributing zero for days present in holidayDates. The
// result is rounded to two decimals and is always >= 0.
//
// This is the basis for auto-computing the hours of a new leave record:
// an empty or unparseable range returns zero, and callers reject a
// submission whose computed hours are zero (no working days in range).
func RangeHours(startISO, endISO string, p WeeklyPattern, holidayDates map[string]bool) decimal.Decimal {
	total := decimal.Zero
	for _, day := range EachDayInclusive(startISO, endISO) {
		if holidayDates[day] {
			continue
		}
		total = total.Add(Hours(day, p))
	}
	return total.Round(2)
}

// =============================================================================
// PUBLIC HOLIDAY YEAR AGGREGATION
// =============================================================================

// PublicHolidayHoursForYear sums the scheduled hours falling on public
// holidays across the whole given year, rounded to two decimals.
//
// Holidays are matched by 4-digit year-prefix equality on their date
// string; entries dated in any other year (or malformed) are ignored.
// The total covers the entire year, past and future alike: it is the
// deduction applied to the annual holiday allowance and is never
// prorated by elapsed time.
func PublicHolidayHoursForYear(year int, p WeeklyPattern, holidayDates []string) decimal.Decimal {
	total := decimal.Zero
	for _, d := range holidayDates {
		if YearOfISO(d) != year {
			continue
		}
		total = total.Add(Hours(d, p))
	}
	return total.Round(2)
}
