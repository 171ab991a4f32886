package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// WEEKLY PATTERN - Scheduled hours per weekday
// =============================================================================

// WeeklyPattern maps each weekday to the hours an employee is scheduled
// to work on that day (e.g. 7.5). A pattern is set per employee by an
// admin and is treated as currently valid for all past and future dates;
// there is no date-range versioning.
//
// JSON uses lowercase three-letter keys (mon..sun). Absent keys decode
// to zero hours.
type WeeklyPattern struct {
	Mon decimal.Decimal `json:"mon"`
	Tue decimal.Decimal `json:"tue"`
	Wed decimal.Decimal `json:"wed"`
	Thu decimal.Decimal `json:"thu"`
	Fri decimal.Decimal `json:"fri"`
	Sat decimal.Decimal `json:"sat"`
	Sun decimal.Decimal `json:"sun"`
}

// HoursOn returns the scheduled hours for a weekday, coerced to a
// non-negative value. Negative entries read as zero.
func (p WeeklyPattern) HoursOn(wd time.Weekday) decimal.Decimal {
	var h decimal.Decimal
	switch wd {
	case time.Monday:
		h = p.Mon
	case time.Tuesday:
		h = p.Tue
	case time.Wednesday:
		h = p.Wed
	case time.Thursday:
		h = p.Thu
	case time.Friday:
		h = p.Fri
	case time.Saturday:
		h = p.Sat
	case time.Sunday:
		h = p.Sun
	}
	if h.IsNegative() {
		return decimal.Zero
	}
	return h
}

// WeekTotal returns the sum of all seven weekday entries, rounded to
// two decimals. Used for display alongside employee records.
func (p WeeklyPattern) WeekTotal() decimal.Decimal {
	total := decimal.Zero
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		total = total.Add(p.HoursOn(wd))
	}
	return total.Round(2)
}

// Hours returns the scheduled hours for a single ISO date under the
// given pattern, ignoring holidays. This is the single source of truth
// for "how many hours would this employee have worked on this date".
// Malformed dates contribute zero.
func Hours(isoDate string, p WeeklyPattern) decimal.Decimal {
	t, ok := ParseISODate(isoDate)
	if !ok {
		return decimal.Zero
	}
	return p.HoursOn(t.Weekday())
}
