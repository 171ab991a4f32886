package schedule

import (
	"time"
)

// =============================================================================
// ENGLAND & WALES BANK HOLIDAYS - Default holiday set
// =============================================================================

// BankHoliday is a computed bank holiday for a single year. Used to
// prefill the public-holiday table; admins can edit the result.
type BankHoliday struct {
	Date string
	Name string
}

// BankHolidaysEnglandWales returns the England & Wales bank holidays for
// a year, with substitute days applied when a fixed-date holiday falls
// on a weekend. One-off holidays (royal events, etc.) are not included.
func BankHolidaysEnglandWales(year int) []BankHoliday {
	easter := easterSunday(year)

	christmas := rollForwardFromWeekend(time.Date(year, time.December, 25, 0, 0, 0, 0, time.Local))
	boxing := nextWeekday(christmas)

	return []BankHoliday{
		{ToISODate(rollForwardFromWeekend(time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local))), "New Year's Day"},
		{ToISODate(easter.AddDate(0, 0, -2)), "Good Friday"},
		{ToISODate(easter.AddDate(0, 0, 1)), "Easter Monday"},
		{ToISODate(nthWeekdayOfMonth(year, time.May, time.Monday, 1)), "Early May Bank Holiday"},
		{ToISODate(lastWeekdayOfMonth(year, time.May, time.Monday)), "Spring Bank Holiday"},
		{ToISODate(lastWeekdayOfMonth(year, time.August, time.Monday)), "Summer Bank Holiday"},
		{ToISODate(christmas), "Christmas Day"},
		{ToISODate(boxing), "Boxing Day"},
	}
}

// easterSunday computes Easter Sunday using the Meeus/Jones/Butcher
// algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// rollForwardFromWeekend moves a Saturday or Sunday date to the
// following Monday.
func rollForwardFromWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	}
	return t
}

// nextWeekday returns the first Mon-Fri day strictly after t.
func nextWeekday(t time.Time) time.Time {
	n := t.AddDate(0, 0, 1)
	for IsWeekend(n) {
		n = n.AddDate(0, 0, 1)
	}
	return n
}

// nthWeekdayOfMonth returns the nth occurrence (1-based) of a weekday
// in the given month.
func nthWeekdayOfMonth(year int, month time.Month, wd time.Weekday, n int) time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for t.Weekday() != wd {
		t = t.AddDate(0, 0, 1)
	}
	return t.AddDate(0, 0, 7*(n-1))
}

// lastWeekdayOfMonth returns the final occurrence of a weekday in the
// given month.
func lastWeekdayOfMonth(year int, month time.Month, wd time.Weekday) time.Time {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, -1)
	for t.Weekday() != wd {
		t = t.AddDate(0, 0, -1)
	}
	return t
}
