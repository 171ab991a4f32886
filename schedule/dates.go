/*
Package schedule provides the pure calculation core of the leave tracker.

PURPOSE:
  Converts date ranges into worked hours using a per-employee weekly
  pattern, excluding public holidays. Everything in this package is a
  side-effect-free function over immutable inputs: no storage, no clock
  reads beyond what callers pass in, safe to call concurrently.

KEY CONCEPTS:
  - ISO date: a calendar day as "YYYY-MM-DD". All public functions speak
    ISO strings so callers never worry about timezone conversion.
  - WeeklyPattern: scheduled hours per weekday (pattern.go)
  - RangeHours / PublicHolidayHoursForYear: the two aggregations built
    on top of the per-day resolver (hours.go)

ERROR PHILOSOPHY:
  Malformed input degrades to zero, never to an error or panic. An
  unparseable date contributes nothing, an invalid pattern field reads
  as zero hours. Upstream aggregation always completes.

SEE ALSO:
  - leave/balance.go: balance reconciliation built on these figures
*/
package schedule

import (
	"time"
)

const isoLayout = "2006-01-02"

// ToISODate formats a time as "YYYY-MM-DD" using its calendar fields.
func ToISODate(t time.Time) string {
	return t.Format(isoLayout)
}

// ParseISODate parses "YYYY-MM-DD" into a date at local midnight.
// ok is false for malformed input; callers treat that as a
// zero-contribution day rather than an error.
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(isoLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
// Informational only: weekend days still accrue whatever hours the
// weekly pattern assigns them (a 4h Saturday counts 4h).
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// EachDayInclusive enumerates every calendar day from start to end
// inclusive, as ISO strings. When start > end the enumeration runs
// descending, so the set of days is the same either way. Unparseable
// input yields an empty slice.
func EachDayInclusive(startISO, endISO string) []string {
	start, ok := ParseISODate(startISO)
	if !ok {
		return nil
	}
	end, ok := ParseISODate(endISO)
	if !ok {
		return nil
	}

	step := 1
	if start.After(end) {
		step = -1
	}

	var days []string
	for cur := start; ; cur = cur.AddDate(0, 0, step) {
		days = append(days, ToISODate(cur))
		if cur.Equal(end) {
			break
		}
	}
	return days
}

// YearOfISO extracts the 4-digit year prefix of an ISO date string.
// Returns 0 for malformed input; callers fall back to the current year.
func YearOfISO(s string) int {
	if len(s) < 4 {
		return 0
	}
	year := 0
	for _, c := range s[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}
