package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careplus/leave-tracker/schedule"
)

func TestToISODate_ZeroPads(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-05", schedule.ToISODate(d))
}

func TestParseISODate_RoundTrip(t *testing.T) {
	// Round-trip holds for any well-formed date.
	for _, iso := range []string{"2024-01-01", "2024-02-29", "1999-12-31", "2025-07-04"} {
		d, ok := schedule.ParseISODate(iso)
		require.True(t, ok, "should parse %s", iso)
		assert.Equal(t, iso, schedule.ToISODate(d))
	}
}

func TestParseISODate_Malformed(t *testing.T) {
	for _, iso := range []string{"", "not-a-date", "2024-13-01", "2024-02-30", "2024/01/01", "24-01-01"} {
		_, ok := schedule.ParseISODate(iso)
		assert.False(t, ok, "should not parse %q", iso)
	}
}

func TestIsWeekend(t *testing.T) {
	sat, _ := schedule.ParseISODate("2024-01-06")
	sun, _ := schedule.ParseISODate("2024-01-07")
	mon, _ := schedule.ParseISODate("2024-01-08")

	assert.True(t, schedule.IsWeekend(sat))
	assert.True(t, schedule.IsWeekend(sun))
	assert.False(t, schedule.IsWeekend(mon))
}

func TestEachDayInclusive_Forward(t *testing.T) {
	days := schedule.EachDayInclusive("2024-01-01", "2024-01-05")
	assert.Equal(t, []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
	}, days)
}

func TestEachDayInclusive_SingleDay(t *testing.T) {
	days := schedule.EachDayInclusive("2024-06-15", "2024-06-15")
	assert.Equal(t, []string{"2024-06-15"}, days)
}

func TestEachDayInclusive_Reversed(t *testing.T) {
	// Start after end enumerates descending; same set of days either way.
	days := schedule.EachDayInclusive("2024-01-05", "2024-01-01")
	assert.Equal(t, []string{
		"2024-01-05", "2024-01-04", "2024-01-03", "2024-01-02", "2024-01-01",
	}, days)
}

func TestEachDayInclusive_CrossesMonthAndYear(t *testing.T) {
	days := schedule.EachDayInclusive("2023-12-30", "2024-01-02")
	assert.Equal(t, []string{
		"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02",
	}, days)
}

func TestEachDayInclusive_Length(t *testing.T) {
	// length == (end - start in days) + 1 for start <= end
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-01", "2024-01-31", 31},
		{"2024-02-01", "2024-02-29", 29}, // leap year
		{"2024-01-01", "2024-12-31", 366},
	}
	for _, c := range cases {
		assert.Len(t, schedule.EachDayInclusive(c.start, c.end), c.want,
			"%s..%s", c.start, c.end)
	}
}

func TestEachDayInclusive_MalformedInput(t *testing.T) {
	assert.Empty(t, schedule.EachDayInclusive("garbage", "2024-01-05"))
	assert.Empty(t, schedule.EachDayInclusive("2024-01-01", "garbage"))
	assert.Empty(t, schedule.EachDayInclusive("", ""))
}

func TestYearOfISO(t *testing.T) {
	assert.Equal(t, 2024, schedule.YearOfISO("2024-06-15"))
	assert.Equal(t, 1999, schedule.YearOfISO("1999-12-31"))
	assert.Equal(t, 0, schedule.YearOfISO(""))
	assert.Equal(t, 0, schedule.YearOfISO("abc"))
	assert.Equal(t, 0, schedule.YearOfISO("20x4-01-01"))
	assert.Equal(t, 0, schedule.YearOfISO("202"))
}
