package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careplus/leave-tracker/schedule"
)

func holidayDates(hs []schedule.BankHoliday) map[string]string {
	m := make(map[string]string, len(hs))
	for _, h := range hs {
		m[h.Date] = h.Name
	}
	return m
}

func TestBankHolidaysEnglandWales_2024(t *testing.T) {
	hs := schedule.BankHolidaysEnglandWales(2024)
	require.Len(t, hs, 8)

	m := holidayDates(hs)
	assert.Contains(t, m, "2024-01-01") // New Year's Day, a Monday
	assert.Contains(t, m, "2024-03-29") // Good Friday
	assert.Contains(t, m, "2024-04-01") // Easter Monday
	assert.Contains(t, m, "2024-05-06") // Early May
	assert.Contains(t, m, "2024-05-27") // Spring
	assert.Contains(t, m, "2024-08-26") // Summer
	assert.Contains(t, m, "2024-12-25")
	assert.Contains(t, m, "2024-12-26")
}

func TestBankHolidaysEnglandWales_WeekendSubstitution2022(t *testing.T) {
	// Christmas 2022 fell on a Sunday, Boxing Day on a Monday: the
	// observed days are Mon 26 and Tue 27. New Year 2022 fell on a
	// Saturday, observed Mon Jan 3.
	m := holidayDates(schedule.BankHolidaysEnglandWales(2022))

	assert.Contains(t, m, "2022-01-03")
	assert.Contains(t, m, "2022-12-26")
	assert.Contains(t, m, "2022-12-27")
	assert.NotContains(t, m, "2022-12-25")
	assert.NotContains(t, m, "2023-01-02")
}

func TestBankHolidaysEnglandWales_EasterDates(t *testing.T) {
	// Easter Sunday: 2023-04-09, 2025-04-20, 2038-04-25 (a late edge case
	// for the computus).
	cases := []struct {
		year         int
		goodFriday   string
		easterMonday string
	}{
		{2023, "2023-04-07", "2023-04-10"},
		{2025, "2025-04-18", "2025-04-21"},
		{2038, "2038-04-23", "2038-04-26"},
	}
	for _, c := range cases {
		m := holidayDates(schedule.BankHolidaysEnglandWales(c.year))
		assert.Contains(t, m, c.goodFriday, "year %d", c.year)
		assert.Contains(t, m, c.easterMonday, "year %d", c.year)
	}
}

func TestBankHolidaysEnglandWales_SortedAndNamed(t *testing.T) {
	hs := schedule.BankHolidaysEnglandWales(2024)
	for i := 1; i < len(hs); i++ {
		assert.Less(t, hs[i-1].Date, hs[i].Date)
	}
	for _, h := range hs {
		assert.NotEmpty(t, h.Name)
		assert.Equal(t, 2024, schedule.YearOfISO(h.Date))
	}
}
