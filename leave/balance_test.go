package leave_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/careplus/leave-tracker/leave"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func holidayRecord(hours string) leave.Record {
	return leave.Record{Type: leave.TypeHoliday, Hours: dec(hours)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestReconcile_StandardYear(t *testing.T) {
	// GIVEN: a 224h allowance, 100h of holiday taken, 16h of public
	//        holidays falling on scheduled days
	// THEN:  108h remain
	records := []leave.Record{holidayRecord("60"), holidayRecord("40")}
	b := leave.Reconcile(dec("224"), records, dec("16"))

	assertDecimal(t, "224", b.Allowed)
	assertDecimal(t, "100", b.TotalTaken)
	assertDecimal(t, "100", b.PerTypeTaken[leave.TypeHoliday])
	assertDecimal(t, "16", b.PublicHolidayHours)
	assertDecimal(t, "108", b.RemainingHoliday)
}

func TestReconcile_RemainingFlooredAtZero(t *testing.T) {
	b := leave.Reconcile(dec("50"), []leave.Record{holidayRecord("60")}, decimal.Zero)
	assertDecimal(t, "0", b.RemainingHoliday)
	assertDecimal(t, "60", b.TotalTaken)
}

func TestReconcile_OnlyHolidayDrawsDownAllowance(t *testing.T) {
	records := []leave.Record{
		holidayRecord("8"),
		{Type: leave.TypeSick, Hours: dec("24")},
		{Type: leave.TypeUnpaid, Hours: dec("16")},
		{Type: leave.TypeOther, Hours: dec("4")},
	}
	b := leave.Reconcile(dec("224"), records, decimal.Zero)

	assertDecimal(t, "52", b.TotalTaken)
	assertDecimal(t, "8", b.PerTypeTaken[leave.TypeHoliday])
	assertDecimal(t, "24", b.PerTypeTaken[leave.TypeSick])
	assertDecimal(t, "16", b.PerTypeTaken[leave.TypeUnpaid])
	assertDecimal(t, "4", b.PerTypeTaken[leave.TypeOther])
	// Only the 8 holiday hours reduce the remainder.
	assertDecimal(t, "216", b.RemainingHoliday)
}

func TestReconcile_UnknownTypeCountsAsOther(t *testing.T) {
	records := []leave.Record{{Type: leave.Type("maternity"), Hours: dec("12")}}
	b := leave.Reconcile(dec("224"), records, decimal.Zero)

	assertDecimal(t, "12", b.PerTypeTaken[leave.TypeOther])
	assertDecimal(t, "224", b.RemainingHoliday)
}

func TestReconcile_LooseSpellingsFoldIntoHoliday(t *testing.T) {
	records := []leave.Record{
		{Type: leave.Type("Holiday"), Hours: dec("8")},
		{Type: leave.Type("annual leave"), Hours: dec("8")},
		holidayRecord("8"),
	}
	b := leave.Reconcile(dec("224"), records, decimal.Zero)

	assertDecimal(t, "24", b.PerTypeTaken[leave.TypeHoliday])
	assertDecimal(t, "200", b.RemainingHoliday)
}

func TestReconcile_NegativeInputsCoercedToZero(t *testing.T) {
	records := []leave.Record{holidayRecord("-10"), holidayRecord("8")}
	b := leave.Reconcile(dec("-5"), records, dec("-1"))

	assertDecimal(t, "0", b.Allowed)
	assertDecimal(t, "8", b.TotalTaken)
	assertDecimal(t, "0", b.PublicHolidayHours)
	assertDecimal(t, "0", b.RemainingHoliday)
}

func TestReconcile_EmptyYear(t *testing.T) {
	b := leave.Reconcile(dec("224"), nil, decimal.Zero)

	assertDecimal(t, "0", b.TotalTaken)
	assertDecimal(t, "224", b.RemainingHoliday)
	for _, typ := range leave.Types() {
		assertDecimal(t, "0", b.PerTypeTaken[typ])
	}
}

func TestReconcile_MoreTakenNeverIncreasesRemaining(t *testing.T) {
	base := []leave.Record{holidayRecord("40")}
	withMore := append(append([]leave.Record{}, base...), holidayRecord("8"))

	before := leave.Reconcile(dec("224"), base, dec("16")).RemainingHoliday
	after := leave.Reconcile(dec("224"), withMore, dec("16")).RemainingHoliday
	assert.True(t, after.LessThanOrEqual(before))
}

func TestReconcile_RoundsToTwoDecimals(t *testing.T) {
	records := []leave.Record{holidayRecord("7.333"), holidayRecord("7.333")}
	b := leave.Reconcile(dec("224"), records, decimal.Zero)

	assertDecimal(t, "14.67", b.TotalTaken)
	assertDecimal(t, "209.33", b.RemainingHoliday)
}
