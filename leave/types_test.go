package leave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careplus/leave-tracker/leave"
)

func TestNormalizeType(t *testing.T) {
	cases := []struct {
		in   string
		want leave.Type
	}{
		{"ANNUAL", leave.TypeHoliday},
		{"annual", leave.TypeHoliday},
		{"Annual Leave", leave.TypeHoliday},
		{"Holiday", leave.TypeHoliday},
		{"  holiday  ", leave.TypeHoliday},
		{"SICK", leave.TypeSick},
		{"Sick Leave", leave.TypeSick},
		{"unpaid", leave.TypeUnpaid},
		{"UNPAID", leave.TypeUnpaid},
		{"other", leave.TypeOther},
		{"", leave.TypeOther},
		{"maternity", leave.TypeOther},
		{"HOLIDAYS", leave.TypeOther},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, leave.NormalizeType(c.in), "input %q", c.in)
	}
}

func TestNormalizeType_Idempotent(t *testing.T) {
	for _, typ := range leave.Types() {
		assert.Equal(t, typ, leave.NormalizeType(string(typ)))
	}
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Holiday", leave.TypeHoliday.Label())
	assert.Equal(t, "Sick Leave", leave.TypeSick.Label())
	assert.Equal(t, "Unpaid", leave.TypeUnpaid.Label())
	assert.Equal(t, "Other", leave.TypeOther.Label())
	assert.Equal(t, "Other", leave.Type("bogus").Label())
}

func TestTypes_OrderAndCompleteness(t *testing.T) {
	assert.Equal(t,
		[]leave.Type{leave.TypeHoliday, leave.TypeSick, leave.TypeUnpaid, leave.TypeOther},
		leave.Types())
}
