/*
Package leave defines leave records and the balance reconciler.

PURPOSE:
  A leave record stores a precomputed hour total for a date range; the
  reconciler turns a year's records plus the public-holiday deduction
  into the "allowed vs taken vs remaining" figures shown per employee.

DESIGN DECISIONS:
  - One canonical Type enumeration with a single normalization mapping.
    The surrounding screens historically spelled types differently
    ("Holiday" vs "ANNUAL"); every boundary goes through NormalizeType.
  - Record.Hours is computed once at submission (schedule.RangeHours)
    and trusted thereafter. It is never recomputed from the dates at
    display time: stored and recomputed values can legitimately diverge
    when an employee's weekly pattern changes after the leave was taken.

SEE ALSO:
  - schedule: the date/hour arithmetic these records are built from
*/
package leave

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LEAVE TYPE - Canonical enumeration
// =============================================================================

// Type classifies a leave record. Only TypeHoliday draws down the annual
// holiday allowance; the rest are tracked for visibility.
type Type string

const (
	TypeHoliday Type = "ANNUAL"
	TypeSick    Type = "SICK"
	TypeUnpaid  Type = "UNPAID"
	TypeOther   Type = "OTHER"
)

// Types lists all canonical leave types in display order.
func Types() []Type {
	return []Type{TypeHoliday, TypeSick, TypeUnpaid, TypeOther}
}

// typeAliases maps the loose spellings seen at system boundaries onto
// the canonical enumeration.
var typeAliases = map[string]Type{
	"annual":       TypeHoliday,
	"annual leave": TypeHoliday,
	"holiday":      TypeHoliday,
	"sick":         TypeSick,
	"sick leave":   TypeSick,
	"unpaid":       TypeUnpaid,
	"other":        TypeOther,
}

// NormalizeType maps an arbitrary type spelling to the canonical
// enumeration. Unknown values land in TypeOther rather than failing, so
// aggregation always completes.
func NormalizeType(s string) Type {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}
	return TypeOther
}

// Label returns the human-readable name for a type.
func (t Type) Label() string {
	switch t {
	case TypeHoliday:
		return "Holiday"
	case TypeSick:
		return "Sick Leave"
	case TypeUnpaid:
		return "Unpaid"
	default:
		return "Other"
	}
}

// =============================================================================
// LEAVE RECORD
// =============================================================================

// Record is a stored leave entry. StartDate and EndDate are ISO dates,
// normalized so EndDate >= StartDate at creation. Hours is the total
// computed at submission time; see the package comment for why it is
// never recomputed.
type Record struct {
	ID         string
	EmployeeID string
	BranchID   string
	StartDate  string
	EndDate    string
	Hours      decimal.Decimal
	Type       Type
	Comment    string
}
