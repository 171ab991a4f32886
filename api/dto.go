/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupled from the
  domain types. Hours cross the JSON boundary as plain numbers rounded
  to two decimals; internally everything is decimal.

NUMERIC COERCION:
  Incoming hour values are normalized once here (coerce-to-number-or-
  zero): NaN, infinities, and negatives all read as zero before they
  reach the calculation core.

SEE ALSO:
  - handlers.go: Uses these types
  - schedule/pattern.go: The WeeklyPattern these DTOs convert to
*/
package api

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/careplus/leave-tracker/leave"
	"github.com/careplus/leave-tracker/schedule"
	store "github.com/careplus/leave-tracker/store/sqlite"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// LoginRequest is the credential payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	BranchID string `json:"branch_id,omitempty"`
}

// BranchDTO represents a branch in API responses.
type BranchDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateBranchRequest is the request to create a branch.
type CreateBranchRequest struct {
	Name string `json:"name"`
}

// WeekDTO is a weekly pattern keyed by lowercase three-letter weekday
// abbreviations. Absent keys decode to zero hours.
type WeekDTO struct {
	Mon float64 `json:"mon"`
	Tue float64 `json:"tue"`
	Wed float64 `json:"wed"`
	Thu float64 `json:"thu"`
	Fri float64 `json:"fri"`
	Sat float64 `json:"sat"`
	Sun float64 `json:"sun"`
}

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID                         string  `json:"id"`
	BranchID                   string  `json:"branch_id"`
	Name                       string  `json:"name"`
	AllowedHolidayHoursPerYear float64 `json:"allowed_holiday_hours_per_year"`
	WeeklyHours                WeekDTO `json:"weekly_hours"`
}

// SaveEmployeeRequest is the request to create or update an employee.
type SaveEmployeeRequest struct {
	BranchID                   string  `json:"branch_id"`
	Name                       string  `json:"name"`
	AllowedHolidayHoursPerYear float64 `json:"allowed_holiday_hours_per_year"`
	WeeklyHours                WeekDTO `json:"weekly_hours"`
}

// LeaveDTO represents a stored leave record.
type LeaveDTO struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	BranchID   string  `json:"branch_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Hours      float64 `json:"hours"`
	Type       string  `json:"type"`
	TypeLabel  string  `json:"type_label"`
	Comment    string  `json:"comment,omitempty"`
}

// CreateLeaveRequest is the request to log leave. Hours are computed
// server-side from the range, pattern, and that year's public holidays.
type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Type       string `json:"type"`
	Comment    string `json:"comment"`
}

// HolidayDTO represents a public holiday.
type HolidayDTO struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// SaveHolidayRequest is the upsert request for a public holiday.
type SaveHolidayRequest struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// BalanceDTO is the reconciled leave year for one employee.
type BalanceDTO struct {
	EmployeeID         string             `json:"employee_id"`
	EmployeeName       string             `json:"employee_name"`
	Year               int                `json:"year"`
	Allowed            float64            `json:"allowed"`
	TotalTaken         float64            `json:"total_taken"`
	TakenByType        map[string]float64 `json:"taken_by_type"`
	PublicHolidayHours float64            `json:"public_holiday_hours"`
	RemainingHoliday   float64            `json:"remaining_holiday"`
}

// CalendarLeaveDTO is one employee's leave shown on a calendar day.
type CalendarLeaveDTO struct {
	LeaveID      string `json:"leave_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Type         string `json:"type"`
}

// CalendarDayDTO is everything shown for one calendar day.
type CalendarDayDTO struct {
	Holiday string             `json:"holiday,omitempty"`
	Leaves  []CalendarLeaveDTO `json:"leaves,omitempty"`
}

// CalendarDTO maps ISO dates to their calendar entries for a year.
type CalendarDTO struct {
	Year int                       `json:"year"`
	Days map[string]CalendarDayDTO `json:"days"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// coerceHours normalizes an incoming numeric hour value: NaN,
// infinities, and negatives all become zero.
func coerceHours(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func toPattern(w WeekDTO) schedule.WeeklyPattern {
	return schedule.WeeklyPattern{
		Mon: coerceHours(w.Mon),
		Tue: coerceHours(w.Tue),
		Wed: coerceHours(w.Wed),
		Thu: coerceHours(w.Thu),
		Fri: coerceHours(w.Fri),
		Sat: coerceHours(w.Sat),
		Sun: coerceHours(w.Sun),
	}
}

func toWeekDTO(p schedule.WeeklyPattern) WeekDTO {
	return WeekDTO{
		Mon: round2(p.Mon),
		Tue: round2(p.Tue),
		Wed: round2(p.Wed),
		Thu: round2(p.Thu),
		Fri: round2(p.Fri),
		Sat: round2(p.Sat),
		Sun: round2(p.Sun),
	}
}

func toEmployeeDTO(e store.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                         e.ID,
		BranchID:                   e.BranchID,
		Name:                       e.Name,
		AllowedHolidayHoursPerYear: round2(e.Allowed),
		WeeklyHours:                toWeekDTO(e.Weekly),
	}
}

func toLeaveDTO(r leave.Record) LeaveDTO {
	return LeaveDTO{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		BranchID:   r.BranchID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Hours:      round2(r.Hours),
		Type:       string(r.Type),
		TypeLabel:  r.Type.Label(),
		Comment:    r.Comment,
	}
}

func toLeaveDTOs(records []leave.Record) []LeaveDTO {
	dtos := make([]LeaveDTO, len(records))
	for i, r := range records {
		dtos[i] = toLeaveDTO(r)
	}
	return dtos
}

func toHolidayDTO(h store.PublicHoliday) HolidayDTO {
	return HolidayDTO{ID: h.ID, Date: h.Date, Name: h.Name, Region: h.Region}
}

func toBalanceDTO(e store.Employee, year int, b leave.Balance) BalanceDTO {
	byType := make(map[string]float64, len(b.PerTypeTaken))
	for t, taken := range b.PerTypeTaken {
		byType[string(t)] = round2(taken)
	}
	return BalanceDTO{
		EmployeeID:         e.ID,
		EmployeeName:       e.Name,
		Year:               year,
		Allowed:            round2(b.Allowed),
		TotalTaken:         round2(b.TotalTaken),
		TakenByType:        byType,
		PublicHolidayHours: round2(b.PublicHolidayHours),
		RemainingHoliday:   round2(b.RemainingHoliday),
	}
}
