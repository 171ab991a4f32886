/*
handlers.go - HTTP API handlers for the leave tracker

PURPOSE:
  Exposes the leave tracker via REST API. Handles HTTP request/response
  and JSON serialization, loads snapshots from the store, and delegates
  every calculation to the pure functions in schedule/ and leave/.

ENDPOINTS:
  Auth:
    POST   /api/login                      Issue bearer token

  Branches:
    GET    /api/branches                   List branches
    POST   /api/branches                   Create branch (admin)
    DELETE /api/branches/{id}              Delete branch (admin)

  Employees:
    GET    /api/employees?branch_id=       List branch employees
    POST   /api/employees                  Create employee (admin)
    GET    /api/employees/{id}             Get employee
    PUT    /api/employees/{id}             Update employee (admin)
    DELETE /api/employees/{id}             Deactivate employee (admin)
    GET    /api/employees/{id}/balance     Reconciled balance for a year
    GET    /api/employees/balances         Balances for a whole branch

  Leaves:
    GET    /api/leaves?branch_id=&from=&to=  List leave records
    POST   /api/leaves                       Log leave (hours auto-computed)
    DELETE /api/leaves/{id}                  Delete leave record

  Public holidays:
    GET    /api/public-holidays?year=        List holidays for a year
    POST   /api/public-holidays              Upsert holiday (admin)
    DELETE /api/public-holidays/{id}         Delete holiday (admin)
    POST   /api/public-holidays/defaults     Load bank holidays (admin)

  Calendar:
    GET    /api/calendar?branch_id=&year=    Year calendar of leave + holidays

BALANCE PATH:
  Every screen that shows "allowed vs taken vs remaining" goes through
  balanceFor, which is the only call site of leave.Reconcile. Stored
  leave hours are never recomputed from their dates here.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, zero-hour ranges
  - 401/403: Missing token / missing role or branch access
  - 404: Resource not found
  - 409: Duplicate branch name
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - auth.go: Login and token middleware
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/careplus/leave-tracker/leave"
	"github.com/careplus/leave-tracker/schedule"
	store "github.com/careplus/leave-tracker/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store     *store.Store
	JWTSecret []byte
	TokenTTL  time.Duration

	// Region selects which public-holiday region applies. Empty is the
	// single implicit region.
	Region string
}

// NewHandler creates a new handler with the given store and JWT secret.
func NewHandler(s *store.Store, jwtSecret []byte) *Handler {
	return &Handler{
		Store:     s,
		JWTSecret: jwtSecret,
		TokenTTL:  defaultTokenTTL,
	}
}

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// =============================================================================
// BRANCH HANDLERS
// =============================================================================

// ListBranches returns all branches.
func (h *Handler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.Store.ListBranches(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list branches", err)
		return
	}

	dtos := make([]BranchDTO, len(branches))
	for i, b := range branches {
		dtos[i] = BranchDTO{ID: b.ID, Name: b.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateBranch creates a new branch.
func (h *Handler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "Branch name is required", nil)
		return
	}

	b := store.Branch{ID: uuid.NewString(), Name: name}
	if err := h.Store.SaveBranch(r.Context(), b); err != nil {
		if errors.Is(err, store.ErrDuplicateBranch) {
			writeError(w, http.StatusConflict, "Branch name already exists", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create branch", err)
		return
	}

	writeJSON(w, http.StatusCreated, BranchDTO{ID: b.ID, Name: b.Name})
}

// DeleteBranch deletes a branch.
func (h *Handler) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteBranch(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete branch", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns the active employees of a branch.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	branchID := r.URL.Query().Get("branch_id")
	if branchID == "" {
		writeError(w, http.StatusBadRequest, "branch_id is required", nil)
		return
	}
	if !h.branchAccessible(r, branchID) {
		writeError(w, http.StatusForbidden, "No access to this branch", nil)
		return
	}

	employees, err := h.Store.ListEmployees(r.Context(), branchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	if !h.branchAccessible(r, emp.BranchID) {
		writeError(w, http.StatusForbidden, "No access to this branch", nil)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.BranchID == "" {
		writeError(w, http.StatusBadRequest, "Name and branch_id are required", nil)
		return
	}

	branch, err := h.Store.GetBranch(r.Context(), req.BranchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check branch", err)
		return
	}
	if branch == nil {
		writeError(w, http.StatusNotFound, "Branch not found", nil)
		return
	}

	emp := store.Employee{
		ID:       uuid.NewString(),
		BranchID: req.BranchID,
		Name:     name,
		Allowed:  coerceHours(req.AllowedHolidayHoursPerYear),
		Weekly:   toPattern(req.WeeklyHours),
		Active:   true,
	}
	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// UpdateEmployee updates an employee's name, allowance, or pattern.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}

	var req SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		emp.Name = name
	}
	if req.BranchID != "" {
		emp.BranchID = req.BranchID
	}
	emp.Allowed = coerceHours(req.AllowedHolidayHoursPerYear)
	emp.Weekly = toPattern(req.WeeklyHours)

	if err := h.Store.SaveEmployee(r.Context(), *emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// DeleteEmployee deactivates an employee, keeping leave history.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeactivateEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to deactivate employee", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// =============================================================================
// BALANCE HANDLERS
// =============================================================================

// balanceFor reconciles one employee's leave year. This is the single
// reconciliation path used by every balance-showing endpoint.
func (h *Handler) balanceFor(ctx context.Context, emp store.Employee, year int, records []leave.Record) (leave.Balance, error) {
	holidays, err := h.Store.ListHolidays(ctx, year, h.Region)
	if err != nil {
		return leave.Balance{}, err
	}
	dates := make([]string, len(holidays))
	for i, hol := range holidays {
		dates[i] = hol.Date
	}

	ph := schedule.PublicHolidayHoursForYear(year, emp.Weekly, dates)
	return leave.Reconcile(emp.Allowed, records, ph), nil
}

// GetBalance returns the reconciled balance for one employee.
// GET /api/employees/{id}/balance?year=
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	emp, err := h.Store.GetEmployee(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	if !h.branchAccessible(r, emp.BranchID) {
		writeError(w, http.StatusForbidden, "No access to this branch", nil)
		return
	}

	year := yearParam(r)
	from, to := yearWindow(year)
	records, err := h.Store.ListLeavesByEmployee(ctx, emp.ID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leaves", err)
		return
	}

	balance, err := h.balanceFor(ctx, *emp, year, records)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reconcile balance", err)
		return
	}

	writeJSON(w, http.StatusOK, toBalanceDTO(*emp, year, balance))
}

// ListBalances returns reconciled balances for a whole branch.
// GET /api/employees/balances?branch_id=&year=
func (h *Handler) ListBalances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID := r.URL.Query().Get("branch_id")
	if branchID == "" {
		writeError(w, http.StatusBadRequest, "branch_id is required", nil)
		return
	}
	if !h.branchAccessible(r, branchID) {
		writeError(w, http.StatusForbidden, "No access to this branch", nil)
		return
	}

	year := yearParam(r)
	from, to := yearWindow(year)

	employees, err := h.Store.ListEmployees(ctx, branchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	// One branch-wide leave query, grouped per employee.
	records, err := h.Store.ListLeaves(ctx, branchID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leaves", err)
		return
	}
	byEmployee := make(map[string][]leave.Record)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	dtos := make([]BalanceDTO, 0, len(employees))
	for _, emp := range employees {
		balance, err := h.balanceFor(ctx, emp, year, byEmployee[emp.ID])
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to reconcile balance", err)
			return
		}
		dtos = append(dtos, toBalanceDTO(emp, year, balance))
	}

	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// ListLeaves returns a branch's leave records in a date window. The
// window defaults to the current calendar year.
func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	branchID := r.URL.Query().Get("branch_id")
	if branchID == "" {
		writeError(w, http.StatusBadRequest, "branch_id is required", nil)
		return
	}
	if !h.branchAccessible(r, branchID) {
		writeError(w, http.StatusForbidden, "No access to this branch", nil)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		from, to = yearWindow(time.Now().Year())
	}

	records, err := h.Store.ListLeaves(r.Context(), branchID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leaves", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveDTOs(records))
}

// CreateLeave logs a leave record. Hours are computed from the range,
// the employee's weekly pattern, and the public holidays of the years
// the range touches; a zero-hour range is rejected.
func (h *Handler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Store.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	if !h.branchAccessible(r, emp.BranchID) {
		writeError(w, http.StatusForbidden, "No access to this branch", nil)
		return
	}

	start := strings.TrimSpace(req.StartDate)
	end := strings.TrimSpace(req.EndDate)

	// Normalize so the stored range always runs forward.
	if s, okS := schedule.ParseISODate(start); okS {
		if e, okE := schedule.ParseISODate(end); okE && s.After(e) {
			start, end = end, start
		}
	}

	holidaySet, err := h.holidaySet(ctx, start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	hours := schedule.RangeHours(start, end, emp.Weekly, holidaySet)
	if hours.IsZero() {
		writeError(w, http.StatusBadRequest, "No working hours in range", nil)
		return
	}

	rec := leave.Record{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		BranchID:   emp.BranchID,
		StartDate:  start,
		EndDate:    end,
		Hours:      hours,
		Type:       leave.NormalizeType(req.Type),
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := h.Store.SaveLeave(ctx, rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save leave", err)
		return
	}

	writeJSON(w, http.StatusCreated, toLeaveDTO(rec))
}

// DeleteLeave removes a leave record.
func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	rec, err := h.Store.GetLeave(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get leave", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Leave record not found", nil)
		return
	}
	if !h.branchAccessible(r, rec.BranchID) {
		writeError(w, http.StatusForbidden, "No access to this branch", nil)
		return
	}

	if err := h.Store.DeleteLeave(ctx, id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete leave", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// PUBLIC HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the public holidays of a year.
// GET /api/public-holidays?year=
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r)

	holidays, err := h.Store.ListHolidays(r.Context(), year, h.Region)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = toHolidayDTO(hol)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateHoliday upserts a public holiday.
// POST /api/public-holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req SaveHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if req.Date == "" || name == "" {
		writeError(w, http.StatusBadRequest, "Date and name are required", nil)
		return
	}
	if _, ok := schedule.ParseISODate(req.Date); !ok {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", nil)
		return
	}

	hol := store.PublicHoliday{
		ID:     uuid.NewString(),
		Date:   req.Date,
		Name:   name,
		Region: req.Region,
	}
	if err := h.Store.UpsertHoliday(r.Context(), hol); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
		return
	}

	writeJSON(w, http.StatusCreated, toHolidayDTO(hol))
}

// DeleteHoliday deletes a public holiday.
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddDefaultHolidays loads the England & Wales bank holidays for a
// year into the public-holiday table.
// POST /api/public-holidays/defaults
func (h *Handler) AddDefaultHolidays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Year int `json:"year"`
	}
	// An empty body means "current year"; anything else malformed is a
	// client error like everywhere else.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}

	defaults := schedule.BankHolidaysEnglandWales(req.Year)
	for _, d := range defaults {
		hol := store.PublicHoliday{
			ID:     uuid.NewString(),
			Date:   d.Date,
			Name:   d.Name,
			Region: h.Region,
		}
		if err := h.Store.UpsertHoliday(ctx, hol); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "created",
		"year":   req.Year,
		"count":  len(defaults),
	})
}

// =============================================================================
// CALENDAR HANDLER
// =============================================================================

// GetCalendar returns the per-day view of a branch's leave year:
// which employees are off on each date, plus public holidays. Display
// only; stored hour totals are not expanded or recomputed here.
// GET /api/calendar?branch_id=&year=
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID := r.URL.Query().Get("branch_id")
	if branchID == "" {
		writeError(w, http.StatusBadRequest, "branch_id is required", nil)
		return
	}
	if !h.branchAccessible(r, branchID) {
		writeError(w, http.StatusForbidden, "No access to this branch", nil)
		return
	}

	year := yearParam(r)
	from, to := yearWindow(year)

	employees, err := h.Store.ListEmployees(ctx, branchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	records, err := h.Store.ListLeaves(ctx, branchID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leaves", err)
		return
	}

	holidays, err := h.Store.ListHolidays(ctx, year, h.Region)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	days := make(map[string]CalendarDayDTO)
	for _, hol := range holidays {
		day := days[hol.Date]
		day.Holiday = hol.Name
		days[hol.Date] = day
	}

	for _, rec := range records {
		for _, date := range schedule.EachDayInclusive(rec.StartDate, rec.EndDate) {
			if schedule.YearOfISO(date) != year {
				continue
			}
			day := days[date]
			day.Leaves = append(day.Leaves, CalendarLeaveDTO{
				LeaveID:      rec.ID,
				EmployeeID:   rec.EmployeeID,
				EmployeeName: names[rec.EmployeeID],
				Type:         string(rec.Type),
			})
			days[date] = day
		}
	}

	writeJSON(w, http.StatusOK, CalendarDTO{Year: year, Days: days})
}

// =============================================================================
// HELPERS
// =============================================================================

// branchAccessible reports whether the caller may act on a branch.
// Admins see every branch; branch users only their own.
func (h *Handler) branchAccessible(r *http.Request, branchID string) bool {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		return false
	}
	if identity.Role == "admin" {
		return true
	}
	return identity.BranchID == branchID
}

// holidaySet returns the holiday-date lookup set covering every
// calendar year a leave range touches, intermediate years included.
func (h *Handler) holidaySet(ctx context.Context, startISO, endISO string) (map[string]bool, error) {
	startYear := schedule.YearOfISO(startISO)
	endYear := schedule.YearOfISO(endISO)
	if startYear == 0 || endYear == 0 {
		return map[string]bool{}, nil
	}
	if startYear > endYear {
		startYear, endYear = endYear, startYear
	}

	set := make(map[string]bool)
	for year := startYear; year <= endYear; year++ {
		holidays, err := h.Store.ListHolidays(ctx, year, h.Region)
		if err != nil {
			return nil, err
		}
		for _, hol := range holidays {
			set[hol.Date] = true
		}
	}
	return set, nil
}

// yearParam reads the year query parameter, falling back to the
// current year when absent or malformed.
func yearParam(r *http.Request) int {
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y > 0 {
		return y
	}
	return time.Now().Year()
}

// yearWindow returns the inclusive ISO date window of a calendar year.
func yearWindow(year int) (string, string) {
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
