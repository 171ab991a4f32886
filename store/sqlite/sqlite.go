/*
Package sqlite provides the SQLite-backed store for the leave tracker.

PURPOSE:
  Persists branches, employees (with their weekly hour patterns), leave
  records, public holidays, and users. The calculation core in
  schedule/ and leave/ never touches this package; handlers read
  snapshots here and feed them to the pure functions.

KEY TABLES:
  branches:         Pharmacy branches (global list)
  employees:        Branch-scoped, with per-weekday hours and allowance
  leaves:           Immutable once stored, removable by deletion only
  public_holidays:  One holiday per (date, region)
  users:            Login accounts (admin or branch role)

DECIMAL COLUMNS:
  Hour values are stored as TEXT and parsed with shopspring/decimal to
  avoid floating-point drift. Malformed stored values read back as zero
  rather than erroring, consistent with the calculation core.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of SQLite's WAL mode.

USAGE:
  store, err := sqlite.New("./data/leave.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  Use ":memory:" for tests.

SEE ALSO:
  - leave/types.go: the Record type stored in the leaves table
  - api/handlers.go: the only consumer of this package
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/careplus/leave-tracker/leave"
	"github.com/careplus/leave-tracker/schedule"
)

// ErrDuplicateBranch is returned when a branch name already exists.
var ErrDuplicateBranch = errors.New("branch name already exists")

// Store implements all persistence for the leave tracker using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases coherent; every pooled
	// connection would otherwise see its own empty database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS branches (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		branch_id TEXT NOT NULL,
		name TEXT NOT NULL,
		allowed_holiday_hours TEXT NOT NULL DEFAULT '0',
		mon TEXT NOT NULL DEFAULT '0',
		tue TEXT NOT NULL DEFAULT '0',
		wed TEXT NOT NULL DEFAULT '0',
		thu TEXT NOT NULL DEFAULT '0',
		fri TEXT NOT NULL DEFAULT '0',
		sat TEXT NOT NULL DEFAULT '0',
		sun TEXT NOT NULL DEFAULT '0',
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_branch
		ON employees(branch_id);

	CREATE TABLE IF NOT EXISTS leaves (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		branch_id TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		hours TEXT NOT NULL,
		leave_type TEXT NOT NULL,
		comment TEXT,
		created_at TEXT NOT NULL
	);

	-- Hot path: branch leave listing for a year window
	CREATE INDEX IF NOT EXISTS idx_leaves_branch_start
		ON leaves(branch_id, start_date);
	CREATE INDEX IF NOT EXISTS idx_leaves_employee
		ON leaves(employee_id);

	CREATE TABLE IF NOT EXISTS public_holidays (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		region TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	-- At most one holiday per (date, region)
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_date_region
		ON public_holidays(date, region);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		branch_id TEXT,
		created_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Reset clears all data. Used by tests and the dev seed path.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"branches", "employees", "leaves", "public_holidays", "users"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}
	return nil
}

// scanDecimal parses a stored TEXT hour value. Malformed values read
// back as zero, matching the calculation core's coercion rule.
func scanDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// =============================================================================
// BRANCHES
// =============================================================================

// Branch is a pharmacy branch. Employees and leave records are scoped
// to exactly one branch; public holidays are global.
type Branch struct {
	ID        string
	Name      string
	CreatedAt string
}

// SaveBranch inserts a branch. Branch names are unique.
func (s *Store) SaveBranch(ctx context.Context, b Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO branches (id, name, created_at) VALUES (?, ?, ?)`,
		b.ID, b.Name, now())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return ErrDuplicateBranch
		}
		return fmt.Errorf("failed to save branch: %w", err)
	}
	return nil
}

// GetBranch returns a branch by ID, or nil if not found.
func (s *Store) GetBranch(ctx context.Context, id string) (*Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b Branch
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM branches WHERE id = ?`, id).
		Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}
	return &b, nil
}

// ListBranches returns all branches ordered by name.
func (s *Store) ListBranches(ctx context.Context) ([]Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM branches ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []Branch
	for rows.Next() {
		var b Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

// DeleteBranch removes a branch by ID.
func (s *Store) DeleteBranch(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM branches WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// Employee is a branch-scoped staff member with an annual holiday
// allowance (in hours) and a weekly work pattern.
type Employee struct {
	ID        string
	BranchID  string
	Name      string
	Allowed   decimal.Decimal
	Weekly    schedule.WeeklyPattern
	Active    bool
	CreatedAt string
}

// SaveEmployee inserts or updates an employee.
func (s *Store) SaveEmployee(ctx context.Context, e Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := 0
	if e.Active {
		active = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (id, branch_id, name, allowed_holiday_hours,
			mon, tue, wed, thu, fri, sat, sun, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			branch_id = excluded.branch_id,
			name = excluded.name,
			allowed_holiday_hours = excluded.allowed_holiday_hours,
			mon = excluded.mon, tue = excluded.tue, wed = excluded.wed,
			thu = excluded.thu, fri = excluded.fri, sat = excluded.sat,
			sun = excluded.sun,
			active = excluded.active`,
		e.ID, e.BranchID, e.Name, e.Allowed.String(),
		e.Weekly.Mon.String(), e.Weekly.Tue.String(), e.Weekly.Wed.String(),
		e.Weekly.Thu.String(), e.Weekly.Fri.String(), e.Weekly.Sat.String(),
		e.Weekly.Sun.String(), active, now())
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

const employeeColumns = `id, branch_id, name, allowed_holiday_hours,
	mon, tue, wed, thu, fri, sat, sun, active, created_at`

func scanEmployee(scan func(dest ...any) error) (Employee, error) {
	var e Employee
	var allowed, mon, tue, wed, thu, fri, sat, sun string
	var active int
	err := scan(&e.ID, &e.BranchID, &e.Name, &allowed,
		&mon, &tue, &wed, &thu, &fri, &sat, &sun, &active, &e.CreatedAt)
	if err != nil {
		return Employee{}, err
	}
	e.Allowed = scanDecimal(allowed)
	e.Weekly = schedule.WeeklyPattern{
		Mon: scanDecimal(mon), Tue: scanDecimal(tue), Wed: scanDecimal(wed),
		Thu: scanDecimal(thu), Fri: scanDecimal(fri), Sat: scanDecimal(sat),
		Sun: scanDecimal(sun),
	}
	e.Active = active != 0
	return e, nil
}

// GetEmployee returns an employee by ID, or nil if not found.
func (s *Store) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &e, nil
}

// ListEmployees returns the active employees of a branch ordered by name.
func (s *Store) ListEmployees(ctx context.Context, branchID string) ([]Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+employeeColumns+` FROM employees
		WHERE branch_id = ? AND active = 1
		ORDER BY name ASC`, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// DeactivateEmployee soft-deletes an employee. Leave history is kept.
func (s *Store) DeactivateEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `UPDATE employees SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

// =============================================================================
// LEAVES
// =============================================================================

// SaveLeave inserts a leave record. Records are immutable once stored;
// corrections are delete-then-recreate.
func (s *Store) SaveLeave(ctx context.Context, r leave.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leaves (id, employee_id, branch_id, start_date, end_date,
			hours, leave_type, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.EmployeeID, r.BranchID, r.StartDate, r.EndDate,
		r.Hours.String(), string(r.Type), r.Comment, now())
	if err != nil {
		return fmt.Errorf("failed to save leave: %w", err)
	}
	return nil
}

const leaveColumns = `id, employee_id, branch_id, start_date, end_date, hours, leave_type, comment`

func scanLeave(scan func(dest ...any) error) (leave.Record, error) {
	var r leave.Record
	var hours, leaveType string
	var comment sql.NullString
	err := scan(&r.ID, &r.EmployeeID, &r.BranchID, &r.StartDate, &r.EndDate,
		&hours, &leaveType, &comment)
	if err != nil {
		return leave.Record{}, err
	}
	r.Hours = scanDecimal(hours)
	r.Type = leave.NormalizeType(leaveType)
	r.Comment = comment.String
	return r, nil
}

// GetLeave returns a leave record by ID, or nil if not found.
func (s *Store) GetLeave(ctx context.Context, id string) (*leave.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT `+leaveColumns+` FROM leaves WHERE id = ?`, id)
	r, err := scanLeave(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leave: %w", err)
	}
	return &r, nil
}

func (s *Store) queryLeaves(ctx context.Context, query string, args ...any) ([]leave.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		r, err := scanLeave(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListLeaves returns a branch's leave records whose start date falls in
// [fromISO, toISO] inclusive, ordered by start date.
func (s *Store) ListLeaves(ctx context.Context, branchID, fromISO, toISO string) ([]leave.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryLeaves(ctx, `
		SELECT `+leaveColumns+` FROM leaves
		WHERE branch_id = ? AND start_date >= ? AND start_date <= ?
		ORDER BY start_date ASC`, branchID, fromISO, toISO)
}

// ListLeavesByEmployee returns one employee's leave records whose start
// date falls in [fromISO, toISO] inclusive.
func (s *Store) ListLeavesByEmployee(ctx context.Context, employeeID, fromISO, toISO string) ([]leave.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryLeaves(ctx, `
		SELECT `+leaveColumns+` FROM leaves
		WHERE employee_id = ? AND start_date >= ? AND start_date <= ?
		ORDER BY start_date ASC`, employeeID, fromISO, toISO)
}

// DeleteLeave removes a leave record by ID.
func (s *Store) DeleteLeave(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM leaves WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	return nil
}

// =============================================================================
// PUBLIC HOLIDAYS
// =============================================================================

// PublicHoliday is a global non-working day. Region defaults to "" (the
// single implicit region); at most one holiday exists per (date, region).
type PublicHoliday struct {
	ID        string
	Date      string
	Name      string
	Region    string
	CreatedAt string
}

// UpsertHoliday inserts a holiday, replacing the name if the (date,
// region) pair already exists.
func (s *Store) UpsertHoliday(ctx context.Context, h PublicHoliday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO public_holidays (id, date, name, region, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date, region) DO UPDATE SET name = excluded.name`,
		h.ID, h.Date, h.Name, h.Region, now())
	if err != nil {
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

// ListHolidays returns all holidays for a year and region ordered by
// date. Year matching uses the ISO date's 4-digit prefix.
func (s *Store) ListHolidays(ctx context.Context, year int, region string) ([]PublicHoliday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := fmt.Sprintf("%04d-", year)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, name, region, created_at FROM public_holidays
		WHERE date LIKE ? || '%' AND region = ?
		ORDER BY date ASC`, prefix, region)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []PublicHoliday
	for rows.Next() {
		var h PublicHoliday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Region, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// DeleteHoliday removes a holiday by ID.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM public_holidays WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// =============================================================================
// USERS
// =============================================================================

// User is a login account. Role is "admin" or "branch"; branch users
// carry the branch they log leave for.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	BranchID     string
	CreatedAt    string
}

// SaveUser inserts or updates a user.
func (s *Store) SaveUser(ctx context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, branch_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			password_hash = excluded.password_hash,
			role = excluded.role,
			branch_id = excluded.branch_id`,
		u.ID, u.Username, u.PasswordHash, u.Role, u.BranchID, now())
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// GetUserByUsername returns a user by username, or nil if not found.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var u User
	var branchID sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, branch_id, created_at
		FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &branchID, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.BranchID = branchID.String
	return &u, nil
}
