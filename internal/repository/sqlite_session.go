package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jornada/internal/db"
	"github.com/alexanderramin/jornada/internal/domain"
)

const sessionColumns = `id, date, start_time, breakfast_start, breakfast_end,
	snack_start, snack_end, end_time, status,
	total_work_minutes, total_break_minutes, actual_work_minutes`

// SQLiteSessionRepo implements SessionRepo over a SQLite database. It takes
// a db.DBTX so the same implementation serves both plain and transactional
// access.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `INSERT INTO work_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Date,
		s.StartTime.Format(time.RFC3339),
		nullableTimeToString(s.BreakfastStart, time.RFC3339),
		nullableTimeToString(s.BreakfastEnd, time.RFC3339),
		nullableTimeToString(s.SnackStart, time.RFC3339),
		nullableTimeToString(s.SnackEnd, time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		string(s.Status),
		nullableIntToValue(s.TotalWorkMinutes),
		nullableIntToValue(s.TotalBreakMinutes),
		nullableIntToValue(s.ActualWorkMinutes),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("a session is already open: %w", domain.ErrConflict)
		}
		return fmt.Errorf("inserting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.WorkSession) error {
	query := `UPDATE work_sessions SET
		breakfast_start = ?, breakfast_end = ?,
		snack_start = ?, snack_end = ?,
		end_time = ?, status = ?,
		total_work_minutes = ?, total_break_minutes = ?, actual_work_minutes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(s.BreakfastStart, time.RFC3339),
		nullableTimeToString(s.BreakfastEnd, time.RFC3339),
		nullableTimeToString(s.SnackStart, time.RFC3339),
		nullableTimeToString(s.SnackEnd, time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		string(s.Status),
		nullableIntToValue(s.TotalWorkMinutes),
		nullableIntToValue(s.TotalBreakMinutes),
		nullableIntToValue(s.ActualWorkMinutes),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("work session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) GetForDate(ctx context.Context, date string) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE date = ? ORDER BY start_time DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, date)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) GetOpen(ctx context.Context) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE end_time IS NULL LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		ORDER BY date DESC, start_time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC, start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("listing work sessions by date range: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) DeleteOlderThan(ctx context.Context, cutoffDate string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_sessions WHERE date <= ?`, cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("deleting old work sessions: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted work sessions: %w", err)
	}
	return deleted, nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkSession, error) {
	var s domain.WorkSession
	var startTimeStr, status string
	var breakfastStart, breakfastEnd, snackStart, snackEnd, endTime sql.NullString
	var totalWork, totalBreak, actualWork sql.NullInt64

	err := row.Scan(
		&s.ID, &s.Date, &startTimeStr,
		&breakfastStart, &breakfastEnd, &snackStart, &snackEnd, &endTime,
		&status, &totalWork, &totalBreak, &actualWork,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}

	return r.populateSession(&s, startTimeStr, status,
		breakfastStart, breakfastEnd, snackStart, snackEnd, endTime,
		totalWork, totalBreak, actualWork)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.WorkSession, error) {
	var sessions []*domain.WorkSession
	for rows.Next() {
		var s domain.WorkSession
		var startTimeStr, status string
		var breakfastStart, breakfastEnd, snackStart, snackEnd, endTime sql.NullString
		var totalWork, totalBreak, actualWork sql.NullInt64

		err := rows.Scan(
			&s.ID, &s.Date, &startTimeStr,
			&breakfastStart, &breakfastEnd, &snackStart, &snackEnd, &endTime,
			&status, &totalWork, &totalBreak, &actualWork,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning work session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, startTimeStr, status,
			breakfastStart, breakfastEnd, snackStart, snackEnd, endTime,
			totalWork, totalBreak, actualWork)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a WorkSession after scanning raw values.
func (r *SQLiteSessionRepo) populateSession(
	s *domain.WorkSession, startTimeStr, status string,
	breakfastStart, breakfastEnd, snackStart, snackEnd, endTime sql.NullString,
	totalWork, totalBreak, actualWork sql.NullInt64,
) (*domain.WorkSession, error) {
	var parseErr error
	s.StartTime, parseErr = time.Parse(time.RFC3339, startTimeStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}

	s.BreakfastStart = parseNullableTime(breakfastStart, time.RFC3339)
	s.BreakfastEnd = parseNullableTime(breakfastEnd, time.RFC3339)
	s.SnackStart = parseNullableTime(snackStart, time.RFC3339)
	s.SnackEnd = parseNullableTime(snackEnd, time.RFC3339)
	s.EndTime = parseNullableTime(endTime, time.RFC3339)

	s.Status = domain.SessionStatus(status)
	s.TotalWorkMinutes = intFromNullable(totalWork)
	s.TotalBreakMinutes = intFromNullable(totalBreak)
	s.ActualWorkMinutes = intFromNullable(actualWork)

	return s, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
