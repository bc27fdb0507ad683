package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one live GoCube connection.
type Session struct {
	SessionID  string
	StartedAt  time.Time
	EndedAt    *time.Time
	DeviceName *string
	DeviceID   *string
	MoveCount  int
}

// MoveRecord is a move received during a session.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Notation  string
}

// SessionRepository provides CRUD operations for sessions and their moves.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create starts a new session and returns its ID.
func (r *SessionRepository) Create(deviceName, deviceID string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, device_name, device_id)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(timeFormat), nullable(deviceName), nullable(deviceID))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string) error {
	res, err := r.db.Exec(`
		UPDATE sessions SET ended_at = ? WHERE session_id = ?
	`, time.Now().UTC().Format(timeFormat), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	return nil
}

const sessionColumns = `session_id, started_at, ended_at, device_name, device_id,
	(SELECT COUNT(*) FROM session_moves m WHERE m.session_id = sessions.session_id)`

func scanSession(row scanner) (Session, error) {
	var (
		s         Session
		startedAt string
		endedAt   sql.NullString
	)
	if err := row.Scan(&s.SessionID, &startedAt, &endedAt, &s.DeviceName, &s.DeviceID, &s.MoveCount); err != nil {
		return Session{}, err
	}
	s.StartedAt, _ = time.Parse(timeFormat, startedAt)
	if endedAt.Valid {
		t, _ := time.Parse(timeFormat, endedAt.String)
		s.EndedAt = &t
	}
	return s, nil
}

// Resolve expands a session ID prefix to the full ID.
func (r *SessionRepository) Resolve(prefix string) (string, error) {
	return r.db.resolveID("sessions", "session_id", prefix)
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE session_id = ?
	`, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// List retrieves the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// AddMove appends a move to a session.
func (r *SessionRepository) AddMove(sessionID string, moveIndex int, ts time.Time, notation string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO session_moves (session_id, move_index, ts_ms, notation)
		VALUES (?, ?, ?, ?)
	`, sessionID, moveIndex, ts.UnixMilli(), notation)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}
	return id, nil
}

// AddMoves appends several moves in a single transaction, numbering them
// from startIndex.
func (r *SessionRepository) AddMoves(sessionID string, startIndex int, ts time.Time, notations []string) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, n := range notations {
			_, err := tx.Exec(`
				INSERT INTO session_moves (session_id, move_index, ts_ms, notation)
				VALUES (?, ?, ?, ?)
			`, sessionID, startIndex+i, ts.UnixMilli(), n)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// Moves retrieves the moves of a session in order.
func (r *SessionRepository) Moves(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, notation
		FROM session_moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	return moves, nil
}

// Delete deletes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	res, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	return nil
}
