package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MemoRecord is a stored memo of one scramble.
type MemoRecord struct {
	MemoID        string
	Size          int
	Scramble      string
	Seed          *uint64
	Text          string
	EdgeTargets   int
	CornerTargets int
	CreatedAt     time.Time
}

// MemoRepository provides CRUD operations for memos.
type MemoRepository struct {
	db *DB
}

// NewMemoRepository creates a new memo repository.
func NewMemoRepository(db *DB) *MemoRepository {
	return &MemoRepository{db: db}
}

// Create stores m and returns its new ID. MemoID and CreatedAt are
// assigned here.
func (r *MemoRepository) Create(m MemoRecord) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var seed sql.NullInt64
	if m.Seed != nil {
		seed = sql.NullInt64{Int64: int64(*m.Seed), Valid: true}
	}

	_, err := r.db.Exec(`
		INSERT INTO memos (memo_id, size, scramble, seed, memo_text, edge_targets, corner_targets, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, m.Size, m.Scramble, seed, m.Text, m.EdgeTargets, m.CornerTargets, createdAt.Format(timeFormat))

	if err != nil {
		return "", fmt.Errorf("failed to create memo: %w", err)
	}

	return id, nil
}

const memoColumns = `memo_id, size, scramble, seed, memo_text, edge_targets, corner_targets, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMemo(row scanner) (MemoRecord, error) {
	var (
		m         MemoRecord
		seed      sql.NullInt64
		createdAt string
	)
	err := row.Scan(&m.MemoID, &m.Size, &m.Scramble, &seed, &m.Text, &m.EdgeTargets, &m.CornerTargets, &createdAt)
	if err != nil {
		return MemoRecord{}, err
	}
	if seed.Valid {
		s := uint64(seed.Int64)
		m.Seed = &s
	}
	m.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return m, nil
}

// Resolve expands a memo ID prefix, as printed by List, to the full ID.
func (r *MemoRepository) Resolve(prefix string) (string, error) {
	return r.db.resolveID("memos", "memo_id", prefix)
}

// Get retrieves a memo by ID.
func (r *MemoRepository) Get(memoID string) (*MemoRecord, error) {
	m, err := scanMemo(r.db.QueryRow(`SELECT `+memoColumns+` FROM memos WHERE memo_id = ?`, memoID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: memo %s", ErrNotFound, memoID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get memo: %w", err)
	}
	return &m, nil
}

// List retrieves the most recent memos, newest first.
func (r *MemoRepository) List(limit int) ([]MemoRecord, error) {
	rows, err := r.db.Query(`
		SELECT `+memoColumns+`
		FROM memos
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}
	defer rows.Close()

	var memos []MemoRecord
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan memo: %w", err)
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}

	return memos, nil
}

// Count returns the number of stored memos.
func (r *MemoRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM memos").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count memos: %w", err)
	}
	return count, nil
}

// Delete removes a memo.
func (r *MemoRepository) Delete(memoID string) error {
	res, err := r.db.Exec("DELETE FROM memos WHERE memo_id = ?", memoID)
	if err != nil {
		return fmt.Errorf("failed to delete memo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: memo %s", ErrNotFound, memoID)
	}
	return nil
}

// TargetStats summarizes the stored memos of one cube size.
type TargetStats struct {
	Count       int
	MeanEdges   float64
	MeanCorners float64
	MaxEdges    int
	MaxCorners  int
}

// Stats aggregates the target counts of memos of the given size.
func (r *MemoRepository) Stats(size int) (TargetStats, error) {
	var s TargetStats
	var meanEdges, meanCorners sql.NullFloat64
	var maxEdges, maxCorners sql.NullInt64
	err := r.db.QueryRow(`
		SELECT COUNT(*), AVG(edge_targets), AVG(corner_targets), MAX(edge_targets), MAX(corner_targets)
		FROM memos
		WHERE size = ?
	`, size).Scan(&s.Count, &meanEdges, &meanCorners, &maxEdges, &maxCorners)
	if err != nil {
		return TargetStats{}, fmt.Errorf("failed to aggregate memos: %w", err)
	}
	s.MeanEdges, s.MeanCorners = meanEdges.Float64, meanCorners.Float64
	s.MaxEdges, s.MaxCorners = int(maxEdges.Int64), int(maxCorners.Int64)
	return s, nil
}
