package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion, v)
	require.NoError(t, db.Close())

	// Reopening applies nothing twice.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&rows))
	assert.Equal(t, len(migrations), rows)
}

func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	n, err := NewMemoRepository(db).Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoRepository(t *testing.T) {
	repo := NewMemoRepository(openTestDB(t))

	seed := uint64(7)
	id, err := repo.Create(MemoRecord{
		Size:          3,
		Scramble:      "R U R' U'",
		Seed:          &seed,
		Text:          "Edges: BA\nCorners: ",
		EdgeTargets:   2,
		CornerTargets: 0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.MemoID)
	assert.Equal(t, 3, got.Size)
	assert.Equal(t, "R U R' U'", got.Scramble)
	require.NotNil(t, got.Seed)
	assert.Equal(t, seed, *got.Seed)
	assert.Equal(t, "Edges: BA\nCorners: ", got.Text)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)

	_, err = repo.Create(MemoRecord{Size: 4, Scramble: "Rw", EdgeTargets: 6, CornerTargets: 4})
	require.NoError(t, err)
	_, err = repo.Create(MemoRecord{Size: 3, Scramble: "F", EdgeTargets: 4, CornerTargets: 5})
	require.NoError(t, err)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "F", list[0].Scramble)
	assert.Nil(t, list[0].Seed)

	stats, err := repo.Stats(3)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 3.0, stats.MeanEdges, 1e-9)
	assert.InDelta(t, 2.5, stats.MeanCorners, 1e-9)
	assert.Equal(t, 4, stats.MaxEdges)
	assert.Equal(t, 5, stats.MaxCorners)

	empty, err := repo.Stats(9)
	require.NoError(t, err)
	assert.Zero(t, empty.Count)

	require.NoError(t, repo.Delete(id))
	_, err = repo.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(id), ErrNotFound)
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	id, err := repo.Create("GoCube_1234", "")
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.DeviceName)
	assert.Equal(t, "GoCube_1234", *s.DeviceName)
	assert.Nil(t, s.DeviceID)
	assert.Nil(t, s.EndedAt)

	now := time.Now()
	_, err = repo.AddMove(id, 0, now, "R")
	require.NoError(t, err)
	require.NoError(t, repo.AddMoves(id, 1, now, []string{"U", "R'", "U'"}))

	// Indices are unique per session.
	_, err = repo.AddMove(id, 2, now, "F")
	assert.Error(t, err)

	moves, err := repo.Moves(id)
	require.NoError(t, err)
	require.Len(t, moves, 4)
	for i, want := range []string{"R", "U", "R'", "U'"} {
		assert.Equal(t, i, moves[i].MoveIndex)
		assert.Equal(t, want, moves[i].Notation)
	}

	require.NoError(t, repo.End(id))
	s, err = repo.Get(id)
	require.NoError(t, err)
	assert.NotNil(t, s.EndedAt)
	assert.Equal(t, 4, s.MoveCount)

	other, err := repo.Create("", "")
	require.NoError(t, err)
	sessions, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, other, sessions[0].SessionID)
	assert.Zero(t, sessions[0].MoveCount)
	assert.Equal(t, 4, sessions[1].MoveCount)

	full, err := repo.Resolve(id[:8])
	require.NoError(t, err)
	assert.Equal(t, id, full)
	_, err = repo.Resolve("")
	assert.ErrorIs(t, err, ErrAmbiguous)
	_, err = repo.Resolve("%")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(id))
	_, err = repo.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
	moves, err = repo.Moves(id)
	require.NoError(t, err)
	assert.Empty(t, moves)

	assert.ErrorIs(t, repo.Delete(id), ErrNotFound)
	assert.ErrorIs(t, repo.End("missing"), ErrNotFound)
}
