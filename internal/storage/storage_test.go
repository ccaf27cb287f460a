package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testStoreContract(t *testing.T, s Store) {
	ctx := context.Background()

	_, ok, err := s.Load(ctx, "habitJournalDataV5")
	require.NoError(t, err)
	assert.False(t, ok, "empty store should report absent")

	require.NoError(t, s.Save(ctx, "habitJournalDataV5", []byte(`{"a":1}`)))
	require.NoError(t, s.Save(ctx, "habitJournalDataV5", []byte(`{"a":2}`)))
	require.NoError(t, s.Save(ctx, "habitJournalDataV4", []byte(`{"legacy":true}`)))

	got, ok, err := s.Load(ctx, "habitJournalDataV5")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"a":2}`, string(got), "last write wins")

	got, ok, err = s.Load(ctx, "habitJournalDataV4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"legacy":true}`, string(got))
}

func TestSQLiteStore(t *testing.T) {
	testStoreContract(t, newTestSQLiteStore(t))
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	testStoreContract(t, s)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"habitJournalDataV5.json", "habitJournalDataV4.json"}, names, "no temp files left behind")
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, s.Save(context.Background(), "../escape", []byte("{}")))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	testStoreContract(t, s)

	require.NoError(t, s.Close())
	_, _, err := s.Load(context.Background(), "habitJournalDataV5")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	blob := []byte("abc")
	require.NoError(t, s.Save(ctx, "k", blob))
	blob[0] = 'X'

	got, _, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestBlobRepoRevisions(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteStore(t).Blobs()

	rev, err := repo.Put(ctx, "k", []byte("one"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, rev)

	rev, err = repo.Put(ctx, "k", []byte("two"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, rev)

	b, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "two", string(b.Value))
	assert.False(t, b.UpdatedAt.IsZero())

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestMigrateIsRepeatable(t *testing.T) {
	s := newTestSQLiteStore(t)
	require.NoError(t, Migrate(context.Background(), s.db))
	require.NoError(t, Migrate(context.Background(), s.db))
}

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]Backend{"": BackendSQLite, "SQLite": BackendSQLite, "file": BackendFile, " memory ": BackendMemory} {
		got, err := ParseBackend(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseBackend("redis")
	assert.Error(t, err)
}

func TestResolveDBPath(t *testing.T) {
	t.Setenv(DataPathEnv, "")
	got, err := ResolveDBPath("/tmp/journal.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/journal.db", got)

	t.Setenv(DataPathEnv, "/override.db")
	got, err = ResolveDBPath("/tmp/journal.db")
	require.NoError(t, err)
	assert.Equal(t, "/override.db", got)

	t.Setenv(DataPathEnv, "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	got, err = ResolveDBPath("~/hj/data.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "hj", "data.db"), got)
}

func TestWatcherReportsAtomicWrites(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	changed := make(chan string, 4)
	w, err := NewWatcher(zerolog.Nop(), 20*time.Millisecond, func(path string) { changed <- path })
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	path := s.WatchPath("habitJournalDataV5")
	require.NoError(t, w.Add(path))
	require.NoError(t, s.Save(context.Background(), "habitJournalDataV5", []byte("{}")))

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		assert.Equal(t, want, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))
	select {
	case got := <-changed:
		t.Fatalf("unexpected notification for %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(zerolog.Nop(), 0, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NotPanics(t, func() { _ = w.Close() })
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Path())

	require.NoError(t, s.Save(ctx, "k", []byte(`{"v":1}`)))
	require.NoError(t, s.Save(ctx, "k", []byte(`{"v":2}`)))

	got, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"v":2}`, string(got))

	info, err := os.Stat(filepath.Join(dir, "k.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
