package storage

import (
	"context"
	"database/sql"
)

// SQLiteStore keeps blobs in a single SQLite table.
type SQLiteStore struct {
	db    *sql.DB
	blobs *BlobRepo
	path  string
}

func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, blobs: NewBlobRepo(db), path: path}, nil
}

func (s *SQLiteStore) Blobs() *BlobRepo { return s.blobs }
func (s *SQLiteStore) Path() string     { return s.path }

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.blobs.Get(ctx, key)
	if err != nil || b == nil {
		return nil, false, err
	}
	return b.Value, true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.blobs.Put(ctx, key, blob)
	return err
}

// WatchPath is the database file; every key lives in it.
func (s *SQLiteStore) WatchPath(string) string { return s.path }

func (s *SQLiteStore) Close() error { return s.db.Close() }
