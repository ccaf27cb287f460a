package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type BlobRepo struct {
	db *sql.DB
}

func NewBlobRepo(db *sql.DB) *BlobRepo {
	return &BlobRepo{db: db}
}

// Get returns nil, nil when key has never been saved.
func (r *BlobRepo) Get(ctx context.Context, key string) (*Blob, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, revision, updated_at FROM blobs WHERE key = ?`, key)

	var (
		b       Blob
		updated sql.NullTime
	)
	if err := row.Scan(&b.Key, &b.Value, &b.Revision, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("blob get: %w", err)
	}
	if updated.Valid {
		b.UpdatedAt = updated.Time
	}
	return &b, nil
}

// Put upserts value under key and bumps its revision.
func (r *BlobRepo) Put(ctx context.Context, key string, value []byte) (revision int64, err error) {
	now := time.Now().UTC()
	err = WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO blobs (key, value, revision, updated_at)
			VALUES (?, ?, 1, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				revision = blobs.revision + 1,
				updated_at = excluded.updated_at
		`, key, value, now)
		if err != nil {
			return fmt.Errorf("blob put: %w", err)
		}
		if err := tx.QueryRowContext(ctx, `SELECT revision FROM blobs WHERE key = ?`, key).Scan(&revision); err != nil {
			return fmt.Errorf("blob revision: %w", err)
		}
		return nil
	})
	return revision, err
}

// Keys lists every saved key in order.
func (r *BlobRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM blobs ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("blob keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("blob keys scan: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
