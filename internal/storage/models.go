package storage

import "time"

// Blob is one row of the blobs table.
type Blob struct {
	Key       string
	Value     []byte
	Revision  int64
	UpdatedAt time.Time
}
