package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store persists one opaque blob per key.
type Store interface {
	// Load returns the blob saved under key. ok is false when nothing was saved.
	Load(ctx context.Context, key string) (blob []byte, ok bool, err error)
	Save(ctx context.Context, key string, blob []byte) error
	Close() error
}

// Watchable is implemented by stores backed by files on disk.
type Watchable interface {
	// WatchPath returns the file whose changes mean key may have changed.
	WatchPath(key string) string
}

var ErrClosed = errors.New("store is closed")

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.TrimSpace(strings.ToLower(s))); b {
	case BackendSQLite, BackendFile, BackendMemory:
		return b, nil
	case "":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown backend %q (want sqlite, file or memory)", s)
	}
}

// Open returns a Store for backend rooted at path. For the file backend path
// names a directory; for sqlite it names the database file.
func Open(ctx context.Context, backend Backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite, "":
		return OpenSQLiteStore(ctx, path)
	case BackendFile:
		return NewFileStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
