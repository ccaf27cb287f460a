package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"habitjournal/internal/journal"
	"habitjournal/internal/storage"
	"habitjournal/internal/week"
)

// Store keys of the two persisted schemas.
const (
	StateKey  = "habitJournalDataV5"
	LegacyKey = "habitJournalDataV4"
)

// Origin says where a loaded state came from.
type Origin int

const (
	OriginLoaded Origin = iota
	OriginMigrated
	OriginFresh
)

func (o Origin) String() string {
	switch o {
	case OriginLoaded:
		return "loaded"
	case OriginMigrated:
		return "migrated"
	case OriginFresh:
		return "fresh"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// LoadOrMigrate reads the current-schema blob, falling back to the legacy
// single-week blob and then to a fresh state. Malformed blobs are logged and
// treated as absent. A migrated or fresh state is saved before returning;
// none of the paths recompute the profile.
func LoadOrMigrate(ctx context.Context, store storage.Store, now time.Time, log zerolog.Logger) (*journal.AppState, Origin, error) {
	blob, ok, err := store.Load(ctx, StateKey)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", StateKey, err)
	}
	if ok {
		if st, valid := journal.DecodeState(blob); valid {
			journal.NormalizeState(st, now)
			log.Debug().Str("week", st.CurrentWeek.String()).Int("weeks", len(st.Weeks)).Msg("journal loaded")
			return st, OriginLoaded, nil
		}
		log.Warn().Str("key", StateKey).Int("bytes", len(blob)).Msg("ignoring malformed journal data")
	}

	current := week.KeyOf(now)
	st, origin, err := migrateLegacy(ctx, store, current, log)
	if err != nil {
		return nil, 0, err
	}
	if st == nil {
		st, origin = journal.NewAppState(current), OriginFresh
	}

	data, err := journal.EncodeState(st)
	if err != nil {
		return nil, 0, fmt.Errorf("encode journal: %w", err)
	}
	if err := store.Save(ctx, StateKey, data); err != nil {
		return nil, 0, fmt.Errorf("save %s: %w", StateKey, err)
	}
	log.Info().Str("origin", origin.String()).Str("week", current.String()).Msg("journal initialized")
	return st, origin, nil
}

func migrateLegacy(ctx context.Context, store storage.Store, current week.Key, log zerolog.Logger) (*journal.AppState, Origin, error) {
	blob, ok, err := store.Load(ctx, LegacyKey)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", LegacyKey, err)
	}
	if !ok {
		return nil, 0, nil
	}
	rec, valid := journal.DecodeLegacyRecord(blob)
	if !valid {
		log.Warn().Str("key", LegacyKey).Int("bytes", len(blob)).Msg("ignoring malformed legacy journal data")
		return nil, 0, nil
	}

	st := journal.NewAppState(current)
	rec = journal.Normalize(rec)
	st.Weeks[current] = &rec
	log.Info().Str("from", LegacyKey).Str("to", StateKey).Msg("migrating legacy journal")
	return st, OriginMigrated, nil
}
