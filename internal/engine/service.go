package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"habitjournal/internal/journal"
	"habitjournal/internal/storage"
	"habitjournal/internal/week"
)

var ErrNotLoaded = errors.New("journal not loaded")

// Notifier receives gamification events produced by a mutation.
type Notifier interface {
	LevelUp(from, to int)
	ThemeUnlocked(name string)
}

type Options struct {
	Engine   Engine
	Logger   zerolog.Logger
	Notifier Notifier
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service owns the AppState. It is not safe for concurrent use.
type Service struct {
	store    storage.Store
	engine   Engine
	log      zerolog.Logger
	notifier Notifier
	now      func() time.Time

	state  *journal.AppState
	origin Origin
}

func NewService(store storage.Store, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:    store,
		engine:   opts.Engine,
		log:      opts.Logger,
		notifier: opts.Notifier,
		now:      now,
	}
}

// Open creates a Service and loads (or migrates) its state.
func Open(ctx context.Context, store storage.Store, opts Options) (*Service, error) {
	s := NewService(store, opts)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) Load(ctx context.Context) error {
	st, origin, err := LoadOrMigrate(ctx, s.store, s.now(), s.log)
	if err != nil {
		return err
	}
	s.state, s.origin = st, origin
	return nil
}

// Reload discards the in-memory state and reads the store again.
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *Service) Store() storage.Store { return s.store }
func (s *Service) Engine() Engine       { return s.engine }
func (s *Service) Origin() Origin       { return s.origin }

// State exposes the owned state for read-only use.
func (s *Service) State() *journal.AppState { return s.state }

func (s *Service) Profile() journal.Profile {
	if s.state == nil {
		return journal.DefaultProfile()
	}
	return s.state.Profile
}

func (s *Service) CurrentWeek() week.Key {
	if s.state == nil {
		return week.KeyOf(s.now())
	}
	return s.state.CurrentWeek
}

// Record returns a normalized copy of the record at key, creating an empty
// record in the state on first access.
func (s *Service) Record(key week.Key) (journal.WeekRecord, error) {
	if s.state == nil {
		return journal.WeekRecord{}, ErrNotLoaded
	}
	return journal.Normalize(*s.state.Record(key)), nil
}

// Current is Record(CurrentWeek()).
func (s *Service) Current() (journal.WeekRecord, error) {
	return s.Record(s.CurrentWeek())
}

func (s *Service) Achievements() []Achievement {
	if s.state == nil {
		return nil
	}
	return NewAchievementChecker(s.state).GetAchievements()
}

// Mutate applies fn to the record at key, then recomputes and persists.
// When fn fails the record is left untouched.
func (s *Service) Mutate(ctx context.Context, key week.Key, fn func(rec *journal.WeekRecord) error) (Result, error) {
	if s.state == nil {
		return Result{}, ErrNotLoaded
	}
	rec := s.state.Record(key)
	work := journal.Normalize(*rec)
	if err := fn(&work); err != nil {
		return Result{}, err
	}
	*rec = journal.Normalize(work)
	return s.commit(ctx)
}

// mutateCurrent is Mutate on the current week.
func (s *Service) mutateCurrent(ctx context.Context, fn func(rec *journal.WeekRecord) error) (Result, error) {
	return s.Mutate(ctx, s.CurrentWeek(), fn)
}

// Navigate moves the current week by delta weeks.
func (s *Service) Navigate(ctx context.Context, delta int) (Result, error) {
	return s.GoTo(ctx, week.Shift(s.CurrentWeek(), delta))
}

// Today moves the current week to the week containing now.
func (s *Service) Today(ctx context.Context) (Result, error) {
	return s.GoTo(ctx, week.KeyOf(s.now()))
}

// GoTo makes key the current week. Keys that are not Mondays are normalized.
func (s *Service) GoTo(ctx context.Context, key week.Key) (Result, error) {
	if s.state == nil {
		return Result{}, ErrNotLoaded
	}
	t, ok := key.Time()
	if !ok {
		return Result{}, journal.ParseError{Kind: "week", Input: string(key)}
	}
	canonical := week.KeyOf(t)
	if !key.Valid() {
		s.log.Debug().Str("input", string(key)).Str("week", canonical.String()).Msg("moved to the week's monday")
	}
	s.state.CurrentWeek = canonical
	s.state.Current()
	return s.commit(ctx)
}

func (s *Service) commit(ctx context.Context) (Result, error) {
	res := s.engine.Recompute(s.state)
	if res.LevelUp {
		s.log.Info().Int("from", res.LevelBefore).Int("to", res.LevelAfter).Msg("level up")
		if s.notifier != nil {
			s.notifier.LevelUp(res.LevelBefore, res.LevelAfter)
		}
	}
	for _, theme := range res.NewThemes {
		s.log.Info().Str("theme", theme).Msg("theme unlocked")
		if s.notifier != nil {
			s.notifier.ThemeUnlocked(theme)
		}
	}
	if err := s.save(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func (s *Service) save(ctx context.Context) error {
	data, err := journal.EncodeState(s.state)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}
	if err := s.store.Save(ctx, StateKey, data); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	s.log.Debug().Str("week", s.state.CurrentWeek.String()).Int("bytes", len(data)).Msg("journal saved")
	return nil
}

func normalizeText(kind, text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", fmt.Errorf("%s is required", kind)
	}
	return t, nil
}
