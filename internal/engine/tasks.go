package engine

import (
	"context"

	"habitjournal/internal/journal"
)

// Task operations act on the current week.

func (s *Service) AddTask(ctx context.Context, text string) (Result, error) {
	t, err := normalizeText("task text", text)
	if err != nil {
		return Result{}, err
	}
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		rec.AddTask(t)
		return nil
	})
}

func (s *Service) RemoveTask(ctx context.Context, i int) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.RemoveTask(i)
	})
}

func (s *Service) RenameTask(ctx context.Context, i int, text string) (Result, error) {
	t, err := normalizeText("task text", text)
	if err != nil {
		return Result{}, err
	}
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.RenameTask(i, t)
	})
}

func (s *Service) MoveTask(ctx context.Context, from, to int) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.MoveTask(from, to)
	})
}

// CycleDay advances task i on day to the next status and returns it.
func (s *Service) CycleDay(ctx context.Context, i, day int) (journal.DayStatus, Result, error) {
	var next journal.DayStatus
	res, err := s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		var err error
		next, err = rec.CycleDay(i, day)
		return err
	})
	return next, res, err
}

func (s *Service) SetDay(ctx context.Context, i, day int, status journal.DayStatus) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.SetDay(i, day, status)
	})
}

func (s *Service) ApplyTemplate(ctx context.Context, name string) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return journal.ApplyTemplate(rec, name)
	})
}
