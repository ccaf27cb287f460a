package engine

import (
	"context"
	"strconv"
	"strings"

	"habitjournal/internal/journal"
)

func (s *Service) ToggleWater(ctx context.Context, day int) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		_, err := rec.ToggleWater(day)
		return err
	})
}

func (s *Service) SetWater(ctx context.Context, day int, on bool) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.SetWater(day, on)
	})
}

// SetSleepTimes records bed and wake times; hours are derived when both parse.
func (s *Service) SetSleepTimes(ctx context.Context, day int, wake string, wakeM journal.Meridiem, bed string, bedM journal.Meridiem) (journal.SleepEntry, Result, error) {
	if !wakeM.IsValid() {
		return journal.SleepEntry{}, Result{}, journal.ParseError{Kind: "meridiem", Input: string(wakeM)}
	}
	if !bedM.IsValid() {
		return journal.SleepEntry{}, Result{}, journal.ParseError{Kind: "meridiem", Input: string(bedM)}
	}
	var entry journal.SleepEntry
	res, err := s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		var err error
		entry, err = rec.SetSleepTimes(day, strings.TrimSpace(wake), wakeM, strings.TrimSpace(bed), bedM)
		return err
	})
	return entry, res, err
}

// SetSleepHours stores hours directly. Empty clears the night.
func (s *Service) SetSleepHours(ctx context.Context, day int, hours string) (Result, error) {
	h := strings.TrimSpace(hours)
	if h != "" {
		f, err := strconv.ParseFloat(h, 64)
		if err != nil || f < 0 || f > 24 {
			return Result{}, journal.ParseError{Kind: "sleep hours", Input: hours}
		}
	}
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.SetSleepHours(day, h)
	})
}

func (s *Service) SetFood(ctx context.Context, meal string, on bool) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.Trackers.Food.Set(meal, on)
	})
}

func (s *Service) SetMood(ctx context.Context, mood journal.Mood) (Result, error) {
	if mood != journal.MoodUnset && !mood.IsValid() {
		return Result{}, journal.ParseError{Kind: "mood", Input: string(mood)}
	}
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		rec.Trackers.Mood = mood
		return nil
	})
}

// SetWeather stores free text; empty unsets it.
func (s *Service) SetWeather(ctx context.Context, weather string) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		rec.Trackers.Weather = strings.TrimSpace(weather)
		return nil
	})
}

func (s *Service) SetUniqueEvent(ctx context.Context, event string) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		rec.Trackers.UniqueEvent = strings.TrimSpace(event)
		return nil
	})
}

func (s *Service) SetFitness(ctx context.Context, f journal.Fitness) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		rec.Trackers.Fitness = journal.Fitness{
			Type:     strings.TrimSpace(f.Type),
			Duration: strings.TrimSpace(f.Duration),
		}
		return nil
	})
}

func (s *Service) AddAppointment(ctx context.Context, at, event string) (Result, error) {
	ev, err := normalizeText("appointment", event)
	if err != nil {
		return Result{}, err
	}
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		rec.AddAppointment(strings.TrimSpace(at), ev)
		return nil
	})
}

func (s *Service) UpdateAppointment(ctx context.Context, i int, at, event string) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.UpdateAppointment(i, strings.TrimSpace(at), strings.TrimSpace(event))
	})
}

func (s *Service) RemoveAppointment(ctx context.Context, i int) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		return rec.RemoveAppointment(i)
	})
}

// SetWeekLabel sets the free-text "week of" heading.
func (s *Service) SetWeekLabel(ctx context.Context, label string) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		rec.WeekOf = strings.TrimSpace(label)
		return nil
	})
}

// CompleteFocusSession counts one finished focus work phase in the current week.
func (s *Service) CompleteFocusSession(ctx context.Context) (Result, error) {
	return s.mutateCurrent(ctx, func(rec *journal.WeekRecord) error {
		rec.Trackers.FocusSessions++
		return nil
	})
}
