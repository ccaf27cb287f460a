// Package pomodoro implements the focus timer: work, break, work...
package pomodoro

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultWork  = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

func (p Phase) String() string {
	if p == PhaseBreak {
		return "BREAK"
	}
	return "WORK"
}

// Event is what a tick completed, if anything.
type Event int

const (
	EventNone Event = iota
	EventWorkDone
	EventBreakDone
)

// Timer counts down the current phase while running and rolls over to the
// next phase on its own. It is not safe for concurrent use.
type Timer struct {
	work      time.Duration
	brk       time.Duration
	phase     Phase
	remaining time.Duration
	running   bool
}

// New returns a stopped timer at the start of a work phase. Non-positive
// durations fall back to the defaults.
func New(work, brk time.Duration) *Timer {
	if work <= 0 {
		work = DefaultWork
	}
	if brk <= 0 {
		brk = DefaultBreak
	}
	return &Timer{work: work, brk: brk, remaining: work}
}

func (t *Timer) Phase() Phase             { return t.phase }
func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) Running() bool            { return t.running }

func (t *Timer) Start() { t.running = true }
func (t *Timer) Pause() { t.running = false }

// Toggle starts a stopped timer or pauses a running one, returning the new
// running state.
func (t *Timer) Toggle() bool {
	t.running = !t.running
	return t.running
}

// Reset stops the timer and rewinds to a full work phase.
func (t *Timer) Reset() {
	t.running = false
	t.phase = PhaseWork
	t.remaining = t.work
}

// Tick advances a running timer by elapsed. When the phase runs out the
// timer switches phase, keeps running and reports which phase finished.
// Leftover time does not carry into the next phase.
func (t *Timer) Tick(elapsed time.Duration) Event {
	if !t.running || elapsed <= 0 {
		return EventNone
	}
	t.remaining -= elapsed
	if t.remaining > 0 {
		return EventNone
	}
	if t.phase == PhaseWork {
		t.phase, t.remaining = PhaseBreak, t.brk
		return EventWorkDone
	}
	t.phase, t.remaining = PhaseWork, t.work
	return EventBreakDone
}

// String renders the remaining time as MM:SS.
func (t *Timer) String() string {
	return Format(t.remaining)
}

// Format renders d as MM:SS, rounding partial seconds up.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Run starts the timer and ticks it every interval until ctx is done. fn is
// called after every tick with the event it produced.
func Run(ctx context.Context, t *Timer, interval time.Duration, fn func(Event)) error {
	if interval <= 0 {
		interval = time.Second
	}
	t.Start()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Pause()
			return ctx.Err()
		case <-ticker.C:
			ev := t.Tick(interval)
			if fn != nil {
				fn(ev)
			}
		}
	}
}
