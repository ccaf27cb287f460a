package pomodoro

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTimerCycle(t *testing.T) {
	tm := New(3*time.Second, 2*time.Second)
	if tm.Tick(time.Second) != EventNone || tm.Remaining() != 3*time.Second {
		t.Fatal("stopped timer should not advance")
	}

	tm.Toggle()
	var events []Event
	for i := 0; i < 5; i++ {
		if ev := tm.Tick(time.Second); ev != EventNone {
			events = append(events, ev)
		}
	}
	want := []Event{EventWorkDone, EventBreakDone}
	if len(events) != len(want) || events[0] != want[0] || events[1] != want[1] {
		t.Fatalf("events = %v, want %v", events, want)
	}
	if tm.Phase() != PhaseWork || tm.Remaining() != 3*time.Second || !tm.Running() {
		t.Fatalf("phase=%v remaining=%v running=%v", tm.Phase(), tm.Remaining(), tm.Running())
	}
}

func TestTimerToggleAndReset(t *testing.T) {
	tm := New(0, 0)
	if tm.Remaining() != DefaultWork {
		t.Fatalf("default work = %v", tm.Remaining())
	}
	if !tm.Toggle() {
		t.Fatal("Toggle should start the timer")
	}
	tm.Tick(DefaultWork)
	if tm.Phase() != PhaseBreak || tm.Remaining() != DefaultBreak {
		t.Fatalf("phase=%v remaining=%v", tm.Phase(), tm.Remaining())
	}
	if tm.Toggle() {
		t.Fatal("Toggle should pause the timer")
	}
	tm.Reset()
	if tm.Phase() != PhaseWork || tm.Remaining() != DefaultWork || tm.Running() {
		t.Fatalf("after reset: phase=%v remaining=%v running=%v", tm.Phase(), tm.Remaining(), tm.Running())
	}
}

func TestFormat(t *testing.T) {
	tests := map[time.Duration]string{
		25 * time.Minute:                 "25:00",
		4*time.Minute + 5*time.Second:    "04:05",
		1500 * time.Millisecond:          "00:02",
		0:                                "00:00",
		-time.Second:                     "00:00",
		100*time.Minute + 59*time.Second: "100:59",
	}
	for d, want := range tests {
		if got := Format(d); got != want {
			t.Errorf("Format(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	tm := New(30*time.Millisecond, time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	workDone := 0
	err := Run(ctx, tm, 10*time.Millisecond, func(ev Event) {
		if ev == EventWorkDone {
			workDone++
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v", err)
	}
	if workDone != 1 {
		t.Fatalf("workDone = %d, want 1", workDone)
	}
	if tm.Running() || tm.Phase() != PhaseBreak {
		t.Fatalf("running=%v phase=%v", tm.Running(), tm.Phase())
	}
}
