package journal

import (
	"errors"
	"fmt"
)

var (
	ErrTaskIndex        = errors.New("task index out of range")
	ErrAppointmentIndex = errors.New("appointment index out of range")
)

// The WeekRecord mutators assume r has been through Normalize.

func (r *WeekRecord) task(i int) (*Task, error) {
	if i < 0 || i >= len(r.Tasks) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrTaskIndex, i, len(r.Tasks))
	}
	return &r.Tasks[i], nil
}

// AddTask appends a blank-day task and returns its index.
func (r *WeekRecord) AddTask(text string) int {
	r.Tasks = append(r.Tasks, NewTask(text))
	return len(r.Tasks) - 1
}

func (r *WeekRecord) RemoveTask(i int) error {
	if _, err := r.task(i); err != nil {
		return err
	}
	r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
	return nil
}

func (r *WeekRecord) RenameTask(i int, text string) error {
	t, err := r.task(i)
	if err != nil {
		return err
	}
	t.Text = text
	return nil
}

// MoveTask removes the task at from and reinserts it at to.
func (r *WeekRecord) MoveTask(from, to int) error {
	if _, err := r.task(from); err != nil {
		return err
	}
	if _, err := r.task(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	moved := r.Tasks[from]
	r.Tasks = append(r.Tasks[:from], r.Tasks[from+1:]...)
	r.Tasks = append(r.Tasks[:to], append([]Task{moved}, r.Tasks[to:]...)...)
	return nil
}

// CycleDay advances one task day through none → check → cross → n/a → none.
func (r *WeekRecord) CycleDay(i, day int) (DayStatus, error) {
	t, err := r.task(i)
	if err != nil {
		return StatusNone, err
	}
	if err := checkDay(day); err != nil {
		return StatusNone, err
	}
	t.Days[day] = t.Days[day].Next()
	return t.Days[day], nil
}

func (r *WeekRecord) SetDay(i, day int, status DayStatus) error {
	t, err := r.task(i)
	if err != nil {
		return err
	}
	if err := checkDay(day); err != nil {
		return err
	}
	if !status.IsValid() {
		return ParseError{Kind: "day status", Input: string(status)}
	}
	t.Days[day] = status
	return nil
}

// CheckCount returns how many task days are checked.
func (r *WeekRecord) CheckCount() int {
	n := 0
	for _, t := range r.Tasks {
		for _, s := range t.Days {
			if s == StatusCheck {
				n++
			}
		}
	}
	return n
}

func (r *WeekRecord) ToggleWater(day int) (bool, error) {
	if err := checkDay(day); err != nil {
		return false, err
	}
	r.Trackers.Water[day] = !r.Trackers.Water[day]
	return r.Trackers.Water[day], nil
}

func (r *WeekRecord) SetWater(day int, on bool) error {
	if err := checkDay(day); err != nil {
		return err
	}
	r.Trackers.Water[day] = on
	return nil
}

// SetSleepTimes stores wake/bed times for a day and re-derives the hours
// when both times parse.
func (r *WeekRecord) SetSleepTimes(day int, wake string, wakeM Meridiem, bed string, bedM Meridiem) (SleepEntry, error) {
	if err := checkDay(day); err != nil {
		return SleepEntry{}, err
	}
	e := &r.Trackers.Sleep[day]
	e.Wake, e.WakeMeridiem = wake, wakeM
	e.Bed, e.BedMeridiem = bed, bedM
	e.Recalculate()
	return *e, nil
}

func (r *WeekRecord) SetSleepHours(day int, hours string) error {
	if err := checkDay(day); err != nil {
		return err
	}
	r.Trackers.Sleep[day].Hours = hours
	return nil
}

func (r *WeekRecord) AddAppointment(at, event string) int {
	r.Trackers.Appointments = append(r.Trackers.Appointments, Appointment{Time: at, Event: event})
	return len(r.Trackers.Appointments) - 1
}

func (r *WeekRecord) UpdateAppointment(i int, at, event string) error {
	if i < 0 || i >= len(r.Trackers.Appointments) {
		return fmt.Errorf("%w: %d", ErrAppointmentIndex, i)
	}
	r.Trackers.Appointments[i] = Appointment{Time: at, Event: event}
	return nil
}

func (r *WeekRecord) RemoveAppointment(i int) error {
	if i < 0 || i >= len(r.Trackers.Appointments) {
		return fmt.Errorf("%w: %d", ErrAppointmentIndex, i)
	}
	a := r.Trackers.Appointments
	r.Trackers.Appointments = append(a[:i], a[i+1:]...)
	return nil
}
