package drivesize

import "time"

// Timer tracks the total run time and the time of the current step.
type Timer struct {
	now       func() time.Time
	start     time.Time
	stepStart time.Time
}

// NewTimer starts a timer on the wall clock.
func NewTimer() *Timer {
	return NewTimerWithClock(time.Now)
}

// NewTimerWithClock starts a timer that reads time from now.
func NewTimerWithClock(now func() time.Time) *Timer {
	start := now()

	return &Timer{
		now:       now,
		start:     start,
		stepStart: start,
	}
}

// Elapsed returns the time since the timer was started.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// ElapsedStep returns the time since the last ResetStep.
func (t *Timer) ElapsedStep() time.Duration {
	return t.now().Sub(t.stepStart)
}

// ResetStep starts a new step at the current time.
func (t *Timer) ResetStep() {
	t.stepStart = t.now()
}

// seconds renders d in seconds rounded to 4 decimal places.
func seconds(d time.Duration) string {
	return FormatFloat(Round4(d.Seconds()))
}
