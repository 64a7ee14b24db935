// Package throttle implements the failed-login rate limiter as a pure
// state machine. State is owned by the caller's session store; the
// package only computes transitions and never performs I/O, so the
// machine is testable with nothing but values and a clock.
package throttle

import "time"

const (
	// MaxFailures is the number of failed attempts that locks a session.
	MaxFailures = 5

	// Window is how long a locked session stays locked.
	Window = 5 * time.Minute
)

// State holds the per-session throttle counters. The zero value is the
// open, untouched state. A zero WindowStart means no failure has been
// recorded since the last reset.
type State struct {
	FailureCount int
	WindowStart  time.Time
}

// Locked reports whether the state is inside an active lockout window.
func (s State) Locked(now time.Time) bool {
	return s.FailureCount >= MaxFailures &&
		!s.WindowStart.IsZero() &&
		now.Sub(s.WindowStart) < Window
}

// ShouldAllowAttempt decides whether a login attempt may proceed to the
// credential check. It returns the state the caller must store back:
// a lockout whose window has elapsed is expired lazily, resetting the
// counters. Inside an active window the state comes back unchanged and
// the attempt is rejected before any credential check.
func ShouldAllowAttempt(s State, now time.Time) (State, bool) {
	if s.FailureCount < MaxFailures {
		return s, true
	}
	if s.Locked(now) {
		return s, false
	}
	// Window elapsed; the attempt proceeds with a clean slate.
	return State{}, true
}

// RecordFailure registers a failed credential check. WindowStart is
// stamped on every failure so it always marks the most recent one.
func RecordFailure(s State, now time.Time) State {
	s.FailureCount++
	s.WindowStart = now
	return s
}

// RecordSuccess clears the counters from any state, locked included.
func RecordSuccess(State) State {
	return State{}
}
