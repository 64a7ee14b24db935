package throttle

import (
	"testing"
	"time"
)

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestOpenStateAllowsAttempts(t *testing.T) {
	var s State

	next, ok := ShouldAllowAttempt(s, base)
	if !ok {
		t.Fatal("fresh state must allow attempts")
	}
	if next != s {
		t.Fatalf("state changed on an open-state read: %+v", next)
	}
}

func TestFiveFailuresLock(t *testing.T) {
	var s State
	for i := 0; i < MaxFailures; i++ {
		if _, ok := ShouldAllowAttempt(s, base); !ok {
			t.Fatalf("attempt %d rejected while still open", i+1)
		}
		s = RecordFailure(s, base)
	}

	if s.FailureCount != MaxFailures {
		t.Fatalf("failure count = %d", s.FailureCount)
	}
	if !s.Locked(base) {
		t.Fatal("state should be locked after five failures")
	}

	// A rejected attempt inside the window changes nothing.
	next, ok := ShouldAllowAttempt(s, base.Add(time.Minute))
	if ok {
		t.Fatal("attempt allowed inside the lockout window")
	}
	if next.FailureCount != MaxFailures {
		t.Fatalf("rejected attempt mutated the counter: %d", next.FailureCount)
	}
}

func TestFourFailuresStayOpen(t *testing.T) {
	var s State
	for i := 0; i < MaxFailures-1; i++ {
		s = RecordFailure(s, base)
	}
	if s.Locked(base) {
		t.Fatal("locked before reaching the threshold")
	}
	if _, ok := ShouldAllowAttempt(s, base); !ok {
		t.Fatal("attempt rejected below the threshold")
	}
}

func TestLockoutExpiresLazily(t *testing.T) {
	var s State
	for i := 0; i < MaxFailures; i++ {
		s = RecordFailure(s, base)
	}

	// One second short of the window: still locked.
	if _, ok := ShouldAllowAttempt(s, base.Add(Window-time.Second)); ok {
		t.Fatal("attempt allowed before the window elapsed")
	}

	// At the window boundary the attempt proceeds and the state resets.
	next, ok := ShouldAllowAttempt(s, base.Add(Window))
	if !ok {
		t.Fatal("attempt rejected after the window elapsed")
	}
	if next.FailureCount != 0 || !next.WindowStart.IsZero() {
		t.Fatalf("state not reset after expiry: %+v", next)
	}
}

func TestWindowStartTracksMostRecentFailure(t *testing.T) {
	var s State
	for i := 0; i < MaxFailures; i++ {
		s = RecordFailure(s, base.Add(time.Duration(i)*time.Minute))
	}
	want := base.Add(time.Duration(MaxFailures-1) * time.Minute)
	if !s.WindowStart.Equal(want) {
		t.Fatalf("window start = %v, want %v", s.WindowStart, want)
	}
}

func TestRecordSuccessResetsFromAnyState(t *testing.T) {
	var s State
	for i := 0; i < MaxFailures+2; i++ {
		s = RecordFailure(s, base)
	}

	s = RecordSuccess(s)
	if s.FailureCount != 0 || !s.WindowStart.IsZero() {
		t.Fatalf("state not reset: %+v", s)
	}
	if _, ok := ShouldAllowAttempt(s, base); !ok {
		t.Fatal("reset state must allow attempts")
	}
}
