package handlers

import (
	"time"

	"costtrack/internal/core/throttle"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session keys. The login throttle counters and the display language
// live in the server-side session, so every browser session carries
// its own lockout window.
const (
	sessKeyLoginFailures = "login_failures"
	sessKeyWindowStart   = "login_window_start"
	sessKeyLanguage      = "language"
)

// loadThrottleState reads the failed-attempt counters from the session.
// A fresh session yields the zero state.
func loadThrottleState(sess *session.Session) throttle.State {
	state := throttle.State{}

	if v, ok := sess.Get(sessKeyLoginFailures).(int); ok {
		state.FailureCount = v
	}
	if v, ok := sess.Get(sessKeyWindowStart).(int64); ok && v != 0 {
		state.WindowStart = time.Unix(v, 0)
	}

	return state
}

// saveThrottleState writes the counters back. This must run on every
// login outcome, success and failure alike.
func saveThrottleState(sess *session.Session, state throttle.State) {
	sess.Set(sessKeyLoginFailures, state.FailureCount)
	if state.WindowStart.IsZero() {
		sess.Set(sessKeyWindowStart, int64(0))
	} else {
		sess.Set(sessKeyWindowStart, state.WindowStart.Unix())
	}
}

// sessionLanguage returns the session's display language, falling back
// to the given default when the session has none.
func sessionLanguage(sess *session.Session, fallback string) string {
	if v, ok := sess.Get(sessKeyLanguage).(string); ok && v != "" {
		return v
	}
	return fallback
}
