package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Kind selects the type-specific check applied to a field value.
type Kind string

const (
	KindText    Kind = "text"
	KindNumeric Kind = "numeric"
	KindDate    Kind = "date"
	KindEmail   Kind = "email"
)

// DateLayout is the only accepted date format for form input
const DateLayout = "2006-01-02"

// DefaultMaxLength applies when a FieldSpec leaves MaxLength at zero
const DefaultMaxLength = 255

// Field validation errors
var (
	ErrRequired       = errors.New("required")
	ErrInvalidNumeric = errors.New("invalid numeric value")
	ErrInvalidDate    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidEmail   = errors.New("invalid email format")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// dangerousReplacer removes the characters that must never reach storage.
// They are stripped, not escaped.
var dangerousReplacer = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "")

// FieldSpec describes one input field. Instances are defined per form
// and never mutated.
type FieldSpec struct {
	Kind      Kind
	MaxLength int
	Required  bool
}

// Validate checks a single raw form value against spec and returns the
// normalized value. An absent value arrives as the empty string.
//
// Length and type checks run against the trimmed value BEFORE the
// dangerous characters are stripped, so a value can come out shorter
// than the length that was checked. That ordering is part of the
// contract; callers and tests rely on it.
//
// All input failures come back as errors. Validate only panics when
// handed a Kind it does not know, which is a programming error.
func Validate(raw string, spec FieldSpec) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		if spec.Required {
			return "", ErrRequired
		}
		return "", nil
	}

	max := spec.MaxLength
	if max == 0 {
		max = DefaultMaxLength
	}
	if utf8.RuneCountInString(trimmed) > max {
		return "", fmt.Errorf("input too long, maximum %d characters allowed", max)
	}

	switch spec.Kind {
	case KindText:
		// no structural check
	case KindNumeric:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return "", ErrInvalidNumeric
		}
	case KindDate:
		if _, err := time.Parse(DateLayout, trimmed); err != nil {
			return "", ErrInvalidDate
		}
	case KindEmail:
		if !emailPattern.MatchString(trimmed) {
			return "", ErrInvalidEmail
		}
	default:
		panic(fmt.Sprintf("validation: unknown field kind %q", spec.Kind))
	}

	return Sanitize(trimmed), nil
}

// Sanitize strips every occurrence of < > " ' & from s.
func Sanitize(s string) string {
	return dangerousReplacer.Replace(s)
}
