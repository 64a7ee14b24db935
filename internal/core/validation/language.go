package validation

import (
	"errors"
	"strings"
)

// ErrInvalidLanguage rejects a language code outside the allow-list.
var ErrInvalidLanguage = errors.New("invalid language selection")

// DefaultAllowedLanguages is the stock allow-list for deployments that
// do not configure their own.
var DefaultAllowedLanguages = []string{"en", "tr"}

// ValidateLanguage checks a requested language code against an
// allow-list and returns the normalized (trimmed) code. A nil or empty
// allowed slice falls back to DefaultAllowedLanguages.
func ValidateLanguage(code string, allowed []string) (string, error) {
	if len(allowed) == 0 {
		allowed = DefaultAllowedLanguages
	}

	code = strings.TrimSpace(code)
	for _, lang := range allowed {
		if code == lang {
			return code, nil
		}
	}
	return "", ErrInvalidLanguage
}
