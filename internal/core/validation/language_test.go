package validation

import (
	"errors"
	"testing"
)

func TestValidateLanguage(t *testing.T) {
	tests := []struct {
		code    string
		allowed []string
		want    string
		ok      bool
	}{
		{"en", nil, "en", true},
		{"tr", nil, "tr", true},
		{"  en  ", nil, "en", true},
		{"de", nil, "", false},
		{"", nil, "", false},
		{"EN", nil, "", false},
		{"de", []string{"de", "fr"}, "de", true},
		{"en", []string{"de", "fr"}, "", false},
	}

	for _, tt := range tests {
		got, err := ValidateLanguage(tt.code, tt.allowed)
		if tt.ok {
			if err != nil {
				t.Fatalf("code %q: unexpected error %v", tt.code, err)
			}
			if got != tt.want {
				t.Fatalf("code %q: got %q, want %q", tt.code, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidLanguage) {
			t.Fatalf("code %q: expected ErrInvalidLanguage, got %v", tt.code, err)
		}
	}
}
