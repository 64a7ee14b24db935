package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	spec := FieldSpec{Kind: KindText, Required: true}

	for _, raw := range []string{"", "   ", "\t\n"} {
		if _, err := Validate(raw, spec); !errors.Is(err, ErrRequired) {
			t.Fatalf("raw %q: expected ErrRequired, got %v", raw, err)
		}
	}
}

func TestValidateOptionalBlank(t *testing.T) {
	got, err := Validate("   ", FieldSpec{Kind: KindText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty normalized value, got %q", got)
	}
}

func TestValidateLength(t *testing.T) {
	spec := FieldSpec{Kind: KindText, MaxLength: 5}

	if _, err := Validate("abcdef", spec); err == nil {
		t.Fatal("expected length error, got nil")
	} else if !strings.Contains(err.Error(), "maximum 5") {
		t.Fatalf("unexpected message: %v", err)
	}

	// MaxLength zero falls back to the 255 default.
	long := strings.Repeat("a", 256)
	if _, err := Validate(long, FieldSpec{Kind: KindText}); err == nil {
		t.Fatal("expected default length error, got nil")
	}
	if _, err := Validate(strings.Repeat("a", 255), FieldSpec{Kind: KindText}); err != nil {
		t.Fatalf("255 chars should pass the default limit: %v", err)
	}
}

func TestValidateNumeric(t *testing.T) {
	spec := FieldSpec{Kind: KindNumeric, Required: true}

	tests := []struct {
		raw string
		ok  bool
	}{
		{"450.00", true},
		{"-5", true}, // sign checks belong to the form layer
		{"0", true},
		{"1e3", true},
		{"abc", false},
		{"12.3.4", false},
		{"NaN", false},
		{"Inf", false},
	}
	for _, tt := range tests {
		_, err := Validate(tt.raw, spec)
		if tt.ok && err != nil {
			t.Fatalf("raw %q: unexpected error %v", tt.raw, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidNumeric) {
			t.Fatalf("raw %q: expected ErrInvalidNumeric, got %v", tt.raw, err)
		}
	}
}

func TestValidateDate(t *testing.T) {
	spec := FieldSpec{Kind: KindDate, Required: true}

	valid := []string{"2024-01-10", "2024-02-29", "1999-12-31"}
	for _, raw := range valid {
		got, err := Validate(raw, spec)
		if err != nil {
			t.Fatalf("raw %q: unexpected error %v", raw, err)
		}
		if got != raw {
			t.Fatalf("raw %q: normalized to %q", raw, got)
		}
	}

	invalid := []string{"2023-02-30", "2024-13-01", "10-01-2024", "2024/01/10", "bad-date"}
	for _, raw := range invalid {
		if _, err := Validate(raw, spec); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("raw %q: expected ErrInvalidDate, got %v", raw, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	spec := FieldSpec{Kind: KindEmail, Required: true}

	if _, err := Validate("admin@example.com", spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, raw := range []string{"admin", "admin@", "@example.com", "admin@example", "a b@example.com"} {
		if _, err := Validate(raw, spec); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("raw %q: expected ErrInvalidEmail, got %v", raw, err)
		}
	}
}

func TestSanitizeStripsDangerousChars(t *testing.T) {
	got, err := Validate(`Hotel <b>"Grand"</b> & 'Spa'`, FieldSpec{Kind: KindText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.ContainsAny(got, `<>"'&`) {
		t.Fatalf("dangerous characters survived: %q", got)
	}
	if got != "Hotel bGrand/b  Spa" {
		t.Fatalf("unexpected normalized value: %q", got)
	}
}

// Stripping runs after the length check, so a value that fits the
// limit before stripping passes even though it comes out shorter.
func TestSanitizeRunsAfterLengthCheck(t *testing.T) {
	got, err := Validate("<<abc", FieldSpec{Kind: KindText, MaxLength: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}

	// One over the limit fails even though the post-strip value
	// would have fit.
	if _, err := Validate("<<<abc", FieldSpec{Kind: KindText, MaxLength: 5}); err == nil {
		t.Fatal("expected length error on pre-strip length, got nil")
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	first, err := Validate(`a<b>c"d`, FieldSpec{Kind: KindText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Validate(first, FieldSpec{Kind: KindText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("re-validation changed the value: %q -> %q", first, second)
	}
}

func TestValidateUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown kind")
		}
	}()
	Validate("x", FieldSpec{Kind: "uuid"})
}
