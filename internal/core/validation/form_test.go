package validation

import (
	"strings"
	"testing"
	"time"
)

func TestValidateCostSuccess(t *testing.T) {
	draft, res := ValidateCost(map[string]string{
		"name":   "Hotel",
		"amount": "450.00",
		"date":   "2024-01-10",
	})

	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if draft == nil {
		t.Fatal("expected draft on success")
	}
	if draft.Name != "Hotel" {
		t.Fatalf("name = %q", draft.Name)
	}
	if draft.Amount != 450.00 {
		t.Fatalf("amount = %v", draft.Amount)
	}
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !draft.Date.Equal(want) {
		t.Fatalf("date = %v", draft.Date)
	}
	if draft.Description != "" || draft.Category != "" {
		t.Fatalf("optional fields should default empty: %q %q", draft.Description, draft.Category)
	}
}

func TestValidateCostAccumulatesErrors(t *testing.T) {
	draft, res := ValidateCost(map[string]string{
		"name":   "",
		"amount": "-5",
		"date":   "bad-date",
	})

	if draft != nil {
		t.Fatal("expected no draft on failure")
	}
	if len(res.Errors) != 3 {
		t.Fatalf("expected exactly 3 errors, got %d: %v", len(res.Errors), res.Errors)
	}
	if res.Errors[0] != "Name: required" {
		t.Fatalf("errors[0] = %q", res.Errors[0])
	}
	if res.Errors[1] != MsgAmountNotPositive {
		t.Fatalf("errors[1] = %q", res.Errors[1])
	}
	if !strings.Contains(res.Errors[2], "Date: invalid date format") {
		t.Fatalf("errors[2] = %q", res.Errors[2])
	}
}

func TestValidateCostInvalidAmountSkipsSignCheck(t *testing.T) {
	_, res := ValidateCost(map[string]string{
		"name":   "Taxi",
		"amount": "abc",
		"date":   "2024-01-10",
	})

	if len(res.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "Amount: invalid numeric value") {
		t.Fatalf("errors[0] = %q", res.Errors[0])
	}
}

// Every attempted field lands in Fields even when the form fails, so
// the caller can redisplay the submitted values.
func TestValidateCostFieldsPopulatedOnError(t *testing.T) {
	_, res := ValidateCost(map[string]string{
		"name":        "<Hotel>",
		"amount":      "oops",
		"date":        "2024-01-10",
		"description": "two nights",
	})

	for _, key := range []string{"name", "amount", "date", "description", "category"} {
		if _, ok := res.Fields[key]; !ok {
			t.Fatalf("field %q missing from result", key)
		}
	}
	if res.Fields["name"] != "Hotel" {
		t.Fatalf("name field = %q", res.Fields["name"])
	}
	// The failed field keeps its sanitized raw value.
	if res.Fields["amount"] != "oops" {
		t.Fatalf("amount field = %q", res.Fields["amount"])
	}
}

func TestValidateTourSuccess(t *testing.T) {
	draft, res := ValidateTour(map[string]string{
		"name":        "Cappadocia",
		"start_date":  "2024-05-10",
		"end_date":    "2024-05-15",
		"total_cost":  "1200.50",
		"destination": "Goreme",
	})

	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if draft.TotalCost != 1200.50 {
		t.Fatalf("total cost = %v", draft.TotalCost)
	}
	if !draft.EndDate.After(draft.StartDate) {
		t.Fatalf("dates out of order: %v %v", draft.StartDate, draft.EndDate)
	}
	if draft.Destination != "Goreme" {
		t.Fatalf("destination = %q", draft.Destination)
	}
}

func TestValidateTourEndBeforeStart(t *testing.T) {
	draft, res := ValidateTour(map[string]string{
		"name":       "Trip",
		"start_date": "2024-05-10",
		"end_date":   "2024-05-05",
		"total_cost": "100",
	})

	if draft != nil {
		t.Fatal("expected no draft")
	}
	if len(res.Errors) != 1 || res.Errors[0] != MsgEndBeforeStart {
		t.Fatalf("expected only the ordering error, got %v", res.Errors)
	}
}

func TestValidateTourEqualDatesRejected(t *testing.T) {
	_, res := ValidateTour(map[string]string{
		"name":       "Day trip",
		"start_date": "2024-05-10",
		"end_date":   "2024-05-10",
	})

	if len(res.Errors) != 1 || res.Errors[0] != MsgEndBeforeStart {
		t.Fatalf("end date must be strictly after start: %v", res.Errors)
	}
}

// A date that failed its own check is never re-reported as an
// ordering failure.
func TestValidateTourSkipsCrossCheckOnParseFailure(t *testing.T) {
	_, res := ValidateTour(map[string]string{
		"name":       "Trip",
		"start_date": "not-a-date",
		"end_date":   "2024-05-05",
	})

	for _, msg := range res.Errors {
		if msg == MsgEndBeforeStart {
			t.Fatalf("ordering error reported despite parse failure: %v", res.Errors)
		}
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected only the start date error, got %v", res.Errors)
	}
}

func TestValidateTourTotalCostDefaults(t *testing.T) {
	draft, res := ValidateTour(map[string]string{
		"name":       "Budget trip",
		"start_date": "2024-05-10",
		"end_date":   "2024-05-15",
	})

	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if draft.TotalCost != 0 {
		t.Fatalf("total cost should default to 0, got %v", draft.TotalCost)
	}
}

func TestValidateTourNegativeTotalCost(t *testing.T) {
	_, res := ValidateTour(map[string]string{
		"name":       "Trip",
		"start_date": "2024-05-10",
		"end_date":   "2024-05-15",
		"total_cost": "-1",
	})

	if len(res.Errors) != 1 || res.Errors[0] != MsgTotalCostNotPositive {
		t.Fatalf("expected total cost error, got %v", res.Errors)
	}
}

func TestValidateTourInvalidTotalCostAccumulates(t *testing.T) {
	_, res := ValidateTour(map[string]string{
		"name":       "Trip",
		"start_date": "2024-05-10",
		"end_date":   "2024-05-15",
		"total_cost": "lots",
	})

	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "Total cost: invalid numeric value") {
		t.Fatalf("expected total cost numeric error, got %v", res.Errors)
	}
}
