package validation

import (
	"strconv"
	"strings"
	"time"
)

// Business rule messages (appended without a field prefix)
const (
	MsgAmountNotPositive    = "Amount must be a positive number"
	MsgTotalCostNotPositive = "Total cost must be a positive number"
	MsgEndBeforeStart       = "End date must be after start date"
)

// FormResult collects the outcome of validating one submitted form.
// Errors holds every failure in field order; Fields holds the
// normalized value for each attempted field so the caller can
// re-populate the form after a rejection. A field that failed keeps
// its sanitized raw value rather than being dropped.
type FormResult struct {
	Errors []string          `json:"errors"`
	Fields map[string]string `json:"fields"`
}

// OK reports whether the form passed every check.
func (r *FormResult) OK() bool {
	return len(r.Errors) == 0
}

// CostDraft is a fully validated cost entry ready for persistence.
// Only ValidateCost constructs one, and only on full success.
type CostDraft struct {
	Name        string
	Amount      float64
	Date        time.Time
	Description string
	Category    string
}

// TourDraft is a fully validated tour program ready for persistence.
type TourDraft struct {
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	TotalCost   float64
	Description string
	Destination string
}

// check validates one field, records the outcome on the result and
// returns the normalized value plus whether the field passed. A failed
// field still lands in Fields (sanitized) for form re-display.
func (r *FormResult) check(fields map[string]string, key, display string, spec FieldSpec) (string, bool) {
	value, err := Validate(fields[key], spec)
	if err != nil {
		r.Errors = append(r.Errors, display+": "+err.Error())
		r.Fields[key] = Sanitize(strings.TrimSpace(fields[key]))
		return "", false
	}
	r.Fields[key] = value
	return value, true
}

// ValidateCost validates a raw cost form submission. Every field is
// checked independently; failures accumulate instead of short-
// circuiting. The draft is non-nil exactly when the result carries no
// errors.
func ValidateCost(fields map[string]string) (*CostDraft, *FormResult) {
	res := &FormResult{Fields: make(map[string]string)}

	name, _ := res.check(fields, "name", "Name", FieldSpec{Kind: KindText, MaxLength: 200, Required: true})

	amountStr, amountOK := res.check(fields, "amount", "Amount", FieldSpec{Kind: KindNumeric, Required: true})
	var amount float64
	if amountOK {
		amount, _ = strconv.ParseFloat(amountStr, 64)
		if amount < 0 {
			res.Errors = append(res.Errors, MsgAmountNotPositive)
		}
	}

	dateStr, _ := res.check(fields, "date", "Date", FieldSpec{Kind: KindDate, Required: true})

	description, _ := res.check(fields, "description", "Description", FieldSpec{Kind: KindText, MaxLength: 1000})
	category, _ := res.check(fields, "category", "Category", FieldSpec{Kind: KindText, MaxLength: 100})

	if !res.OK() {
		return nil, res
	}

	date, _ := time.Parse(DateLayout, dateStr)
	return &CostDraft{
		Name:        name,
		Amount:      amount,
		Date:        date,
		Description: description,
		Category:    category,
	}, res
}

// ValidateTour validates a raw tour program form submission with the
// same accumulation discipline as ValidateCost. The end-after-start
// rule only fires when both dates parsed on their own; a date that
// already failed is never re-reported as an ordering failure.
func ValidateTour(fields map[string]string) (*TourDraft, *FormResult) {
	res := &FormResult{Fields: make(map[string]string)}

	name, _ := res.check(fields, "name", "Name", FieldSpec{Kind: KindText, MaxLength: 200, Required: true})

	startStr, startOK := res.check(fields, "start_date", "Start date", FieldSpec{Kind: KindDate, Required: true})
	endStr, endOK := res.check(fields, "end_date", "End date", FieldSpec{Kind: KindDate, Required: true})

	var startDate, endDate time.Time
	if startOK && endOK {
		startDate, _ = time.Parse(DateLayout, startStr)
		endDate, _ = time.Parse(DateLayout, endStr)
		if !endDate.After(startDate) {
			res.Errors = append(res.Errors, MsgEndBeforeStart)
		}
	}

	// Total cost defaults to zero when the field is absent or blank.
	totalFields := fields
	if strings.TrimSpace(fields["total_cost"]) == "" {
		totalFields = map[string]string{"total_cost": "0"}
	}
	totalStr, totalOK := res.check(totalFields, "total_cost", "Total cost", FieldSpec{Kind: KindNumeric})
	var totalCost float64
	if totalOK {
		totalCost, _ = strconv.ParseFloat(totalStr, 64)
		if totalCost < 0 {
			res.Errors = append(res.Errors, MsgTotalCostNotPositive)
		}
	}

	description, _ := res.check(fields, "description", "Description", FieldSpec{Kind: KindText, MaxLength: 1000})
	destination, _ := res.check(fields, "destination", "Destination", FieldSpec{Kind: KindText, MaxLength: 200})

	if !res.OK() {
		return nil, res
	}

	return &TourDraft{
		Name:        name,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalCost:   totalCost,
		Description: description,
		Destination: destination,
	}, res
}
