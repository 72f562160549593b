package monument

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"monument-catalog/core/reconcile"

	"github.com/go-playground/validator/v10"
)

// validate checks request payloads. Initialized in init() with custom rules.
var validate *validator.Validate

var yearPattern = regexp.MustCompile(`^\d{1,4}$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("year", func(fl validator.FieldLevel) bool {
		return yearPattern.MatchString(fl.Field().String())
	})
}

// DateInput is the wire form of a proposed date. Month is 1-based.
type DateInput struct {
	// Type selects the precision: unknown, year, month-year or exact-date.
	Type string `json:"type" validate:"required,oneof=unknown year month-year exact-date"`
	// Year is used by year and month-year proposals.
	Year *string `json:"year,omitempty" validate:"omitempty,year"`
	// Month is used by month-year proposals (January = 1).
	Month *int `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	// Date is used by exact-date proposals, as YYYY-MM-DD.
	Date *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Proposal converts the input to the engine's date proposal.
func (d *DateInput) Proposal() reconcile.DateProposal {
	if d == nil {
		return nil
	}
	var month *int
	if d.Month != nil {
		m := *d.Month - 1
		month = &m
	}
	return reconcile.NewDateProposal(reconcile.DateFormat(d.Type), d.Year, month, d.Date)
}

// UpdateRequest is the proposed-update document accepted by the diff endpoint
// and stored as a suggestion payload.
type UpdateRequest struct {
	reconcile.ProposedUpdate

	// NewDate is the proposed monument date. Omitted keeps the current date.
	NewDate *DateInput `json:"new_date,omitempty" validate:"omitempty"`
	// NewDeactivatedDate is the proposed deactivation date.
	NewDeactivatedDate *DateInput `json:"new_deactivated_date,omitempty" validate:"omitempty"`
}

// Validate checks the request against its validation tags. Blank reference
// URLs are left to the engine, which skips them.
func (r *UpdateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid proposed update: %w", err)
	}
	for _, u := range r.References.NewURLs {
		if strings.TrimSpace(u) == "" {
			continue
		}
		if err := validate.Var(u, "url"); err != nil {
			return fmt.Errorf("invalid reference url %q: %w", u, err)
		}
	}
	for id, u := range r.References.UpdatedURLsByID {
		if strings.TrimSpace(u) == "" {
			continue
		}
		if err := validate.Var(u, "url"); err != nil {
			return fmt.Errorf("invalid reference url for %s: %w", id, err)
		}
	}
	return nil
}

// Update returns the engine input described by the request.
func (r *UpdateRequest) Update() *reconcile.ProposedUpdate {
	u := r.ProposedUpdate
	u.Date = r.NewDate.Proposal()
	u.DeactivatedDate = r.NewDeactivatedDate.Proposal()
	return &u
}

// DecodeUpdate parses and validates a proposed-update document.
func DecodeUpdate(data []byte) (*UpdateRequest, error) {
	var req UpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode proposed update: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}
