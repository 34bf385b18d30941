package roster

import (
	"github.com/facilops/facil-backend-go/internal/pkg/validator"
)

type GenerateScheduleRequest struct {
	PostID string `json:"-"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

func (r *GenerateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PostID) {
		errs = append(errs, validator.ValidationError{
			Field:   "post_id",
			Message: "post_id is required",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID        string   `json:"id"`
	PostID    string   `json:"post_id"`
	Month     int      `json:"month"`
	Year      int      `json:"year"`
	WorkDays  []string `json:"work_days"` // ascending YYYY-MM-DD
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type ConfirmPresenceRequest struct {
	PostID string `json:"-"`
	Date   string `json:"date"` // YYYY-MM-DD
}

// Validate checks the request fields. The date itself is checked by the
// service, which needs the parsed value anyway.
func (r *ConfirmPresenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PostID) {
		errs = append(errs, validator.ValidationError{
			Field:   "post_id",
			Message: "post_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkVacantRequest struct {
	PostID     string  `json:"-"`
	Date       string  `json:"date"` // YYYY-MM-DD
	ReasonCode string  `json:"reason_code"`
	StaffID    *string `json:"staff_id,omitempty"`
}

// Validate checks the request fields. A missing reason and the date are
// checked by the service, which surfaces them as their own errors.
func (r *MarkVacantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PostID) {
		errs = append(errs, validator.ValidationError{
			Field:   "post_id",
			Message: "post_id is required",
		})
	}
	if r.StaffID != nil && !validator.IsValidUUID(*r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a valid id",
		})
	}
	if !validator.IsEmpty(r.ReasonCode) && !validator.IsValidReasonCode(r.ReasonCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason_code",
			Message: "reason_code must be a short lowercase slug, e.g. ferias",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayMarkingResponse struct {
	PostID     string  `json:"post_id"`
	Date       string  `json:"date"`
	State      string  `json:"state"`
	ReasonCode *string `json:"reason_code,omitempty"`
	StaffID    *string `json:"staff_id,omitempty"`
}

// CalendarDay is one date of the merged month view. Scheduled, presence and
// vacancy are tracked as separate overlays in storage; the read side merges
// them so clients never see the overlays disagree.
type CalendarDay struct {
	Date       string  `json:"date"`
	Scheduled  bool    `json:"scheduled"`
	State      string  `json:"state"`
	ReasonCode *string `json:"reason_code,omitempty"`
	StaffID    *string `json:"staff_id,omitempty"`
}

type CalendarResponse struct {
	PostID string        `json:"post_id"`
	Month  int           `json:"month"`
	Year   int           `json:"year"`
	Days   []CalendarDay `json:"days"`
}
