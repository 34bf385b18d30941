package staff

import (
	"strings"

	"github.com/facilops/facil-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	FullName     string  `json:"full_name"`
	Status       string  `json:"status"`
	PostID       *string `json:"post_id,omitempty"`
	PayrollRef   *string `json:"payroll_ref,omitempty"`
	TimeclockRef *string `json:"timeclock_ref,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if r.Status == "" {
		r.Status = string(StatusActive)
	}
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"full_name,omitempty"`
	Status   *string `json:"status,omitempty"`
	// PostID assigns the staff member to a post; ClearPost unassigns.
	PostID    *string `json:"post_id,omitempty"`
	ClearPost bool    `json:"clear_post,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if r.PostID != nil && r.ClearPost {
		errs = append(errs, validator.ValidationError{
			Field:   "post_id",
			Message: "post_id and clear_post are mutually exclusive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SyncUpsertRequest is the normalized shape both HR platforms reduce to
// before hitting storage.
type SyncUpsertRequest struct {
	Source      SyncSource
	ExternalRef string
	FullName    string
	Active      bool
}

func (r *SyncUpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ExternalRef) {
		errs = append(errs, validator.ValidationError{
			Field:   "external_ref",
			Message: "external_ref is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if r.Source != SourcePayroll && r.Source != SourceTimeclock {
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be payroll or timeclock",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StaffResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Status       string  `json:"status"`
	PostID       *string `json:"post_id,omitempty"`
	PayrollRef   *string `json:"payroll_ref,omitempty"`
	TimeclockRef *string `json:"timeclock_ref,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type StaffFilter struct {
	PostID *string `json:"post_id,omitempty"`
	Status *string `json:"status,omitempty"`
	Name   *string `json:"name,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *StaffFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListStaffResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Staff      []StaffResponse `json:"staff"`
}
