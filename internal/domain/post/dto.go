package post

import (
	"strings"

	"github.com/facilops/facil-backend-go/internal/pkg/validator"
)

type CreatePostRequest struct {
	SiteID           string  `json:"site_id"`
	Name             string  `json:"name"`
	StaffingPolicy   string  `json:"staffing_policy"`
	PlannedHeadcount *int    `json:"planned_headcount"`
	CycleAnchorDate  *string `json:"cycle_anchor_date,omitempty"` // YYYY-MM-DD
}

func (r *CreatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsEmpty(r.StaffingPolicy) && !validator.IsValidCycleDescriptor(strings.TrimSpace(r.StaffingPolicy)) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffing_policy",
			Message: "staffing_policy must be a <work>x<rest> cycle descriptor, e.g. 12x36 or 5x2",
		})
	}
	if r.PlannedHeadcount != nil && *r.PlannedHeadcount < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "planned_headcount",
			Message: "planned_headcount must be at least 1",
		})
	}
	if r.CycleAnchorDate != nil {
		if _, ok := validator.IsValidDate(*r.CycleAnchorDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "cycle_anchor_date",
				Message: "cycle_anchor_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePostRequest struct {
	ID               string  `json:"-"`
	Name             *string `json:"name,omitempty"`
	StaffingPolicy   *string `json:"staffing_policy,omitempty"`
	PlannedHeadcount *int    `json:"planned_headcount,omitempty"`
	CycleAnchorDate  *string `json:"cycle_anchor_date,omitempty"`
	Active           *bool   `json:"active,omitempty"`
}

func (r *UpdatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StaffingPolicy != nil && !validator.IsValidCycleDescriptor(strings.TrimSpace(*r.StaffingPolicy)) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffing_policy",
			Message: "staffing_policy must be a <work>x<rest> cycle descriptor, e.g. 12x36 or 5x2",
		})
	}
	if r.PlannedHeadcount != nil && *r.PlannedHeadcount < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "planned_headcount",
			Message: "planned_headcount must be at least 1",
		})
	}
	if r.CycleAnchorDate != nil {
		if _, ok := validator.IsValidDate(*r.CycleAnchorDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "cycle_anchor_date",
				Message: "cycle_anchor_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PostResponse struct {
	ID               string  `json:"id"`
	SiteID           string  `json:"site_id"`
	Name             string  `json:"name"`
	StaffingPolicy   string  `json:"staffing_policy"`
	PlannedHeadcount int     `json:"planned_headcount"`
	CycleAnchorDate  *string `json:"cycle_anchor_date,omitempty"`
	Active           bool    `json:"active"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type OccupancyResponse struct {
	PostID            string `json:"post_id"`
	State             string `json:"state"`
	RequiredHeadcount int    `json:"required_headcount"`
	AssignedHeadcount int    `json:"assigned_headcount"`
}

type PostFilter struct {
	SiteID *string `json:"site_id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // name, created_at, updated_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *PostFilter) Validate() error {
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

	if f.SortBy != "" {
		validSortFields := []string{"name", "created_at", "updated_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: name, created_at, updated_at",
			})
		}
	} else {
		f.SortBy = "name"
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListPostsResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Posts      []PostResponse `json:"posts"`
}
