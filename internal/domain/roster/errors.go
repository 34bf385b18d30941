package roster

import "errors"

var (
	// Generation Errors
	ErrVacantPost     = errors.New("a post needs at least one assigned staff member before a schedule can be generated")
	ErrInvalidCycle   = errors.New("staffing policy is not a valid <work>x<rest> cycle descriptor")
	ErrAnchorRequired = errors.New("cycle anchor date is required for this staffing policy")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")

	// Schedule Errors
	ErrScheduleNotFound = errors.New("monthly schedule not found")

	// Day Marking Errors
	ErrReasonRequired      = errors.New("a reason is required to mark a day vacant")
	ErrMarkingDateRequired = errors.New("a date in YYYY-MM-DD format is required")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
