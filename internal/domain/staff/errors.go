package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrRefExists     = errors.New("external reference already linked to another staff member")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
