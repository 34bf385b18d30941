package post

import "errors"

var (
	ErrPostNotFound       = errors.New("service post not found")
	ErrPostNameExists     = errors.New("service post with this name already exists at the site")
	ErrPostAlreadyDeleted = errors.New("service post not found or already deleted")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
