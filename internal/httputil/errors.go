package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the request body could not be parsed, check the syntax and the field types")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the ID in the URL is not a valid UUID")
)
