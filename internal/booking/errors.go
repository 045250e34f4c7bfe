package booking

import "errors"

var (
	ErrMissingFields = errors.New("name, email, service and date are required")
)
