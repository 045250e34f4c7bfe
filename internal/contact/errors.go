package contact

import "errors"

var (
	ErrMissingFields = errors.New("name, email and message are required")
)
