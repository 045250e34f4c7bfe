package chat

import "errors"

var (
	ErrMessageRequired  = errors.New("message is required")
	ErrGenerationFailed = errors.New("failed to reach generation service")
)
