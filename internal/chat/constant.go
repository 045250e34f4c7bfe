package chat

const (
	// OutOfDomainReply is returned for messages that are not about cars.
	OutOfDomainReply = "I can only assist with car-related questions."

	// DefaultHistoryLimit caps the history endpoint when config is silent.
	DefaultHistoryLimit = 20
)
