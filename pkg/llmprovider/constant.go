package llmprovider

// FallbackReply is returned when the remote response is well-formed
// but carries no candidate text.
const FallbackReply = "I'm here to help! How can I assist?"
