package classify

// Result holds the classifier output for a single message.
// Recomputed per request, no identity beyond it.
type Result struct {
	DomainRelevant bool
	ServiceIntent  bool
}

// Route is the routing outcome for an inbound message.
type Route int

const (
	// RouteReject — message is not about cars at all.
	RouteReject Route = iota
	// RouteCanned — car-related and the user wants repair/service help;
	// answered with the fixed recommendation, no LLM call.
	RouteCanned
	// RouteDelegate — car-related question to forward to the generation service.
	RouteDelegate
)

// Decision is the routing decision for a message.
// Exactly one of Reply/Prompt is meaningful: Reply for RouteCanned,
// Prompt for RouteDelegate, neither for RouteReject.
type Decision struct {
	Route  Route
	Reply  string
	Prompt string
}
