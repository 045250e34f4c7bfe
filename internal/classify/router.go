package classify

import "fmt"

// Router turns a classification into one of three mutually exclusive
// outcomes. Total over all string inputs, no error conditions.
type Router struct {
	classifier *Classifier
	canned     string
	template   string
}

// Route applies the ordered decision table: not domain-relevant →
// Reject; service intent → Canned; otherwise → Delegate with the
// message wrapped in the prompt template.
func (r *Router) Route(text string) Decision {
	result := r.classifier.Classify(text)

	if !result.DomainRelevant {
		return Decision{Route: RouteReject}
	}
	if result.ServiceIntent {
		return Decision{Route: RouteCanned, Reply: r.canned}
	}
	return Decision{Route: RouteDelegate, Prompt: fmt.Sprintf(r.template, text)}
}
