package classify

import "strings"

// Classifier tests messages against the domain and service-intent
// keyword sets. Pure and stateless, safe for concurrent use.
type Classifier struct {
	domainKeywords  []string
	serviceKeywords []string
}

// Classify computes both flags for the given text.
// Matching is case-insensitive substring containment. The empty string
// matches nothing, so it is never domain-relevant.
func (c *Classifier) Classify(text string) Result {
	lower := strings.ToLower(text)
	return Result{
		DomainRelevant: containsAny(lower, c.domainKeywords),
		ServiceIntent:  containsAny(lower, c.serviceKeywords),
	}
}

func containsAny(lower string, keywords []string) bool {
	if lower == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
