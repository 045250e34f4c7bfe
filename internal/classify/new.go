package classify

// Config holds the keyword sets and routing strings.
// Zero-value fields fall back to the package defaults. The sets are
// static configuration, never mutated at runtime.
type Config struct {
	DomainKeywords  []string
	ServiceKeywords []string
	CannedReply     string
	PromptTemplate  string
}

// NewClassifier creates a Classifier from config.
func NewClassifier(cfg Config) *Classifier {
	domain := cfg.DomainKeywords
	if len(domain) == 0 {
		domain = defaultDomainKeywords
	}
	service := cfg.ServiceKeywords
	if len(service) == 0 {
		service = defaultServiceKeywords
	}
	return &Classifier{
		domainKeywords:  domain,
		serviceKeywords: service,
	}
}

// NewRouter creates a Router from config.
func NewRouter(cfg Config) *Router {
	canned := cfg.CannedReply
	if canned == "" {
		canned = CannedRecommendation
	}
	template := cfg.PromptTemplate
	if template == "" {
		template = promptTemplate
	}
	return &Router{
		classifier: NewClassifier(cfg),
		canned:     canned,
		template:   template,
	}
}
