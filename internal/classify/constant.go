package classify

// Default keyword sets. Matching is lower-cased substring containment,
// so multi-word entries match as phrases.
var (
	// defaultDomainKeywords marks a message as car-related.
	defaultDomainKeywords = []string{
		"car", "vehicle", "auto",
		"engine", "motor", "transmission", "clutch", "gearbox",
		"brake", "tire", "tyre", "wheel", "suspension", "steering",
		"battery", "alternator", "spark plug", "ignition",
		"oil", "coolant", "radiator", "exhaust", "muffler", "fuel",
		"headlight", "windshield", "wiper", "dashboard",
		"sedan", "suv", "truck", "mileage",
	}

	// defaultServiceKeywords marks a car-related message as a
	// repair/appointment request.
	defaultServiceKeywords = []string{
		"repair", "mechanic", "appointment", "service", "servicing",
		"garage", "workshop", "maintenance", "tune-up", "inspection",
		"book",
	}
)

const (
	// CannedRecommendation is the fixed reply for service-intent messages.
	CannedRecommendation = "It sounds like your car could use professional attention. " +
		"I recommend booking a service appointment with our workshop - " +
		"you can schedule one right from the booking page!"

	// promptTemplate wraps the customer's message before it is sent to
	// the generation service.
	promptTemplate = "You are a helpful assistant for a car dealership. " +
		"Reply to the customer's car-related question in a short and friendly way.\n\n" +
		"Customer: %s"
)
