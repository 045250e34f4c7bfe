package contact

import "time"

// Message is a contact-form submission.
type Message struct {
	ID        string
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
}

type CreateInput struct {
	Name  string
	Email string
	Body  string
}

type CreateOutput struct {
	Message Message
}
