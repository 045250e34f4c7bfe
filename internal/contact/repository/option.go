package repository

import "time"

// InsertMessageOptions holds parameters for inserting a contact message.
type InsertMessageOptions struct {
	ID        string
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
}
