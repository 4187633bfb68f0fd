package domain

import "time"

// ContactMessage is a submission from the public marketing-site contact form.
type ContactMessage struct {
	MessageID string    `json:"messageID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
