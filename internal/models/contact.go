package models

import "time"

// ContactMessage is the contact_messages table row.
type ContactMessage struct {
	MessageID string    `db:"message_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}
