package dto

import (
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// CreateContactMessageRequest is a public contact-form submission.
type CreateContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

// ContactMessageResponse is the stored shape of a contact message.
type ContactMessageResponse struct {
	MessageID string `json:"messageID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// ToContactMessageResponse converts a domain message to its DTO.
func ToContactMessageResponse(m *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListContactMessagesResponse converts a slice of messages to DTOs.
func ToListContactMessagesResponse(ms []domain.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, len(ms))
	for i := range ms {
		out[i] = ToContactMessageResponse(&ms[i])
	}
	return out
}
