package services

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// ContactSvcFacade handles public contact-form submissions.
type ContactSvcFacade interface {
	// SubmitMessage is the only unauthenticated write in the system.
	SubmitMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error)

	ListMessages(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.ContactMessage, error)
}
