package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

type contactService struct {
	contactRepo portsrepo.ContactMessageRepository
	authorizer  portssvc.AuthorizerSvc
}

// NewContactService creates the contact-form service.
func NewContactService(contactRepo portsrepo.ContactMessageRepository, authorizer portssvc.AuthorizerSvc) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo, authorizer: authorizer}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

// SubmitMessage stores a public contact-form submission. No authentication.
func (s *contactService) SubmitMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contactRepo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *contactService) ListMessages(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.ContactMessage, error) {
	if _, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapViewMessages); err != nil {
		return nil, err
	}
	return s.contactRepo.ListMessages(ctx, limit, offset)
}
