package services

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
)

type journalService struct {
	journalRepo portsrepo.JournalRepository
	authorizer  portssvc.AuthorizerSvc
}

// NewJournalService creates the read side of the closure journal. Writes go
// through the register service exclusively.
func NewJournalService(journalRepo portsrepo.JournalRepository, authorizer portssvc.AuthorizerSvc) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, authorizer: authorizer}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) GetEntryByID(ctx context.Context, actorUserID string, journalID string) (*domain.JournalEntry, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapViewJournals)
	if err != nil {
		return nil, err
	}
	entry, err := s.journalRepo.FindEntryByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleSuperAdmin && entry.RestaurantName != actor.RestaurantName {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.JournalEntry, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapViewJournals)
	if err != nil {
		return nil, err
	}
	return s.journalRepo.ListEntriesByRestaurant(ctx, actor.RestaurantName, limit, offset)
}
