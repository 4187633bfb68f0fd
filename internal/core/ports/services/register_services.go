package services

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// RegisterSvcFacade drives the cash register lifecycle for the acting user's
// restaurant. The restaurant is always derived from the actor's own profile;
// there is no cross-tenant register access.
type RegisterSvcFacade interface {
	GetSession(ctx context.Context, actorUserID string) (*domain.RegisterSession, error)
	OpenRegister(ctx context.Context, actorUserID string, req dto.OpenRegisterRequest) (*domain.RegisterSession, error)
	ComputeVariance(ctx context.Context, actorUserID string, req dto.ComputeVarianceRequest) (*domain.VarianceReport, error)
	CloseRegister(ctx context.Context, actorUserID string) (*domain.JournalEntry, error)
}
