package services

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// JournalSvcFacade reads the append-only register closure journal. Entries
// are written only by the register service.
type JournalSvcFacade interface {
	GetEntryByID(ctx context.Context, actorUserID string, journalID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.JournalEntry, error)
}
