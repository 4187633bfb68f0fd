package repositories

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// JournalRepository persists the append-only register closure journal.
// There is deliberately no update or delete operation.
type JournalRepository interface {
	// AppendEntry persists one new journal entry.
	AppendEntry(ctx context.Context, entry domain.JournalEntry) error

	// FindEntryByID retrieves a single journal entry.
	FindEntryByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)

	// ListEntriesByRestaurant retrieves a paginated journal history,
	// newest first.
	ListEntriesByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.JournalEntry, error)
}
