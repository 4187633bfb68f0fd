package repositories

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// ContactMessageRepository persists public contact-form submissions.
type ContactMessageRepository interface {
	SaveMessage(ctx context.Context, msg domain.ContactMessage) error
	ListMessages(ctx context.Context, limit int, offset int) ([]domain.ContactMessage, error)
}
