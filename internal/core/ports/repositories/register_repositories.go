package repositories

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// RegisterSessionRepository persists the single per-restaurant register
// session row. FindSession returns a pristine Closed session when no row
// exists yet for the restaurant.
type RegisterSessionRepository interface {
	FindSession(ctx context.Context, restaurantName string) (*domain.RegisterSession, error)

	// SaveSession upserts the session row for the restaurant.
	SaveSession(ctx context.Context, session domain.RegisterSession) error

	// ClearSession resets the restaurant's row to the Closed state.
	ClearSession(ctx context.Context, restaurantName string) error
}
