package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		RegisterRepo:     newPgxRegisterRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		InventoryRepo:    newPgxInventoryRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		OrderRepo:        newPgxOrderRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		ContactRepo:      newPgxContactRepository(dbPool),
	}
}
