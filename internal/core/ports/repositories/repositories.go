package repositories

// RepositoryProvider bundles every repository implementation so wiring code can
// pass one value around instead of eight.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	RegisterRepo     RegisterSessionRepository
	JournalRepo      JournalRepository
	InventoryRepo    InventoryRepositoryFacade
	ProductRepo      ProductRepositoryFacade
	OrderRepo        OrderRepositoryFacade
	NotificationRepo NotificationRepository
	ContactRepo      ContactMessageRepository
}
