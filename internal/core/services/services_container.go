package services

import (
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/platform/events"
	"github.com/tableauchef/tableauchef_backend/pkg/config"
)

// NewServiceContainer wires every service with its dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, broadcaster *events.Broadcaster) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User service first: everything else authorizes through it.
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	container.Notification = NewNotificationService(repos.NotificationRepo, container.User, broadcaster)
	container.Inventory = NewInventoryService(repos.InventoryRepo, container.User, container.Notification, broadcaster)
	container.Product = NewProductService(repos.ProductRepo, container.User)
	container.Order = NewOrderService(repos.OrderRepo, repos.ProductRepo, container.User)

	// The register treats sales figures as injected input from the order
	// service's aggregation port.
	container.Register = NewRegisterService(repos.RegisterRepo, repos.JournalRepo, container.User, container.Order, broadcaster)

	container.Journal = NewJournalService(repos.JournalRepo, container.User)
	container.Directory = NewDirectoryService(repos.UserRepo, container.User)
	container.Contact = NewContactService(repos.ContactRepo, container.User)

	return container
}
