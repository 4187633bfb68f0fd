package services

// ServiceContainer bundles every service facade the handlers depend on.
type ServiceContainer struct {
	User         UserSvcFacade
	Register     RegisterSvcFacade
	Inventory    InventorySvcFacade
	Product      ProductSvcFacade
	Order        OrderSvcFacade
	Journal      JournalSvcFacade
	Notification NotificationSvcFacade
	Directory    DirectorySvcFacade
	Contact      ContactSvcFacade
	Token        TokenSvcFacade
}
