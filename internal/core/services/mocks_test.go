package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// --- Mock AuthorizerSvc ---

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeAction(ctx context.Context, userID string, cap domain.Capability) (*domain.User, error) {
	args := m.Called(ctx, userID, cap)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindUsersByRestaurant(ctx context.Context, restaurantName string) ([]domain.User, error) {
	args := m.Called(ctx, restaurantName)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetRestaurantStatus(ctx context.Context, restaurantName string, status domain.UserStatus, updatedBy string, updatedAt time.Time) (int64, error) {
	args := m.Called(ctx, restaurantName, status, updatedBy, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock RegisterSessionRepository ---

type MockRegisterRepository struct {
	mock.Mock
}

func (m *MockRegisterRepository) FindSession(ctx context.Context, restaurantName string) (*domain.RegisterSession, error) {
	args := m.Called(ctx, restaurantName)
	var session *domain.RegisterSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.RegisterSession)
	}
	return session, args.Error(1)
}

func (m *MockRegisterRepository) SaveSession(ctx context.Context, session domain.RegisterSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockRegisterRepository) ClearSession(ctx context.Context, restaurantName string) error {
	args := m.Called(ctx, restaurantName)
	return args.Error(0)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) AppendEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, restaurantName, limit, offset)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	return entries, args.Error(1)
}

// --- Mock SalesSummarySvc ---

type MockSalesSummary struct {
	mock.Mock
}

func (m *MockSalesSummary) CashSalesForDay(ctx context.Context, restaurantName string, day time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, restaurantName, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSalesSummary) TotalSalesForDay(ctx context.Context, restaurantName string, day time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, restaurantName, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock InventoryRepository ---

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	var item *domain.InventoryItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.InventoryItem)
	}
	return item, args.Error(1)
}

func (m *MockInventoryRepository) ListItemsByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, restaurantName, limit, offset)
	var items []domain.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.InventoryItem)
	}
	return items, args.Error(1)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateStock(ctx context.Context, itemID string, stock decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, itemID, stock, updatedBy)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// --- Mock NotificationSvcFacade ---

type MockNotificationSvc struct {
	mock.Mock
}

func (m *MockNotificationSvc) CreateStockAlert(ctx context.Context, restaurantName string, itemName string, newStock decimal.Decimal, unit string) (*domain.Notification, error) {
	args := m.Called(ctx, restaurantName, itemName, newStock, unit)
	var n *domain.Notification
	if args.Get(0) != nil {
		n = args.Get(0).(*domain.Notification)
	}
	return n, args.Error(1)
}

func (m *MockNotificationSvc) ListNotifications(ctx context.Context, actorUserID string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, actorUserID, unreadOnly, limit, offset)
	var ns []domain.Notification
	if args.Get(0) != nil {
		ns = args.Get(0).([]domain.Notification)
	}
	return ns, args.Error(1)
}

func (m *MockNotificationSvc) MarkRead(ctx context.Context, actorUserID string, notificationID string) error {
	args := m.Called(ctx, actorUserID, notificationID)
	return args.Error(0)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByRestaurant(ctx context.Context, restaurantName string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, restaurantName, unreadOnly, limit, offset)
	var ns []domain.Notification
	if args.Get(0) != nil {
		ns = args.Get(0).([]domain.Notification)
	}
	return ns, args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, restaurantName string, notificationID string) error {
	args := m.Called(ctx, restaurantName, notificationID)
	return args.Error(0)
}

// --- Mock UserReaderSvc ---

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}
