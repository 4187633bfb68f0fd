package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
	"github.com/tableauchef/tableauchef_backend/internal/middleware"
	"github.com/tableauchef/tableauchef_backend/internal/platform/events"
)

type registerService struct {
	registerRepo portsrepo.RegisterSessionRepository
	journalRepo  portsrepo.JournalRepository
	authorizer   portssvc.AuthorizerSvc
	sales        portssvc.SalesSummarySvc
	broadcaster  *events.Broadcaster
}

// NewRegisterService creates the register lifecycle service. Sales figures
// are injected through the SalesSummarySvc port; the register never queries
// orders directly.
func NewRegisterService(
	registerRepo portsrepo.RegisterSessionRepository,
	journalRepo portsrepo.JournalRepository,
	authorizer portssvc.AuthorizerSvc,
	sales portssvc.SalesSummarySvc,
	broadcaster *events.Broadcaster,
) portssvc.RegisterSvcFacade {
	return &registerService{
		registerRepo: registerRepo,
		journalRepo:  journalRepo,
		authorizer:   authorizer,
		sales:        sales,
		broadcaster:  broadcaster,
	}
}

var _ portssvc.RegisterSvcFacade = (*registerService)(nil)

// parseCashAmount applies the opening/counted cash input rule: the value must
// be supplied and decimal-parseable, nothing more. Range checks are
// deliberately absent.
func parseCashAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, apperrors.ErrValidation
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, apperrors.ErrValidation
	}
	return amount, nil
}

func (s *registerService) GetSession(ctx context.Context, actorUserID string) (*domain.RegisterSession, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapOperateRegister)
	if err != nil {
		return nil, err
	}
	return s.registerRepo.FindSession(ctx, actor.RestaurantName)
}

// OpenRegister transitions Closed -> Open. Opening an already open register
// fails with ErrInvalidState and leaves the existing session untouched.
func (s *registerService) OpenRegister(ctx context.Context, actorUserID string, req dto.OpenRegisterRequest) (*domain.RegisterSession, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapOperateRegister)
	if err != nil {
		return nil, err
	}

	openingCash, err := parseCashAmount(req.OpeningCash)
	if err != nil {
		return nil, err
	}

	session, err := s.registerRepo.FindSession(ctx, actor.RestaurantName)
	if err != nil {
		return nil, err
	}
	if session.IsOpen {
		logger.Warn("Register already open", slog.String("restaurant", actor.RestaurantName), slog.String("opened_by", session.OpenedBy))
		return nil, apperrors.ErrInvalidState
	}

	now := time.Now().UTC()
	session.IsOpen = true
	session.OpenedBy = actor.Name
	session.OpenTime = &now
	session.OpeningCash = openingCash
	session.LastVariance = nil
	session.LastActualCounted = nil

	if err := s.registerRepo.SaveSession(ctx, *session); err != nil {
		return nil, err
	}

	logger.Info("Register opened", slog.String("restaurant", actor.RestaurantName), slog.String("opening_cash", openingCash.String()))
	s.broadcaster.Publish(events.Event{
		Topic:   actor.RestaurantName,
		Kind:    "register.opened",
		Payload: dto.ToRegisterSessionResponse(session),
	})
	return session, nil
}

// ComputeVariance compares counted cash against opening cash plus the day's
// cash sales. It may run any number of times while the register is open; each
// run replaces the previously stored variance. State does not change.
func (s *registerService) ComputeVariance(ctx context.Context, actorUserID string, req dto.ComputeVarianceRequest) (*domain.VarianceReport, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapOperateRegister)
	if err != nil {
		return nil, err
	}

	session, err := s.registerRepo.FindSession(ctx, actor.RestaurantName)
	if err != nil {
		return nil, err
	}
	if !session.IsOpen {
		return nil, apperrors.ErrInvalidState
	}

	actual, err := parseCashAmount(req.ActualCashCounted)
	if err != nil {
		return nil, err
	}

	cashSales, err := s.sales.CashSalesForDay(ctx, actor.RestaurantName, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	expected := cashSales.Add(session.OpeningCash)
	variance := actual.Sub(expected)

	session.LastVariance = &variance
	session.LastActualCounted = &actual
	if err := s.registerRepo.SaveSession(ctx, *session); err != nil {
		return nil, err
	}

	return &domain.VarianceReport{
		OpeningCash:  session.OpeningCash,
		CashSales:    cashSales,
		ExpectedCash: expected,
		ActualCash:   actual,
		Variance:     variance,
	}, nil
}

// CloseRegister transitions Open -> Closed. A variance must have been
// computed during the current open period; the closure appends exactly one
// journal entry and resets the session to its pristine state.
func (s *registerService) CloseRegister(ctx context.Context, actorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapOperateRegister)
	if err != nil {
		return nil, err
	}

	session, err := s.registerRepo.FindSession(ctx, actor.RestaurantName)
	if err != nil {
		return nil, err
	}
	if !session.IsOpen {
		return nil, apperrors.ErrInvalidState
	}
	if session.LastVariance == nil {
		logger.Warn("Close attempted before variance computation", slog.String("restaurant", actor.RestaurantName))
		return nil, apperrors.ErrInvalidState
	}

	now := time.Now().UTC()
	totalSales, err := s.sales.TotalSalesForDay(ctx, actor.RestaurantName, now)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		JournalID:      uuid.NewString(),
		RestaurantName: actor.RestaurantName,
		Date:           now.Format("2006-01-02"),
		TotalSales:     totalSales,
		OpeningCash:    session.OpeningCash,
		Variance:       *session.LastVariance,
		ClosedBy:       actor.Name,
		CreatedAt:      now,
	}
	if err := s.journalRepo.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.registerRepo.ClearSession(ctx, actor.RestaurantName); err != nil {
		return nil, err
	}

	logger.Info("Register closed", slog.String("restaurant", actor.RestaurantName), slog.String("variance", entry.Variance.String()))
	s.broadcaster.Publish(events.Event{
		Topic:   actor.RestaurantName,
		Kind:    "register.closed",
		Payload: dto.ToJournalEntryResponse(&entry),
	})
	return &entry, nil
}
