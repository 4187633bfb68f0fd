package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
	"github.com/tableauchef/tableauchef_backend/internal/handlers"
	"github.com/tableauchef/tableauchef_backend/internal/middleware"
)

// --- Mock RegisterSvcFacade ---

type MockRegisterService struct {
	mock.Mock
}

func (m *MockRegisterService) GetSession(ctx context.Context, actorUserID string) (*domain.RegisterSession, error) {
	args := m.Called(ctx, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterSession), args.Error(1)
}

func (m *MockRegisterService) OpenRegister(ctx context.Context, actorUserID string, req dto.OpenRegisterRequest) (*domain.RegisterSession, error) {
	args := m.Called(ctx, actorUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterSession), args.Error(1)
}

func (m *MockRegisterService) ComputeVariance(ctx context.Context, actorUserID string, req dto.ComputeVarianceRequest) (*domain.VarianceReport, error) {
	args := m.Called(ctx, actorUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VarianceReport), args.Error(1)
}

func (m *MockRegisterService) CloseRegister(ctx context.Context, actorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Test Suite ---

type RegisterHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockRegisterService *MockRegisterService
	jwtSecret           string
}

func (suite *RegisterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockRegisterService = new(MockRegisterService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRegisterRoutes(v1, suite.mockRegisterService)
}

func (suite *RegisterHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *RegisterHandlerTestSuite) doRequest(method, url, userID string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RegisterHandlerTestSuite) TestOpenRegisterSuccess() {
	now := time.Now().UTC()
	session := &domain.RegisterSession{
		RestaurantName: "Chez Fifi",
		IsOpen:         true,
		OpenedBy:       "Marie",
		OpenTime:       &now,
		OpeningCash:    decimal.RequireFromString("100"),
	}
	suite.mockRegisterService.On("OpenRegister", mock.Anything, "user-1", dto.OpenRegisterRequest{OpeningCash: "100"}).
		Return(session, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/register/open", "user-1", dto.OpenRegisterRequest{OpeningCash: "100"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RegisterSessionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsOpen)
	suite.Equal("Marie", resp.OpenedBy)
	suite.mockRegisterService.AssertExpectations(suite.T())
}

func (suite *RegisterHandlerTestSuite) TestOpenRegisterAlreadyOpenMapsToConflict() {
	suite.mockRegisterService.On("OpenRegister", mock.Anything, "user-1", mock.Anything).
		Return(nil, apperrors.ErrInvalidState).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/register/open", "user-1", dto.OpenRegisterRequest{OpeningCash: "100"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RegisterHandlerTestSuite) TestOpenRegisterForbiddenRole() {
	suite.mockRegisterService.On("OpenRegister", mock.Anything, "user-1", mock.Anything).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/register/open", "user-1", dto.OpenRegisterRequest{OpeningCash: "100"})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RegisterHandlerTestSuite) TestComputeVariance() {
	report := &domain.VarianceReport{
		OpeningCash:  decimal.RequireFromString("100"),
		CashSales:    decimal.RequireFromString("875.50"),
		ExpectedCash: decimal.RequireFromString("975.50"),
		ActualCash:   decimal.RequireFromString("970"),
		Variance:     decimal.RequireFromString("-5.50"),
	}
	suite.mockRegisterService.On("ComputeVariance", mock.Anything, "user-1", dto.ComputeVarianceRequest{ActualCashCounted: "970"}).
		Return(report, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/register/variance", "user-1", dto.ComputeVarianceRequest{ActualCashCounted: "970"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VarianceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("-5.5", resp.Variance)
}

func (suite *RegisterHandlerTestSuite) TestCloseRegisterWithoutToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/register/close", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRegisterService.AssertNotCalled(suite.T(), "CloseRegister", mock.Anything, mock.Anything)
}

func (suite *RegisterHandlerTestSuite) TestGetSession() {
	session := &domain.RegisterSession{RestaurantName: "Chez Fifi", OpeningCash: decimal.Zero}
	suite.mockRegisterService.On("GetSession", mock.Anything, "user-1").Return(session, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/register/session", "user-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RegisterSessionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsOpen)
}

func TestRegisterHandler(t *testing.T) {
	suite.Run(t, new(RegisterHandlerTestSuite))
}
