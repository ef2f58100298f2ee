package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/apperrors"
	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/dto"
	"github.com/dukaan-apps/duka_backend/internal/handlers"
	"github.com/dukaan-apps/duka_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

// MockStoreSvc is a mock type for the StoreSvc interface
type MockStoreSvc struct {
	mock.Mock
}

func (m *MockStoreSvc) ResolveMembership(ctx context.Context, userID string) (*domain.StoreMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreMembership), args.Error(1)
}

// MockDashboardSvc is a mock type for the DashboardSvc interface
type MockDashboardSvc struct {
	mock.Mock
}

func (m *MockDashboardSvc) BuildDashboard(ctx context.Context, storeID, currency string, from, to time.Time, role domain.StoreRole) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, storeID, currency, from, to, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

// MockReportSvc is a mock type for the ReportSvc interface
type MockReportSvc struct {
	mock.Mock
}

func (m *MockReportSvc) GetReport(ctx context.Context, storeID string, view domain.ReportView, currency string, from, to time.Time, role domain.StoreRole) (*domain.TabReport, error) {
	args := m.Called(ctx, storeID, view, currency, from, to, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TabReport), args.Error(1)
}

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockStore *MockStoreSvc
	mockDash  *MockDashboardSvc
	mockRep   *MockReportSvc
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	_ = dto.RegisterValidations()
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockStore = new(MockStoreSvc)
	suite.mockDash = new(MockDashboardSvc)
	suite.mockRep = new(MockReportSvc)

	cfg := &config.Config{
		JWTSecret:       testJWTSecret,
		DefaultCurrency: "USD",
		StoreTimezone:   time.UTC,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Store:     suite.mockStore,
		Dashboard: suite.mockDash,
		Report:    suite.mockRep,
	})
}

func (suite *HandlerTestSuite) signedToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) doRequest(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestGetDashboard_Success() {
	membership := &domain.StoreMembership{UserID: "u1", StoreID: "store-1", Role: domain.RoleManager}
	suite.mockStore.On("ResolveMembership", mock.Anything, "u1").Return(membership, nil).Once()

	summary := &domain.DashboardSummary{
		StoreID:      "store-1",
		Currency:     "USD",
		TotalRevenue: decimal.NewFromInt(900),
	}
	suite.mockDash.On("BuildDashboard", mock.Anything, "store-1", "USD",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), domain.RoleManager).
		Return(summary, nil).Once()

	w := suite.doRequest("/api/v1/dashboard", suite.signedToken("u1"))

	suite.Equal(http.StatusOK, w.Code)

	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("store-1", body["storeID"])
	suite.Equal("900", body["totalRevenue"])

	suite.mockStore.AssertExpectations(suite.T())
	suite.mockDash.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetDashboard_MissingToken() {
	w := suite.doRequest("/api/v1/dashboard", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDash.AssertNotCalled(suite.T(), "BuildDashboard",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetDashboard_NoStoreIsForbidden() {
	suite.mockStore.On("ResolveMembership", mock.Anything, "u1").
		Return(nil, apperrors.ErrNoStore).Once()

	w := suite.doRequest("/api/v1/dashboard", suite.signedToken("u1"))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestGetDashboard_InvalidCurrency() {
	w := suite.doRequest("/api/v1/dashboard?currency=usd!", suite.signedToken("u1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStore.AssertNotCalled(suite.T(), "ResolveMembership", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetDashboard_InvalidRangeOrder() {
	w := suite.doRequest("/api/v1/dashboard?startDate=2026-03-20&endDate=2026-03-01", suite.signedToken("u1"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetDashboard_UpstreamFailureIsBadGateway() {
	membership := &domain.StoreMembership{UserID: "u1", StoreID: "store-1", Role: domain.RoleAdmin}
	suite.mockStore.On("ResolveMembership", mock.Anything, "u1").Return(membership, nil).Once()
	suite.mockDash.On("BuildDashboard", mock.Anything, "store-1", "USD",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), domain.RoleAdmin).
		Return(nil, apperrors.ErrUpstream).Once()

	w := suite.doRequest("/api/v1/dashboard", suite.signedToken("u1"))

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *HandlerTestSuite) TestGetReport_Success() {
	membership := &domain.StoreMembership{UserID: "u1", StoreID: "store-1", Role: domain.RoleStaff}
	suite.mockStore.On("ResolveMembership", mock.Anything, "u1").Return(membership, nil).Once()

	report := &domain.TabReport{
		KPIs: []domain.KPI{{Title: "Total Revenue", Value: decimal.NewFromInt(200), Format: domain.FormatCurrency}},
	}
	suite.mockRep.On("GetReport", mock.Anything, "store-1", domain.ViewSales, "SLSH",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), domain.RoleStaff).
		Return(report, nil).Once()

	w := suite.doRequest("/api/v1/reports?view=sales&currency=SLSH", suite.signedToken("u1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRep.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetReport_ViewIsRequired() {
	w := suite.doRequest("/api/v1/reports", suite.signedToken("u1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRep.AssertNotCalled(suite.T(), "GetReport",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetReport_ExplicitRangeIsPassedThrough() {
	membership := &domain.StoreMembership{UserID: "u1", StoreID: "store-1", Role: domain.RoleAdmin}
	suite.mockStore.On("ResolveMembership", mock.Anything, "u1").Return(membership, nil).Once()

	wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRep.On("GetReport", mock.Anything, "store-1", domain.ViewFinance, "USD",
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(wantFrom) }),
		mock.MatchedBy(func(t time.Time) bool { return t.Year() == 2026 && t.Month() == time.March && t.Day() == 10 }),
		domain.RoleAdmin).
		Return(&domain.TabReport{}, nil).Once()

	w := suite.doRequest("/api/v1/reports?view=finance&startDate=2026-03-01&endDate=2026-03-10", suite.signedToken("u1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRep.AssertExpectations(suite.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
