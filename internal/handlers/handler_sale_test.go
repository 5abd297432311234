package handlers

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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
	"github.com/boighar/backoffice/internal/middleware"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, accountID string, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) GetSale(ctx context.Context, accountID, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, accountID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) ListSales(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Sale, string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Sale), args.String(1), args.Error(2)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSaleService *MockSaleService
	jwtSecret       string
	accountID       string
	userID          string
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.accountID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockSaleService = new(MockSaleService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerSaleRoutes(v1, suite.mockSaleService)
}

func (suite *SaleHandlerTestSuite) generateTestToken() string {
	claims := middleware.SessionClaims{
		AccountID: suite.accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "backoffice-test",
			Subject:   suite.userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SaleHandlerTestSuite) doRequest(method, url string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SaleHandlerTestSuite) TestCreateSale_Success() {
	req := dto.CreateSaleRequest{
		Date:          "2026-03-10",
		PaymentMethod: "CASH",
		Items: []dto.SaleItemRequest{
			{BookID: "book-1", Quantity: 2, UnitPrice: decimal.NewFromInt(600)},
		},
	}

	expected := &domain.Sale{
		SaleID:        uuid.NewString(),
		AccountID:     suite.accountID,
		SaleDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Items:         []domain.SaleItem{{BookID: "book-1", Quantity: 2, UnitPrice: decimal.NewFromInt(600)}},
		Subtotal:      decimal.NewFromInt(1200),
		Total:         decimal.NewFromInt(1200),
		PaymentMethod: domain.SalePaymentCash,
	}

	suite.mockSaleService.On("CreateSale",
		mock.Anything,
		suite.accountID,
		mock.MatchedBy(func(r dto.CreateSaleRequest) bool {
			return r.PaymentMethod == "CASH" && len(r.Items) == 1
		}),
		suite.userID,
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", req, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.SaleID, resp.SaleID)
	suite.True(resp.Total.Equal(decimal.NewFromInt(1200)))
	suite.True(resp.DueAmount.IsZero())
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSale_ValidationErrorFromService() {
	req := dto.CreateSaleRequest{
		Date:          "2026-03-10",
		PaymentMethod: "DUE",
		Items: []dto.SaleItemRequest{
			{BookID: "book-1", Quantity: 1, UnitPrice: decimal.NewFromInt(500)},
		},
	}

	suite.mockSaleService.On("CreateSale", mock.Anything, suite.accountID, mock.Anything, suite.userID).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", req, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSale_InsufficientStockConflict() {
	req := dto.CreateSaleRequest{
		Date:          "2026-03-10",
		PaymentMethod: "CASH",
		Items: []dto.SaleItemRequest{
			{BookID: "book-1", Quantity: 500, UnitPrice: decimal.NewFromInt(600)},
		},
	}

	suite.mockSaleService.On("CreateSale", mock.Anything, suite.accountID, mock.Anything, suite.userID).
		Return(nil, apperrors.ErrInsufficientStock).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", req, true)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSale_MalformedBody() {
	w := suite.doRequest(http.MethodPost, "/api/v1/sales", gin.H{"date": "not-a-date"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateSale")
}

func (suite *SaleHandlerTestSuite) TestCreateSale_NoToken() {
	w := suite.doRequest(http.MethodPost, "/api/v1/sales", dto.CreateSaleRequest{}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateSale")
}

func (suite *SaleHandlerTestSuite) TestGetSale_NotFound() {
	suite.mockSaleService.On("GetSale", mock.Anything, suite.accountID, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/sales/missing", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestListSales_PassesPagination() {
	sales := []domain.Sale{{
		SaleID:        uuid.NewString(),
		AccountID:     suite.accountID,
		SaleDate:      time.Now(),
		Subtotal:      decimal.NewFromInt(300),
		Total:         decimal.NewFromInt(300),
		PaymentMethod: domain.SalePaymentCash,
	}}

	suite.mockSaleService.On("ListSales", mock.Anything, suite.accountID, 10, "cursor-abc").
		Return(sales, "cursor-def", nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/sales?limit=10&nextToken=cursor-abc", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListSalesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Sales, 1)
	suite.Equal("cursor-def", resp.NextToken)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func TestSaleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
