package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/boighar/backoffice/internal/core/domain"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/core/services"
	"github.com/boighar/backoffice/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustRepo   *MockCustomerRepository
	mockSaleRepo   *MockSaleRepository
	mockLedgerRepo *MockLedgerEntryRepository
	mockReturnRepo *MockSalesReturnRepository
	service        portssvc.CustomerSvcFacade
	accountID      string
	userID         string
	customer       domain.Customer
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustRepo = new(MockCustomerRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockLedgerRepo = new(MockLedgerEntryRepository)
	suite.mockReturnRepo = new(MockSalesReturnRepository)
	suite.service = services.NewCustomerService(suite.mockCustRepo, suite.mockSaleRepo, suite.mockLedgerRepo, suite.mockReturnRepo)

	suite.accountID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.customer = domain.Customer{
		CustomerID:     uuid.NewString(),
		AccountID:      suite.accountID,
		Name:           "Rahim Book Corner",
		OpeningBalance: decimal.NewFromInt(100),
		DueBalance:     decimal.NewFromInt(650),
	}
}

// Opening 100, due sale 500, split remainder 600, payment 400, AdjustDue
// return 150 gives 650. The cache agrees, so no drift and no repair.
func (suite *CustomerServiceTestSuite) TestReconcile_CleanCacheReportsNoDrift() {
	ctx := context.Background()
	custID := suite.customer.CustomerID

	sales := []domain.Sale{
		{Total: decimal.NewFromInt(500), PaymentMethod: domain.SalePaymentDue},
		{Total: decimal.NewFromInt(1000), PaymentMethod: domain.SalePaymentSplit, AmountPaid: decimal.NewFromInt(400)},
	}
	entries := []domain.LedgerEntry{
		{Type: domain.EntryReceivable, Kind: domain.KindPaymentReceived, Status: domain.StatusPaid, Amount: decimal.NewFromInt(400)},
	}
	returns := []domain.SalesReturn{
		{RefundMethod: domain.RefundAdjustDue, TotalReturnValue: decimal.NewFromInt(150)},
	}

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.accountID, custID).Return(&suite.customer, nil).Once()
	suite.mockSaleRepo.On("ListSalesByCustomer", ctx, suite.accountID, custID).Return(sales, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByCustomer", ctx, suite.accountID, custID).Return(entries, nil).Once()
	suite.mockReturnRepo.On("ListReturnsByCustomer", ctx, suite.accountID, custID).Return(returns, nil).Once()

	result, err := suite.service.Reconcile(ctx, suite.accountID, custID, true, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Recomputed.Equal(decimal.NewFromInt(650)))
	suite.True(result.Drift.IsZero())
	suite.False(result.Repaired)
	suite.mockCustRepo.AssertNotCalled(suite.T(), "UpdateDueBalance")
}

func (suite *CustomerServiceTestSuite) TestReconcile_DriftRepairedWhenRequested() {
	ctx := context.Background()
	drifted := suite.customer
	drifted.DueBalance = decimal.NewFromInt(900)
	custID := drifted.CustomerID

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.accountID, custID).Return(&drifted, nil).Once()
	suite.mockSaleRepo.On("ListSalesByCustomer", ctx, suite.accountID, custID).
		Return([]domain.Sale{{Total: decimal.NewFromInt(500), PaymentMethod: domain.SalePaymentDue}}, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByCustomer", ctx, suite.accountID, custID).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockReturnRepo.On("ListReturnsByCustomer", ctx, suite.accountID, custID).Return([]domain.SalesReturn{}, nil).Once()
	suite.mockCustRepo.On("UpdateDueBalance", ctx, suite.accountID, custID,
		mock.MatchedBy(func(b decimal.Decimal) bool { return b.Equal(decimal.NewFromInt(600)) }),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.Reconcile(ctx, suite.accountID, custID, true, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Drift.Equal(decimal.NewFromInt(300)))
	suite.True(result.Repaired)
	suite.mockCustRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestReconcile_DriftLeftAloneWithoutRepair() {
	ctx := context.Background()
	drifted := suite.customer
	drifted.DueBalance = decimal.NewFromInt(900)
	custID := drifted.CustomerID

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.accountID, custID).Return(&drifted, nil).Once()
	suite.mockSaleRepo.On("ListSalesByCustomer", ctx, suite.accountID, custID).Return([]domain.Sale{}, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByCustomer", ctx, suite.accountID, custID).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockReturnRepo.On("ListReturnsByCustomer", ctx, suite.accountID, custID).Return([]domain.SalesReturn{}, nil).Once()

	result, err := suite.service.Reconcile(ctx, suite.accountID, custID, false, suite.userID)

	suite.Require().NoError(err)
	suite.False(result.Repaired)
	suite.mockCustRepo.AssertNotCalled(suite.T(), "UpdateDueBalance")
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DueBalanceStartsAtOpening() {
	ctx := context.Background()

	suite.mockCustRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.DueBalance.Equal(c.OpeningBalance) && c.AccountID == suite.accountID
	})).Return(nil).Once()

	created, err := suite.service.CreateCustomer(ctx, suite.accountID, dtoCreateCustomer("Karim Traders", 250), suite.userID)

	suite.Require().NoError(err)
	suite.True(created.DueBalance.Equal(decimal.NewFromInt(250)))
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Minute)
	suite.mockCustRepo.AssertExpectations(suite.T())
}

func dtoCreateCustomer(name string, opening int64) dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{Name: name, OpeningBalance: decimal.NewFromInt(opening)}
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
