package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockSaleRepo     *MockSaleRepository
	mockExpenseRepo  *MockExpenseRepository
	mockDonationRepo *MockDonationRepository
	mockLedgerRepo   *MockLedgerEntryRepository
	mockReturnRepo   *MockSalesReturnRepository
	mockCustRepo     *MockCustomerRepository
	mockBookRepo     *MockBookRepository
	service          portssvc.ReportingSvcFacade
	accountID        string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockDonationRepo = new(MockDonationRepository)
	suite.mockLedgerRepo = new(MockLedgerEntryRepository)
	suite.mockReturnRepo = new(MockSalesReturnRepository)
	suite.mockCustRepo = new(MockCustomerRepository)
	suite.mockBookRepo = new(MockBookRepository)

	repos := &portsrepo.RepositoryProvider{
		SaleRepo:     suite.mockSaleRepo,
		ExpenseRepo:  suite.mockExpenseRepo,
		DonationRepo: suite.mockDonationRepo,
		LedgerRepo:   suite.mockLedgerRepo,
		ReturnRepo:   suite.mockReturnRepo,
		CustomerRepo: suite.mockCustRepo,
		BookRepo:     suite.mockBookRepo,
	}
	snapshotSvc := services.NewSnapshotService(repos)
	suite.service = services.NewReportingService(repos, snapshotSvc)
	suite.accountID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestPendingReceivables_NonzeroBalancesOnly() {
	ctx := context.Background()
	customers := []domain.Customer{
		{CustomerID: "c1", Name: "Rahim", DueBalance: decimal.NewFromInt(650)},
		{CustomerID: "c2", Name: "Karim", DueBalance: decimal.Zero},
		{CustomerID: "c3", Name: "Salma", DueBalance: decimal.NewFromInt(1200)},
		{CustomerID: "c4", Name: "Anwar", DueBalance: decimal.NewFromInt(-500)},
	}
	suite.mockCustRepo.On("ListCustomers", ctx, suite.accountID).Return(customers, nil).Once()

	rows, err := suite.service.PendingReceivables(ctx, suite.accountID)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("Salma", rows[0].Name) // largest first
	suite.Equal("Rahim", rows[1].Name)
	// A credit balance is money the store owes back; it stays on the report.
	suite.Equal("Anwar", rows[2].Name)
	suite.True(rows[2].DueBalance.Equal(decimal.NewFromInt(-500)))
}

func (suite *ReportingServiceTestSuite) TestCustomerStatement_RunningBalanceInDateOrder() {
	ctx := context.Background()
	custID := uuid.NewString()
	customer := domain.Customer{
		CustomerID:     custID,
		Name:           "Rahim Book Corner",
		OpeningBalance: decimal.NewFromInt(100),
	}
	day := func(d int) time.Time { return time.Date(2024, 12, d, 11, 0, 0, 0, time.UTC) }

	sales := []domain.Sale{
		{SaleID: "s1", SaleDate: day(5), Total: decimal.NewFromInt(500), PaymentMethod: domain.SalePaymentDue},
		{SaleID: "s2", SaleDate: day(10), Total: decimal.NewFromInt(300), PaymentMethod: domain.SalePaymentCash},
	}
	entries := []domain.LedgerEntry{
		{EntryID: "p1", DueDate: day(8), Type: domain.EntryReceivable, Kind: domain.KindPaymentReceived, Status: domain.StatusPaid, Amount: decimal.NewFromInt(200)},
	}
	returns := []domain.SalesReturn{
		{ReturnID: "r1", ReturnDate: day(12), RefundMethod: domain.RefundAdjustDue, TotalReturnValue: decimal.NewFromInt(150)},
	}

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.accountID, custID).Return(&customer, nil).Once()
	suite.mockSaleRepo.On("ListSalesByCustomer", ctx, suite.accountID, custID).Return(sales, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByCustomer", ctx, suite.accountID, custID).Return(entries, nil).Once()
	suite.mockReturnRepo.On("ListReturnsByCustomer", ctx, suite.accountID, custID).Return(returns, nil).Once()

	statement, err := suite.service.CustomerStatement(ctx, suite.accountID, custID)

	suite.Require().NoError(err)
	// Cash sale s2 has no due effect and is excluded.
	suite.Require().Len(statement.Lines, 3)
	suite.Equal("s1", statement.Lines[0].Reference)
	suite.True(statement.Lines[0].Balance.Equal(decimal.NewFromInt(600)))
	suite.Equal("p1", statement.Lines[1].Reference)
	suite.True(statement.Lines[1].Balance.Equal(decimal.NewFromInt(400)))
	suite.Equal("r1", statement.Lines[2].Reference)
	suite.True(statement.Lines[2].Balance.Equal(decimal.NewFromInt(250)))
	suite.True(statement.ClosingBalance.Equal(decimal.NewFromInt(250)))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_InvalidPeriodRejected() {
	ctx := context.Background()
	from := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.ProfitAndLoss(ctx, suite.accountID, from, to)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_GrossAndNetProfit() {
	ctx := context.Background()
	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	day := time.Date(2024, 12, 10, 11, 0, 0, 0, time.UTC)

	book := domain.Book{BookID: "b1", ProductionPrice: decimal.NewFromInt(100)}
	sales := []domain.Sale{{
		SaleDate:      day,
		Total:         decimal.NewFromInt(1000),
		PaymentMethod: domain.SalePaymentCash,
		Items:         []domain.SaleItem{{BookID: "b1", Quantity: 4, UnitPrice: decimal.NewFromInt(250)}},
	}}
	expenses := []domain.Expense{{ExpenseDate: day, Amount: decimal.NewFromInt(200)}}

	suite.mockSaleRepo.On("ListSales", mock.Anything, suite.accountID).Return(sales, nil)
	suite.mockExpenseRepo.On("ListExpenses", mock.Anything, suite.accountID).Return(expenses, nil)
	suite.mockDonationRepo.On("ListDonations", mock.Anything, suite.accountID).Return([]domain.Donation{}, nil)
	suite.mockReturnRepo.On("ListReturns", mock.Anything, suite.accountID).Return([]domain.SalesReturn{}, nil)
	suite.mockBookRepo.On("ListBooks", mock.Anything, suite.accountID).Return([]domain.Book{book}, nil)

	report, err := suite.service.ProfitAndLoss(ctx, suite.accountID, from, to)

	suite.Require().NoError(err)
	suite.True(report.SalesRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(report.CostOfGoodsSold.Equal(decimal.NewFromInt(400)))
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(600)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(400)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
