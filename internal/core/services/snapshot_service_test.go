package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/core/ledger"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/core/services"
)

type SnapshotServiceTestSuite struct {
	suite.Suite
	mockSaleRepo     *MockSaleRepository
	mockExpenseRepo  *MockExpenseRepository
	mockDonationRepo *MockDonationRepository
	mockCapitalRepo  *MockCapitalRepository
	mockTransferRepo *MockTransferRepository
	mockLedgerRepo   *MockLedgerEntryRepository
	mockReturnRepo   *MockSalesReturnRepository
	mockPurchaseRepo *MockPurchaseRepository
	mockAssetRepo    *MockOfficeAssetRepository
	mockBookRepo     *MockBookRepository
	service          portssvc.SnapshotSvcFacade
	accountID        string
}

func (suite *SnapshotServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockDonationRepo = new(MockDonationRepository)
	suite.mockCapitalRepo = new(MockCapitalRepository)
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockLedgerRepo = new(MockLedgerEntryRepository)
	suite.mockReturnRepo = new(MockSalesReturnRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockAssetRepo = new(MockOfficeAssetRepository)
	suite.mockBookRepo = new(MockBookRepository)

	repos := &portsrepo.RepositoryProvider{
		SaleRepo:        suite.mockSaleRepo,
		ExpenseRepo:     suite.mockExpenseRepo,
		DonationRepo:    suite.mockDonationRepo,
		CapitalRepo:     suite.mockCapitalRepo,
		TransferRepo:    suite.mockTransferRepo,
		LedgerRepo:      suite.mockLedgerRepo,
		ReturnRepo:      suite.mockReturnRepo,
		PurchaseRepo:    suite.mockPurchaseRepo,
		OfficeAssetRepo: suite.mockAssetRepo,
		BookRepo:        suite.mockBookRepo,
	}
	suite.service = services.NewSnapshotService(repos)
	suite.accountID = uuid.NewString()
}

func (suite *SnapshotServiceTestSuite) emptyStoresExcept(skip ...string) {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}
	if !skipped["sales"] {
		suite.mockSaleRepo.On("ListSales", mock.Anything, suite.accountID).Return([]domain.Sale{}, nil)
	}
	if !skipped["expenses"] {
		suite.mockExpenseRepo.On("ListExpenses", mock.Anything, suite.accountID).Return([]domain.Expense{}, nil)
	}
	if !skipped["donations"] {
		suite.mockDonationRepo.On("ListDonations", mock.Anything, suite.accountID).Return([]domain.Donation{}, nil)
	}
	if !skipped["capital"] {
		suite.mockCapitalRepo.On("ListCapital", mock.Anything, suite.accountID).Return([]domain.Capital{}, nil)
	}
	if !skipped["transfers"] {
		suite.mockTransferRepo.On("ListTransfers", mock.Anything, suite.accountID).Return([]domain.Transfer{}, nil)
	}
	if !skipped["entries"] {
		suite.mockLedgerRepo.On("ListEntries", mock.Anything, suite.accountID).Return([]domain.LedgerEntry{}, nil)
	}
	if !skipped["returns"] {
		suite.mockReturnRepo.On("ListReturns", mock.Anything, suite.accountID).Return([]domain.SalesReturn{}, nil)
	}
	if !skipped["purchases"] {
		suite.mockPurchaseRepo.On("ListPurchases", mock.Anything, suite.accountID).Return([]domain.Purchase{}, nil)
	}
	if !skipped["assets"] {
		suite.mockAssetRepo.On("ListOfficeAssets", mock.Anything, suite.accountID).Return([]domain.OfficeAsset{}, nil)
	}
	if !skipped["books"] {
		suite.mockBookRepo.On("ListBooks", mock.Anything, suite.accountID).Return([]domain.Book{}, nil)
	}
}

func (suite *SnapshotServiceTestSuite) TestSnapshotAsOf_AggregatesFetchedStores() {
	ctx := context.Background()
	saleDate := time.Date(2024, 12, 1, 11, 0, 0, 0, time.UTC)

	suite.emptyStoresExcept("sales", "capital")
	suite.mockSaleRepo.On("ListSales", mock.Anything, suite.accountID).Return([]domain.Sale{
		{SaleDate: saleDate, Total: decimal.NewFromInt(1200), PaymentMethod: domain.SalePaymentCash},
	}, nil)
	suite.mockCapitalRepo.On("ListCapital", mock.Anything, suite.accountID).Return([]domain.Capital{
		{CapitalDate: saleDate, Source: domain.SourceInitialCapital, Amount: decimal.NewFromInt(5000), PaymentMethod: domain.AccountBank},
	}, nil)

	result, err := suite.service.SnapshotAsOf(ctx, suite.accountID, ledger.EndOfDay(saleDate))

	suite.Require().NoError(err)
	suite.True(result.Snapshot.Cash.Equal(decimal.NewFromInt(1200)))
	suite.True(result.Snapshot.Bank.Equal(decimal.NewFromInt(5000)))
	suite.Zero(result.SkippedEntries)
}

func (suite *SnapshotServiceTestSuite) TestSnapshotAsOf_AnyFetchFailureAbortsWhole() {
	ctx := context.Background()

	suite.emptyStoresExcept("entries")
	suite.mockLedgerRepo.On("ListEntries", mock.Anything, suite.accountID).
		Return(nil, errors.New("connection reset"))

	result, err := suite.service.SnapshotAsOf(ctx, suite.accountID, ledger.Now())

	suite.Require().ErrorIs(err, apperrors.ErrFetchFailure)
	suite.Nil(result)
}

func (suite *SnapshotServiceTestSuite) TestSnapshotAsOf_CountsSkippedEntries() {
	ctx := context.Background()
	day := time.Date(2024, 12, 1, 11, 0, 0, 0, time.UTC)

	suite.emptyStoresExcept("entries")
	suite.mockLedgerRepo.On("ListEntries", mock.Anything, suite.accountID).Return([]domain.LedgerEntry{
		{DueDate: day, Type: domain.EntryReceivable, Kind: "MYSTERY", Status: domain.StatusPaid, Amount: decimal.NewFromInt(100)},
	}, nil)

	result, err := suite.service.SnapshotAsOf(ctx, suite.accountID, ledger.EndOfDay(day))

	suite.Require().NoError(err)
	suite.Equal(1, result.SkippedEntries)
	suite.True(result.Snapshot.Cash.IsZero())
}

func TestSnapshotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotServiceTestSuite))
}
