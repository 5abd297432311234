package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, dueEntry *domain.LedgerEntry) error {
	args := m.Called(ctx, sale, dueEntry)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, accountID, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, accountID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, accountID string) ([]domain.Sale, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSalesByCustomer(ctx context.Context, accountID, customerID string) ([]domain.Sale, error) {
	args := m.Called(ctx, accountID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSalesPaged(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Sale, string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Sale), args.String(1), args.Error(2)
}

// --- Mock BookRepository ---
type MockBookRepository struct {
	mock.Mock
}

var _ portsrepo.BookRepositoryFacade = (*MockBookRepository)(nil)

func (m *MockBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) FindBookByID(ctx context.Context, accountID, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, accountID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepository) FindBooksByIDs(ctx context.Context, accountID string, bookIDs []string) (map[string]domain.Book, error) {
	args := m.Called(ctx, accountID, bookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Book), args.Error(1)
}

func (m *MockBookRepository) ListBooks(ctx context.Context, accountID string) ([]domain.Book, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

func (m *MockBookRepository) UpdateBook(ctx context.Context, book domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, accountID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, accountID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, accountID string) ([]domain.Customer, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateDueBalance(ctx context.Context, accountID, customerID string, balance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, customerID, balance, userID, now)
	return args.Error(0)
}

// --- Mock LedgerEntryRepository ---
type MockLedgerEntryRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*MockLedgerEntryRepository)(nil)

func (m *MockLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) FindEntryByID(ctx context.Context, accountID, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListEntries(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListEntriesByCustomer(ctx context.Context, accountID, customerID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListPendingEntries(ctx context.Context, accountID string, entryType domain.EntryType) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, entryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListPaidReceivablesBetween(ctx context.Context, accountID string, from, to time.Time) ([]domain.ReceivedPaymentRow, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceivedPaymentRow), args.Error(1)
}

func (m *MockLedgerEntryRepository) Settle(ctx context.Context, pending domain.LedgerEntry, payment domain.LedgerEntry) error {
	args := m.Called(ctx, pending, payment)
	return args.Error(0)
}

// --- Mock SalesReturnRepository ---
type MockSalesReturnRepository struct {
	mock.Mock
}

var _ portsrepo.SalesReturnRepositoryFacade = (*MockSalesReturnRepository)(nil)

func (m *MockSalesReturnRepository) SaveReturn(ctx context.Context, ret domain.SalesReturn) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *MockSalesReturnRepository) ListReturns(ctx context.Context, accountID string) ([]domain.SalesReturn, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesReturn), args.Error(1)
}

func (m *MockSalesReturnRepository) ListReturnsByCustomer(ctx context.Context, accountID, customerID string) ([]domain.SalesReturn, error) {
	args := m.Called(ctx, accountID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesReturn), args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// --- Mock DonationRepository ---
type MockDonationRepository struct {
	mock.Mock
}

var _ portsrepo.DonationRepositoryFacade = (*MockDonationRepository)(nil)

func (m *MockDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) ListDonations(ctx context.Context, accountID string) ([]domain.Donation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

// --- Mock CapitalRepository ---
type MockCapitalRepository struct {
	mock.Mock
}

var _ portsrepo.CapitalRepositoryFacade = (*MockCapitalRepository)(nil)

func (m *MockCapitalRepository) SaveCapital(ctx context.Context, capital domain.Capital) error {
	args := m.Called(ctx, capital)
	return args.Error(0)
}

func (m *MockCapitalRepository) ListCapital(ctx context.Context, accountID string) ([]domain.Capital, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Capital), args.Error(1)
}

// --- Mock TransferRepository ---
type MockTransferRepository struct {
	mock.Mock
}

var _ portsrepo.TransferRepositoryFacade = (*MockTransferRepository)(nil)

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepositoryFacade = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase, payable *domain.LedgerEntry) error {
	args := m.Called(ctx, purchase, payable)
	return args.Error(0)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, accountID string) ([]domain.Purchase, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

// --- Mock OfficeAssetRepository ---
type MockOfficeAssetRepository struct {
	mock.Mock
}

var _ portsrepo.OfficeAssetRepositoryFacade = (*MockOfficeAssetRepository)(nil)

func (m *MockOfficeAssetRepository) SaveOfficeAsset(ctx context.Context, asset domain.OfficeAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockOfficeAssetRepository) ListOfficeAssets(ctx context.Context, accountID string) ([]domain.OfficeAsset, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfficeAsset), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
