package services

import (
	"context"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/dto"
)

// SaleSvcFacade records and reads sales.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, accountID string, req dto.CreateSaleRequest, userID string) (*domain.Sale, error)
	GetSale(ctx context.Context, accountID, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Sale, string, error)
}

// ExpenseSvcFacade records and reads expenses.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, accountID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error)
}

// FundingSvcFacade records donations and capital contributions.
type FundingSvcFacade interface {
	CreateDonation(ctx context.Context, accountID string, req dto.CreateDonationRequest, userID string) (*domain.Donation, error)
	ListDonations(ctx context.Context, accountID string) ([]domain.Donation, error)
	CreateCapital(ctx context.Context, accountID string, req dto.CreateCapitalRequest, userID string) (*domain.Capital, error)
	ListCapital(ctx context.Context, accountID string) ([]domain.Capital, error)
}

// TransferSvcFacade moves money between cash and bank.
type TransferSvcFacade interface {
	CreateTransfer(ctx context.Context, accountID string, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error)
	ListTransfers(ctx context.Context, accountID string) ([]domain.Transfer, error)
}

// ReturnSvcFacade records sales returns.
type ReturnSvcFacade interface {
	CreateReturn(ctx context.Context, accountID string, req dto.CreateReturnRequest, userID string) (*domain.SalesReturn, error)
	ListReturns(ctx context.Context, accountID string) ([]domain.SalesReturn, error)
}

// PurchaseSvcFacade records stock purchases.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, accountID string, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, accountID string) ([]domain.Purchase, error)
}

// OfficeAssetSvcFacade records fixed assets.
type OfficeAssetSvcFacade interface {
	CreateOfficeAsset(ctx context.Context, accountID string, req dto.CreateOfficeAssetRequest, userID string) (*domain.OfficeAsset, error)
	ListOfficeAssets(ctx context.Context, accountID string) ([]domain.OfficeAsset, error)
}

// ReceivableSvcFacade reads and settles the receivable/payable ledger.
type ReceivableSvcFacade interface {
	ListEntries(ctx context.Context, accountID string, entryType domain.EntryType, pendingOnly bool) ([]domain.LedgerEntry, error)
	// AddPayment settles a pending DueCreated receivable: the customer pays.
	AddPayment(ctx context.Context, accountID, entryID string, req dto.AddPaymentRequest, userID string) (*domain.LedgerEntry, error)
	// PayPayable settles a pending PayableCreated row: the store pays.
	PayPayable(ctx context.Context, accountID, entryID string, req dto.AddPaymentRequest, userID string) (*domain.LedgerEntry, error)
}
