package repositories

import (
	"context"

	"github.com/boighar/backoffice/internal/core/domain"
)

// ExpenseRepositoryFacade defines persistence operations for expenses.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error)
}

// DonationRepositoryFacade defines persistence operations for donations.
type DonationRepositoryFacade interface {
	SaveDonation(ctx context.Context, donation domain.Donation) error
	ListDonations(ctx context.Context, accountID string) ([]domain.Donation, error)
}

// CapitalRepositoryFacade defines persistence operations for capital rows.
type CapitalRepositoryFacade interface {
	SaveCapital(ctx context.Context, capital domain.Capital) error
	ListCapital(ctx context.Context, accountID string) ([]domain.Capital, error)
}

// TransferRepositoryFacade defines persistence operations for transfers.
type TransferRepositoryFacade interface {
	SaveTransfer(ctx context.Context, transfer domain.Transfer) error
	ListTransfers(ctx context.Context, accountID string) ([]domain.Transfer, error)
}

// OfficeAssetRepositoryFacade defines persistence operations for fixed assets.
type OfficeAssetRepositoryFacade interface {
	SaveOfficeAsset(ctx context.Context, asset domain.OfficeAsset) error
	ListOfficeAssets(ctx context.Context, accountID string) ([]domain.OfficeAsset, error)
}

// PurchaseRepositoryFacade defines persistence operations for purchases.
// SavePurchase atomically inserts the purchase, increments stock for every
// item and writes the PayableCreated ledger entry for credit purchases.
type PurchaseRepositoryFacade interface {
	SavePurchase(ctx context.Context, purchase domain.Purchase, payable *domain.LedgerEntry) error
	ListPurchases(ctx context.Context, accountID string) ([]domain.Purchase, error)
}
