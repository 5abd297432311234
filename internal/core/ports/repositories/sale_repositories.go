package repositories

import (
	"context"

	"github.com/boighar/backoffice/internal/core/domain"
)

// SaleRepositoryFacade defines persistence operations for sales.
//
// SaveSale performs the whole mutation atomically: the sale row, the
// conditional stock decrement for every item (failing with
// apperrors.ErrInsufficientStock on oversell), the optional DueCreated ledger
// entry for due/split sales, and the customer's cached due balance bump.
type SaleRepositoryFacade interface {
	SaveSale(ctx context.Context, sale domain.Sale, dueEntry *domain.LedgerEntry) error
	FindSaleByID(ctx context.Context, accountID, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, accountID string) ([]domain.Sale, error)
	ListSalesByCustomer(ctx context.Context, accountID, customerID string) ([]domain.Sale, error)
	// ListSalesPaged returns up to limit sales ordered newest first plus the
	// next-page token, empty when exhausted.
	ListSalesPaged(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Sale, string, error)
}

// SalesReturnRepositoryFacade defines persistence operations for returns.
// SaveReturn atomically inserts the return, restores stock for every item and
// reduces the customer's cached due balance when the refund method is
// AdjustDue.
type SalesReturnRepositoryFacade interface {
	SaveReturn(ctx context.Context, ret domain.SalesReturn) error
	ListReturns(ctx context.Context, accountID string) ([]domain.SalesReturn, error)
	ListReturnsByCustomer(ctx context.Context, accountID, customerID string) ([]domain.SalesReturn, error)
}
