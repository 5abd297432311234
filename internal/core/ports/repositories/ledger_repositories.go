package repositories

import (
	"context"
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
)

// LedgerEntryRepositoryFacade defines persistence operations for the
// receivable/payable ledger.
type LedgerEntryRepositoryFacade interface {
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
	FindEntryByID(ctx context.Context, accountID, entryID string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, accountID string) ([]domain.LedgerEntry, error)
	ListEntriesByCustomer(ctx context.Context, accountID, customerID string) ([]domain.LedgerEntry, error)
	ListPendingEntries(ctx context.Context, accountID string, entryType domain.EntryType) ([]domain.LedgerEntry, error)
	ListPaidReceivablesBetween(ctx context.Context, accountID string, from, to time.Time) ([]domain.ReceivedPaymentRow, error)

	// Settle atomically flips the pending row to Paid, inserts the settling
	// payment row, and (for receivables) reduces the customer's cached due
	// balance. It fails with apperrors.ErrAlreadySettled if the pending row
	// was settled concurrently: Pending -> Paid happens exactly once.
	Settle(ctx context.Context, pending domain.LedgerEntry, payment domain.LedgerEntry) error
}
