package services

import (
	"context"
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/core/ledger"
)

// SnapshotSvcFacade computes point-in-time balance snapshots.
type SnapshotSvcFacade interface {
	// SnapshotAsOf fetches every store and aggregates the position as of the
	// cutoff. A failed fetch of any store fails the whole snapshot.
	SnapshotAsOf(ctx context.Context, accountID string, cutoff ledger.Cutoff) (*ledger.Result, error)
}

// ReportingSvcFacade builds the named reports. Composition and formatting
// only; all classification lives in the ledger package.
type ReportingSvcFacade interface {
	BalanceSheet(ctx context.Context, accountID string, asOf time.Time) (*domain.BalanceSheetReport, error)
	ProfitAndLoss(ctx context.Context, accountID string, from, to time.Time) (*domain.ProfitAndLossReport, error)
	PendingReceivables(ctx context.Context, accountID string) ([]domain.PendingReceivableRow, error)
	ReceivedPayments(ctx context.Context, accountID string, from, to time.Time) ([]domain.ReceivedPaymentRow, error)
	CustomerStatement(ctx context.Context, accountID, customerID string) (*domain.CustomerStatement, error)
}
