package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/ledger"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
)

// snapshotService assembles the full record set and hands it to the ledger
// aggregator. Fetches run concurrently; any failure aborts the whole
// snapshot, so a partially loaded store can never skew the totals.
type snapshotService struct {
	BaseService
	repos *portsrepo.RepositoryProvider
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(repos *portsrepo.RepositoryProvider) portssvc.SnapshotSvcFacade {
	return &snapshotService{repos: repos}
}

var _ portssvc.SnapshotSvcFacade = (*snapshotService)(nil)

func (s *snapshotService) SnapshotAsOf(ctx context.Context, accountID string, cutoff ledger.Cutoff) (*ledger.Result, error) {
	var rs ledger.RecordSet

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rs.Sales, err = s.repos.SaleRepo.ListSales(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.Expenses, err = s.repos.ExpenseRepo.ListExpenses(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.Donations, err = s.repos.DonationRepo.ListDonations(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.Capital, err = s.repos.CapitalRepo.ListCapital(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.Transfers, err = s.repos.TransferRepo.ListTransfers(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.Entries, err = s.repos.LedgerRepo.ListEntries(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.Returns, err = s.repos.ReturnRepo.ListReturns(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.Purchases, err = s.repos.PurchaseRepo.ListPurchases(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.OfficeAssets, err = s.repos.OfficeAssetRepo.ListOfficeAssets(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		rs.Books, err = s.repos.BookRepo.ListBooks(gctx, accountID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Snapshot aborted, store fetch failed", slog.String("account_id", accountID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFetchFailure, err)
	}

	result := ledger.Snapshot(rs, cutoff)
	if result.SkippedEntries > 0 {
		s.LogWarn(ctx, "Snapshot skipped unclassifiable ledger entries",
			slog.Int("skipped", result.SkippedEntries),
			slog.String("account_id", accountID),
		)
	}
	return &result, nil
}
