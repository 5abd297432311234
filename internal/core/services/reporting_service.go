package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/core/ledger"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
)

// reportingService builds the named reports. It composes fetched records and
// ledger computations; every classification rule lives in the ledger package.
type reportingService struct {
	BaseService
	repos       *portsrepo.RepositoryProvider
	snapshotSvc portssvc.SnapshotSvcFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(repos *portsrepo.RepositoryProvider, snapshotSvc portssvc.SnapshotSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{repos: repos, snapshotSvc: snapshotSvc}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) BalanceSheet(ctx context.Context, accountID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	result, err := s.snapshotSvc.SnapshotAsOf(ctx, accountID, ledger.EndOfDay(asOf))
	if err != nil {
		return nil, err
	}

	snap := result.Snapshot
	return &domain.BalanceSheetReport{
		AsOf:             snap.AsOf,
		Snapshot:         snap,
		TotalAssets:      snap.TotalAssets(),
		TotalLiabilities: snap.TotalLiabilities(),
		Equity:           snap.Equity,
	}, nil
}

func (s *reportingService) ProfitAndLoss(ctx context.Context, accountID string, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end before start", apperrors.ErrValidation)
	}

	var (
		sales     []domain.Sale
		expenses  []domain.Expense
		donations []domain.Donation
		returns   []domain.SalesReturn
		books     []domain.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.repos.SaleRepo.ListSales(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.repos.ExpenseRepo.ListExpenses(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		donations, err = s.repos.DonationRepo.ListDonations(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		returns, err = s.repos.ReturnRepo.ListReturns(gctx, accountID)
		return err
	})
	g.Go(func() (err error) {
		books, err = s.repos.BookRepo.ListBooks(gctx, accountID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFetchFailure, err)
	}

	prices := make(map[string]decimal.Decimal, len(books))
	for _, b := range books {
		prices[b.BookID] = b.ProductionPrice
	}

	report := ledger.ProfitAndLoss(from, to, sales, expenses, donations, returns, prices)
	return &report, nil
}

func (s *reportingService) PendingReceivables(ctx context.Context, accountID string) ([]domain.PendingReceivableRow, error) {
	customers, err := s.repos.CustomerRepo.ListCustomers(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Nonzero means nonzero: a negative balance is credit the store owes the
	// customer and still belongs on the report.
	rows := make([]domain.PendingReceivableRow, 0, len(customers))
	for _, c := range customers {
		if c.DueBalance.IsZero() {
			continue
		}
		rows = append(rows, domain.PendingReceivableRow{
			CustomerID: c.CustomerID,
			Name:       c.Name,
			Phone:      c.Phone,
			DueBalance: c.DueBalance,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].DueBalance.GreaterThan(rows[j].DueBalance)
	})
	return rows, nil
}

func (s *reportingService) ReceivedPayments(ctx context.Context, accountID string, from, to time.Time) ([]domain.ReceivedPaymentRow, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end before start", apperrors.ErrValidation)
	}
	return s.repos.LedgerRepo.ListPaidReceivablesBetween(ctx, accountID, from, ledger.EndOfDay(to).Time())
}

func (s *reportingService) CustomerStatement(ctx context.Context, accountID, customerID string) (*domain.CustomerStatement, error) {
	customer, err := s.repos.CustomerRepo.FindCustomerByID(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}

	sales, err := s.repos.SaleRepo.ListSalesByCustomer(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repos.LedgerRepo.ListEntriesByCustomer(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}
	returns, err := s.repos.ReturnRepo.ListReturnsByCustomer(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.StatementLine, 0, len(sales)+len(entries)+len(returns))
	for _, sale := range sales {
		due := sale.DueAmount()
		if due.IsZero() {
			continue
		}
		lines = append(lines, domain.StatementLine{
			Date:        sale.SaleDate,
			Kind:        "SALE",
			Reference:   sale.SaleID,
			Description: fmt.Sprintf("Sale (%s)", sale.PaymentMethod),
			Amount:      due,
		})
	}
	for _, e := range entries {
		if e.Type != domain.EntryReceivable || e.Kind != domain.KindPaymentReceived || e.Status != domain.StatusPaid {
			continue
		}
		lines = append(lines, domain.StatementLine{
			Date:        e.DueDate,
			Kind:        "PAYMENT",
			Reference:   e.EntryID,
			Description: e.Description,
			Amount:      e.Amount.Neg(),
		})
	}
	for _, r := range returns {
		if r.RefundMethod != domain.RefundAdjustDue {
			continue
		}
		lines = append(lines, domain.StatementLine{
			Date:      r.ReturnDate,
			Kind:      "RETURN",
			Reference: r.ReturnID,
			Amount:    r.TotalReturnValue.Neg(),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	balance := customer.OpeningBalance
	for i := range lines {
		balance = balance.Add(lines[i].Amount)
		lines[i].Balance = balance
	}

	return &domain.CustomerStatement{
		CustomerID:     customer.CustomerID,
		Name:           customer.Name,
		OpeningBalance: customer.OpeningBalance,
		Lines:          lines,
		ClosingBalance: balance,
	}, nil
}
