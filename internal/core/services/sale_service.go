package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
)

// saleService records counter sales and opens receivables for due and split
// sales inside the same transaction as the sale itself.
type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
	bookRepo portsrepo.BookRepositoryFacade
	custRepo portsrepo.CustomerRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, bookRepo portsrepo.BookRepositoryFacade, custRepo portsrepo.CustomerRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo, bookRepo: bookRepo, custRepo: custRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, accountID string, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	saleDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sale date", apperrors.ErrValidation)
	}

	items := make([]domain.SaleItem, len(req.Items))
	bookIDs := make([]string, len(req.Items))
	subtotal := decimal.Zero
	for i, it := range req.Items {
		items[i] = domain.SaleItem{BookID: it.BookID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
		bookIDs[i] = it.BookID
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}

	if req.Discount.IsNegative() || req.Discount.GreaterThan(subtotal) {
		return nil, fmt.Errorf("%w: discount must be between zero and the subtotal", apperrors.ErrValidation)
	}
	total := subtotal.Sub(req.Discount)

	method := domain.SalePaymentMethod(req.PaymentMethod)
	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		AccountID:     accountID,
		SaleDate:      saleDate,
		CustomerID:    req.CustomerID,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      req.Discount,
		Total:         total,
		PaymentMethod: method,
		AuditFields:   newAuditFields(userID, time.Now()),
	}

	switch method {
	case domain.SalePaymentSplit:
		split := domain.MoneyAccount(req.SplitPaymentMethod)
		if !split.Valid() {
			return nil, fmt.Errorf("%w: split sales need a cash or bank paid portion", apperrors.ErrValidation)
		}
		if !req.AmountPaid.IsPositive() || req.AmountPaid.GreaterThanOrEqual(total) {
			return nil, fmt.Errorf("%w: split amount paid must be positive and below the total", apperrors.ErrValidation)
		}
		sale.SplitPaymentMethod = split
		sale.AmountPaid = req.AmountPaid
	case domain.SalePaymentCredit:
		sale.CreditApplied = total
	}

	if sale.DueAmount().IsPositive() || method == domain.SalePaymentCredit {
		if req.CustomerID == "" {
			return nil, fmt.Errorf("%w: due, split and credit sales need a customer", apperrors.ErrValidation)
		}
	}
	if req.CustomerID != "" {
		if _, err := s.custRepo.FindCustomerByID(ctx, accountID, req.CustomerID); err != nil {
			return nil, err
		}
	}

	books, err := s.bookRepo.FindBooksByIDs(ctx, accountID, bookIDs)
	if err != nil {
		return nil, err
	}
	requested := make(map[string]int64, len(items))
	for _, item := range items {
		requested[item.BookID] += item.Quantity
	}
	for _, id := range bookIDs {
		book, ok := books[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown book %s", apperrors.ErrNotFound, id)
		}
		// The conditional stock update inside SaveSale stays authoritative
		// under concurrent sales; this rejects an oversell before opening a
		// transaction.
		if requested[id] > book.Stock {
			return nil, fmt.Errorf("%w: book %s", apperrors.ErrInsufficientStock, id)
		}
	}

	var dueEntry *domain.LedgerEntry
	if due := sale.DueAmount(); due.IsPositive() {
		dueEntry = &domain.LedgerEntry{
			EntryID:     uuid.NewString(),
			AccountID:   accountID,
			CustomerID:  req.CustomerID,
			DueDate:     saleDate,
			Type:        domain.EntryReceivable,
			Kind:        domain.KindDueCreated,
			Amount:      due,
			Status:      domain.StatusPending,
			Description: fmt.Sprintf("Due from sale %s", sale.SaleID),
			AuditFields: sale.AuditFields,
		}
	}

	if err := s.saleRepo.SaveSale(ctx, sale, dueEntry); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("payment_method", string(method)),
		slog.String("total", total.String()),
	)
	return &sale, nil
}

func (s *saleService) GetSale(ctx context.Context, accountID, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, accountID, saleID)
}

func (s *saleService) ListSales(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Sale, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.saleRepo.ListSalesPaged(ctx, accountID, limit, nextToken)
}
