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

// purchaseService records stock bought from suppliers. A credit purchase
// opens a payable in the same transaction as the stock increment.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	bookRepo     portsrepo.BookRepositoryFacade
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, bookRepo portsrepo.BookRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: purchaseRepo, bookRepo: bookRepo}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, accountID string, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error) {
	purchaseDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchase date", apperrors.ErrValidation)
	}

	items := make([]domain.PurchaseItem, len(req.Items))
	bookIDs := make([]string, len(req.Items))
	total := decimal.Zero
	for i, it := range req.Items {
		items[i] = domain.PurchaseItem{BookID: it.BookID, Quantity: it.Quantity, UnitCost: it.UnitCost}
		bookIDs[i] = it.BookID
		total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(it.Quantity)))
	}

	books, err := s.bookRepo.FindBooksByIDs(ctx, accountID, bookIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range bookIDs {
		if _, ok := books[id]; !ok {
			return nil, fmt.Errorf("%w: unknown book %s", apperrors.ErrNotFound, id)
		}
	}

	now := time.Now()
	purchase := domain.Purchase{
		PurchaseID:    uuid.NewString(),
		AccountID:     accountID,
		PurchaseDate:  purchaseDate,
		SupplierName:  req.SupplierName,
		Items:         items,
		TotalCost:     total,
		PaymentMethod: domain.PurchasePayment(req.PaymentMethod),
		AuditFields:   newAuditFields(userID, now),
	}

	var payable *domain.LedgerEntry
	if purchase.PaymentMethod == domain.PurchaseCredit {
		dueDate := purchaseDate
		if req.DueDate != "" {
			parsed, err := parseDate(req.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid due date", apperrors.ErrValidation)
			}
			dueDate = parsed
		}
		payable = &domain.LedgerEntry{
			EntryID:      uuid.NewString(),
			AccountID:    accountID,
			SupplierName: req.SupplierName,
			DueDate:      dueDate,
			Type:         domain.EntryPayable,
			Kind:         domain.KindPayableCreated,
			Amount:       total,
			Status:       domain.StatusPending,
			Description:  fmt.Sprintf("Credit purchase %s", purchase.PurchaseID),
			AuditFields:  newAuditFields(userID, now),
		}
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase, payable); err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("payment_method", string(purchase.PaymentMethod)),
	)
	return &purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, accountID string) ([]domain.Purchase, error) {
	return s.purchaseRepo.ListPurchases(ctx, accountID)
}
