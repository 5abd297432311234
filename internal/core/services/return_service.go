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

type returnService struct {
	BaseService
	returnRepo portsrepo.SalesReturnRepositoryFacade
	bookRepo   portsrepo.BookRepositoryFacade
	custRepo   portsrepo.CustomerRepositoryFacade
}

// NewReturnService creates a new sales return service.
func NewReturnService(returnRepo portsrepo.SalesReturnRepositoryFacade, bookRepo portsrepo.BookRepositoryFacade, custRepo portsrepo.CustomerRepositoryFacade) portssvc.ReturnSvcFacade {
	return &returnService{returnRepo: returnRepo, bookRepo: bookRepo, custRepo: custRepo}
}

var _ portssvc.ReturnSvcFacade = (*returnService)(nil)

func (s *returnService) CreateReturn(ctx context.Context, accountID string, req dto.CreateReturnRequest, userID string) (*domain.SalesReturn, error) {
	returnDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid return date", apperrors.ErrValidation)
	}

	method := domain.RefundMethod(req.RefundMethod)
	if method == domain.RefundAdjustDue && req.CustomerID == "" {
		return nil, fmt.Errorf("%w: due-adjusting returns need a customer", apperrors.ErrValidation)
	}
	if req.CustomerID != "" {
		if _, err := s.custRepo.FindCustomerByID(ctx, accountID, req.CustomerID); err != nil {
			return nil, err
		}
	}

	items := make([]domain.SaleItem, len(req.Items))
	bookIDs := make([]string, len(req.Items))
	total := decimal.Zero
	for i, it := range req.Items {
		items[i] = domain.SaleItem{BookID: it.BookID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
		bookIDs[i] = it.BookID
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
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

	ret := domain.SalesReturn{
		ReturnID:         uuid.NewString(),
		AccountID:        accountID,
		ReturnDate:       returnDate,
		CustomerID:       req.CustomerID,
		Items:            items,
		TotalReturnValue: total,
		RefundMethod:     method,
		AuditFields:      newAuditFields(userID, time.Now()),
	}

	if err := s.returnRepo.SaveReturn(ctx, ret); err != nil {
		s.LogError(ctx, err, "Failed to save return", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Return recorded",
		slog.String("return_id", ret.ReturnID),
		slog.String("refund_method", string(method)),
		slog.String("value", total.String()),
	)
	return &ret, nil
}

func (s *returnService) ListReturns(ctx context.Context, accountID string) ([]domain.SalesReturn, error) {
	return s.returnRepo.ListReturns(ctx, accountID)
}
