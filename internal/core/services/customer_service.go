package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/core/ledger"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
)

// customerService manages customers and owns the due balance reconciliation.
// The cached DueBalance is a read optimization; Reconcile recomputes the
// authoritative value from the event stores and optionally repairs the cache.
type customerService struct {
	BaseService
	custRepo   portsrepo.CustomerRepositoryFacade
	saleRepo   portsrepo.SaleRepositoryFacade
	ledgerRepo portsrepo.LedgerEntryRepositoryFacade
	returnRepo portsrepo.SalesReturnRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(custRepo portsrepo.CustomerRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade, ledgerRepo portsrepo.LedgerEntryRepositoryFacade, returnRepo portsrepo.SalesReturnRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{custRepo: custRepo, saleRepo: saleRepo, ledgerRepo: ledgerRepo, returnRepo: returnRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, accountID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID:     uuid.NewString(),
		AccountID:      accountID,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningBalance: req.OpeningBalance,
		DueBalance:     req.OpeningBalance,
		AuditFields:    newAuditFields(userID, time.Now()),
	}

	if err := s.custRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, accountID, customerID string) (*domain.Customer, error) {
	return s.custRepo.FindCustomerByID(ctx, accountID, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, accountID string) ([]domain.Customer, error) {
	return s.custRepo.ListCustomers(ctx, accountID)
}

func (s *customerService) UpdateCustomer(ctx context.Context, accountID, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.custRepo.FindCustomerByID(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = userID

	if err := s.custRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Reconcile(ctx context.Context, accountID, customerID string, repair bool, userID string) (*domain.ReconciliationResult, error) {
	customer, err := s.custRepo.FindCustomerByID(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}
	return s.reconcileOne(ctx, accountID, customer, repair, userID)
}

func (s *customerService) ReconcileAll(ctx context.Context, accountID string, repair bool, userID string) ([]domain.ReconciliationResult, error) {
	customers, err := s.custRepo.ListCustomers(ctx, accountID)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ReconciliationResult, 0, len(customers))
	for i := range customers {
		result, err := s.reconcileOne(ctx, accountID, &customers[i], repair, userID)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

func (s *customerService) reconcileOne(ctx context.Context, accountID string, customer *domain.Customer, repair bool, userID string) (*domain.ReconciliationResult, error) {
	sales, err := s.saleRepo.ListSalesByCustomer(ctx, accountID, customer.CustomerID)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListEntriesByCustomer(ctx, accountID, customer.CustomerID)
	if err != nil {
		return nil, err
	}
	returns, err := s.returnRepo.ListReturnsByCustomer(ctx, accountID, customer.CustomerID)
	if err != nil {
		return nil, err
	}

	recomputed := ledger.CustomerDue(customer.OpeningBalance, sales, entries, returns)
	drift := customer.DueBalance.Sub(recomputed)

	result := domain.ReconciliationResult{
		CustomerID: customer.CustomerID,
		Name:       customer.Name,
		Cached:     customer.DueBalance,
		Recomputed: recomputed,
		Drift:      drift,
	}

	if !drift.IsZero() {
		s.LogWarn(ctx, "Due balance drift detected",
			slog.String("customer_id", customer.CustomerID),
			slog.String("cached", customer.DueBalance.String()),
			slog.String("recomputed", recomputed.String()),
		)
		if repair {
			if err := s.custRepo.UpdateDueBalance(ctx, accountID, customer.CustomerID, recomputed, userID, time.Now()); err != nil {
				s.LogError(ctx, err, "Failed to repair due balance", slog.String("customer_id", customer.CustomerID))
				return nil, err
			}
			result.Repaired = true
		}
	}
	return &result, nil
}
