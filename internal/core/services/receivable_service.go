package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
)

// receivableService reads and settles the receivable/payable ledger.
// Settlement writes a Paid payment row and flips the pending row inside one
// transaction, so a pending row settles exactly once.
type receivableService struct {
	BaseService
	ledgerRepo portsrepo.LedgerEntryRepositoryFacade
}

// NewReceivableService creates a new receivable service.
func NewReceivableService(ledgerRepo portsrepo.LedgerEntryRepositoryFacade) portssvc.ReceivableSvcFacade {
	return &receivableService{ledgerRepo: ledgerRepo}
}

var _ portssvc.ReceivableSvcFacade = (*receivableService)(nil)

func (s *receivableService) ListEntries(ctx context.Context, accountID string, entryType domain.EntryType, pendingOnly bool) ([]domain.LedgerEntry, error) {
	if pendingOnly {
		return s.ledgerRepo.ListPendingEntries(ctx, accountID, entryType)
	}
	entries, err := s.ledgerRepo.ListEntries(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if entryType == "" {
		return entries, nil
	}
	filtered := entries[:0]
	for _, e := range entries {
		if e.Type == entryType {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *receivableService) AddPayment(ctx context.Context, accountID, entryID string, req dto.AddPaymentRequest, userID string) (*domain.LedgerEntry, error) {
	return s.settle(ctx, accountID, entryID, req, userID, domain.EntryReceivable)
}

func (s *receivableService) PayPayable(ctx context.Context, accountID, entryID string, req dto.AddPaymentRequest, userID string) (*domain.LedgerEntry, error) {
	return s.settle(ctx, accountID, entryID, req, userID, domain.EntryPayable)
}

func (s *receivableService) settle(ctx context.Context, accountID, entryID string, req dto.AddPaymentRequest, userID string, wantType domain.EntryType) (*domain.LedgerEntry, error) {
	paymentDate := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payment date", apperrors.ErrValidation)
		}
		paymentDate = parsed
	}
	method := domain.MoneyAccount(req.PaymentMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: payment method must be cash or bank", apperrors.ErrValidation)
	}

	pending, err := s.ledgerRepo.FindEntryByID(ctx, accountID, entryID)
	if err != nil {
		return nil, err
	}
	if pending.Type != wantType {
		return nil, fmt.Errorf("%w: entry %s is not a %s", apperrors.ErrValidation, entryID, wantType)
	}
	if pending.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrAlreadySettled, entryID)
	}

	kind := domain.KindPaymentReceived
	if wantType == domain.EntryPayable {
		kind = domain.KindPaymentSent
	}

	payment := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		AccountID:     accountID,
		CustomerID:    pending.CustomerID,
		SupplierName:  pending.SupplierName,
		DueDate:       paymentDate,
		Type:          wantType,
		Kind:          kind,
		Amount:        pending.Amount,
		Status:        domain.StatusPaid,
		PaymentMethod: method,
		Description:   fmt.Sprintf("Settles %s", pending.EntryID),
		AuditFields:   newAuditFields(userID, time.Now()),
	}

	if err := s.ledgerRepo.Settle(ctx, *pending, payment); err != nil {
		s.LogError(ctx, err, "Failed to settle ledger entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry settled",
		slog.String("entry_id", pending.EntryID),
		slog.String("payment_id", payment.EntryID),
		slog.String("kind", string(kind)),
	)
	return &payment, nil
}
