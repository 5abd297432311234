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

type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
}

// NewTransferService creates a new transfer service.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade) portssvc.TransferSvcFacade {
	return &transferService{transferRepo: transferRepo}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func (s *transferService) CreateTransfer(ctx context.Context, accountID string, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error) {
	transferDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transfer date", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if req.From == req.To {
		return nil, fmt.Errorf("%w: transfer must move between different accounts", apperrors.ErrValidation)
	}

	transfer := domain.Transfer{
		TransferID:   uuid.NewString(),
		AccountID:    accountID,
		TransferDate: transferDate,
		From:         domain.MoneyAccount(req.From),
		To:           domain.MoneyAccount(req.To),
		Amount:       req.Amount,
		AuditFields:  newAuditFields(userID, time.Now()),
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		s.LogError(ctx, err, "Failed to save transfer", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer recorded",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("from", string(transfer.From)),
		slog.String("to", string(transfer.To)),
	)
	return &transfer, nil
}

func (s *transferService) ListTransfers(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	return s.transferRepo.ListTransfers(ctx, accountID)
}
