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

// fundingService records donations and owner capital. The two share a
// service because both are outside money coming in and the legacy data mixes
// their seed markers.
type fundingService struct {
	BaseService
	donationRepo portsrepo.DonationRepositoryFacade
	capitalRepo  portsrepo.CapitalRepositoryFacade
}

// NewFundingService creates a new funding service.
func NewFundingService(donationRepo portsrepo.DonationRepositoryFacade, capitalRepo portsrepo.CapitalRepositoryFacade) portssvc.FundingSvcFacade {
	return &fundingService{donationRepo: donationRepo, capitalRepo: capitalRepo}
}

var _ portssvc.FundingSvcFacade = (*fundingService)(nil)

func (s *fundingService) CreateDonation(ctx context.Context, accountID string, req dto.CreateDonationRequest, userID string) (*domain.Donation, error) {
	donationDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid donation date", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: donation amount must be positive", apperrors.ErrValidation)
	}

	donation := domain.Donation{
		DonationID:    uuid.NewString(),
		AccountID:     accountID,
		DonationDate:  donationDate,
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		PaymentMethod: domain.MoneyAccount(req.PaymentMethod),
		Source:        req.Source,
		AuditFields:   newAuditFields(userID, time.Now()),
	}

	if err := s.donationRepo.SaveDonation(ctx, donation); err != nil {
		s.LogError(ctx, err, "Failed to save donation", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Donation recorded", slog.String("donation_id", donation.DonationID))
	return &donation, nil
}

func (s *fundingService) ListDonations(ctx context.Context, accountID string) ([]domain.Donation, error) {
	return s.donationRepo.ListDonations(ctx, accountID)
}

func (s *fundingService) CreateCapital(ctx context.Context, accountID string, req dto.CreateCapitalRequest, userID string) (*domain.Capital, error) {
	capitalDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid capital date", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: capital amount must be positive", apperrors.ErrValidation)
	}

	capital := domain.Capital{
		CapitalID:     uuid.NewString(),
		AccountID:     accountID,
		CapitalDate:   capitalDate,
		Source:        req.Source,
		Amount:        req.Amount,
		PaymentMethod: domain.MoneyAccount(req.PaymentMethod),
		AuditFields:   newAuditFields(userID, time.Now()),
	}

	if err := s.capitalRepo.SaveCapital(ctx, capital); err != nil {
		s.LogError(ctx, err, "Failed to save capital", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Capital recorded",
		slog.String("capital_id", capital.CapitalID),
		slog.Bool("initial", capital.IsInitial()),
	)
	return &capital, nil
}

func (s *fundingService) ListCapital(ctx context.Context, accountID string) ([]domain.Capital, error) {
	return s.capitalRepo.ListCapital(ctx, accountID)
}
