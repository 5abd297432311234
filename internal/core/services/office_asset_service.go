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

type officeAssetService struct {
	BaseService
	assetRepo portsrepo.OfficeAssetRepositoryFacade
}

// NewOfficeAssetService creates a new office asset service.
func NewOfficeAssetService(assetRepo portsrepo.OfficeAssetRepositoryFacade) portssvc.OfficeAssetSvcFacade {
	return &officeAssetService{assetRepo: assetRepo}
}

var _ portssvc.OfficeAssetSvcFacade = (*officeAssetService)(nil)

func (s *officeAssetService) CreateOfficeAsset(ctx context.Context, accountID string, req dto.CreateOfficeAssetRequest, userID string) (*domain.OfficeAsset, error) {
	purchaseDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchase date", apperrors.ErrValidation)
	}
	if !req.Cost.IsPositive() {
		return nil, fmt.Errorf("%w: asset cost must be positive", apperrors.ErrValidation)
	}

	asset := domain.OfficeAsset{
		AssetID:       uuid.NewString(),
		AccountID:     accountID,
		Name:          req.Name,
		Cost:          req.Cost,
		PurchaseDate:  purchaseDate,
		PaymentMethod: domain.MoneyAccount(req.PaymentMethod),
		AuditFields:   newAuditFields(userID, time.Now()),
	}

	if err := s.assetRepo.SaveOfficeAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save office asset", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Office asset recorded", slog.String("asset_id", asset.AssetID))
	return &asset, nil
}

func (s *officeAssetService) ListOfficeAssets(ctx context.Context, accountID string) ([]domain.OfficeAsset, error) {
	return s.assetRepo.ListOfficeAssets(ctx, accountID)
}
