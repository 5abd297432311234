package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
)

type PgxOfficeAssetRepository struct {
	BaseRepository
}

func newPgxOfficeAssetRepository(pool *pgxpool.Pool) portsrepo.OfficeAssetRepositoryFacade {
	return &PgxOfficeAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OfficeAssetRepositoryFacade = (*PgxOfficeAssetRepository)(nil)

func (r *PgxOfficeAssetRepository) SaveOfficeAsset(ctx context.Context, asset domain.OfficeAsset) error {
	query := `
		INSERT INTO office_assets (
			asset_id, account_id, name, cost, purchase_date, payment_method,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		asset.AssetID,
		asset.AccountID,
		asset.Name,
		asset.Cost,
		asset.PurchaseDate,
		asset.PaymentMethod,
		asset.CreatedAt,
		asset.CreatedBy,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save office asset: %w", err)
	}
	return nil
}

func (r *PgxOfficeAssetRepository) ListOfficeAssets(ctx context.Context, accountID string) ([]domain.OfficeAsset, error) {
	query := `
		SELECT asset_id, account_id, name, cost, purchase_date, payment_method,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM office_assets
		WHERE account_id = $1
		ORDER BY purchase_date, asset_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query office assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.OfficeAsset
	for rows.Next() {
		var a domain.OfficeAsset
		if err := rows.Scan(
			&a.AssetID, &a.AccountID, &a.Name, &a.Cost, &a.PurchaseDate, &a.PaymentMethod,
			&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan office asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
