package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// SavePurchase inserts the purchase, increments stock per item, and for
// credit purchases writes the payable row, all in one transaction.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase, payable *domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	purchaseQuery := `
		INSERT INTO purchases (
			purchase_id, account_id, purchase_date, supplier_name, total_cost, payment_method,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, purchaseQuery,
		purchase.PurchaseID,
		purchase.AccountID,
		purchase.PurchaseDate,
		purchase.SupplierName,
		purchase.TotalCost,
		purchase.PaymentMethod,
		purchase.CreatedAt,
		purchase.CreatedBy,
		purchase.LastUpdatedAt,
		purchase.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase "+purchase.PurchaseID, err)
	}

	itemQuery := `
		INSERT INTO purchase_items (purchase_id, book_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4);
	`
	for _, item := range purchase.Items {
		if _, err := tx.Exec(ctx, itemQuery, purchase.PurchaseID, item.BookID, item.Quantity, item.UnitCost); err != nil {
			return apperrors.NewAppError(500, "failed to insert purchase item", err)
		}
		if err := incrementStock(ctx, tx, purchase.AccountID, item.BookID, item.Quantity, purchase.LastUpdatedBy, purchase.LastUpdatedAt); err != nil {
			return err
		}
	}

	if payable != nil {
		if err := insertLedgerEntry(ctx, tx, *payable); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, accountID string) ([]domain.Purchase, error) {
	query := `
		SELECT purchase_id, account_id, purchase_date, supplier_name, total_cost, payment_method,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM purchases
		WHERE account_id = $1
		ORDER BY purchase_date, purchase_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(
			&p.PurchaseID, &p.AccountID, &p.PurchaseDate, &p.SupplierName, &p.TotalCost, &p.PaymentMethod,
			&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}

	if err := r.attachPurchaseItems(ctx, purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *PgxPurchaseRepository) attachPurchaseItems(ctx context.Context, purchases []domain.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}
	ids := make([]string, len(purchases))
	byID := make(map[string]*domain.Purchase, len(purchases))
	for i := range purchases {
		ids[i] = purchases[i].PurchaseID
		byID[purchases[i].PurchaseID] = &purchases[i]
	}

	query := `SELECT purchase_id, book_id, quantity, unit_cost FROM purchase_items WHERE purchase_id = ANY($1) ORDER BY purchase_id, book_id;`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query purchase items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var purchaseID string
		var item domain.PurchaseItem
		if err := rows.Scan(&purchaseID, &item.BookID, &item.Quantity, &item.UnitCost); err != nil {
			return fmt.Errorf("failed to scan purchase item: %w", err)
		}
		if p, ok := byID[purchaseID]; ok {
			p.Items = append(p.Items, item)
		}
	}
	return rows.Err()
}
