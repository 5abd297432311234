package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
)

type PgxSalesReturnRepository struct {
	BaseRepository
}

func newPgxSalesReturnRepository(pool *pgxpool.Pool) portsrepo.SalesReturnRepositoryFacade {
	return &PgxSalesReturnRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalesReturnRepositoryFacade = (*PgxSalesReturnRepository)(nil)

// SaveReturn inserts the return, restores stock per item, and for AdjustDue
// refunds reduces the customer's cached due balance, all in one transaction.
func (r *PgxSalesReturnRepository) SaveReturn(ctx context.Context, ret domain.SalesReturn) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	returnQuery := `
		INSERT INTO sales_returns (
			return_id, account_id, return_date, customer_id, total_return_value, refund_method,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, returnQuery,
		ret.ReturnID,
		ret.AccountID,
		ret.ReturnDate,
		ret.CustomerID,
		ret.TotalReturnValue,
		ret.RefundMethod,
		ret.CreatedAt,
		ret.CreatedBy,
		ret.LastUpdatedAt,
		ret.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert return "+ret.ReturnID, err)
	}

	itemQuery := `
		INSERT INTO sales_return_items (return_id, book_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4);
	`
	for _, item := range ret.Items {
		if _, err := tx.Exec(ctx, itemQuery, ret.ReturnID, item.BookID, item.Quantity, item.UnitPrice); err != nil {
			return apperrors.NewAppError(500, "failed to insert return item", err)
		}
		if err := incrementStock(ctx, tx, ret.AccountID, item.BookID, item.Quantity, ret.LastUpdatedBy, ret.LastUpdatedAt); err != nil {
			return err
		}
	}

	if ret.RefundMethod == domain.RefundAdjustDue && ret.CustomerID != "" {
		if err := adjustDueBalance(ctx, tx, ret.AccountID, ret.CustomerID, ret.TotalReturnValue.Neg(), ret.LastUpdatedBy, ret.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSalesReturnRepository) ListReturns(ctx context.Context, accountID string) ([]domain.SalesReturn, error) {
	query := returnSelect + ` WHERE account_id = $1 ORDER BY return_date, return_id;`
	return r.queryReturns(ctx, query, accountID)
}

func (r *PgxSalesReturnRepository) ListReturnsByCustomer(ctx context.Context, accountID, customerID string) ([]domain.SalesReturn, error) {
	query := returnSelect + ` WHERE account_id = $1 AND customer_id = $2 ORDER BY return_date, return_id;`
	return r.queryReturns(ctx, query, accountID, customerID)
}

const returnSelect = `
	SELECT return_id, account_id, return_date, COALESCE(customer_id, ''), total_return_value, refund_method,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM sales_returns`

func (r *PgxSalesReturnRepository) queryReturns(ctx context.Context, query string, args ...any) ([]domain.SalesReturn, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query returns: %w", err)
	}
	defer rows.Close()

	var returns []domain.SalesReturn
	for rows.Next() {
		var ret domain.SalesReturn
		if err := rows.Scan(
			&ret.ReturnID, &ret.AccountID, &ret.ReturnDate, &ret.CustomerID, &ret.TotalReturnValue, &ret.RefundMethod,
			&ret.CreatedAt, &ret.CreatedBy, &ret.LastUpdatedAt, &ret.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan return: %w", err)
		}
		returns = append(returns, ret)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate returns: %w", err)
	}

	if err := r.attachReturnItems(ctx, returns); err != nil {
		return nil, err
	}
	return returns, nil
}

func (r *PgxSalesReturnRepository) attachReturnItems(ctx context.Context, returns []domain.SalesReturn) error {
	if len(returns) == 0 {
		return nil
	}
	ids := make([]string, len(returns))
	byID := make(map[string]*domain.SalesReturn, len(returns))
	for i := range returns {
		ids[i] = returns[i].ReturnID
		byID[returns[i].ReturnID] = &returns[i]
	}

	query := `SELECT return_id, book_id, quantity, unit_price FROM sales_return_items WHERE return_id = ANY($1) ORDER BY return_id, book_id;`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query return items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var returnID string
		var item domain.SaleItem
		if err := rows.Scan(&returnID, &item.BookID, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("failed to scan return item: %w", err)
		}
		if ret, ok := byID[returnID]; ok {
			ret.Items = append(ret.Items, item)
		}
	}
	return rows.Err()
}
