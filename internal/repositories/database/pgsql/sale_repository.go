package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	"github.com/boighar/backoffice/internal/utils/pagination"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `
	sale_id, account_id, sale_date, COALESCE(customer_id, ''), subtotal, discount, total,
	payment_method, COALESCE(split_payment_method, ''), amount_paid, credit_applied,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveSale inserts the sale, decrements stock per item, and for due/split
// sales writes the receivable row and bumps the customer's cached due
// balance, all in one transaction.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, dueEntry *domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	saleQuery := `
		INSERT INTO sales (
			sale_id, account_id, sale_date, customer_id, subtotal, discount, total,
			payment_method, split_payment_method, amount_paid, credit_applied,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, saleQuery,
		sale.SaleID,
		sale.AccountID,
		sale.SaleDate,
		sale.CustomerID,
		sale.Subtotal,
		sale.Discount,
		sale.Total,
		sale.PaymentMethod,
		string(sale.SplitPaymentMethod),
		sale.AmountPaid,
		sale.CreditApplied,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sale "+sale.SaleID, err)
	}

	for _, item := range sale.Items {
		if err := insertSaleItem(ctx, tx, sale.SaleID, item); err != nil {
			return err
		}
		if err := decrementStock(ctx, tx, sale.AccountID, item.BookID, item.Quantity, sale.LastUpdatedBy, sale.LastUpdatedAt); err != nil {
			return err
		}
	}

	if dueEntry != nil {
		if err := insertLedgerEntry(ctx, tx, *dueEntry); err != nil {
			return err
		}
		if err := adjustDueBalance(ctx, tx, sale.AccountID, sale.CustomerID, dueEntry.Amount, sale.LastUpdatedBy, sale.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func insertSaleItem(ctx context.Context, db dbtx, saleID string, item domain.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, book_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := db.Exec(ctx, query, saleID, item.BookID, item.Quantity, item.UnitPrice); err != nil {
		return apperrors.NewAppError(500, "failed to insert sale item", err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, accountID, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE account_id = $1 AND sale_id = $2;`
	sale, err := scanSale(r.Pool.QueryRow(ctx, query, accountID, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}

	if err := attachSaleItems(ctx, r.Pool, []*domain.Sale{sale}); err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, accountID string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE account_id = $1 ORDER BY sale_date, sale_id;`
	return r.querySales(ctx, query, accountID)
}

func (r *PgxSaleRepository) ListSalesByCustomer(ctx context.Context, accountID, customerID string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE account_id = $1 AND customer_id = $2 ORDER BY sale_date, sale_id;`
	return r.querySales(ctx, query, accountID, customerID)
}

// ListSalesPaged returns sales newest first, keyed by a (sale_date, sale_id)
// cursor so rows sharing a date never repeat across pages.
func (r *PgxSaleRepository) ListSalesPaged(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Sale, string, error) {
	args := []any{accountID, limit + 1}
	query := `SELECT ` + saleColumns + ` FROM sales WHERE account_id = $1`
	if nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		query += ` AND (sale_date, sale_id) < ($3, $4)`
		args = append(args, cursorDate, cursorID)
	}
	query += ` ORDER BY sale_date DESC, sale_id DESC LIMIT $2;`

	sales, err := r.querySales(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}

	var token string
	if len(sales) > limit {
		sales = sales[:limit]
		last := sales[len(sales)-1]
		token = pagination.EncodeToken(last.SaleDate, last.SaleID)
	}
	return sales, token, nil
}

func (r *PgxSaleRepository) querySales(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, *sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}

	ptrs := make([]*domain.Sale, len(sales))
	for i := range sales {
		ptrs[i] = &sales[i]
	}
	if err := attachSaleItems(ctx, r.Pool, ptrs); err != nil {
		return nil, err
	}
	return sales, nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.SaleID,
		&s.AccountID,
		&s.SaleDate,
		&s.CustomerID,
		&s.Subtotal,
		&s.Discount,
		&s.Total,
		&s.PaymentMethod,
		&s.SplitPaymentMethod,
		&s.AmountPaid,
		&s.CreditApplied,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func attachSaleItems(ctx context.Context, db dbtx, sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	saleIDs := make([]string, len(sales))
	byID := make(map[string]*domain.Sale, len(sales))
	for i, s := range sales {
		saleIDs[i] = s.SaleID
		byID[s.SaleID] = s
	}

	query := `SELECT sale_id, book_id, quantity, unit_price FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, book_id;`
	rows, err := db.Query(ctx, query, saleIDs)
	if err != nil {
		return fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var saleID string
		var item domain.SaleItem
		if err := rows.Scan(&saleID, &item.BookID, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("failed to scan sale item: %w", err)
		}
		if sale, ok := byID[saleID]; ok {
			sale.Items = append(sale.Items, item)
		}
	}
	return rows.Err()
}

// decrementStock conditionally takes stock for a sale. Zero rows affected
// means the book would have gone negative; the whole transaction fails.
func decrementStock(ctx context.Context, db dbtx, accountID, bookID string, quantity int64, userID string, now time.Time) error {
	query := `
		UPDATE books
		SET stock = stock - $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1 AND book_id = $2 AND stock >= $3;
	`
	tag, err := db.Exec(ctx, query, accountID, bookID, quantity, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to decrement stock for book "+bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: book %s", apperrors.ErrInsufficientStock, bookID)
	}
	return nil
}

func incrementStock(ctx context.Context, db dbtx, accountID, bookID string, quantity int64, userID string, now time.Time) error {
	query := `
		UPDATE books
		SET stock = stock + $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1 AND book_id = $2;
	`
	tag, err := db.Exec(ctx, query, accountID, bookID, quantity, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to increment stock for book "+bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: book %s", apperrors.ErrNotFound, bookID)
	}
	return nil
}

// adjustDueBalance moves the cached customer due balance by delta, which may
// be negative.
func adjustDueBalance(ctx context.Context, db dbtx, accountID, customerID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET due_balance = due_balance + $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1 AND customer_id = $2;
	`
	tag, err := db.Exec(ctx, query, accountID, customerID, delta, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust due balance for customer "+customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return nil
}
