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
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `
	customer_id, account_id, name, COALESCE(phone, ''), COALESCE(address, ''), opening_balance, due_balance,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (
			customer_id, account_id, name, phone, address, opening_balance, due_balance,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.AccountID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.OpeningBalance,
		customer.DueBalance,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, accountID, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE account_id = $1 AND customer_id = $2;`
	customer, err := scanCustomer(r.Pool.QueryRow(ctx, query, accountID, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, accountID string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE account_id = $1 ORDER BY name, customer_id;`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *customer)
	}
	return customers, rows.Err()
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, phone = NULLIF($4, ''), address = NULLIF($5, ''), last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1 AND customer_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		customer.AccountID,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateDueBalance(ctx context.Context, accountID, customerID string, balance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET due_balance = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1 AND customer_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, customerID, balance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update due balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.AccountID,
		&c.Name,
		&c.Phone,
		&c.Address,
		&c.OpeningBalance,
		&c.DueBalance,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
