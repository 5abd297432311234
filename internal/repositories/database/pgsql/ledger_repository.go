package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
)

type PgxLedgerEntryRepository struct {
	BaseRepository
}

func newPgxLedgerEntryRepository(pool *pgxpool.Pool) portsrepo.LedgerEntryRepositoryFacade {
	return &PgxLedgerEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxLedgerEntryRepository)(nil)

const ledgerEntryColumns = `
	entry_id, account_id, COALESCE(customer_id, ''), COALESCE(supplier_name, ''), due_date,
	entry_type, kind, amount, status, COALESCE(payment_method, ''), COALESCE(description, ''),
	COALESCE(settled_by, ''), created_at, created_by, last_updated_at, last_updated_by`

// insertLedgerEntry writes one ledger row. Shared with the sale and purchase
// repositories, which open receivables/payables inside their own
// transactions.
func insertLedgerEntry(ctx context.Context, db dbtx, e domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (
			entry_id, account_id, customer_id, supplier_name, due_date,
			entry_type, kind, amount, status, payment_method, description, settled_by,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), $13, $14, $15, $16);
	`
	_, err := db.Exec(ctx, query,
		e.EntryID,
		e.AccountID,
		e.CustomerID,
		e.SupplierName,
		e.DueDate,
		e.Type,
		e.Kind,
		e.Amount,
		e.Status,
		string(e.PaymentMethod),
		e.Description,
		e.SettledBy,
		e.CreatedAt,
		e.CreatedBy,
		e.LastUpdatedAt,
		e.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry "+e.EntryID, err)
	}
	return nil
}

func (r *PgxLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return insertLedgerEntry(ctx, r.Pool, entry)
}

func (r *PgxLedgerEntryRepository) FindEntryByID(ctx context.Context, accountID, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE account_id = $1 AND entry_id = $2;`
	entry, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, accountID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (r *PgxLedgerEntryRepository) ListEntries(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE account_id = $1 ORDER BY due_date, entry_id;`
	return r.queryEntries(ctx, query, accountID)
}

func (r *PgxLedgerEntryRepository) ListEntriesByCustomer(ctx context.Context, accountID, customerID string) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE account_id = $1 AND customer_id = $2 ORDER BY due_date, entry_id;`
	return r.queryEntries(ctx, query, accountID, customerID)
}

func (r *PgxLedgerEntryRepository) ListPendingEntries(ctx context.Context, accountID string, entryType domain.EntryType) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE account_id = $1 AND entry_type = $2 AND status = 'PENDING' ORDER BY due_date, entry_id;`
	return r.queryEntries(ctx, query, accountID, entryType)
}

// ListPaidReceivablesBetween lists settled customer payment rows in the
// period, joined with the customer name for reporting.
func (r *PgxLedgerEntryRepository) ListPaidReceivablesBetween(ctx context.Context, accountID string, from, to time.Time) ([]domain.ReceivedPaymentRow, error) {
	query := `
		SELECT e.entry_id, COALESCE(e.customer_id, ''), COALESCE(c.name, ''), e.due_date, e.amount,
		       COALESCE(e.payment_method, ''), COALESCE(e.description, '')
		FROM ledger_entries e
		LEFT JOIN customers c ON c.customer_id = e.customer_id AND c.account_id = e.account_id
		WHERE e.account_id = $1
		  AND e.entry_type = 'RECEIVABLE'
		  AND e.kind = 'PAYMENT_RECEIVED'
		  AND e.status = 'PAID'
		  AND e.due_date BETWEEN $2 AND $3
		ORDER BY e.due_date, e.entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query received payments: %w", err)
	}
	defer rows.Close()

	var result []domain.ReceivedPaymentRow
	for rows.Next() {
		var row domain.ReceivedPaymentRow
		if err := rows.Scan(&row.EntryID, &row.CustomerID, &row.CustomerName, &row.DueDate, &row.Amount, &row.PaymentMethod, &row.Description); err != nil {
			return nil, fmt.Errorf("failed to scan received payment: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Settle flips the pending row to Paid and inserts the payment row in one
// transaction. The status guard on the UPDATE means a row settles exactly
// once even under concurrent attempts.
func (r *PgxLedgerEntryRepository) Settle(ctx context.Context, pending domain.LedgerEntry, payment domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE ledger_entries
		SET status = 'PAID', payment_method = $3, settled_by = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1 AND entry_id = $2 AND status = 'PENDING';
	`
	tag, err := tx.Exec(ctx, updateQuery,
		pending.AccountID,
		pending.EntryID,
		payment.PaymentMethod,
		payment.EntryID,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to settle ledger entry "+pending.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s", apperrors.ErrAlreadySettled, pending.EntryID)
	}

	if err := insertLedgerEntry(ctx, tx, payment); err != nil {
		return err
	}

	if pending.Type == domain.EntryReceivable && pending.CustomerID != "" {
		if err := adjustDueBalance(ctx, tx, pending.AccountID, pending.CustomerID, payment.Amount.Neg(), payment.LastUpdatedBy, payment.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLedgerEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := row.Scan(
		&e.EntryID,
		&e.AccountID,
		&e.CustomerID,
		&e.SupplierName,
		&e.DueDate,
		&e.Type,
		&e.Kind,
		&e.Amount,
		&e.Status,
		&e.PaymentMethod,
		&e.Description,
		&e.SettledBy,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
