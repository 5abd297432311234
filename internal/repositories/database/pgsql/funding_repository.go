package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
)

type PgxDonationRepository struct {
	BaseRepository
}

func newPgxDonationRepository(pool *pgxpool.Pool) portsrepo.DonationRepositoryFacade {
	return &PgxDonationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DonationRepositoryFacade = (*PgxDonationRepository)(nil)

func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	query := `
		INSERT INTO donations (
			donation_id, account_id, donation_date, donor_name, amount, payment_method, source,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		donation.DonationID,
		donation.AccountID,
		donation.DonationDate,
		donation.DonorName,
		donation.Amount,
		donation.PaymentMethod,
		donation.Source,
		donation.CreatedAt,
		donation.CreatedBy,
		donation.LastUpdatedAt,
		donation.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save donation: %w", err)
	}
	return nil
}

func (r *PgxDonationRepository) ListDonations(ctx context.Context, accountID string) ([]domain.Donation, error) {
	query := `
		SELECT donation_id, account_id, donation_date, donor_name, amount, payment_method, COALESCE(source, ''),
		       created_at, created_by, last_updated_at, last_updated_by
		FROM donations
		WHERE account_id = $1
		ORDER BY donation_date, donation_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query donations: %w", err)
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(
			&d.DonationID, &d.AccountID, &d.DonationDate, &d.DonorName, &d.Amount, &d.PaymentMethod, &d.Source,
			&d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

type PgxCapitalRepository struct {
	BaseRepository
}

func newPgxCapitalRepository(pool *pgxpool.Pool) portsrepo.CapitalRepositoryFacade {
	return &PgxCapitalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CapitalRepositoryFacade = (*PgxCapitalRepository)(nil)

func (r *PgxCapitalRepository) SaveCapital(ctx context.Context, capital domain.Capital) error {
	query := `
		INSERT INTO capital_contributions (
			capital_id, account_id, capital_date, source, amount, payment_method,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		capital.CapitalID,
		capital.AccountID,
		capital.CapitalDate,
		capital.Source,
		capital.Amount,
		capital.PaymentMethod,
		capital.CreatedAt,
		capital.CreatedBy,
		capital.LastUpdatedAt,
		capital.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save capital: %w", err)
	}
	return nil
}

func (r *PgxCapitalRepository) ListCapital(ctx context.Context, accountID string) ([]domain.Capital, error) {
	query := `
		SELECT capital_id, account_id, capital_date, source, amount, payment_method,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM capital_contributions
		WHERE account_id = $1
		ORDER BY capital_date, capital_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query capital: %w", err)
	}
	defer rows.Close()

	var capital []domain.Capital
	for rows.Next() {
		var c domain.Capital
		if err := rows.Scan(
			&c.CapitalID, &c.AccountID, &c.CapitalDate, &c.Source, &c.Amount, &c.PaymentMethod,
			&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan capital: %w", err)
		}
		capital = append(capital, c)
	}
	return capital, rows.Err()
}
