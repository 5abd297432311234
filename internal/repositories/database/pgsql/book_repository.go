package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
)

type PgxBookRepository struct {
	BaseRepository
}

func newPgxBookRepository(pool *pgxpool.Pool) portsrepo.BookRepositoryFacade {
	return &PgxBookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookRepositoryFacade = (*PgxBookRepository)(nil)

const bookColumns = `
	book_id, account_id, title, COALESCE(author, ''), production_price, selling_price, stock,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	query := `
		INSERT INTO books (
			book_id, account_id, title, author, production_price, selling_price, stock,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		book.BookID,
		book.AccountID,
		book.Title,
		book.Author,
		book.ProductionPrice,
		book.SellingPrice,
		book.Stock,
		book.CreatedAt,
		book.CreatedBy,
		book.LastUpdatedAt,
		book.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	return nil
}

func (r *PgxBookRepository) FindBookByID(ctx context.Context, accountID, bookID string) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE account_id = $1 AND book_id = $2;`
	book, err := scanBook(r.Pool.QueryRow(ctx, query, accountID, bookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find book %s: %w", bookID, err)
	}
	return book, nil
}

func (r *PgxBookRepository) FindBooksByIDs(ctx context.Context, accountID string, bookIDs []string) (map[string]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE account_id = $1 AND book_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, accountID, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by IDs: %w", err)
	}
	defer rows.Close()

	books := make(map[string]domain.Book, len(bookIDs))
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books[book.BookID] = *book
	}
	return books, rows.Err()
}

func (r *PgxBookRepository) ListBooks(ctx context.Context, accountID string) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE account_id = $1 ORDER BY title, book_id;`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}

// UpdateBook writes title metadata and prices. Stock moves only through
// sales, purchases and returns inside their own transactions.
func (r *PgxBookRepository) UpdateBook(ctx context.Context, book domain.Book) error {
	query := `
		UPDATE books
		SET title = $3, author = NULLIF($4, ''), production_price = $5, selling_price = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE account_id = $1 AND book_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		book.AccountID,
		book.BookID,
		book.Title,
		book.Author,
		book.ProductionPrice,
		book.SellingPrice,
		book.LastUpdatedAt,
		book.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(
		&b.BookID,
		&b.AccountID,
		&b.Title,
		&b.Author,
		&b.ProductionPrice,
		&b.SellingPrice,
		&b.Stock,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
