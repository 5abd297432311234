package repositories

import (
	"context"
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerRepositoryFacade defines persistence operations for customers.
type CustomerRepositoryFacade interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, accountID, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, accountID string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateDueBalance overwrites the cached running total. Used by the
	// reconciliation repair, not by normal mutations (those adjust the cache
	// inside their own transactions).
	UpdateDueBalance(ctx context.Context, accountID, customerID string, balance decimal.Decimal, userID string, now time.Time) error
}

// BookRepositoryFacade defines persistence operations for books.
type BookRepositoryFacade interface {
	SaveBook(ctx context.Context, book domain.Book) error
	FindBookByID(ctx context.Context, accountID, bookID string) (*domain.Book, error)
	FindBooksByIDs(ctx context.Context, accountID string, bookIDs []string) (map[string]domain.Book, error)
	ListBooks(ctx context.Context, accountID string) ([]domain.Book, error)
	UpdateBook(ctx context.Context, book domain.Book) error
}

// UserRepositoryFacade defines persistence operations for staff users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
