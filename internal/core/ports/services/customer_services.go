package services

import (
	"context"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/dto"
)

// CustomerSvcFacade manages customers and the due balance cache.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, accountID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, accountID, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, accountID string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, accountID, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)

	// Reconcile recomputes the customer's due balance from the event stores
	// and repairs the cached value when repair is true.
	Reconcile(ctx context.Context, accountID, customerID string, repair bool, userID string) (*domain.ReconciliationResult, error)
	// ReconcileAll runs Reconcile over every customer of the account.
	ReconcileAll(ctx context.Context, accountID string, repair bool, userID string) ([]domain.ReconciliationResult, error)
}

// BookSvcFacade manages the stocked titles.
type BookSvcFacade interface {
	CreateBook(ctx context.Context, accountID string, req dto.CreateBookRequest, userID string) (*domain.Book, error)
	GetBook(ctx context.Context, accountID, bookID string) (*domain.Book, error)
	ListBooks(ctx context.Context, accountID string) ([]domain.Book, error)
	UpdateBook(ctx context.Context, accountID, bookID string, req dto.UpdateBookRequest, userID string) (*domain.Book, error)
}
