package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
)

type bookService struct {
	BaseService
	bookRepo portsrepo.BookRepositoryFacade
}

// NewBookService creates a new book service.
func NewBookService(bookRepo portsrepo.BookRepositoryFacade) portssvc.BookSvcFacade {
	return &bookService{bookRepo: bookRepo}
}

var _ portssvc.BookSvcFacade = (*bookService)(nil)

func (s *bookService) CreateBook(ctx context.Context, accountID string, req dto.CreateBookRequest, userID string) (*domain.Book, error) {
	book := domain.Book{
		BookID:          uuid.NewString(),
		AccountID:       accountID,
		Title:           req.Title,
		Author:          req.Author,
		ProductionPrice: req.ProductionPrice,
		SellingPrice:    req.SellingPrice,
		Stock:           req.Stock,
		AuditFields:     newAuditFields(userID, time.Now()),
	}

	if err := s.bookRepo.SaveBook(ctx, book); err != nil {
		s.LogError(ctx, err, "Failed to save book", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Book created", slog.String("book_id", book.BookID), slog.String("title", book.Title))
	return &book, nil
}

func (s *bookService) GetBook(ctx context.Context, accountID, bookID string) (*domain.Book, error) {
	return s.bookRepo.FindBookByID(ctx, accountID, bookID)
}

func (s *bookService) ListBooks(ctx context.Context, accountID string) ([]domain.Book, error) {
	return s.bookRepo.ListBooks(ctx, accountID)
}

func (s *bookService) UpdateBook(ctx context.Context, accountID, bookID string, req dto.UpdateBookRequest, userID string) (*domain.Book, error) {
	book, err := s.bookRepo.FindBookByID(ctx, accountID, bookID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.ProductionPrice != nil {
		book.ProductionPrice = *req.ProductionPrice
	}
	if req.SellingPrice != nil {
		book.SellingPrice = *req.SellingPrice
	}
	book.LastUpdatedAt = time.Now()
	book.LastUpdatedBy = userID

	if err := s.bookRepo.UpdateBook(ctx, *book); err != nil {
		s.LogError(ctx, err, "Failed to update book", slog.String("book_id", bookID))
		return nil, err
	}
	return book, nil
}
