package dto

import (
	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBookRequest registers a stocked title.
type CreateBookRequest struct {
	Title           string          `json:"title" binding:"required"`
	Author          string          `json:"author"`
	ProductionPrice decimal.Decimal `json:"productionPrice" binding:"required"`
	SellingPrice    decimal.Decimal `json:"sellingPrice" binding:"required"`
	Stock           int64           `json:"stock" binding:"gte=0"`
}

// UpdateBookRequest updates title metadata and prices. Stock is not
// client-writable here; it moves through sales, purchases and returns.
type UpdateBookRequest struct {
	Title           *string          `json:"title"`
	Author          *string          `json:"author"`
	ProductionPrice *decimal.Decimal `json:"productionPrice"`
	SellingPrice    *decimal.Decimal `json:"sellingPrice"`
}

// BookResponse is the representation returned to clients.
type BookResponse struct {
	BookID          string          `json:"bookID"`
	Title           string          `json:"title"`
	Author          string          `json:"author,omitempty"`
	ProductionPrice decimal.Decimal `json:"productionPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Stock           int64           `json:"stock"`
}

// ToBookResponse converts a domain.Book to its response DTO.
func ToBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		BookID:          b.BookID,
		Title:           b.Title,
		Author:          b.Author,
		ProductionPrice: b.ProductionPrice,
		SellingPrice:    b.SellingPrice,
		Stock:           b.Stock,
	}
}

// ToBookResponses converts a slice of books.
func ToBookResponses(books []domain.Book) []BookResponse {
	responses := make([]BookResponse, len(books))
	for i := range books {
		responses[i] = ToBookResponse(&books[i])
	}
	return responses
}
