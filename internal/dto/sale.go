package dto

import (
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// SaleItemRequest is one line of a sale or return payload.
type SaleItemRequest struct {
	BookID    string          `json:"bookID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateSaleRequest is the payload for recording a sale. Subtotal and total
// are computed server-side from the items and discount, so the
// total == subtotal - discount invariant holds by construction.
type CreateSaleRequest struct {
	Date               string            `json:"date" binding:"required,datetime=2006-01-02"`
	CustomerID         string            `json:"customerID"`
	Items              []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount           decimal.Decimal   `json:"discount"`
	PaymentMethod      string            `json:"paymentMethod" binding:"required,oneof=CASH BANK DUE SPLIT PAID_BY_CREDIT"`
	SplitPaymentMethod string            `json:"splitPaymentMethod" binding:"omitempty,oneof=CASH BANK"`
	AmountPaid         decimal.Decimal   `json:"amountPaid"`
	CreditApplied      decimal.Decimal   `json:"creditApplied"`
}

// SaleResponse is the representation returned to clients.
type SaleResponse struct {
	SaleID             string            `json:"saleID"`
	Date               string            `json:"date"`
	CustomerID         string            `json:"customerID,omitempty"`
	Items              []SaleItemRequest `json:"items"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	Discount           decimal.Decimal   `json:"discount"`
	Total              decimal.Decimal   `json:"total"`
	PaymentMethod      string            `json:"paymentMethod"`
	SplitPaymentMethod string            `json:"splitPaymentMethod,omitempty"`
	AmountPaid         decimal.Decimal   `json:"amountPaid"`
	DueAmount          decimal.Decimal   `json:"dueAmount"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemRequest, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemRequest{BookID: it.BookID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return SaleResponse{
		SaleID:             s.SaleID,
		Date:               s.SaleDate.Format(DateLayout),
		CustomerID:         s.CustomerID,
		Items:              items,
		Subtotal:           s.Subtotal,
		Discount:           s.Discount,
		Total:              s.Total,
		PaymentMethod:      string(s.PaymentMethod),
		SplitPaymentMethod: string(s.SplitPaymentMethod),
		AmountPaid:         s.AmountPaid,
		DueAmount:          s.DueAmount(),
		CreatedAt:          s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of sales.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}

// ListSalesResponse is a paginated sale listing.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken string         `json:"nextToken,omitempty"`
}
