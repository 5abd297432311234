package dto

import (
	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest is one book line on a purchase payload.
type PurchaseItemRequest struct {
	BookID   string          `json:"bookID" binding:"required"`
	Quantity int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost decimal.Decimal `json:"unitCost" binding:"required"`
}

// CreatePurchaseRequest records stock bought from a supplier. CREDIT opens a
// payable due on dueDate (defaults to the purchase date).
type CreatePurchaseRequest struct {
	Date          string                `json:"date" binding:"required,datetime=2006-01-02"`
	SupplierName  string                `json:"supplierName" binding:"required"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                `json:"paymentMethod" binding:"required,oneof=CASH BANK CREDIT"`
	DueDate       string                `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// PurchaseResponse is the representation returned to clients.
type PurchaseResponse struct {
	PurchaseID    string                `json:"purchaseID"`
	Date          string                `json:"date"`
	SupplierName  string                `json:"supplierName"`
	Items         []PurchaseItemRequest `json:"items"`
	TotalCost     decimal.Decimal       `json:"totalCost"`
	PaymentMethod string                `json:"paymentMethod"`
}

// ToPurchaseResponse converts a domain.Purchase to its response DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	items := make([]PurchaseItemRequest, len(p.Items))
	for i, it := range p.Items {
		items[i] = PurchaseItemRequest{BookID: it.BookID, Quantity: it.Quantity, UnitCost: it.UnitCost}
	}
	return PurchaseResponse{
		PurchaseID:    p.PurchaseID,
		Date:          p.PurchaseDate.Format(DateLayout),
		SupplierName:  p.SupplierName,
		Items:         items,
		TotalCost:     p.TotalCost,
		PaymentMethod: string(p.PaymentMethod),
	}
}

// CreateReturnRequest records a sales return.
type CreateReturnRequest struct {
	Date         string            `json:"date" binding:"required,datetime=2006-01-02"`
	CustomerID   string            `json:"customerID"`
	Items        []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	RefundMethod string            `json:"refundMethod" binding:"required,oneof=ADJUST_DUE CASH BANK"`
}

// ReturnResponse is the representation returned to clients.
type ReturnResponse struct {
	ReturnID         string            `json:"returnID"`
	Date             string            `json:"date"`
	CustomerID       string            `json:"customerID,omitempty"`
	Items            []SaleItemRequest `json:"items"`
	TotalReturnValue decimal.Decimal   `json:"totalReturnValue"`
	RefundMethod     string            `json:"refundMethod"`
}

// ToReturnResponse converts a domain.SalesReturn to its response DTO.
func ToReturnResponse(r *domain.SalesReturn) ReturnResponse {
	items := make([]SaleItemRequest, len(r.Items))
	for i, it := range r.Items {
		items[i] = SaleItemRequest{BookID: it.BookID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return ReturnResponse{
		ReturnID:         r.ReturnID,
		Date:             r.ReturnDate.Format(DateLayout),
		CustomerID:       r.CustomerID,
		Items:            items,
		TotalReturnValue: r.TotalReturnValue,
		RefundMethod:     string(r.RefundMethod),
	}
}
