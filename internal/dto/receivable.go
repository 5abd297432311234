package dto

import (
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddPaymentRequest settles a pending ledger entry. Date defaults to today
// when omitted.
type AddPaymentRequest struct {
	Date          string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=CASH BANK"`
}

// LedgerEntryResponse is one receivable/payable row.
type LedgerEntryResponse struct {
	EntryID       string          `json:"entryID"`
	CustomerID    string          `json:"customerID,omitempty"`
	SupplierName  string          `json:"supplierName,omitempty"`
	DueDate       string          `json:"dueDate"`
	Type          string          `json:"type"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		CustomerID:    e.CustomerID,
		SupplierName:  e.SupplierName,
		DueDate:       e.DueDate.Format(DateLayout),
		Type:          string(e.Type),
		Kind:          string(e.Kind),
		Amount:        e.Amount,
		Status:        string(e.Status),
		PaymentMethod: string(e.PaymentMethod),
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of ledger entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
