package dto

import (
	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest records an operating expense. PaymentMethod may be
// omitted; the documented legacy default (cash) applies.
type CreateExpenseRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=CASH BANK"`
}

// ExpenseResponse is the representation returned to clients.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Date:          e.ExpenseDate.Format(DateLayout),
		Description:   e.Description,
		Amount:        e.Amount,
		PaymentMethod: string(e.EffectiveMethod()),
	}
}

// CreateDonationRequest records a donation received.
type CreateDonationRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	DonorName     string          `json:"donorName" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=CASH BANK"`
	Source        string          `json:"source"`
}

// CreateCapitalRequest records an owner contribution.
type CreateCapitalRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Source        string          `json:"source" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=CASH BANK"`
}

// DonationResponse is the representation returned to clients.
type DonationResponse struct {
	DonationID    string          `json:"donationID"`
	Date          string          `json:"date"`
	DonorName     string          `json:"donorName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Source        string          `json:"source,omitempty"`
}

// ToDonationResponse converts a domain.Donation to its response DTO.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	return DonationResponse{
		DonationID:    d.DonationID,
		Date:          d.DonationDate.Format(DateLayout),
		DonorName:     d.DonorName,
		Amount:        d.Amount,
		PaymentMethod: string(d.PaymentMethod),
		Source:        d.Source,
	}
}

// CapitalResponse is the representation returned to clients.
type CapitalResponse struct {
	CapitalID     string          `json:"capitalID"`
	Date          string          `json:"date"`
	Source        string          `json:"source"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ToCapitalResponse converts a domain.Capital to its response DTO.
func ToCapitalResponse(cap *domain.Capital) CapitalResponse {
	return CapitalResponse{
		CapitalID:     cap.CapitalID,
		Date:          cap.CapitalDate.Format(DateLayout),
		Source:        cap.Source,
		Amount:        cap.Amount,
		PaymentMethod: string(cap.PaymentMethod),
	}
}

// CreateTransferRequest moves money between the cash and bank balances.
type CreateTransferRequest struct {
	Date   string          `json:"date" binding:"required,datetime=2006-01-02"`
	From   string          `json:"from" binding:"required,oneof=CASH BANK"`
	To     string          `json:"to" binding:"required,oneof=CASH BANK"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse is the representation returned to clients.
type TransferResponse struct {
	TransferID string          `json:"transferID"`
	Date       string          `json:"date"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Amount     decimal.Decimal `json:"amount"`
}

// ToTransferResponse converts a domain.Transfer to its response DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID: t.TransferID,
		Date:       t.TransferDate.Format(DateLayout),
		From:       string(t.From),
		To:         string(t.To),
		Amount:     t.Amount,
	}
}

// CreateOfficeAssetRequest records a fixed-asset acquisition.
type CreateOfficeAssetRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Name          string          `json:"name" binding:"required"`
	Cost          decimal.Decimal `json:"cost" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=CASH BANK"`
}

// OfficeAssetResponse is the representation returned to clients.
type OfficeAssetResponse struct {
	AssetID       string          `json:"assetID"`
	Date          string          `json:"date"`
	Name          string          `json:"name"`
	Cost          decimal.Decimal `json:"cost"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ToOfficeAssetResponse converts a domain.OfficeAsset to its response DTO.
func ToOfficeAssetResponse(a *domain.OfficeAsset) OfficeAssetResponse {
	return OfficeAssetResponse{
		AssetID:       a.AssetID,
		Date:          a.PurchaseDate.Format(DateLayout),
		Name:          a.Name,
		Cost:          a.Cost,
		PaymentMethod: string(a.PaymentMethod),
	}
}
