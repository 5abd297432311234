package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundMethod describes where the returned value goes.
type RefundMethod string

const (
	RefundAdjustDue RefundMethod = "ADJUST_DUE" // knocked off the customer's due balance, no cash effect
	RefundCash      RefundMethod = "CASH"
	RefundBank      RefundMethod = "BANK"
)

// SalesReturn is stock coming back from a customer. Cash/Bank refunds move
// money out of the store; AdjustDue only reduces the customer's due balance.
type SalesReturn struct {
	ReturnID         string          `json:"returnID"`
	AccountID        string          `json:"accountID"`
	ReturnDate       time.Time       `json:"returnDate"`
	CustomerID       string          `json:"customerID"`
	Items            []SaleItem      `json:"items"`
	TotalReturnValue decimal.Decimal `json:"totalReturnValue"`
	RefundMethod     RefundMethod    `json:"refundMethod"`
	AuditFields
}
