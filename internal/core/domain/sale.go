package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalePaymentMethod describes how a sale was settled at the counter.
type SalePaymentMethod string

const (
	SalePaymentCash   SalePaymentMethod = "CASH"
	SalePaymentBank   SalePaymentMethod = "BANK"
	SalePaymentDue    SalePaymentMethod = "DUE"
	SalePaymentSplit  SalePaymentMethod = "SPLIT"
	SalePaymentCredit SalePaymentMethod = "PAID_BY_CREDIT"
)

// SaleItem is one book line on a sale.
type SaleItem struct {
	BookID    string          `json:"bookID"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Sale is a single counter sale. Invariant: Total == Subtotal - Discount.
// For SPLIT sales, 0 < AmountPaid < Total and SplitPaymentMethod names the
// account the paid portion went into; the remainder becomes a receivable.
// DUE and PAID_BY_CREDIT sales move no cash or bank money at creation time.
type Sale struct {
	SaleID             string            `json:"saleID"`
	AccountID          string            `json:"accountID"` // owning shop account
	SaleDate           time.Time         `json:"saleDate"`
	CustomerID         string            `json:"customerID"` // empty for walk-in cash sales
	Items              []SaleItem        `json:"items"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	Discount           decimal.Decimal   `json:"discount"`
	Total              decimal.Decimal   `json:"total"`
	PaymentMethod      SalePaymentMethod `json:"paymentMethod"`
	SplitPaymentMethod MoneyAccount      `json:"splitPaymentMethod,omitempty"` // set iff SPLIT
	AmountPaid         decimal.Decimal   `json:"amountPaid,omitempty"`         // set iff SPLIT
	CreditApplied      decimal.Decimal   `json:"creditApplied,omitempty"`      // set iff PAID_BY_CREDIT
	AuditFields
}

// DueAmount returns the portion of the sale left owing by the customer.
func (s Sale) DueAmount() decimal.Decimal {
	switch s.PaymentMethod {
	case SalePaymentDue:
		return s.Total
	case SalePaymentSplit:
		return s.Total.Sub(s.AmountPaid)
	default:
		return decimal.Zero
	}
}
