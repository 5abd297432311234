package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchasePayment describes how a stock purchase was settled.
type PurchasePayment string

const (
	PurchaseCash   PurchasePayment = "CASH"
	PurchaseBank   PurchasePayment = "BANK"
	PurchaseCredit PurchasePayment = "CREDIT" // opens a payable, no money moves yet
)

// PurchaseItem is one book line on a purchase.
type PurchaseItem struct {
	BookID   string          `json:"bookID"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// Purchase is stock bought from a supplier.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"`
	AccountID     string          `json:"accountID"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	SupplierName  string          `json:"supplierName"`
	Items         []PurchaseItem  `json:"items"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	PaymentMethod PurchasePayment `json:"paymentMethod"`
	AuditFields
}
