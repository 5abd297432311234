package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType splits the receivable/payable ledger into the two directions of
// credit: money owed to the store vs money the store owes.
type EntryType string

const (
	EntryReceivable EntryType = "RECEIVABLE"
	EntryPayable    EntryType = "PAYABLE"
)

// EntryKind states what a ledger row IS, written at mutation time. The legacy
// system distinguished due-creation rows from settlement rows by a free-text
// description prefix; the kind makes that discriminant explicit so
// classification never has to guess from text.
type EntryKind string

const (
	KindDueCreated      EntryKind = "DUE_CREATED"      // receivable opened by a due/split sale
	KindPaymentReceived EntryKind = "PAYMENT_RECEIVED" // customer payment, money in
	KindPayableCreated  EntryKind = "PAYABLE_CREATED"  // supplier credit opened by a purchase
	KindPaymentSent     EntryKind = "PAYMENT_SENT"     // supplier payment, money out
)

// EntryStatus is the settlement state of a ledger row. Pending -> Paid happens
// exactly once; Paid is terminal.
type EntryStatus string

const (
	StatusPending EntryStatus = "PENDING"
	StatusPaid    EntryStatus = "PAID"
)

// LedgerEntry is one receivable/payable ledger line.
//
// DueCreated and PayableCreated rows open a debt and never move cash or bank
// money themselves. PaymentReceived and PaymentSent rows are written already
// Paid, carry the money account used, and are the only rows that contribute
// to cash/bank totals.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	AccountID     string          `json:"accountID"`
	CustomerID    string          `json:"customerID,omitempty"` // set on receivable rows
	SupplierName  string          `json:"supplierName,omitempty"`
	DueDate       time.Time       `json:"dueDate"`
	Type          EntryType       `json:"type"`
	Kind          EntryKind       `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Status        EntryStatus     `json:"status"`
	PaymentMethod MoneyAccount    `json:"paymentMethod,omitempty"` // set once settled
	Description   string          `json:"description,omitempty"`
	SettledBy     string          `json:"settledBy,omitempty"` // EntryID of the settling payment row
	AuditFields
}
