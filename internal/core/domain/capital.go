package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Capital is an owner contribution into the store's cash or bank balance.
// Rows with Source == SourceInitialCapital represent the day-zero opening
// balance and are included in every snapshot regardless of cutoff.
type Capital struct {
	CapitalID     string          `json:"capitalID"`
	AccountID     string          `json:"accountID"`
	CapitalDate   time.Time       `json:"capitalDate"`
	Source        string          `json:"source"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod MoneyAccount    `json:"paymentMethod"`
	AuditFields
}

// IsInitial reports whether this row is the day-zero opening balance.
func (c Capital) IsInitial() bool {
	return c.Source == SourceInitialCapital
}
