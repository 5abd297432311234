package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer moves money between the store's own cash and bank balances.
// Invariant: From != To and Amount > 0. A transfer never changes the combined
// cash+bank total.
type Transfer struct {
	TransferID   string          `json:"transferID"`
	AccountID    string          `json:"accountID"`
	TransferDate time.Time       `json:"transferDate"`
	From         MoneyAccount    `json:"from"`
	To           MoneyAccount    `json:"to"`
	Amount       decimal.Decimal `json:"amount"`
	AuditFields
}
