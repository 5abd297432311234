package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// MoneyAccount identifies one of the two physical balances the store keeps.
type MoneyAccount string

const (
	AccountCash MoneyAccount = "CASH"
	AccountBank MoneyAccount = "BANK"
)

// Valid reports whether m is one of the two known money accounts.
func (m MoneyAccount) Valid() bool {
	return m == AccountCash || m == AccountBank
}
