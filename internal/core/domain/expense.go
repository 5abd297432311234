package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating expense paid out of cash or bank.
// PaymentMethod may be empty on records imported from the legacy system;
// EffectiveMethod applies the documented default exactly once.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	AccountID     string          `json:"accountID"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // > 0
	PaymentMethod MoneyAccount    `json:"paymentMethod,omitempty"`
	AuditFields
}

// EffectiveMethod resolves the legacy-default rule: an expense with no
// payment method recorded is treated as paid in cash.
func (e Expense) EffectiveMethod() MoneyAccount {
	if e.PaymentMethod == AccountBank {
		return AccountBank
	}
	return AccountCash
}
