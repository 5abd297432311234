package domain

import "github.com/shopspring/decimal"

// Customer is a buyer with an optional running due balance.
//
// DueBalance is a cached running total mutated by sales, payments and
// returns. It is a read optimization, not a source of truth: the
// authoritative value is recomputed from the event stores by the
// reconciliation operation.
type Customer struct {
	CustomerID     string          `json:"customerID"`
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	DueBalance     decimal.Decimal `json:"dueBalance"`
	AuditFields
}
