package ledger

import (
	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerDue recomputes a customer's due balance from the event stores:
// opening balance, plus the due portion of every sale, minus settled
// receivable payments, minus AdjustDue returns. This is the authoritative
// value the cached Customer.DueBalance is reconciled against.
//
// The inputs are assumed already filtered to the customer in question.
func CustomerDue(openingBalance decimal.Decimal, sales []domain.Sale, entries []domain.LedgerEntry, returns []domain.SalesReturn) decimal.Decimal {
	due := openingBalance

	for _, s := range sales {
		due = due.Add(s.DueAmount())
	}
	for _, e := range entries {
		if e.Type != domain.EntryReceivable || e.Kind != domain.KindPaymentReceived {
			continue
		}
		if e.Status != domain.StatusPaid {
			continue
		}
		due = due.Sub(e.Amount)
	}
	for _, r := range returns {
		if r.RefundMethod == domain.RefundAdjustDue {
			due = due.Sub(r.TotalReturnValue)
		}
	}
	return due
}
