package ledger

import (
	"errors"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrAmbiguousEntry marks a ledger row whose kind cannot be classified. The
// aggregator skips such rows and reports them; it never guesses, because a
// silently mis-bucketed row is exactly the double-count bug this engine
// exists to prevent.
var ErrAmbiguousEntry = errors.New("ledger entry kind is not classifiable")

// Contribution is the signed effect of one record on the two money accounts.
// Each record is scored by exactly one rule, so summing contributions over
// disjoint record sets can never count a record twice.
type Contribution struct {
	Cash decimal.Decimal
	Bank decimal.Decimal
}

// Add returns the element-wise sum of two contributions.
func (c Contribution) Add(o Contribution) Contribution {
	return Contribution{Cash: c.Cash.Add(o.Cash), Bank: c.Bank.Add(o.Bank)}
}

func contribution(account domain.MoneyAccount, amount decimal.Decimal) Contribution {
	if account == domain.AccountBank {
		return Contribution{Cash: decimal.Zero, Bank: amount}
	}
	return Contribution{Cash: amount, Bank: decimal.Zero}
}

var zeroContribution = Contribution{Cash: decimal.Zero, Bank: decimal.Zero}

// ClassifySale scores a sale. Cash and bank sales contribute their full
// total; split sales contribute only the paid portion to the split account.
// Due and credit sales move no money at creation time: their cash effect
// arrives later through the settling PaymentReceived ledger row.
func ClassifySale(s domain.Sale, c Cutoff) Contribution {
	if !c.Includes(s.SaleDate) {
		return zeroContribution
	}
	switch s.PaymentMethod {
	case domain.SalePaymentCash:
		return contribution(domain.AccountCash, s.Total)
	case domain.SalePaymentBank:
		return contribution(domain.AccountBank, s.Total)
	case domain.SalePaymentSplit:
		return contribution(s.SplitPaymentMethod, s.AmountPaid)
	default:
		return zeroContribution
	}
}

// ClassifyExpense scores an expense: money out of the effective account.
func ClassifyExpense(e domain.Expense, c Cutoff) Contribution {
	if !c.Includes(e.ExpenseDate) {
		return zeroContribution
	}
	return contribution(e.EffectiveMethod(), e.Amount.Neg())
}

// ClassifyDonation scores a donation. Seed markers (Initial Capital source,
// Internal Transfer donor) are excluded explicitly: they are capital, not
// operating donations, and counting them here would double them against the
// capital rule.
func ClassifyDonation(d domain.Donation, c Cutoff) Contribution {
	if d.IsSeedMarker() {
		return zeroContribution
	}
	if !c.Includes(d.DonationDate) {
		return zeroContribution
	}
	return contribution(d.PaymentMethod, d.Amount)
}

// ClassifyCapital scores an owner contribution. Initial Capital rows are
// day-zero state and included regardless of cutoff.
func ClassifyCapital(cap domain.Capital, c Cutoff) Contribution {
	if !cap.IsInitial() && !c.Includes(cap.CapitalDate) {
		return zeroContribution
	}
	return contribution(cap.PaymentMethod, cap.Amount)
}

// ClassifyTransfer scores an internal transfer: out of From, into To. The
// combined cash+bank total is unchanged.
func ClassifyTransfer(t domain.Transfer, c Cutoff) Contribution {
	if !c.Includes(t.TransferDate) {
		return zeroContribution
	}
	return contribution(t.From, t.Amount.Neg()).Add(contribution(t.To, t.Amount))
}

// ClassifyLedgerEntry scores a receivable/payable ledger row. Only settled
// payment rows move money: PaymentReceived brings it in, PaymentSent takes it
// out. Due-creation rows always score zero here (the receivable/payable
// aggregates count them instead). A row whose kind is unknown cannot be
// scored and is returned with ErrAmbiguousEntry.
func ClassifyLedgerEntry(e domain.LedgerEntry, c Cutoff) (Contribution, error) {
	switch e.Kind {
	case domain.KindDueCreated, domain.KindPayableCreated:
		return zeroContribution, nil
	case domain.KindPaymentReceived:
		if e.Status != domain.StatusPaid || !c.Includes(e.DueDate) {
			return zeroContribution, nil
		}
		return contribution(e.PaymentMethod, e.Amount), nil
	case domain.KindPaymentSent:
		if e.Status != domain.StatusPaid || !c.Includes(e.DueDate) {
			return zeroContribution, nil
		}
		return contribution(e.PaymentMethod, e.Amount.Neg()), nil
	default:
		return zeroContribution, ErrAmbiguousEntry
	}
}

// ClassifySalesReturn scores a return. Cash/Bank refunds are money leaving
// the store; AdjustDue refunds only touch the customer's due balance.
func ClassifySalesReturn(r domain.SalesReturn, c Cutoff) Contribution {
	if !c.Includes(r.ReturnDate) {
		return zeroContribution
	}
	switch r.RefundMethod {
	case domain.RefundCash:
		return contribution(domain.AccountCash, r.TotalReturnValue.Neg())
	case domain.RefundBank:
		return contribution(domain.AccountBank, r.TotalReturnValue.Neg())
	default:
		return zeroContribution
	}
}

// ClassifyPurchase scores a stock purchase. Credit purchases move no money at
// creation; the payable rule and the eventual PaymentSent row carry them.
func ClassifyPurchase(p domain.Purchase, c Cutoff) Contribution {
	if !c.Includes(p.PurchaseDate) {
		return zeroContribution
	}
	switch p.PaymentMethod {
	case domain.PurchaseCash:
		return contribution(domain.AccountCash, p.TotalCost.Neg())
	case domain.PurchaseBank:
		return contribution(domain.AccountBank, p.TotalCost.Neg())
	default:
		return zeroContribution
	}
}

// ClassifyOfficeAsset scores a fixed-asset acquisition: money out of the
// paying account. The asset's cost itself shows up in OfficeAssetsValue.
func ClassifyOfficeAsset(a domain.OfficeAsset, c Cutoff) Contribution {
	if !c.Includes(a.PurchaseDate) {
		return zeroContribution
	}
	return contribution(a.PaymentMethod, a.Cost.Neg())
}
