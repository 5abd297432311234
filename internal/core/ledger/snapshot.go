package ledger

import (
	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordSet holds the full, already-scoped record sets the aggregator works
// over. Fetching is the caller's job; the aggregator is a pure function of
// this data and the cutoff, so identical inputs always produce identical
// snapshots.
type RecordSet struct {
	Sales        []domain.Sale
	Expenses     []domain.Expense
	Donations    []domain.Donation
	Capital      []domain.Capital
	Transfers    []domain.Transfer
	Entries      []domain.LedgerEntry
	Returns      []domain.SalesReturn
	Purchases    []domain.Purchase
	OfficeAssets []domain.OfficeAsset
	Books        []domain.Book
}

// Result is a computed snapshot plus the count of ledger rows that could not
// be classified and were skipped. Skipped rows are surfaced, never silently
// zero- or double-counted.
type Result struct {
	Snapshot       domain.BalanceSnapshot
	SkippedEntries int
}

// Snapshot derives the store's position as of the cutoff.
//
// Cash and bank are the sum of every record's classified contribution.
// Receivables and payables come only from pending due-creation rows, so a
// sale's due portion is counted exactly once (the sale itself scores zero for
// its due part, and the settling payment row flips the pending row to Paid
// before it contributes to cash). Equity is residual.
func Snapshot(rs RecordSet, c Cutoff) Result {
	total := Contribution{Cash: decimal.Zero, Bank: decimal.Zero}

	for _, s := range rs.Sales {
		total = total.Add(ClassifySale(s, c))
	}
	for _, e := range rs.Expenses {
		total = total.Add(ClassifyExpense(e, c))
	}
	for _, d := range rs.Donations {
		total = total.Add(ClassifyDonation(d, c))
	}
	for _, cap := range rs.Capital {
		total = total.Add(ClassifyCapital(cap, c))
	}
	for _, t := range rs.Transfers {
		total = total.Add(ClassifyTransfer(t, c))
	}
	skipped := 0
	for _, e := range rs.Entries {
		contrib, err := ClassifyLedgerEntry(e, c)
		if err != nil {
			skipped++
			continue
		}
		total = total.Add(contrib)
	}
	for _, r := range rs.Returns {
		total = total.Add(ClassifySalesReturn(r, c))
	}
	for _, p := range rs.Purchases {
		total = total.Add(ClassifyPurchase(p, c))
	}
	for _, a := range rs.OfficeAssets {
		total = total.Add(ClassifyOfficeAsset(a, c))
	}

	receivables := pendingTotal(rs.Entries, domain.KindDueCreated, c)
	payables := pendingTotal(rs.Entries, domain.KindPayableCreated, c)
	stockValue := StockValue(rs, c)
	officeAssets := officeAssetsValue(rs.OfficeAssets, c)

	snap := domain.BalanceSnapshot{
		AsOf:              c.Time(),
		Cash:              total.Cash,
		Bank:              total.Bank,
		Receivables:       receivables,
		Payables:          payables,
		StockValue:        stockValue,
		OfficeAssetsValue: officeAssets,
	}
	snap.Equity = snap.TotalAssets().Sub(snap.TotalLiabilities())

	return Result{Snapshot: snap, SkippedEntries: skipped}
}

func pendingTotal(entries []domain.LedgerEntry, kind domain.EntryKind, c Cutoff) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.Kind != kind || e.Status != domain.StatusPending {
			continue
		}
		if !c.Includes(e.DueDate) {
			continue
		}
		sum = sum.Add(e.Amount)
	}
	return sum
}

func officeAssetsValue(assets []domain.OfficeAsset, c Cutoff) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range assets {
		if c.Includes(a.PurchaseDate) {
			sum = sum.Add(a.Cost)
		}
	}
	return sum
}

// StockValue prices the historical stock of every book at its production
// price. Stock as of the cutoff is reconstructed backwards from the current
// count: quantities sold after the cutoff are added back, quantities
// purchased or returned after the cutoff are removed.
//
// This is a best-effort point-in-time-from-present computation: it assumes
// no sale, purchase or return has been retroactively edited or deleted. The
// stores give no event-sourcing guarantee, so historical stock figures are
// indicative, not authoritative.
func StockValue(rs RecordSet, c Cutoff) decimal.Decimal {
	soldAfter := make(map[string]int64)
	for _, s := range rs.Sales {
		if c.Includes(s.SaleDate) {
			continue
		}
		for _, it := range s.Items {
			soldAfter[it.BookID] += it.Quantity
		}
	}
	purchasedAfter := make(map[string]int64)
	for _, p := range rs.Purchases {
		if c.Includes(p.PurchaseDate) {
			continue
		}
		for _, it := range p.Items {
			purchasedAfter[it.BookID] += it.Quantity
		}
	}
	returnedAfter := make(map[string]int64)
	for _, r := range rs.Returns {
		if c.Includes(r.ReturnDate) {
			continue
		}
		for _, it := range r.Items {
			returnedAfter[it.BookID] += it.Quantity
		}
	}

	sum := decimal.Zero
	for _, b := range rs.Books {
		historical := b.Stock + soldAfter[b.BookID] - purchasedAfter[b.BookID] - returnedAfter[b.BookID]
		if historical <= 0 {
			continue
		}
		sum = sum.Add(b.ProductionPrice.Mul(decimal.NewFromInt(historical)))
	}
	return sum
}
