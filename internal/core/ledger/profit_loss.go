package ledger

import (
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitAndLoss computes the period P&L from period-filtered records.
// Revenue is the total of every sale dated in [from, to] regardless of how it
// was paid (a due sale is still revenue; only its cash effect is deferred).
// Cost of goods sold prices each sold item at its book's production price.
// Returns in the period are deducted from revenue at their return value.
//
// productionPrices maps BookID to production price; items whose book is
// missing from the map cost zero, which understates COGS rather than
// guessing.
func ProfitAndLoss(from, to time.Time, sales []domain.Sale, expenses []domain.Expense, donations []domain.Donation, returns []domain.SalesReturn, productionPrices map[string]decimal.Decimal) domain.ProfitAndLossReport {
	start := At(from)
	end := EndOfDay(to)
	inPeriod := func(t time.Time) bool {
		return !t.Before(start.Time()) && end.Includes(t)
	}

	revenue := decimal.Zero
	cogs := decimal.Zero
	salesCount := 0
	for _, s := range sales {
		if !inPeriod(s.SaleDate) {
			continue
		}
		salesCount++
		revenue = revenue.Add(s.Total)
		for _, it := range s.Items {
			price, ok := productionPrices[it.BookID]
			if !ok {
				continue
			}
			cogs = cogs.Add(price.Mul(decimal.NewFromInt(it.Quantity)))
		}
	}

	returnsDeduction := decimal.Zero
	for _, r := range returns {
		if inPeriod(r.ReturnDate) {
			returnsDeduction = returnsDeduction.Add(r.TotalReturnValue)
		}
	}
	revenue = revenue.Sub(returnsDeduction)

	expenseTotal := decimal.Zero
	for _, e := range expenses {
		if inPeriod(e.ExpenseDate) {
			expenseTotal = expenseTotal.Add(e.Amount)
		}
	}

	donationTotal := decimal.Zero
	for _, d := range donations {
		if d.IsSeedMarker() {
			continue
		}
		if inPeriod(d.DonationDate) {
			donationTotal = donationTotal.Add(d.Amount)
		}
	}

	grossProfit := revenue.Sub(cogs)
	return domain.ProfitAndLossReport{
		From:             from,
		To:               end.Time(),
		SalesRevenue:     revenue,
		CostOfGoodsSold:  cogs,
		GrossProfit:      grossProfit,
		Expenses:         expenseTotal,
		Donations:        donationTotal,
		NetProfit:        grossProfit.Sub(expenseTotal).Add(donationTotal),
		SalesCount:       salesCount,
		ReturnsDeduction: returnsDeduction,
	}
}
