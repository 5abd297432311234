package ledger_test

import (
	"testing"
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProfitAndLoss_MonthlyFigures(t *testing.T) {
	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	sales := []domain.Sale{
		{SaleDate: day(time.December, 3), Total: dec(1000), PaymentMethod: domain.SalePaymentCash,
			Items: []domain.SaleItem{{BookID: "b1", Quantity: 5, UnitPrice: dec(200)}}},
		{SaleDate: day(time.December, 18), Total: dec(600), PaymentMethod: domain.SalePaymentDue,
			Items: []domain.SaleItem{{BookID: "b2", Quantity: 2, UnitPrice: dec(300)}}},
		{SaleDate: day(time.November, 30), Total: dec(9999), PaymentMethod: domain.SalePaymentCash}, // outside period
	}
	expenses := []domain.Expense{
		{ExpenseDate: day(time.December, 10), Amount: dec(450)},
		{ExpenseDate: day(time.January, 10), Amount: dec(777)}, // outside period
	}
	donations := []domain.Donation{
		{DonationDate: day(time.December, 12), DonorName: "Karim", Amount: dec(200), PaymentMethod: domain.AccountCash},
		{DonationDate: day(time.December, 13), Source: domain.SourceInitialCapital, Amount: dec(5000), PaymentMethod: domain.AccountCash}, // seed, excluded
	}
	returns := []domain.SalesReturn{
		{ReturnDate: day(time.December, 20), TotalReturnValue: dec(100), RefundMethod: domain.RefundCash},
	}
	prices := map[string]decimal.Decimal{
		"b1": dec(120),
		"b2": dec(180),
	}

	report := ledger.ProfitAndLoss(from, to, sales, expenses, donations, returns, prices)

	// revenue: 1000 + 600 - 100 returns = 1500
	assert.True(t, report.SalesRevenue.Equal(dec(1500)), "revenue %s", report.SalesRevenue)
	// cogs: 5*120 + 2*180 = 960
	assert.True(t, report.CostOfGoodsSold.Equal(dec(960)))
	assert.True(t, report.GrossProfit.Equal(dec(540)))
	assert.True(t, report.Expenses.Equal(dec(450)))
	assert.True(t, report.Donations.Equal(dec(200)))
	// net: 540 - 450 + 200 = 290
	assert.True(t, report.NetProfit.Equal(dec(290)))
	assert.Equal(t, 2, report.SalesCount)
}

func TestProfitAndLoss_DueSaleIsStillRevenue(t *testing.T) {
	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	sales := []domain.Sale{
		{SaleDate: day(time.December, 3), Total: dec(500), PaymentMethod: domain.SalePaymentDue},
	}
	report := ledger.ProfitAndLoss(from, to, sales, nil, nil, nil, nil)

	assert.True(t, report.SalesRevenue.Equal(dec(500)))
	assert.True(t, report.CostOfGoodsSold.IsZero(), "unknown book prices understate COGS, never guess")
}
