package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSheetReport is a single snapshot formatted for presentation.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Snapshot         BalanceSnapshot `json:"snapshot"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	Equity           decimal.Decimal `json:"equity"`
}

// ProfitAndLossReport covers one period. Gross profit is revenue minus cost
// of goods sold priced at each book's production price; net profit also folds
// in operating expenses and donations received.
type ProfitAndLossReport struct {
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	SalesRevenue     decimal.Decimal `json:"salesRevenue"`
	CostOfGoodsSold  decimal.Decimal `json:"costOfGoodsSold"`
	GrossProfit      decimal.Decimal `json:"grossProfit"`
	Expenses         decimal.Decimal `json:"expenses"`
	Donations        decimal.Decimal `json:"donations"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	SalesCount       int             `json:"salesCount"`
	ReturnsDeduction decimal.Decimal `json:"returnsDeduction"`
}

// PendingReceivableRow is one customer in the pending-receivables report.
type PendingReceivableRow struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	DueBalance decimal.Decimal `json:"dueBalance"`
}

// ReceivedPaymentRow is one settled customer payment in a period.
type ReceivedPaymentRow struct {
	EntryID       string          `json:"entryID"`
	CustomerID    string          `json:"customerID"`
	CustomerName  string          `json:"customerName"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod MoneyAccount    `json:"paymentMethod"`
	Description   string          `json:"description,omitempty"`
}

// StatementLine is one event on a customer statement with the running due
// balance after it.
type StatementLine struct {
	Date        time.Time       `json:"date"`
	Kind        string          `json:"kind"` // SALE, PAYMENT, RETURN
	Reference   string          `json:"reference"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // signed effect on the due balance
	Balance     decimal.Decimal `json:"balance"`
}

// CustomerStatement is the per-customer ledger listing.
type CustomerStatement struct {
	CustomerID     string          `json:"customerID"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []StatementLine `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// ReconciliationResult reports cached-vs-recomputed drift for one customer.
type ReconciliationResult struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Cached     decimal.Decimal `json:"cached"`
	Recomputed decimal.Decimal `json:"recomputed"`
	Drift      decimal.Decimal `json:"drift"`
	Repaired   bool            `json:"repaired"`
}
