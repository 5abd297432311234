package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the store's financial position as of a cutoff instant.
// Equity is residual: total assets minus total liabilities, not separately
// tracked.
type BalanceSnapshot struct {
	AsOf              time.Time       `json:"asOf"`
	Cash              decimal.Decimal `json:"cash"`
	Bank              decimal.Decimal `json:"bank"`
	Receivables       decimal.Decimal `json:"receivables"`
	Payables          decimal.Decimal `json:"payables"`
	StockValue        decimal.Decimal `json:"stockValue"`
	OfficeAssetsValue decimal.Decimal `json:"officeAssetsValue"`
	Equity            decimal.Decimal `json:"equity"`
}

// TotalAssets sums every asset side component.
func (s BalanceSnapshot) TotalAssets() decimal.Decimal {
	return s.Cash.Add(s.Bank).Add(s.Receivables).Add(s.StockValue).Add(s.OfficeAssetsValue)
}

// TotalLiabilities is what the store owes.
func (s BalanceSnapshot) TotalLiabilities() decimal.Decimal {
	return s.Payables
}
