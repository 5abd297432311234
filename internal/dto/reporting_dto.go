package dto

import (
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetResponse is the balance sheet report response.
type BalanceSheetResponse struct {
	AsOf   string `json:"asOf"`
	Assets struct {
		Cash         decimal.Decimal `json:"cash"`
		Bank         decimal.Decimal `json:"bank"`
		Receivables  decimal.Decimal `json:"receivables"`
		StockValue   decimal.Decimal `json:"stockValue"`
		OfficeAssets decimal.Decimal `json:"officeAssets"`
	} `json:"assets"`
	Liabilities struct {
		Payables decimal.Decimal `json:"payables"`
	} `json:"liabilities"`
	Summary struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		Equity           decimal.Decimal `json:"equity"`
	} `json:"summary"`
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	resp := BalanceSheetResponse{AsOf: report.AsOf.Format(DateLayout)}
	resp.Assets.Cash = report.Snapshot.Cash
	resp.Assets.Bank = report.Snapshot.Bank
	resp.Assets.Receivables = report.Snapshot.Receivables
	resp.Assets.StockValue = report.Snapshot.StockValue
	resp.Assets.OfficeAssets = report.Snapshot.OfficeAssetsValue
	resp.Liabilities.Payables = report.Snapshot.Payables
	resp.Summary.TotalAssets = report.TotalAssets
	resp.Summary.TotalLiabilities = report.TotalLiabilities
	resp.Summary.Equity = report.Equity
	return resp
}

// ProfitAndLossResponse is the monthly P&L report response.
type ProfitAndLossResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Summary  struct {
		SalesRevenue     decimal.Decimal `json:"salesRevenue"`
		ReturnsDeduction decimal.Decimal `json:"returnsDeduction"`
		CostOfGoodsSold  decimal.Decimal `json:"costOfGoodsSold"`
		GrossProfit      decimal.Decimal `json:"grossProfit"`
		Expenses         decimal.Decimal `json:"expenses"`
		Donations        decimal.Decimal `json:"donations"`
		NetProfit        decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
	SalesCount int `json:"salesCount"`
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response.
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport) ProfitAndLossResponse {
	resp := ProfitAndLossResponse{
		FromDate:   report.From.Format(DateLayout),
		ToDate:     report.To.Format(DateLayout),
		SalesCount: report.SalesCount,
	}
	resp.Summary.SalesRevenue = report.SalesRevenue
	resp.Summary.ReturnsDeduction = report.ReturnsDeduction
	resp.Summary.CostOfGoodsSold = report.CostOfGoodsSold
	resp.Summary.GrossProfit = report.GrossProfit
	resp.Summary.Expenses = report.Expenses
	resp.Summary.Donations = report.Donations
	resp.Summary.NetProfit = report.NetProfit
	return resp
}

// SnapshotResponse is the raw balance snapshot response.
type SnapshotResponse struct {
	AsOf              time.Time       `json:"asOf"`
	Cash              decimal.Decimal `json:"cash"`
	Bank              decimal.Decimal `json:"bank"`
	Receivables       decimal.Decimal `json:"receivables"`
	Payables          decimal.Decimal `json:"payables"`
	StockValue        decimal.Decimal `json:"stockValue"`
	OfficeAssetsValue decimal.Decimal `json:"officeAssetsValue"`
	Equity            decimal.Decimal `json:"equity"`
	SkippedEntries    int             `json:"skippedEntries,omitempty"`
}

// ToSnapshotResponse converts a domain snapshot plus its skipped-row count.
func ToSnapshotResponse(s domain.BalanceSnapshot, skipped int) SnapshotResponse {
	return SnapshotResponse{
		AsOf:              s.AsOf,
		Cash:              s.Cash,
		Bank:              s.Bank,
		Receivables:       s.Receivables,
		Payables:          s.Payables,
		StockValue:        s.StockValue,
		OfficeAssetsValue: s.OfficeAssetsValue,
		Equity:            s.Equity,
		SkippedEntries:    skipped,
	}
}

// PendingReceivableResponse is one row of the pending receivables report.
type PendingReceivableResponse struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	DueBalance decimal.Decimal `json:"dueBalance"`
}

// PendingReceivablesReportResponse lists customers with nonzero dues.
type PendingReceivablesReportResponse struct {
	AsOf     string                      `json:"asOf"`
	Rows     []PendingReceivableResponse `json:"rows"`
	TotalDue decimal.Decimal             `json:"totalDue"`
}

// ToPendingReceivablesResponse converts report rows to a DTO response.
func ToPendingReceivablesResponse(rows []domain.PendingReceivableRow, asOf time.Time) PendingReceivablesReportResponse {
	resp := PendingReceivablesReportResponse{
		AsOf: asOf.Format(DateLayout),
		Rows: make([]PendingReceivableResponse, len(rows)),
	}
	total := decimal.Zero
	for i, row := range rows {
		resp.Rows[i] = PendingReceivableResponse{
			CustomerID: row.CustomerID,
			Name:       row.Name,
			Phone:      row.Phone,
			DueBalance: row.DueBalance,
		}
		total = total.Add(row.DueBalance)
	}
	resp.TotalDue = total
	return resp
}

// ReceivedPaymentResponse is one settled payment row in a period report.
type ReceivedPaymentResponse struct {
	EntryID       string          `json:"entryID"`
	CustomerID    string          `json:"customerID"`
	CustomerName  string          `json:"customerName"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description,omitempty"`
}

// ReceivedPaymentsReportResponse is the period payments report.
type ReceivedPaymentsReportResponse struct {
	FromDate string                    `json:"fromDate"`
	ToDate   string                    `json:"toDate"`
	Rows     []ReceivedPaymentResponse `json:"rows"`
	Total    decimal.Decimal           `json:"total"`
}

// ToReceivedPaymentsResponse converts report rows to a DTO response.
func ToReceivedPaymentsResponse(rows []domain.ReceivedPaymentRow, from, to time.Time) ReceivedPaymentsReportResponse {
	resp := ReceivedPaymentsReportResponse{
		FromDate: from.Format(DateLayout),
		ToDate:   to.Format(DateLayout),
		Rows:     make([]ReceivedPaymentResponse, len(rows)),
	}
	total := decimal.Zero
	for i, row := range rows {
		resp.Rows[i] = ReceivedPaymentResponse{
			EntryID:       row.EntryID,
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			Date:          row.DueDate.Format(DateLayout),
			Amount:        row.Amount,
			PaymentMethod: string(row.PaymentMethod),
			Description:   row.Description,
		}
		total = total.Add(row.Amount)
	}
	resp.Total = total
	return resp
}

// StatementLineResponse is one line of a customer statement.
type StatementLineResponse struct {
	Date        string          `json:"date"`
	Kind        string          `json:"kind"`
	Reference   string          `json:"reference"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}

// CustomerStatementResponse is the per-customer ledger listing.
type CustomerStatementResponse struct {
	CustomerID     string                  `json:"customerID"`
	Name           string                  `json:"name"`
	OpeningBalance decimal.Decimal         `json:"openingBalance"`
	Lines          []StatementLineResponse `json:"lines"`
	ClosingBalance decimal.Decimal         `json:"closingBalance"`
}

// ToCustomerStatementResponse converts a domain statement to a DTO response.
func ToCustomerStatementResponse(st *domain.CustomerStatement) CustomerStatementResponse {
	resp := CustomerStatementResponse{
		CustomerID:     st.CustomerID,
		Name:           st.Name,
		OpeningBalance: st.OpeningBalance,
		Lines:          make([]StatementLineResponse, len(st.Lines)),
		ClosingBalance: st.ClosingBalance,
	}
	for i, line := range st.Lines {
		resp.Lines[i] = StatementLineResponse{
			Date:        line.Date.Format(DateLayout),
			Kind:        line.Kind,
			Reference:   line.Reference,
			Description: line.Description,
			Amount:      line.Amount,
			Balance:     line.Balance,
		}
	}
	return resp
}

// ReconciliationResponse reports cached-vs-recomputed drift per customer.
type ReconciliationResponse struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Cached     decimal.Decimal `json:"cached"`
	Recomputed decimal.Decimal `json:"recomputed"`
	Drift      decimal.Decimal `json:"drift"`
	Repaired   bool            `json:"repaired"`
}

// ToReconciliationResponses converts reconciliation results.
func ToReconciliationResponses(results []domain.ReconciliationResult) []ReconciliationResponse {
	responses := make([]ReconciliationResponse, len(results))
	for i, r := range results {
		responses[i] = ReconciliationResponse{
			CustomerID: r.CustomerID,
			Name:       r.Name,
			Cached:     r.Cached,
			Recomputed: r.Recomputed,
			Drift:      r.Drift,
			Repaired:   r.Repaired,
		}
	}
	return responses
}
