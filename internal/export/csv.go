package export

import (
	"encoding/csv"
	"io"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/utils"
)

const dateLayout = "2006-01-02"

// WritePendingReceivablesCSV renders the pending-receivables report.
func WritePendingReceivablesCSV(w io.Writer, rows []domain.PendingReceivableRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Customer ID", "Name", "Phone", "Due Balance"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.CustomerID, row.Name, row.Phone, utils.FormatMoney(row.DueBalance)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReceivedPaymentsCSV renders the received-payments report.
func WriteReceivedPaymentsCSV(w io.Writer, rows []domain.ReceivedPaymentRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Customer", "Amount", "Method", "Description"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.DueDate.Format(dateLayout),
			row.CustomerName,
			utils.FormatMoney(row.Amount),
			string(row.PaymentMethod),
			row.Description,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCustomerStatementCSV renders a customer statement with the running
// balance column.
func WriteCustomerStatementCSV(w io.Writer, statement *domain.CustomerStatement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Kind", "Reference", "Description", "Amount", "Balance"}); err != nil {
		return err
	}
	for _, line := range statement.Lines {
		record := []string{
			line.Date.Format(dateLayout),
			line.Kind,
			line.Reference,
			line.Description,
			utils.FormatMoney(line.Amount),
			utils.FormatMoney(line.Balance),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
