package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/utils"
)

// WritePendingReceivablesXLSX renders the pending-receivables report as a
// spreadsheet.
func WritePendingReceivablesXLSX(w io.Writer, rows []domain.PendingReceivableRow) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Customer ID", "Name", "Phone", "Due Balance"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}
	for i, row := range rows {
		values := []any{row.CustomerID, row.Name, row.Phone, utils.FormatMoney(row.DueBalance)}
		if err := writeDataRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// WriteReceivedPaymentsXLSX renders the received-payments report as a
// spreadsheet.
func WriteReceivedPaymentsXLSX(w io.Writer, rows []domain.ReceivedPaymentRow) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Date", "Customer", "Amount", "Method", "Description"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}
	for i, row := range rows {
		values := []any{
			row.DueDate.Format(dateLayout),
			row.CustomerName,
			utils.FormatMoney(row.Amount),
			string(row.PaymentMethod),
			row.Description,
		}
		if err := writeDataRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// WriteCustomerStatementXLSX renders a customer statement with the running
// balance column.
func WriteCustomerStatementXLSX(w io.Writer, statement *domain.CustomerStatement) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Date", "Kind", "Reference", "Description", "Amount", "Balance"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}
	for i, line := range statement.Lines {
		values := []any{
			line.Date.Format(dateLayout),
			line.Kind,
			line.Reference,
			line.Description,
			utils.FormatMoney(line.Amount),
			utils.FormatMoney(line.Balance),
		}
		if err := writeDataRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", header, err)
		}
	}
	return nil
}

func writeDataRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
	}
	return nil
}
