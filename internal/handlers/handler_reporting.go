package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boighar/backoffice/internal/core/ledger"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
	"github.com/boighar/backoffice/internal/export"
	"github.com/boighar/backoffice/internal/middleware"
)

// reportingHandler serves the read-only financial reports. CSV and XLSX
// renditions are selected with ?format=.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	snapshotService  portssvc.SnapshotSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, ss portssvc.SnapshotSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, snapshotService: ss}
}

func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade, ss portssvc.SnapshotSvcFacade) {
	h := newReportingHandler(rs, ss)
	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/profit-loss", h.profitAndLoss)
		reports.GET("/snapshot", h.snapshot)
		reports.GET("/pending-receivables", h.pendingReceivables)
		reports.GET("/received-payments", h.receivedPayments)
		reports.GET("/customers/:customerID/statement", h.customerStatement)
	}
}

// queryDate parses a date query parameter, defaulting to now when absent.
func queryDate(c *gin.Context, name string) (time.Time, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now(), false, nil
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%s must be a YYYY-MM-DD date", name)
	}
	return t, true, nil
}

// queryPeriod parses the from/to pair; both are required.
func queryPeriod(c *gin.Context) (from, to time.Time, err error) {
	from, set, err := queryDate(c, "from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !set {
		return time.Time{}, time.Time{}, fmt.Errorf("from is required")
	}
	to, set, err = queryDate(c, "to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !set {
		return time.Time{}, time.Time{}, fmt.Errorf("to is required")
	}
	return from, to, nil
}

// balanceSheet godoc
// @Summary Balance sheet as of a date
// @Description Assets, liabilities and equity as of the end of the given day (default today).
// @Tags reports
// @Produce json
// @Param asOf query string false "As-of date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asOf, _, err := queryDate(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), accountID, asOf)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// profitAndLoss godoc
// @Summary Profit and loss over a period
// @Tags reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/profit-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	from, to, err := queryPeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), accountID, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to build profit and loss report")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// snapshot godoc
// @Summary Raw balance snapshot
// @Description Cash, bank, receivables, payables, stock and asset values as of the end of the given day.
// @Tags reports
// @Produce json
// @Param asOf query string false "As-of date (YYYY-MM-DD)"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/snapshot [get]
func (h *reportingHandler) snapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asOf, _, err := queryDate(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.snapshotService.SnapshotAsOf(c.Request.Context(), accountID, ledger.EndOfDay(asOf))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to compute snapshot")
		return
	}
	c.JSON(http.StatusOK, dto.ToSnapshotResponse(result.Snapshot, result.SkippedEntries))
}

// pendingReceivables godoc
// @Summary Customers with outstanding dues
// @Tags reports
// @Produce json
// @Param format query string false "json (default), csv or xlsx"
// @Success 200 {object} dto.PendingReceivablesReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/pending-receivables [get]
func (h *reportingHandler) pendingReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, err := h.reportingService.PendingReceivables(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to build pending receivables report")
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, dto.ToPendingReceivablesResponse(rows, time.Now()))
	case "csv":
		writeAttachment(c, "pending-receivables.csv", "text/csv", func(buf *bytes.Buffer) error {
			return export.WritePendingReceivablesCSV(buf, rows)
		})
	case "xlsx":
		writeAttachment(c, "pending-receivables.xlsx", xlsxContentType, func(buf *bytes.Buffer) error {
			return export.WritePendingReceivablesXLSX(buf, rows)
		})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be json, csv or xlsx"})
	}
}

// receivedPayments godoc
// @Summary Payments received over a period
// @Tags reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD), inclusive"
// @Param format query string false "json (default), csv or xlsx"
// @Success 200 {object} dto.ReceivedPaymentsReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/received-payments [get]
func (h *reportingHandler) receivedPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	from, to, err := queryPeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rows, err := h.reportingService.ReceivedPayments(c.Request.Context(), accountID, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to build received payments report")
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, dto.ToReceivedPaymentsResponse(rows, from, to))
	case "csv":
		writeAttachment(c, "received-payments.csv", "text/csv", func(buf *bytes.Buffer) error {
			return export.WriteReceivedPaymentsCSV(buf, rows)
		})
	case "xlsx":
		writeAttachment(c, "received-payments.xlsx", xlsxContentType, func(buf *bytes.Buffer) error {
			return export.WriteReceivedPaymentsXLSX(buf, rows)
		})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be json, csv or xlsx"})
	}
}

// customerStatement godoc
// @Summary Per-customer statement with running balance
// @Tags reports
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param format query string false "json (default), csv or xlsx"
// @Success 200 {object} dto.CustomerStatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/customers/{customerID}/statement [get]
func (h *reportingHandler) customerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	statement, err := h.reportingService.CustomerStatement(c.Request.Context(), accountID, c.Param("customerID"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to build customer statement")
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, dto.ToCustomerStatementResponse(statement))
	case "csv":
		writeAttachment(c, "customer-statement.csv", "text/csv", func(buf *bytes.Buffer) error {
			return export.WriteCustomerStatementCSV(buf, statement)
		})
	case "xlsx":
		writeAttachment(c, "customer-statement.xlsx", xlsxContentType, func(buf *bytes.Buffer) error {
			return export.WriteCustomerStatementXLSX(buf, statement)
		})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be json, csv or xlsx"})
	}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeAttachment renders a report into a buffer and serves it as a download.
// Buffering keeps a render failure from leaking a half-written body.
func writeAttachment(c *gin.Context, filename, contentType string, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to render report file")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render report"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
