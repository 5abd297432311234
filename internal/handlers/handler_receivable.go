package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/boighar/backoffice/internal/core/domain"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
	"github.com/boighar/backoffice/internal/middleware"
)

// receivableHandler handles the receivable/payable ledger and settlements.
type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
}

func newReceivableHandler(rs portssvc.ReceivableSvcFacade) *receivableHandler {
	return &receivableHandler{receivableService: rs}
}

func registerReceivableRoutes(rg *gin.RouterGroup, rs portssvc.ReceivableSvcFacade) {
	h := newReceivableHandler(rs)
	ledger := rg.Group("/ledger")
	{
		ledger.GET("/entries", h.listEntries)
		ledger.POST("/receivables/:entryID/payments", h.addPayment)
		ledger.POST("/payables/:entryID/pay", h.payPayable)
	}
}

// listEntries godoc
// @Summary List ledger entries
// @Description Lists receivable/payable entries, optionally filtered by type and pending status.
// @Tags ledger
// @Produce json
// @Param type query string false "RECEIVABLE or PAYABLE"
// @Param pending query bool false "Only pending entries"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/entries [get]
func (h *receivableHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var entryType domain.EntryType
	switch c.Query("type") {
	case "":
	case string(domain.EntryReceivable):
		entryType = domain.EntryReceivable
	case string(domain.EntryPayable):
		entryType = domain.EntryPayable
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be RECEIVABLE or PAYABLE"})
		return
	}
	pendingOnly, _ := strconv.ParseBool(c.Query("pending"))

	entries, err := h.receivableService.ListEntries(c.Request.Context(), accountID, entryType, pendingOnly)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// addPayment godoc
// @Summary Settle a pending receivable
// @Description Records a customer payment against a pending due entry. Settlement happens exactly once.
// @Tags ledger
// @Accept json
// @Produce json
// @Param entryID path string true "Ledger entry ID"
// @Param payment body dto.AddPaymentRequest true "Payment details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/receivables/{entryID}/payments [post]
func (h *receivableHandler) addPayment(c *gin.Context) {
	h.settle(c, h.receivableService.AddPayment, "Failed to record payment")
}

// payPayable godoc
// @Summary Settle a pending payable
// @Description Records the store paying off a supplier credit entry.
// @Tags ledger
// @Accept json
// @Produce json
// @Param entryID path string true "Ledger entry ID"
// @Param payment body dto.AddPaymentRequest true "Payment details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/payables/{entryID}/pay [post]
func (h *receivableHandler) payPayable(c *gin.Context) {
	h.settle(c, h.receivableService.PayPayable, "Failed to pay payable")
}

type settleFunc func(ctx context.Context, accountID, entryID string, req dto.AddPaymentRequest, userID string) (*domain.LedgerEntry, error)

func (h *receivableHandler) settle(c *gin.Context, fn settleFunc, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := fn(c.Request.Context(), accountID, c.Param("entryID"), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, fallback)
		return
	}

	logger.Info("Ledger entry settled", slog.String("payment_entry_id", payment.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(payment))
}
