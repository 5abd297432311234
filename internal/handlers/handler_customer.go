package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/boighar/backoffice/internal/core/domain"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
	"github.com/boighar/backoffice/internal/middleware"
)

// customerHandler handles customer CRUD and due balance reconciliation.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

func registerCustomerRoutes(rg *gin.RouterGroup, cs portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(cs)
	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customerID", h.getCustomer)
		customers.PUT("/:customerID", h.updateCustomer)
		customers.POST("/:customerID/reconcile", h.reconcileCustomer)
		customers.POST("/reconcile", h.reconcileAll)
	}
}

// createCustomer godoc
// @Summary Register a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), accountID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create customer")
		return
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), accountID, c.Param("customerID"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to fetch customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// updateCustomer godoc
// @Summary Update customer contact details
// @Tags customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{customerID} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), accountID, c.Param("customerID"), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// reconcileCustomer godoc
// @Summary Reconcile one customer's due balance
// @Description Recomputes the due balance from the event stores and reports drift. repair=true also writes the recomputed value back.
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param repair query bool false "Repair the cached balance"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{customerID}/reconcile [post]
func (h *customerHandler) reconcileCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	repair, _ := strconv.ParseBool(c.Query("repair"))
	result, err := h.customerService.Reconcile(c.Request.Context(), accountID, c.Param("customerID"), repair, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to reconcile customer")
		return
	}

	responses := dto.ToReconciliationResponses([]domain.ReconciliationResult{*result})
	c.JSON(http.StatusOK, responses[0])
}

// reconcileAll godoc
// @Summary Reconcile every customer's due balance
// @Tags customers
// @Produce json
// @Param repair query bool false "Repair drifted balances"
// @Success 200 {array} dto.ReconciliationResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/reconcile [post]
func (h *customerHandler) reconcileAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	repair, _ := strconv.ParseBool(c.Query("repair"))
	results, err := h.customerService.ReconcileAll(c.Request.Context(), accountID, repair, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to reconcile customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponses(results))
}
