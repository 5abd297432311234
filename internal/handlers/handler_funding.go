package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
	"github.com/boighar/backoffice/internal/middleware"
)

// fundingHandler handles donations and owner capital contributions.
type fundingHandler struct {
	fundingService portssvc.FundingSvcFacade
}

func newFundingHandler(fs portssvc.FundingSvcFacade) *fundingHandler {
	return &fundingHandler{fundingService: fs}
}

func registerFundingRoutes(rg *gin.RouterGroup, fs portssvc.FundingSvcFacade) {
	h := newFundingHandler(fs)
	donations := rg.Group("/donations")
	{
		donations.POST("", h.createDonation)
		donations.GET("", h.listDonations)
	}
	capital := rg.Group("/capital")
	{
		capital.POST("", h.createCapital)
		capital.GET("", h.listCapital)
	}
}

// createDonation godoc
// @Summary Record a donation received
// @Tags funding
// @Accept json
// @Produce json
// @Param donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /donations [post]
func (h *fundingHandler) createDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	donation, err := h.fundingService.CreateDonation(c.Request.Context(), accountID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to record donation")
		return
	}

	logger.Info("Donation recorded", slog.String("donation_id", donation.DonationID))
	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

// listDonations godoc
// @Summary List donations
// @Tags funding
// @Produce json
// @Success 200 {array} dto.DonationResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /donations [get]
func (h *fundingHandler) listDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	donations, err := h.fundingService.ListDonations(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list donations")
		return
	}

	responses := make([]dto.DonationResponse, len(donations))
	for i := range donations {
		responses[i] = dto.ToDonationResponse(&donations[i])
	}
	c.JSON(http.StatusOK, responses)
}

// createCapital godoc
// @Summary Record an owner capital contribution
// @Tags funding
// @Accept json
// @Produce json
// @Param capital body dto.CreateCapitalRequest true "Capital details"
// @Success 201 {object} dto.CapitalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /capital [post]
func (h *fundingHandler) createCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCapitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	capital, err := h.fundingService.CreateCapital(c.Request.Context(), accountID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to record capital contribution")
		return
	}

	logger.Info("Capital contribution recorded", slog.String("capital_id", capital.CapitalID))
	c.JSON(http.StatusCreated, dto.ToCapitalResponse(capital))
}

// listCapital godoc
// @Summary List capital contributions
// @Tags funding
// @Produce json
// @Success 200 {array} dto.CapitalResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /capital [get]
func (h *fundingHandler) listCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contributions, err := h.fundingService.ListCapital(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list capital contributions")
		return
	}

	responses := make([]dto.CapitalResponse, len(contributions))
	for i := range contributions {
		responses[i] = dto.ToCapitalResponse(&contributions[i])
	}
	c.JSON(http.StatusOK, responses)
}
