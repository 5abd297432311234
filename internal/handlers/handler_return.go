package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
	"github.com/boighar/backoffice/internal/middleware"
)

type returnHandler struct {
	returnService portssvc.ReturnSvcFacade
}

func newReturnHandler(rs portssvc.ReturnSvcFacade) *returnHandler {
	return &returnHandler{returnService: rs}
}

func registerReturnRoutes(rg *gin.RouterGroup, rs portssvc.ReturnSvcFacade) {
	h := newReturnHandler(rs)
	returns := rg.Group("/returns")
	{
		returns.POST("", h.createReturn)
		returns.GET("", h.listReturns)
	}
}

// createReturn godoc
// @Summary Record a sales return
// @Description Restocks the returned books and refunds in cash, bank or as a due adjustment.
// @Tags returns
// @Accept json
// @Produce json
// @Param return body dto.CreateReturnRequest true "Return details"
// @Success 201 {object} dto.ReturnResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /returns [post]
func (h *returnHandler) createReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ret, err := h.returnService.CreateReturn(c.Request.Context(), accountID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to record return")
		return
	}

	logger.Info("Sales return recorded", slog.String("return_id", ret.ReturnID))
	c.JSON(http.StatusCreated, dto.ToReturnResponse(ret))
}

// listReturns godoc
// @Summary List sales returns
// @Tags returns
// @Produce json
// @Success 200 {array} dto.ReturnResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /returns [get]
func (h *returnHandler) listReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	returns, err := h.returnService.ListReturns(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list returns")
		return
	}

	responses := make([]dto.ReturnResponse, len(returns))
	for i := range returns {
		responses[i] = dto.ToReturnResponse(&returns[i])
	}
	c.JSON(http.StatusOK, responses)
}
