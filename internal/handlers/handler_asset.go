package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
	"github.com/boighar/backoffice/internal/middleware"
)

type officeAssetHandler struct {
	assetService portssvc.OfficeAssetSvcFacade
}

func newOfficeAssetHandler(as portssvc.OfficeAssetSvcFacade) *officeAssetHandler {
	return &officeAssetHandler{assetService: as}
}

func registerOfficeAssetRoutes(rg *gin.RouterGroup, as portssvc.OfficeAssetSvcFacade) {
	h := newOfficeAssetHandler(as)
	assets := rg.Group("/office-assets")
	{
		assets.POST("", h.createOfficeAsset)
		assets.GET("", h.listOfficeAssets)
	}
}

// createOfficeAsset godoc
// @Summary Record a fixed-asset acquisition
// @Tags office-assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateOfficeAssetRequest true "Asset details"
// @Success 201 {object} dto.OfficeAssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office-assets [post]
func (h *officeAssetHandler) createOfficeAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOfficeAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asset, err := h.assetService.CreateOfficeAsset(c.Request.Context(), accountID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to record office asset")
		return
	}

	logger.Info("Office asset recorded", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, dto.ToOfficeAssetResponse(asset))
}

// listOfficeAssets godoc
// @Summary List office assets
// @Tags office-assets
// @Produce json
// @Success 200 {array} dto.OfficeAssetResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office-assets [get]
func (h *officeAssetHandler) listOfficeAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	assets, err := h.assetService.ListOfficeAssets(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list office assets")
		return
	}

	responses := make([]dto.OfficeAssetResponse, len(assets))
	for i := range assets {
		responses[i] = dto.ToOfficeAssetResponse(&assets[i])
	}
	c.JSON(http.StatusOK, responses)
}
