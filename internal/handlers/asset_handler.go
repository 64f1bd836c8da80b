package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthview/internal/errors"
	"wealthview/internal/models"
	"wealthview/internal/pagination"
	"wealthview/internal/services"
)

// AssetHandler serves the read side of the asset catalog.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// ListAssetsQuery holds the query parameters accepted by ListAssets.
type ListAssetsQuery struct {
	pagination.PageRequest
	WealthAssetType      *string `form:"wealth_asset_type"`
	PrimaryAssetCategory *string `form:"primary_asset_category"`
	IsActive             *bool   `form:"is_active"`
}

// AssetListResponse documents the paginated asset list.
type AssetListResponse struct {
	Items    []models.Asset `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Pages    int            `json:"pages"`
}

// ListAssets handles listing assets
// @Summary     List assets
// @Description Paginated list of assets with optional exact-match filters
// @Tags        assets
// @Produce     json
// @Param       page                   query int    false "Page number (default 1)"
// @Param       page_size              query int    false "Items per page (default 20, max 100)"
// @Param       wealth_asset_type      query string false "Filter by wealth asset type"
// @Param       primary_asset_category query string false "Filter by primary asset category"
// @Param       is_active              query bool   false "Filter by active status"
// @Success     200 {object} AssetListResponse "Assets"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var query ListAssetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.AssetFilter{
		WealthAssetType:      query.WealthAssetType,
		PrimaryAssetCategory: query.PrimaryAssetCategory,
		IsActive:             query.IsActive,
	}

	result, err := h.assetService.ListAssets(c.Request.Context(), filter, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAsset handles retrieving one asset
// @Summary     Get asset by wid
// @Tags        assets
// @Produce     json
// @Param       wid path string true "Asset wid (UUID)"
// @Success     200 {object} models.Asset "Asset"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     422 {object} ErrorResponse "Invalid wid"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{wid} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	wid, err := parseWID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByWID(c.Request.Context(), wid)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}
