package handlers

import (
	"net/http"

	"github.com/endfield/backend/internal/models"
	"github.com/endfield/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	assetService *services.AssetService
}

func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAsset registers a new industrial asset
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var asset models.Asset
	if err := c.ShouldBindJSON(&asset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.assetService.Create(&asset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListAssets returns every asset
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}
