package handlers

import (
	"net/http"

	"github.com/endfield/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// GetUploadURL issues presigned upload credentials so the client can PUT the
// binary straight into the object store
func (h *UploadHandler) GetUploadURL(c *gin.Context) {
	var req struct {
		Filename    string `json:"filename" binding:"required"`
		ContentType string `json:"content_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	creds, err := h.storageService.GenerateUploadURL(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to generate upload URL"})
		return
	}

	c.JSON(http.StatusOK, creds)
}
