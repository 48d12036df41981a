package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/endfield/backend/internal/middleware"
	"github.com/endfield/backend/internal/models"
	"github.com/endfield/backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FileHandler struct {
	fileService  *services.FileService
	auditService *services.AuditService
}

func NewFileHandler(fileService *services.FileService, auditService *services.AuditService) *FileHandler {
	return &FileHandler{fileService: fileService, auditService: auditService}
}

// CreateFile records the metadata of an object the client already pushed to
// the store via a presigned upload URL
func (h *FileHandler) CreateFile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var file models.File
	if err := c.ShouldBindJSON(&file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.fileService.Create(&file, identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Database Error: %s", err.Error())})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListFiles returns the caller's files (all files for admins), newest first,
// with storage keys swapped for presigned download URLs
func (h *FileHandler) ListFiles(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	mimePrefix := c.Query("mime_type_prefix")

	files, err := h.fileService.List(c.Request.Context(), identity, mimePrefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, files)
}

// DeleteFile removes one file record and its backing object
func (h *FileHandler) DeleteFile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid file id"})
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), identity, uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
		case errors.Is(err, services.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"detail": "Not allowed to delete this file"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	h.auditService.Record(operatorID(identity), "delete_file", fmt.Sprintf("file:%d", id), c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}

// BatchDeleteFiles deletes every permitted file from the requested id list
// and reports how many rows were actually removed
func (h *FileHandler) BatchDeleteFiles(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	deleted, err := h.fileService.BatchDelete(c.Request.Context(), identity, req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	h.auditService.Record(operatorID(identity), "batch_delete_files", fmt.Sprintf("files:%v", req.IDs), c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// operatorID maps an identity onto the audit log's profile reference; actions
// by pending applicants are recorded without an operator
func operatorID(identity *services.Identity) *uuid.UUID {
	if identity == nil || identity.Kind != services.IdentityProfile {
		return nil
	}
	id := identity.Profile.ID
	return &id
}
