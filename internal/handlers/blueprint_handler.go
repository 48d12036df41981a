package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/endfield/backend/internal/middleware"
	"github.com/endfield/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type BlueprintHandler struct {
	blueprintService *services.BlueprintService
}

func NewBlueprintHandler(blueprintService *services.BlueprintService) *BlueprintHandler {
	return &BlueprintHandler{blueprintService: blueprintService}
}

func blueprintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBlueprintNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Blueprint not found"})
	case errors.Is(err, services.ErrProfileOnly), errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}

// CreateBlueprint stores a new JSON blueprint owned by the calling operator
func (h *BlueprintHandler) CreateBlueprint(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req services.BlueprintCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	bp, err := h.blueprintService.Create(identity, &req)
	if err != nil {
		blueprintError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bp)
}

// ListBlueprints returns the caller's blueprints plus public ones
func (h *BlueprintHandler) ListBlueprints(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	blueprints, err := h.blueprintService.List(identity)
	if err != nil {
		blueprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, blueprints)
}

// GetBlueprint returns one blueprint if the caller may see it
func (h *BlueprintHandler) GetBlueprint(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid blueprint id"})
		return
	}

	bp, err := h.blueprintService.Get(identity, uint(id))
	if err != nil {
		blueprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, bp)
}

// UpdateBlueprint applies a partial update to an owned blueprint
func (h *BlueprintHandler) UpdateBlueprint(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid blueprint id"})
		return
	}

	var req services.BlueprintUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	bp, err := h.blueprintService.Update(identity, uint(id), &req)
	if err != nil {
		blueprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, bp)
}

// DeleteBlueprint removes an owned blueprint
func (h *BlueprintHandler) DeleteBlueprint(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid blueprint id"})
		return
	}

	if err := h.blueprintService.Delete(identity, uint(id)); err != nil {
		blueprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blueprint deleted"})
}
