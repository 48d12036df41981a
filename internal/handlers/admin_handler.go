package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/endfield/backend/internal/middleware"
	"github.com/endfield/backend/internal/services"
	"github.com/endfield/backend/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService *services.AdminService
	auditService *services.AuditService
	emailService *services.EmailService
}

func NewAdminHandler(adminService *services.AdminService, auditService *services.AuditService, emailService *services.EmailService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		auditService: auditService,
		emailService: emailService,
	}
}

// ListApplications returns a page of pending applications
func (h *AdminHandler) ListApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	items, total, pages, err := h.adminService.ListApplications(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"pages": pages,
	})
}

// ApproveOperator promotes a pending applicant to a confirmed operator
func (h *AdminHandler) ApproveOperator(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user id"})
		return
	}

	profile, err := h.adminService.Approve(userID)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	identity := middleware.CurrentIdentity(c)
	h.auditService.Record(operatorID(identity), "approve_operator", "tempop:"+userID.String(), c.ClientIP())

	// Best effort: the promotion already committed, a failed mail only gets logged
	if h.emailService.Enabled() && validation.ValidateEmail(profile.Email) {
		go func(to, code string) {
			if err := h.emailService.SendApprovalNotification(to, code); err != nil {
				log.Printf("Approval notification to %s failed: %v", to, err)
			}
		}(profile.Email, profile.Code)
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Operator %s approved successfully.", profile.Code)})
}

// GetAuditLogs lists recent audit entries, newest first
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	logs, total, err := h.auditService.GetRecentActions(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": logs,
		"total": total,
		"page":  page,
	})
}
