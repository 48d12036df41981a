package handlers

import (
	"net/http"

	"github.com/endfield/backend/internal/middleware"
	"github.com/endfield/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe returns the caller's own record, shaped by identity variant
func (h *UserHandler) GetMe(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	avatar := h.userService.ResolveAvatarURL(c.Request.Context(), identity.AvatarURL())

	switch identity.Kind {
	case services.IdentityProfile:
		p := identity.Profile
		c.JSON(http.StatusOK, gin.H{
			"id":         p.ID,
			"type":       "profile",
			"code":       p.Code,
			"email":      p.Email,
			"avatar_url": avatar,
			"gender":     p.Gender,
			"age":        p.Age,
			"address":    p.Address,
			"bio":        p.Bio,
			"role":       p.Role,
			"department": p.Department,
			"status":     "active",
		})

	case services.IdentityTempop:
		t := identity.Tempop
		c.JSON(http.StatusOK, gin.H{
			"id":         t.ID,
			"type":       "tempop",
			"code":       t.Code,
			"email":      t.Email,
			"avatar_url": avatar,
			"gender":     t.Gender,
			"age":        t.Age,
			"address":    t.Address,
			"bio":        t.Bio,
			"role":       "guest",
			"status":     t.Status,
		})
	}
}

// UpdateMe applies a partial update to the caller's own record
func (h *UserHandler) UpdateMe(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var upd services.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.userService.UpdateMe(identity, &upd); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	var user interface{}
	if identity.Kind == services.IdentityProfile {
		user = identity.Profile
	} else {
		user = identity.Tempop
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}
