package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values with special meaning. Role is otherwise free-form.
const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// Profile is a confirmed operator account. Its ID equals the subject of the
// external auth provider's token, so rows are never created with generated IDs.
type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code       string    `gorm:"size:100" json:"code"`
	AvatarURL  string    `gorm:"size:512" json:"avatar_url"`
	Role       string    `gorm:"size:50;default:operator" json:"role"`
	Department string    `gorm:"size:100" json:"department"`
	Email      string    `gorm:"size:255" json:"email"`
	Gender     string    `gorm:"size:20" json:"gender"`
	Age        *int      `json:"age"`
	Address    string    `gorm:"size:255" json:"address"`
	Bio        string    `gorm:"type:text" json:"bio"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Blueprints []Blueprint `gorm:"foreignKey:CreatedBy" json:"blueprints,omitempty"`
	Logs       []AuditLog  `gorm:"foreignKey:OperatorID" json:"logs,omitempty"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// IsAdmin reports whether the profile carries the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
