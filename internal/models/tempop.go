package models

import (
	"time"

	"github.com/google/uuid"
)

// TempopStatusPending is the only status the admin workflow acts on.
const TempopStatusPending = "pending"

// Tempop is a pending applicant awaiting admin approval. It shares its ID
// space with Profile: a subject lives in exactly one of the two tables.
type Tempop struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"size:255" json:"email"`
	Code      string    `gorm:"size:100" json:"code"`
	AvatarURL string    `gorm:"size:512" json:"avatar_url"`
	Gender    string    `gorm:"size:20" json:"gender"`
	Age       *int      `json:"age"`
	Address   string    `gorm:"size:255" json:"address"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Status    string    `gorm:"size:50;default:pending" json:"status"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
}

// TableName specifies the table name for Tempop
func (Tempop) TableName() string {
	return "tempop"
}
