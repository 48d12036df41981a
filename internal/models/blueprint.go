package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Blueprint is a named, versioned JSON document owned by a Profile
type Blueprint struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedBy *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Version   string         `gorm:"size:50;default:v1.0" json:"version"`
	IsPublic  bool           `gorm:"default:false" json:"is_public"`
	Data      datatypes.JSON `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// Relations
	Creator *Profile `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// TableName specifies the table name for Blueprint
func (Blueprint) TableName() string {
	return "blueprints"
}
