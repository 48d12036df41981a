package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records an operator action for the admin audit trail
type AuditLog struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	OperatorID *uuid.UUID `gorm:"type:uuid" json:"operator_id,omitempty"`
	Operator   *Profile   `gorm:"foreignKey:OperatorID" json:"operator,omitempty"`
	Action     string     `gorm:"size:100;not null" json:"action"` // e.g. "approve_operator", "delete_file"
	Target     string     `gorm:"size:255" json:"target,omitempty"`
	IPAddress  string     `gorm:"size:45" json:"ip_address,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
