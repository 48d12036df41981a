package services

import (
	"log"

	"github.com/endfield/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// LogAction writes one audit log entry
func (s *AuditService) LogAction(operatorID *uuid.UUID, action, target, ipAddress string) error {
	entry := &models.AuditLog{
		OperatorID: operatorID,
		Action:     action,
		Target:     target,
		IPAddress:  ipAddress,
	}
	return s.db.Create(entry).Error
}

// Record is the fire-and-forget variant used from handlers: auditing must
// never fail the action it describes
func (s *AuditService) Record(operatorID *uuid.UUID, action, target, ipAddress string) {
	if err := s.LogAction(operatorID, action, target, ipAddress); err != nil {
		log.Printf("Audit log write failed for %s: %v", action, err)
	}
}

// GetRecentActions retrieves recent audit entries with pagination, newest first
func (s *AuditService) GetRecentActions(page, size int) ([]models.AuditLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = applicationsDefaultPageSize
	}
	if size > applicationsMaxPageSize {
		size = applicationsMaxPageSize
	}

	var total int64
	if err := s.db.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := s.db.Preload("Operator").
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
