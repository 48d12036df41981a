package services

import (
	"errors"
	"strings"

	"github.com/endfield/backend/internal/config"
	"github.com/endfield/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

const (
	applicationsDefaultPageSize = 10
	applicationsMaxPageSize     = 50
)

type AdminService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAdminService(db *gorm.DB, cfg *config.Config) *AdminService {
	return &AdminService{db: db, cfg: cfg}
}

// ListApplications returns a page of pending applications, oldest first,
// plus the total and the computed page count.
func (s *AdminService) ListApplications(page, size int) ([]models.Tempop, int64, int, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = applicationsDefaultPageSize
	}
	if size > applicationsMaxPageSize {
		size = applicationsMaxPageSize
	}

	query := s.db.Model(&models.Tempop{}).Where("status = ?", models.TempopStatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var items []models.Tempop
	if err := query.Order("applied_at ASC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error; err != nil {
		return nil, 0, 0, err
	}

	pages := int((total + int64(size) - 1) / int64(size))
	return items, total, pages, nil
}

// Approve promotes a pending applicant to a confirmed operator: a Profile
// with the same ID is created (code remapped APP -> OP, personal fields
// copied, role and department from the approval policy) and the Tempop row
// removed, both in one transaction.
func (s *AdminService) Approve(userID uuid.UUID) (*models.Profile, error) {
	var applicant models.Tempop
	if err := s.db.First(&applicant, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	avatar := applicant.AvatarURL
	if avatar == "" {
		avatar = s.cfg.ApproveDefaultAvatarURL
	}

	profile := &models.Profile{
		ID:         applicant.ID,
		Code:       strings.Replace(applicant.Code, "APP", "OP", 1),
		Role:       s.cfg.ApproveDefaultRole,
		Department: s.cfg.ApproveDefaultDepartment,
		AvatarURL:  avatar,
		Email:      applicant.Email,
		Gender:     applicant.Gender,
		Age:        applicant.Age,
		Address:    applicant.Address,
		Bio:        applicant.Bio,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		return tx.Delete(&applicant).Error
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
