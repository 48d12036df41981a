package services

import (
	"errors"

	"github.com/endfield/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrBlueprintNotFound = errors.New("blueprint not found")
	// ErrProfileOnly: blueprint authorship is an operator capability, pending
	// applicants only get read access to public blueprints
	ErrProfileOnly = errors.New("only confirmed operators can create blueprints")
)

type BlueprintService struct {
	db *gorm.DB
}

func NewBlueprintService(db *gorm.DB) *BlueprintService {
	return &BlueprintService{db: db}
}

// BlueprintCreate is the write shape for new blueprints
type BlueprintCreate struct {
	Name     string         `json:"name" binding:"required"`
	Version  string         `json:"version"`
	IsPublic bool           `json:"is_public"`
	Data     datatypes.JSON `json:"data"`
}

// BlueprintUpdate is a partial update; absent fields are left untouched
type BlueprintUpdate struct {
	Name     *string         `json:"name"`
	Version  *string         `json:"version"`
	IsPublic *bool           `json:"is_public"`
	Data     *datatypes.JSON `json:"data"`
}

func (s *BlueprintService) Create(caller *Identity, in *BlueprintCreate) (*models.Blueprint, error) {
	if caller.Kind != IdentityProfile {
		return nil, ErrProfileOnly
	}

	creatorID := caller.Profile.ID
	bp := &models.Blueprint{
		CreatedBy: &creatorID,
		Name:      in.Name,
		Version:   in.Version,
		IsPublic:  in.IsPublic,
		Data:      in.Data,
	}
	if bp.Version == "" {
		bp.Version = "v1.0"
	}
	if bp.Data == nil {
		bp.Data = datatypes.JSON([]byte("{}"))
	}

	if err := s.db.Create(bp).Error; err != nil {
		return nil, err
	}
	return bp, nil
}

// List returns blueprints visible to the caller: their own plus public ones
func (s *BlueprintService) List(caller *Identity) ([]models.Blueprint, error) {
	query := s.db.Order("created_at DESC")
	if caller.Kind == IdentityProfile {
		query = query.Where("created_by = ? OR is_public = ?", caller.Profile.ID, true)
	} else {
		query = query.Where("is_public = ?", true)
	}

	var blueprints []models.Blueprint
	if err := query.Find(&blueprints).Error; err != nil {
		return nil, err
	}
	return blueprints, nil
}

func (s *BlueprintService) Get(caller *Identity, id uint) (*models.Blueprint, error) {
	var bp models.Blueprint
	if err := s.db.First(&bp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlueprintNotFound
		}
		return nil, err
	}
	if !bp.IsPublic && !s.canModify(caller, &bp) {
		return nil, ErrPermissionDenied
	}
	return &bp, nil
}

func (s *BlueprintService) Update(caller *Identity, id uint, upd *BlueprintUpdate) (*models.Blueprint, error) {
	var bp models.Blueprint
	if err := s.db.First(&bp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlueprintNotFound
		}
		return nil, err
	}
	if !s.canModify(caller, &bp) {
		return nil, ErrPermissionDenied
	}

	if upd.Name != nil {
		bp.Name = *upd.Name
	}
	if upd.Version != nil {
		bp.Version = *upd.Version
	}
	if upd.IsPublic != nil {
		bp.IsPublic = *upd.IsPublic
	}
	if upd.Data != nil {
		bp.Data = *upd.Data
	}

	if err := s.db.Save(&bp).Error; err != nil {
		return nil, err
	}
	return &bp, nil
}

func (s *BlueprintService) Delete(caller *Identity, id uint) error {
	var bp models.Blueprint
	if err := s.db.First(&bp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlueprintNotFound
		}
		return err
	}
	if !s.canModify(caller, &bp) {
		return ErrPermissionDenied
	}
	return s.db.Delete(&bp).Error
}

// canModify: the creator and admins may change or remove a blueprint
func (s *BlueprintService) canModify(caller *Identity, bp *models.Blueprint) bool {
	if caller.IsAdmin() {
		return true
	}
	if caller.Kind != IdentityProfile || bp.CreatedBy == nil {
		return false
	}
	return *bp.CreatedBy == caller.Profile.ID
}
