package services

import (
	"github.com/endfield/backend/internal/models"
	"gorm.io/gorm"
)

type AssetService struct {
	db *gorm.DB
}

func NewAssetService(db *gorm.DB) *AssetService {
	return &AssetService{db: db}
}

// Create inserts a new asset and returns it with its generated ID
func (s *AssetService) Create(asset *models.Asset) (*models.Asset, error) {
	asset.ID = 0
	if asset.Status == "" {
		asset.Status = "active"
	}
	if err := s.db.Create(asset).Error; err != nil {
		return nil, err
	}
	return asset, nil
}

// List returns all assets, no filtering
func (s *AssetService) List() ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.db.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}
