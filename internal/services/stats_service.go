package services

import (
	"github.com/endfield/backend/internal/models"
	"gorm.io/gorm"
)

// Stats mirrors the dashboard counters. Wire names are camelCase for the
// frontend that consumes them.
type Stats struct {
	FileCount    int64  `json:"fileCount"`
	TrackCount   int64  `json:"trackCount"`
	UserCount    int64  `json:"userCount"`
	SystemStatus string `json:"systemStatus"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Collect counts rows live at call time; nothing is cached
func (s *StatsService) Collect() (*Stats, error) {
	stats := &Stats{SystemStatus: "ACTIVE"}

	if err := s.db.Model(&models.File{}).Count(&stats.FileCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.File{}).Where("mime_type LIKE ?", "audio/%").Count(&stats.TrackCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Profile{}).Count(&stats.UserCount).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
