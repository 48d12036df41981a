package services

import (
	"fmt"

	"github.com/endfield/backend/internal/models"
	"gorm.io/gorm"
)

const recentActivityLimit = 5

// Activity is one line of the recent-activity feed
type Activity struct {
	Time    string `json:"time"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Recent renders the five most recently created files as feed entries
func (s *ActivityService) Recent() ([]Activity, error) {
	var files []models.File
	if err := s.db.Order("created_at DESC").Limit(recentActivityLimit).Find(&files).Error; err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(files))
	for _, f := range files {
		msg := fmt.Sprintf("File %q uploaded", f.Filename)
		if f.IsAudio() {
			msg = fmt.Sprintf("Audio track %q uploaded", f.Filename)
		}
		activities = append(activities, Activity{
			Time:    f.CreatedAt.Format("15:04"),
			Type:    "upload",
			Message: msg,
		})
	}
	return activities, nil
}
