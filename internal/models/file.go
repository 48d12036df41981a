package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploader identity variants stored alongside the uploader ID. The uploader
// column deliberately has no foreign key: a pending applicant may upload
// before promotion, so the ID can point at either identity table.
const (
	UploaderTypeProfile = "profile"
	UploaderTypeTempop  = "tempop"
)

// File is the metadata record for an object uploaded to the storage bucket.
// R2Key is the storage key; URL and the *_r2_key fields are replaced with
// presigned download URLs at read time and never persisted in that form.
type File struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AssetID      *uint     `json:"asset_id"`
	UploaderID   uuid.UUID `gorm:"type:uuid;index" json:"uploader_id"`
	UploaderType string    `gorm:"size:20" json:"uploader_type"`
	Filename     string    `gorm:"size:255;not null" json:"filename" binding:"required"`
	R2Key        string    `gorm:"column:r2_key;size:512;not null" json:"r2_key" binding:"required"`
	URL          string    `gorm:"size:1024" json:"url"`
	Size         *int64    `json:"size"`
	MimeType     string    `gorm:"size:120" json:"mime_type"`
	CreatedAt    time.Time `json:"created_at"`

	// Music-specific metadata, empty for everything else
	Artist      string `gorm:"size:255" json:"artist,omitempty"`
	CoverR2Key  string `gorm:"column:cover_r2_key;size:512" json:"cover_r2_key,omitempty"`
	LyricsR2Key string `gorm:"column:lyrics_r2_key;size:512" json:"lyrics_r2_key,omitempty"`

	// Relations
	Asset *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}

// TableName specifies the table name for File
func (File) TableName() string {
	return "files"
}

// IsAudio reports whether the file is an audio track
func (f *File) IsAudio() bool {
	return strings.HasPrefix(f.MimeType, "audio/")
}
