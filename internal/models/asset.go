package models

// Asset is a tracked industrial asset. Files may optionally hang off an asset.
type Asset struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;index;not null" json:"name" binding:"required"`
	Code     string `gorm:"size:100;uniqueIndex;not null" json:"code" binding:"required"`
	Type     string `gorm:"size:100;not null" json:"type" binding:"required"`
	Status   string `gorm:"size:50;default:active" json:"status"`
	Location string `gorm:"size:255" json:"location"`

	// Relations
	Files []File `gorm:"foreignKey:AssetID" json:"files,omitempty"`
}

// TableName specifies the table name for Asset
func (Asset) TableName() string {
	return "asset"
}
