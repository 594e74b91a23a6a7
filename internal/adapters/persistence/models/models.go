package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Local key-value settings
// ============================================================

// SessionKey is the settings key holding the signed-in user
const SessionKey = "currentUser"

// Setting represents settings table, a small key-value store
// kept next to the JSON collections
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// AutoMigrate creates the settings table if it does not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Setting{},
	)
}
