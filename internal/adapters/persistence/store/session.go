package store

import (
	"context"
	"encoding/json"
	"fmt"

	"rentmate/internal/adapters/persistence/models"
	"rentmate/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionSlot holds at most one signed-in user, independent of the
// users collection
type SessionSlot interface {
	// Save replaces the slot content
	Save(ctx context.Context, user *domain.User) error
	// Load returns the raw slot content, or nil when the slot is empty
	Load(ctx context.Context) ([]byte, error)
	// Clear empties the slot. Clearing an empty slot is not an error
	Clear(ctx context.Context) error
}

// settingsSessionSlot implements SessionSlot on the settings table
type settingsSessionSlot struct {
	db *gorm.DB
}

// NewSessionSlot creates a session slot backed by the settings table
func NewSessionSlot(db *gorm.DB) SessionSlot {
	return &settingsSessionSlot{db: db}
}

// Save upserts the user JSON under the session key
func (s *settingsSessionSlot) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	setting := &models.Setting{
		Key:   models.SessionKey,
		Value: string(data),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(setting).Error
}

// Load reads the session row. An empty slot is the normal signed-out
// state, so it is not reported as a missing record.
func (s *settingsSessionSlot) Load(ctx context.Context) ([]byte, error) {
	var setting models.Setting
	result := s.db.WithContext(ctx).
		Where(&models.Setting{Key: models.SessionKey}).
		Limit(1).
		Find(&setting)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return []byte(setting.Value), nil
}

// Clear deletes the session row
func (s *settingsSessionSlot) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Delete(&models.Setting{Key: models.SessionKey}).Error
}
