package repository

import (
	"errors"

	"message-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// GetAllByOrganization retrieves all messages for an organization
func (r *MessageRepository) GetAllByOrganization(orgID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Find(&messages, "organization_id = ?", orgID).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetByID retrieves a message by ID within an organization
func (r *MessageRepository) GetByID(orgID, id uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "organization_id = ? AND id = ?", orgID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// GetByTitle retrieves a message by exact title within an organization
func (r *MessageRepository) GetByTitle(orgID uuid.UUID, title string) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "organization_id = ? AND title = ?", orgID, title).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Create persists a new message
func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// Update persists changes to an existing message. Returns (nil, nil) when the
// row no longer exists. The update map includes is_active so that false is
// written instead of being skipped as a zero value.
func (r *MessageRepository) Update(message *models.Message) (*models.Message, error) {
	result := r.db.Model(&models.Message{}).
		Where("organization_id = ? AND id = ?", message.OrganizationID, message.ID).
		Updates(map[string]interface{}{
			"title":     message.Title,
			"content":   message.Content,
			"is_active": message.IsActive,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return message, nil
}

// Delete removes a message and reports whether a row was removed
func (r *MessageRepository) Delete(orgID, id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.Message{}, "organization_id = ? AND id = ?", orgID, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
