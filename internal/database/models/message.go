package models

import (
	"github.com/google/uuid"
)

// Message represents one organization's announcement. Titles are unique per
// organization; an inactive message is frozen and can no longer be edited.
type Message struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_messages_org_title"`
	Title          string    `json:"title" gorm:"not null;size:200;uniqueIndex:idx_messages_org_title"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
