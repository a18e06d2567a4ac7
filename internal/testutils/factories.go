package testutils

import (
	"time"

	"message-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories for tests
type FactorySet struct {
	Organization *OrganizationFactory
	Message      *MessageFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Message:      NewMessageFactory(),
	}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org-" + id.String()[:8],
		DisplayName: "Test Organization",
		Description: "A test organization",
		Domain:      id.String()[:8] + ".test.com",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name + " Display Name"
	return org
}

// MessageFactory provides methods to create test Message data
type MessageFactory struct{}

// NewMessageFactory creates a new MessageFactory
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

// Create creates a test Message with default values for the given organization
func (f *MessageFactory) Create(orgID uuid.UUID) *models.Message {
	id := uuid.New()
	return &models.Message{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Title:          "Test Message " + id.String()[:8],
		Content:        "Some valid content for testing purposes.",
		IsActive:       true,
	}
}

// WithTitle sets a custom title for the message
func (f *MessageFactory) WithTitle(orgID uuid.UUID, title string) *models.Message {
	msg := f.Create(orgID)
	msg.Title = title
	return msg
}

// Inactive creates a message whose active flag is false
func (f *MessageFactory) Inactive(orgID uuid.UUID) *models.Message {
	msg := f.Create(orgID)
	msg.IsActive = false
	return msg
}
