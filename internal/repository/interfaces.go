package repository

import (
	"message-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByDomain(domain string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// MessageRepositoryInterface defines the persistence contract for messages.
// All operations are scoped by organization. Lookups report absence as
// (nil, nil) and Delete reports whether a row was actually removed, so
// implementations never leak storage-specific sentinel errors.
type MessageRepositoryInterface interface {
	GetAllByOrganization(orgID uuid.UUID) ([]models.Message, error)
	GetByID(orgID, id uuid.UUID) (*models.Message, error)
	GetByTitle(orgID uuid.UUID, title string) (*models.Message, error)
	Create(message *models.Message) error
	// Update persists changes to an existing message. It returns (nil, nil)
	// when the row no longer exists (deleted between read and write).
	Update(message *models.Message) (*models.Message, error)
	Delete(orgID, id uuid.UUID) (bool, error)
}
