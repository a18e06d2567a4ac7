package service

import (
	"message-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetByName(name string) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// MessageServiceInterface defines the interface for message service
type MessageServiceInterface interface {
	GetAllMessages(orgID uuid.UUID) ([]models.Message, error)
	GetMessage(orgID, id uuid.UUID) (*models.Message, error)
	CreateMessage(orgID uuid.UUID, req *CreateMessageRequest) (Result, error)
	UpdateMessage(orgID, id uuid.UUID, req *UpdateMessageRequest) (Result, error)
	DeleteMessage(orgID, id uuid.UUID) (Result, error)
}
