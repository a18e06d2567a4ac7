package service

import (
	"fmt"
	"strings"

	"message-portal-backend/internal/database/models"
	"message-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// MinContentLength is the minimum number of characters a message's content
// must have on create and update.
const MinContentLength = 10

const messageNotFound = "Message not found."

// MessageService handles business logic for messages. It validates requests,
// checks for title conflicts within the organization, and reports every
// expected outcome as a Result variant. It never logs and never caches
// repository state across calls.
type MessageService struct {
	repo repository.MessageRepositoryInterface
}

// NewMessageService creates a new message service
func NewMessageService(repo repository.MessageRepositoryInterface) *MessageService {
	return &MessageService{repo: repo}
}

// CreateMessageRequest represents the request to create a message
type CreateMessageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateMessageRequest represents the request to update a message. All fields
// are replacement values, not a partial patch.
type UpdateMessageRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
}

// GetAllMessages retrieves all messages for an organization
func (s *MessageService) GetAllMessages(orgID uuid.UUID) ([]models.Message, error) {
	return s.repo.GetAllByOrganization(orgID)
}

// GetMessage retrieves a message by ID within an organization. Returns
// (nil, nil) when the message does not exist.
func (s *MessageService) GetMessage(orgID, id uuid.UUID) (*models.Message, error) {
	return s.repo.GetByID(orgID, id)
}

// CreateMessage validates the request, checks title uniqueness within the
// organization, and persists a new active message.
func (s *MessageService) CreateMessage(orgID uuid.UUID, req *CreateMessageRequest) (Result, error) {
	// Field validations run before the conflict check: a malformed title
	// cannot be meaningfully checked for uniqueness.
	if errs := validateMessageFields(req.Title, req.Content); len(errs) > 0 {
		return ValidationError{Errors: errs}, nil
	}

	existing, err := s.repo.GetByTitle(orgID, req.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing message by title: %w", err)
	}
	if existing != nil {
		return Conflict{Message: fmt.Sprintf("Message with title '%s' already exists.", req.Title)}, nil
	}

	message := &models.Message{
		OrganizationID: orgID,
		Title:          req.Title,
		Content:        req.Content,
		IsActive:       true,
	}

	if err := s.repo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return Created{Message: *message}, nil
}

// UpdateMessage replaces title, content and active flag of an existing
// message. Inactive messages are terminal and cannot be edited.
func (s *MessageService) UpdateMessage(orgID, id uuid.UUID, req *UpdateMessageRequest) (Result, error) {
	message, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	if message == nil {
		return NotFound{Message: messageNotFound}, nil
	}

	if !message.IsActive {
		return ValidationError{Errors: map[string][]string{
			"IsActive": {"Inactive messages cannot be updated."},
		}}, nil
	}

	if errs := validateMessageFields(req.Title, req.Content); len(errs) > 0 {
		return ValidationError{Errors: errs}, nil
	}

	message.Title = req.Title
	message.Content = req.Content
	message.IsActive = req.IsActive

	updated, err := s.repo.Update(message)
	if err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	// Deleted between the lookup and the write.
	if updated == nil {
		return NotFound{Message: messageNotFound}, nil
	}

	return Updated{}, nil
}

// DeleteMessage removes a message permanently
func (s *MessageService) DeleteMessage(orgID, id uuid.UUID) (Result, error) {
	deleted, err := s.repo.Delete(orgID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete message: %w", err)
	}
	if !deleted {
		return NotFound{Message: messageNotFound}, nil
	}

	return Deleted{}, nil
}

// validateMessageFields accumulates field errors for the supplied title and
// content so a single response reports everything wrong with the input.
func validateMessageFields(title, content string) map[string][]string {
	errs := make(map[string][]string)
	if strings.TrimSpace(title) == "" {
		errs["Title"] = append(errs["Title"], "Title is required.")
	}
	if len(content) < MinContentLength {
		errs["Content"] = append(errs["Content"],
			fmt.Sprintf("Content must be at least %d characters long.", MinContentLength))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
