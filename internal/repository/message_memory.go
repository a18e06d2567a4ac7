package repository

import (
	"sync"
	"time"

	"message-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// InMemoryMessageRepository is a mutex-guarded, map-backed implementation of
// MessageRepositoryInterface. It is a drop-in replacement for the Postgres
// repository in tests and local runs without a database.
type InMemoryMessageRepository struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]map[uuid.UUID]models.Message // orgID -> messageID -> message
}

// NewInMemoryMessageRepository creates an empty in-memory message repository
func NewInMemoryMessageRepository() *InMemoryMessageRepository {
	return &InMemoryMessageRepository{
		messages: make(map[uuid.UUID]map[uuid.UUID]models.Message),
	}
}

// GetAllByOrganization retrieves all messages for an organization
func (r *InMemoryMessageRepository) GetAllByOrganization(orgID uuid.UUID) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org := r.messages[orgID]
	messages := make([]models.Message, 0, len(org))
	for _, msg := range org {
		messages = append(messages, msg)
	}
	return messages, nil
}

// GetByID retrieves a message by ID within an organization
func (r *InMemoryMessageRepository) GetByID(orgID, id uuid.UUID) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if msg, ok := r.messages[orgID][id]; ok {
		copy := msg
		return &copy, nil
	}
	return nil, nil
}

// GetByTitle retrieves a message by exact title within an organization
func (r *InMemoryMessageRepository) GetByTitle(orgID uuid.UUID, title string) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, msg := range r.messages[orgID] {
		if msg.Title == title {
			copy := msg
			return &copy, nil
		}
	}
	return nil, nil
}

// Create persists a new message, assigning an ID when unset
func (r *InMemoryMessageRepository) Create(message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now

	if r.messages[message.OrganizationID] == nil {
		r.messages[message.OrganizationID] = make(map[uuid.UUID]models.Message)
	}
	r.messages[message.OrganizationID][message.ID] = *message
	return nil
}

// Update persists changes to an existing message; returns (nil, nil) when the
// message no longer exists
func (r *InMemoryMessageRepository) Update(message *models.Message) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[message.OrganizationID][message.ID]; !ok {
		return nil, nil
	}
	message.UpdatedAt = time.Now()
	r.messages[message.OrganizationID][message.ID] = *message
	return message, nil
}

// Delete removes a message and reports whether it existed
func (r *InMemoryMessageRepository) Delete(orgID, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[orgID][id]; !ok {
		return false, nil
	}
	delete(r.messages[orgID], id)
	return true, nil
}
