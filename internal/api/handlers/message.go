package handlers

import (
	"fmt"
	"net/http"

	"message-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageHandler handles HTTP requests for messages within an organization
type MessageHandler struct {
	service service.MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service service.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListMessages handles GET /api/v1/organizations/:id/messages
// @Summary List messages
// @Description Get all messages for an organization
// @Tags messages
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} models.Message "Messages for the organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}

	messages, err := h.service.GetAllMessages(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get messages", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetMessage handles GET /api/v1/organizations/:id/messages/:messageId
// @Summary Get message by ID
// @Description Get a specific message within an organization
// @Tags messages
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param messageId path string true "Message ID (UUID)"
// @Success 200 {object} models.Message "The message"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Message not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id}/messages/{messageId} [get]
func (h *MessageHandler) GetMessage(c *gin.Context) {
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}
	messageID, ok := parseUUIDParam(c, "messageId", "message")
	if !ok {
		return
	}

	message, err := h.service.GetMessage(orgID, messageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get message", "details": err.Error()})
		return
	}
	if message == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found."})
		return
	}

	c.JSON(http.StatusOK, message)
}

// CreateMessage handles POST /api/v1/organizations/:id/messages
// @Summary Create a new message
// @Description Create a message in an organization; titles must be unique per organization
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param message body service.CreateMessageRequest true "Message data"
// @Success 201 {object} models.Message "Successfully created message"
// @Failure 400 {object} map[string]interface{} "Validation errors"
// @Failure 409 {object} ErrorResponse "Title already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id}/messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}

	var req service.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.CreateMessage(orgID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message", "details": err.Error()})
		return
	}

	switch res := result.(type) {
	case service.Created:
		c.Header("Location", fmt.Sprintf("/api/v1/organizations/%s/messages/%s", orgID, res.Message.ID))
		c.JSON(http.StatusCreated, res.Message)
	case service.Conflict:
		c.JSON(http.StatusConflict, gin.H{"error": res.Message})
	case service.ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"errors": res.Errors})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected result"})
	}
}

// UpdateMessage handles PUT /api/v1/organizations/:id/messages/:messageId
// @Summary Update message
// @Description Replace title, content and active flag of a message; inactive messages cannot be updated
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param messageId path string true "Message ID (UUID)"
// @Param message body service.UpdateMessageRequest true "Replacement values"
// @Success 204 "Successfully updated message"
// @Failure 400 {object} map[string]interface{} "Validation errors"
// @Failure 404 {object} ErrorResponse "Message not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id}/messages/{messageId} [put]
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}
	messageID, ok := parseUUIDParam(c, "messageId", "message")
	if !ok {
		return
	}

	var req service.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.UpdateMessage(orgID, messageID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message", "details": err.Error()})
		return
	}

	switch res := result.(type) {
	case service.Updated:
		c.Status(http.StatusNoContent)
	case service.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": res.Message})
	case service.ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"errors": res.Errors})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected result"})
	}
}

// DeleteMessage handles DELETE /api/v1/organizations/:id/messages/:messageId
// @Summary Delete message
// @Description Permanently remove a message from an organization
// @Tags messages
// @Param id path string true "Organization ID (UUID)"
// @Param messageId path string true "Message ID (UUID)"
// @Success 204 "Successfully deleted message"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Message not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id}/messages/{messageId} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}
	messageID, ok := parseUUIDParam(c, "messageId", "message")
	if !ok {
		return
	}

	result, err := h.service.DeleteMessage(orgID, messageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message", "details": err.Error()})
		return
	}

	switch res := result.(type) {
	case service.Deleted:
		c.Status(http.StatusNoContent)
	case service.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": res.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected result"})
	}
}

// parseUUIDParam parses a UUID path parameter and writes a 400 on failure
func parseUUIDParam(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s ID: invalid UUID format", entity)})
		return uuid.Nil, false
	}
	return id, true
}
