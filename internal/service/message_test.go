package service_test

import (
	"testing"

	"message-portal-backend/internal/database/models"
	"message-portal-backend/internal/mocks"
	"message-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MessageServiceTestSuite defines the test suite for MessageService
type MessageServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockMessageRepositoryInterface
	messageService *service.MessageService
}

// SetupTest sets up the test suite
func (suite *MessageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMessageRepositoryInterface(suite.ctrl)
	suite.messageService = service.NewMessageService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *MessageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMessage tests creating a message with valid data
func (suite *MessageServiceTestSuite) TestCreateMessage() {
	orgID := uuid.New()
	req := &service.CreateMessageRequest{
		Title:   "My Title",
		Content: "This is valid content for creation.",
	}

	// No existing message with the same title
	suite.mockRepo.EXPECT().
		GetByTitle(orgID, req.Title).
		Return(nil, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Message) error {
			m.ID = uuid.New()
			return nil
		}).
		Times(1)

	result, err := suite.messageService.CreateMessage(orgID, req)

	assert.NoError(suite.T(), err)
	created, ok := result.(service.Created)
	assert.True(suite.T(), ok, "expected Created, got %T", result)
	assert.Equal(suite.T(), "My Title", created.Message.Title)
	assert.Equal(suite.T(), orgID, created.Message.OrganizationID)
	assert.True(suite.T(), created.Message.IsActive)
	assert.NotEqual(suite.T(), uuid.Nil, created.Message.ID)
}

// TestCreateMessageConflict tests creating a message whose title already exists
func (suite *MessageServiceTestSuite) TestCreateMessageConflict() {
	orgID := uuid.New()
	req := &service.CreateMessageRequest{
		Title:   "Existing",
		Content: "Some valid content here.",
	}

	existing := &models.Message{
		OrganizationID: orgID,
		Title:          req.Title,
	}

	suite.mockRepo.EXPECT().
		GetByTitle(orgID, req.Title).
		Return(existing, nil).
		Times(1)

	result, err := suite.messageService.CreateMessage(orgID, req)

	assert.NoError(suite.T(), err)
	conflict, ok := result.(service.Conflict)
	assert.True(suite.T(), ok, "expected Conflict, got %T", result)
	assert.Equal(suite.T(), "Message with title 'Existing' already exists.", conflict.Message)
}

// TestCreateMessageContentTooShort tests the minimum content length rule
func (suite *MessageServiceTestSuite) TestCreateMessageContentTooShort() {
	orgID := uuid.New()
	req := &service.CreateMessageRequest{
		Title:   "Valid Title",
		Content: "short",
	}

	// No repository calls: validation fails before the conflict check
	result, err := suite.messageService.CreateMessage(orgID, req)

	assert.NoError(suite.T(), err)
	validation, ok := result.(service.ValidationError)
	assert.True(suite.T(), ok, "expected ValidationError, got %T", result)
	assert.Contains(suite.T(), validation.Errors, "Content")
	assert.NotEmpty(suite.T(), validation.Errors["Content"])
}

// TestCreateMessageTitleRequired tests that an empty title is rejected
func (suite *MessageServiceTestSuite) TestCreateMessageTitleRequired() {
	orgID := uuid.New()
	req := &service.CreateMessageRequest{
		Title:   "",
		Content: "This content is long enough to pass.",
	}

	result, err := suite.messageService.CreateMessage(orgID, req)

	assert.NoError(suite.T(), err)
	validation, ok := result.(service.ValidationError)
	assert.True(suite.T(), ok, "expected ValidationError, got %T", result)
	assert.Equal(suite.T(), []string{"Title is required."}, validation.Errors["Title"])
}

// TestCreateMessageWhitespaceTitle tests that a whitespace-only title is rejected
func (suite *MessageServiceTestSuite) TestCreateMessageWhitespaceTitle() {
	orgID := uuid.New()
	req := &service.CreateMessageRequest{
		Title:   "   ",
		Content: "This content is long enough to pass.",
	}

	result, err := suite.messageService.CreateMessage(orgID, req)

	assert.NoError(suite.T(), err)
	validation, ok := result.(service.ValidationError)
	assert.True(suite.T(), ok, "expected ValidationError, got %T", result)
	assert.Contains(suite.T(), validation.Errors, "Title")
}

// TestCreateMessageAccumulatesFieldErrors tests that title and content errors
// are reported together
func (suite *MessageServiceTestSuite) TestCreateMessageAccumulatesFieldErrors() {
	orgID := uuid.New()
	req := &service.CreateMessageRequest{
		Title:   " ",
		Content: "short",
	}

	result, err := suite.messageService.CreateMessage(orgID, req)

	assert.NoError(suite.T(), err)
	validation, ok := result.(service.ValidationError)
	assert.True(suite.T(), ok, "expected ValidationError, got %T", result)
	assert.Len(suite.T(), validation.Errors, 2)
	assert.Contains(suite.T(), validation.Errors, "Title")
	assert.Contains(suite.T(), validation.Errors, "Content")
}

// TestUpdateMessageNotFound tests updating a message that does not exist
func (suite *MessageServiceTestSuite) TestUpdateMessageNotFound() {
	orgID := uuid.New()
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(orgID, id).
		Return(nil, nil).
		Times(1)

	req := &service.UpdateMessageRequest{
		Title:    "New Title",
		Content:  "Updated content that is fine.",
		IsActive: true,
	}

	result, err := suite.messageService.UpdateMessage(orgID, id, req)

	assert.NoError(suite.T(), err)
	notFound, ok := result.(service.NotFound)
	assert.True(suite.T(), ok, "expected NotFound, got %T", result)
	assert.Equal(suite.T(), "Message not found.", notFound.Message)
}

// TestUpdateMessageInactive tests that an inactive message rejects any update
func (suite *MessageServiceTestSuite) TestUpdateMessageInactive() {
	orgID := uuid.New()
	id := uuid.New()

	inactive := &models.Message{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: orgID,
		Title:          "Old",
		Content:        "Some content",
		IsActive:       false,
	}

	suite.mockRepo.EXPECT().
		GetByID(orgID, id).
		Return(inactive, nil).
		Times(1)

	req := &service.UpdateMessageRequest{
		Title:    "New Title",
		Content:  "Updated valid text for the message.",
		IsActive: false,
	}

	result, err := suite.messageService.UpdateMessage(orgID, id, req)

	assert.NoError(suite.T(), err)
	validation, ok := result.(service.ValidationError)
	assert.True(suite.T(), ok, "expected ValidationError, got %T", result)
	assert.Contains(suite.T(), validation.Errors, "IsActive")
}

// TestUpdateMessageInactiveRejectsValidPayload tests the terminal-state rule
// holds even when the payload itself would be valid and requests reactivation
func (suite *MessageServiceTestSuite) TestUpdateMessageInactiveRejectsValidPayload() {
	orgID := uuid.New()
	id := uuid.New()

	inactive := &models.Message{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: orgID,
		Title:          "Frozen",
		Content:        "Perfectly valid content already.",
		IsActive:       false,
	}

	suite.mockRepo.EXPECT().
		GetByID(orgID, id).
		Return(inactive, nil).
		Times(1)

	req := &service.UpdateMessageRequest{
		Title:    "Thawed",
		Content:  "Another perfectly valid content.",
		IsActive: true,
	}

	result, err := suite.messageService.UpdateMessage(orgID, id, req)

	assert.NoError(suite.T(), err)
	_, ok := result.(service.ValidationError)
	assert.True(suite.T(), ok, "expected ValidationError, got %T", result)
}

// TestUpdateMessageInvalidContent tests content validation on update
func (suite *MessageServiceTestSuite) TestUpdateMessageInvalidContent() {
	orgID := uuid.New()
	id := uuid.New()

	active := &models.Message{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: orgID,
		Title:          "Current",
		Content:        "Current content that is fine.",
		IsActive:       true,
	}

	suite.mockRepo.EXPECT().
		GetByID(orgID, id).
		Return(active, nil).
		Times(1)

	req := &service.UpdateMessageRequest{
		Title:    "Current",
		Content:  "short",
		IsActive: true,
	}

	result, err := suite.messageService.UpdateMessage(orgID, id, req)

	assert.NoError(suite.T(), err)
	validation, ok := result.(service.ValidationError)
	assert.True(suite.T(), ok, "expected ValidationError, got %T", result)
	assert.Contains(suite.T(), validation.Errors, "Content")
}

// TestUpdateMessage tests a successful full-replace update
func (suite *MessageServiceTestSuite) TestUpdateMessage() {
	orgID := uuid.New()
	id := uuid.New()

	active := &models.Message{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: orgID,
		Title:          "Old Title",
		Content:        "Old content that was fine.",
		IsActive:       true,
	}

	suite.mockRepo.EXPECT().
		GetByID(orgID, id).
		Return(active, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(m *models.Message) (*models.Message, error) {
			assert.Equal(suite.T(), "New Title", m.Title)
			assert.Equal(suite.T(), "Replacement content, long enough.", m.Content)
			assert.False(suite.T(), m.IsActive)
			return m, nil
		}).
		Times(1)

	req := &service.UpdateMessageRequest{
		Title:    "New Title",
		Content:  "Replacement content, long enough.",
		IsActive: false,
	}

	result, err := suite.messageService.UpdateMessage(orgID, id, req)

	assert.NoError(suite.T(), err)
	assert.IsType(suite.T(), service.Updated{}, result)
}

// TestUpdateMessageRace tests the read-then-act race where the message is
// deleted between the lookup and the write
func (suite *MessageServiceTestSuite) TestUpdateMessageRace() {
	orgID := uuid.New()
	id := uuid.New()

	active := &models.Message{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: orgID,
		Title:          "Racing",
		Content:        "Content that is long enough.",
		IsActive:       true,
	}

	suite.mockRepo.EXPECT().
		GetByID(orgID, id).
		Return(active, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil, nil).
		Times(1)

	req := &service.UpdateMessageRequest{
		Title:    "Racing",
		Content:  "Content that is long enough.",
		IsActive: true,
	}

	result, err := suite.messageService.UpdateMessage(orgID, id, req)

	assert.NoError(suite.T(), err)
	notFound, ok := result.(service.NotFound)
	assert.True(suite.T(), ok, "expected NotFound, got %T", result)
	assert.Equal(suite.T(), "Message not found.", notFound.Message)
}

// TestDeleteMessageNotFound tests deleting a message that does not exist
func (suite *MessageServiceTestSuite) TestDeleteMessageNotFound() {
	orgID := uuid.New()
	id := uuid.New()

	suite.mockRepo.EXPECT().
		Delete(orgID, id).
		Return(false, nil).
		Times(1)

	result, err := suite.messageService.DeleteMessage(orgID, id)

	assert.NoError(suite.T(), err)
	notFound, ok := result.(service.NotFound)
	assert.True(suite.T(), ok, "expected NotFound, got %T", result)
	assert.Equal(suite.T(), "Message not found.", notFound.Message)
}

// TestDeleteMessage tests a successful deletion
func (suite *MessageServiceTestSuite) TestDeleteMessage() {
	orgID := uuid.New()
	id := uuid.New()

	suite.mockRepo.EXPECT().
		Delete(orgID, id).
		Return(true, nil).
		Times(1)

	result, err := suite.messageService.DeleteMessage(orgID, id)

	assert.NoError(suite.T(), err)
	assert.IsType(suite.T(), service.Deleted{}, result)
}

// TestGetAllMessages tests the passthrough list operation
func (suite *MessageServiceTestSuite) TestGetAllMessages() {
	orgID := uuid.New()
	messages := []models.Message{
		{OrganizationID: orgID, Title: "First", Content: "First message content here."},
		{OrganizationID: orgID, Title: "Second", Content: "Second message content here."},
	}

	suite.mockRepo.EXPECT().
		GetAllByOrganization(orgID).
		Return(messages, nil).
		Times(1)

	got, err := suite.messageService.GetAllMessages(orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

// TestGetMessage tests the passthrough single-message lookup
func (suite *MessageServiceTestSuite) TestGetMessage() {
	orgID := uuid.New()
	id := uuid.New()
	message := &models.Message{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: orgID,
		Title:          "Lookup",
		Content:        "Content for the lookup test.",
		IsActive:       true,
	}

	suite.mockRepo.EXPECT().
		GetByID(orgID, id).
		Return(message, nil).
		Times(1)

	got, err := suite.messageService.GetMessage(orgID, id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), message, got)
}

// TestMessageServiceTestSuite runs the test suite
func TestMessageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}
