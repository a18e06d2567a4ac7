//go:build integration
// +build integration

package repository

import (
	"testing"

	"message-portal-backend/internal/database/models"
	"message-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// MessageRepositoryTestSuite tests the MessageRepository against Postgres
type MessageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MessageRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MessageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMessageRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MessageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MessageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MessageRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrganization persists a parent organization for message rows
func (suite *MessageRepositoryTestSuite) createOrganization() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(org))
	return org
}

// TestCreate tests creating a new message
func (suite *MessageRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()
	msg := suite.factories.Message.Create(org.ID)

	err := suite.repo.Create(msg)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, msg.ID)
	suite.NotZero(msg.CreatedAt)
}

// TestCreateDuplicateTitle tests the composite unique index on (organization_id, title)
func (suite *MessageRepositoryTestSuite) TestCreateDuplicateTitle() {
	org := suite.createOrganization()

	msg1 := suite.factories.Message.WithTitle(org.ID, "Duplicated")
	suite.NoError(suite.repo.Create(msg1))

	msg2 := suite.factories.Message.WithTitle(org.ID, "Duplicated")
	err := suite.repo.Create(msg2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestCreateSameTitleDifferentOrganizations tests that uniqueness is per tenant
func (suite *MessageRepositoryTestSuite) TestCreateSameTitleDifferentOrganizations() {
	orgA := suite.createOrganization()
	orgB := suite.createOrganization()

	suite.NoError(suite.repo.Create(suite.factories.Message.WithTitle(orgA.ID, "Shared")))
	suite.NoError(suite.repo.Create(suite.factories.Message.WithTitle(orgB.ID, "Shared")))
}

// TestGetByID tests retrieving a message by ID within its organization
func (suite *MessageRepositoryTestSuite) TestGetByID() {
	org := suite.createOrganization()
	msg := suite.factories.Message.Create(org.ID)
	suite.Require().NoError(suite.repo.Create(msg))

	found, err := suite.repo.GetByID(org.ID, msg.ID)

	suite.NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(msg.Title, found.Title)
}

// TestGetByIDWrongOrganization tests that lookups do not cross tenants
func (suite *MessageRepositoryTestSuite) TestGetByIDWrongOrganization() {
	org := suite.createOrganization()
	other := suite.createOrganization()
	msg := suite.factories.Message.Create(org.ID)
	suite.Require().NoError(suite.repo.Create(msg))

	found, err := suite.repo.GetByID(other.ID, msg.ID)

	suite.NoError(err)
	suite.Nil(found)
}

// TestGetByTitle tests the exact-match title lookup
func (suite *MessageRepositoryTestSuite) TestGetByTitle() {
	org := suite.createOrganization()
	msg := suite.factories.Message.WithTitle(org.ID, "Findable")
	suite.Require().NoError(suite.repo.Create(msg))

	found, err := suite.repo.GetByTitle(org.ID, "Findable")
	suite.NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(msg.ID, found.ID)

	missing, err := suite.repo.GetByTitle(org.ID, "Absent")
	suite.NoError(err)
	suite.Nil(missing)
}

// TestUpdate tests the full-replace update including writing false for is_active
func (suite *MessageRepositoryTestSuite) TestUpdate() {
	org := suite.createOrganization()
	msg := suite.factories.Message.Create(org.ID)
	suite.Require().NoError(suite.repo.Create(msg))

	msg.Title = "Replaced"
	msg.Content = "Replaced content that is valid."
	msg.IsActive = false

	updated, err := suite.repo.Update(msg)
	suite.NoError(err)
	suite.Require().NotNil(updated)

	found, err := suite.repo.GetByID(org.ID, msg.ID)
	suite.NoError(err)
	suite.Require().NotNil(found)
	suite.Equal("Replaced", found.Title)
	suite.False(found.IsActive)
}

// TestUpdateMissingRow tests updating a row that no longer exists
func (suite *MessageRepositoryTestSuite) TestUpdateMissingRow() {
	org := suite.createOrganization()
	msg := suite.factories.Message.Create(org.ID)

	updated, err := suite.repo.Update(msg)

	suite.NoError(err)
	suite.Nil(updated)
}

// TestDelete tests hard deletion and its reported row count
func (suite *MessageRepositoryTestSuite) TestDelete() {
	org := suite.createOrganization()
	msg := suite.factories.Message.Create(org.ID)
	suite.Require().NoError(suite.repo.Create(msg))

	removed, err := suite.repo.Delete(org.ID, msg.ID)
	suite.NoError(err)
	suite.True(removed)

	found, err := suite.repo.GetByID(org.ID, msg.ID)
	suite.NoError(err)
	suite.Nil(found)

	removed, err = suite.repo.Delete(org.ID, msg.ID)
	suite.NoError(err)
	suite.False(removed)
}

// TestGetAllByOrganization tests the tenant-scoped listing
func (suite *MessageRepositoryTestSuite) TestGetAllByOrganization() {
	orgA := suite.createOrganization()
	orgB := suite.createOrganization()

	suite.Require().NoError(suite.repo.Create(suite.factories.Message.WithTitle(orgA.ID, "A1")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Message.WithTitle(orgA.ID, "A2")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Message.WithTitle(orgB.ID, "B1")))

	messages, err := suite.repo.GetAllByOrganization(orgA.ID)

	suite.NoError(err)
	suite.Len(messages, 2)
}

// TestMessageRepositoryTestSuite runs the test suite
func TestMessageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MessageRepositoryTestSuite))
}
