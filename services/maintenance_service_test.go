package services

import (
	"context"
	"errors"
	"testing"

	"kotseai-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockGenerator implements Generator for testing
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) string {
	args := m.Called(ctx, prompt)
	return args.String(0)
}

// MockChecklistRepository implements repository.ChecklistRepositoryInterface
type MockChecklistRepository struct {
	mock.Mock
}

func (m *MockChecklistRepository) CreateChecklist(ctx context.Context, checklist *models.StoredChecklist) error {
	args := m.Called(ctx, checklist)
	return args.Error(0)
}

func (m *MockChecklistRepository) GetChecklistsByUser(ctx context.Context, userID string) ([]*models.StoredChecklist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StoredChecklist), args.Error(1)
}

// stubLogger satisfies logger.Logger without recording anything
type stubLogger struct{}

func (stubLogger) Debug(args ...interface{})                 {}
func (stubLogger) Debugf(format string, args ...interface{}) {}
func (stubLogger) Info(args ...interface{})                  {}
func (stubLogger) Infof(format string, args ...interface{})  {}
func (stubLogger) Warn(args ...interface{})                  {}
func (stubLogger) Warnf(format string, args ...interface{})  {}
func (stubLogger) Error(args ...interface{})                 {}
func (stubLogger) Errorf(format string, args ...interface{}) {}
func (stubLogger) Fatal(args ...interface{})                 {}
func (stubLogger) Fatalf(format string, args ...interface{}) {}

const validScheduleReply = `{"immediate":[{"component":"Engine Oil","action":"Replace","interval":"Every 5,000 km","reason":"Overdue"}],"soon":[],"later":[]}`

type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockGenerator *MockGenerator
	mockRepo      *MockChecklistRepository
	service       *MaintenanceService
	ctx           context.Context
}

func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockGenerator = &MockGenerator{}
	suite.mockRepo = &MockChecklistRepository{}
	suite.service = NewMaintenanceService(suite.mockGenerator, suite.mockRepo, stubLogger{})
}

func TestMaintenanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}

func (suite *MaintenanceServiceTestSuite) TestGenerateScheduleAnonymous() {
	suite.mockGenerator.On("GenerateText", mock.Anything, mock.Anything).Return(validScheduleReply)

	schedule, err := suite.service.GenerateSchedule(suite.ctx, testProfile(), "")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), schedule.Immediate, 1)
	assert.Equal(suite.T(), "Engine Oil", schedule.Immediate[0].Component)

	// Anonymous callers get no persistence.
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateChecklist", mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestGenerateSchedulePersistsForUser() {
	suite.mockGenerator.On("GenerateText", mock.Anything, mock.Anything).Return(validScheduleReply)
	suite.mockRepo.On("CreateChecklist", mock.Anything, mock.MatchedBy(func(c *models.StoredChecklist) bool {
		return c.UserID == "user-123" && c.Make == "Toyota" && c.ID != ""
	})).Return(nil)

	schedule, err := suite.service.GenerateSchedule(suite.ctx, testProfile(), "user-123")

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), schedule)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestGenerateSchedulePersistFailureStillSucceeds() {
	suite.mockGenerator.On("GenerateText", mock.Anything, mock.Anything).Return(validScheduleReply)
	suite.mockRepo.On("CreateChecklist", mock.Anything, mock.Anything).Return(errors.New("table unavailable"))

	schedule, err := suite.service.GenerateSchedule(suite.ctx, testProfile(), "user-123")

	// The caller already holds a correct schedule; a failed store is logged only.
	require.NoError(suite.T(), err)
	require.Len(suite.T(), schedule.Immediate, 1)
}

func (suite *MaintenanceServiceTestSuite) TestGenerateScheduleRejectsIncompleteProfile() {
	profile := testProfile()
	profile.Transmission = ""

	schedule, err := suite.service.GenerateSchedule(suite.ctx, profile, "")

	assert.Nil(suite.T(), schedule)
	assert.True(suite.T(), IsValidationError(err))

	// Validation failures never reach the generation service.
	suite.mockGenerator.AssertNotCalled(suite.T(), "GenerateText", mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestGenerateScheduleMalformedReply() {
	suite.mockGenerator.On("GenerateText", mock.Anything, mock.Anything).Return("I cannot answer that.")

	schedule, err := suite.service.GenerateSchedule(suite.ctx, testProfile(), "user-123")

	assert.Nil(suite.T(), schedule)
	assert.True(suite.T(), errors.Is(err, ErrMalformedResponse))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateChecklist", mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestGenerateScheduleEmptyReply() {
	// The generation client absorbs transport errors into an empty string.
	suite.mockGenerator.On("GenerateText", mock.Anything, mock.Anything).Return("")

	schedule, err := suite.service.GenerateSchedule(suite.ctx, testProfile(), "")

	assert.Nil(suite.T(), schedule)
	assert.True(suite.T(), errors.Is(err, ErrMalformedResponse))
}

func (suite *MaintenanceServiceTestSuite) TestListChecklists() {
	stored := []*models.StoredChecklist{{ID: "cl-1", UserID: "user-123"}}
	suite.mockRepo.On("GetChecklistsByUser", mock.Anything, "user-123").Return(stored, nil)

	checklists, err := suite.service.ListChecklists(suite.ctx, "user-123")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), checklists, 1)
	assert.Equal(suite.T(), "cl-1", checklists[0].ID)
}

func (suite *MaintenanceServiceTestSuite) TestListChecklistsRequiresUser() {
	checklists, err := suite.service.ListChecklists(suite.ctx, "")

	assert.Nil(suite.T(), checklists)
	assert.True(suite.T(), IsValidationError(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "GetChecklistsByUser", mock.Anything, mock.Anything)
}
