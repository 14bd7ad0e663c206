package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kotseai-backend/models"
	"kotseai-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockMaintenanceService implements services.MaintenanceServiceInterface
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) GenerateSchedule(ctx context.Context, profile *models.VehicleProfile, userID string) (*models.MaintenanceSchedule, error) {
	args := m.Called(ctx, profile, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceSchedule), args.Error(1)
}

func (m *MockMaintenanceService) ListChecklists(ctx context.Context, userID string) ([]*models.StoredChecklist, error) {
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

type MaintenanceControllerTestSuite struct {
	suite.Suite
	mockService *MockMaintenanceService
	router      *gin.Engine
}

func (suite *MaintenanceControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = &MockMaintenanceService{}
	ctrl := NewMaintenanceController(context.Background(), suite.mockService, stubLogger{})

	suite.router = gin.New()
	suite.router.POST("/maintenance", ctrl.Generate)
	suite.router.POST("/maintenance-as-user", func(c *gin.Context) {
		c.Set("user_id", "user-123")
	}, ctrl.Generate)
	suite.router.GET("/maintenance/checklists", func(c *gin.Context) {
		c.Set("user_id", "user-123")
	}, ctrl.ListChecklists)
}

func TestMaintenanceControllerTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceControllerTestSuite))
}

func validMaintenanceBody() []byte {
	body, _ := json.Marshal(models.MaintenanceRequest{
		Make:         "Toyota",
		Model:        "Vios",
		Year:         "2018",
		Mileage:      "65000",
		Location:     "Quezon City",
		Transmission: "Automatic",
	})
	return body
}

func (suite *MaintenanceControllerTestSuite) postJSON(path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MaintenanceControllerTestSuite) TestGenerate() {
	schedule := &models.MaintenanceSchedule{
		Immediate: []models.MaintenanceItem{{Component: "Engine Oil", Action: "Replace"}},
		Soon:      []models.MaintenanceItem{},
		Later:     []models.MaintenanceItem{},
	}
	suite.mockService.On("GenerateSchedule", mock.Anything, mock.MatchedBy(func(p *models.VehicleProfile) bool {
		return p.Make == "Toyota" && p.MileageKm == 65000
	}), "").Return(schedule, nil)

	w := suite.postJSON("/maintenance", validMaintenanceBody())

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"maintenance"`)
	assert.Contains(suite.T(), w.Body.String(), "Engine Oil")
}

func (suite *MaintenanceControllerTestSuite) TestGenerateForwardsUserIdentity() {
	schedule := &models.MaintenanceSchedule{
		Immediate: []models.MaintenanceItem{}, Soon: []models.MaintenanceItem{}, Later: []models.MaintenanceItem{},
	}
	suite.mockService.On("GenerateSchedule", mock.Anything, mock.Anything, "user-123").Return(schedule, nil)

	w := suite.postJSON("/maintenance-as-user", validMaintenanceBody())

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MaintenanceControllerTestSuite) TestGenerateRejectsMissingFields() {
	body, _ := json.Marshal(map[string]string{"make": "Toyota"})

	w := suite.postJSON("/maintenance", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ValidationError")
	suite.mockService.AssertNotCalled(suite.T(), "GenerateSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MaintenanceControllerTestSuite) TestGenerateRejectsNonNumericMileage() {
	body, _ := json.Marshal(models.MaintenanceRequest{
		Make: "Toyota", Model: "Vios", Year: "2018",
		Mileage: "many", Location: "Manila", Transmission: "Manual",
	})

	w := suite.postJSON("/maintenance", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GenerateSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MaintenanceControllerTestSuite) TestGenerateMalformedReplyIsBadGateway() {
	suite.mockService.On("GenerateSchedule", mock.Anything, mock.Anything, "").Return(nil, services.ErrMalformedResponse)

	w := suite.postJSON("/maintenance", validMaintenanceBody())

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "GenerationError")
}

func (suite *MaintenanceControllerTestSuite) TestListChecklists() {
	stored := []*models.StoredChecklist{{ID: "cl-1", UserID: "user-123", Make: "Toyota"}}
	suite.mockService.On("ListChecklists", mock.Anything, "user-123").Return(stored, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/maintenance/checklists", nil)
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "cl-1")
}
