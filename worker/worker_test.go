package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"kotseai-backend/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/robfig/cron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDBClient implements models.DBClient
type MockDBClient struct {
	mock.Mock
}

func (m *MockDBClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockDBClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
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

func newTestService(db models.DBClient) *Service {
	cfg := &models.Config{
		AppEnv:              "development",
		DynamoDBTablePrefix: "test",
		Tables:              []string{"users", "checklists"},
	}
	return &Service{
		config: cfg,
		workerCfg: &models.WorkerConfig{
			MaxRetries:        1,
			RetryDelay:        time.Millisecond,
			BackoffMultiplier: 2.0,
			Environment:       cfg.AppEnv,
			RequiredTables:    cfg.Tables,
			RunOnce:           true,
		},
		db:       db,
		cronJob:  cron.New(),
		logger:   stubLogger{},
		stopChan: make(chan struct{}),
	}
}

func TestEnsureTablesSkipsExisting(t *testing.T) {
	db := &MockDBClient{}
	db.On("DescribeTable", mock.Anything, "test_users").Return(&dynamodb.DescribeTableOutput{}, nil)
	db.On("DescribeTable", mock.Anything, "test_checklists").Return(&dynamodb.DescribeTableOutput{}, nil)

	svc := newTestService(db)
	err := svc.EnsureTables(context.Background())

	require.NoError(t, err)
	db.AssertNotCalled(t, "CreateTable", mock.Anything, mock.Anything)
}

func TestEnsureTablesCreatesMissing(t *testing.T) {
	db := &MockDBClient{}
	db.On("DescribeTable", mock.Anything, mock.Anything).Return(nil, errors.New("ResourceNotFoundException: table missing"))
	db.On("CreateTable", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(db)
	err := svc.EnsureTables(context.Background())

	require.NoError(t, err)
	db.AssertNumberOfCalls(t, "CreateTable", 2)
}

func TestEnsureTablesToleratesCreationRace(t *testing.T) {
	db := &MockDBClient{}
	db.On("DescribeTable", mock.Anything, mock.Anything).Return(nil, errors.New("ResourceNotFoundException"))
	db.On("CreateTable", mock.Anything, mock.Anything).Return(errors.New("ResourceInUseException: already being created"))

	svc := newTestService(db)
	err := svc.EnsureTables(context.Background())

	assert.NoError(t, err)
}

func TestTableErrorClassification(t *testing.T) {
	assert.True(t, isTableNotFoundError(errors.New("ResourceNotFoundException: no such table")))
	assert.True(t, isTableNotFoundError(errors.New("Requested resource not found")))
	assert.False(t, isTableNotFoundError(errors.New("network timeout")))
	assert.False(t, isTableNotFoundError(nil))

	assert.True(t, isTableAlreadyExistsError(errors.New("ResourceInUseException: table exists")))
	assert.False(t, isTableAlreadyExistsError(errors.New("throttled")))
	assert.False(t, isTableAlreadyExistsError(nil))
}

func TestCronScheduleForEnvironment(t *testing.T) {
	assert.Equal(t, "*/30 * * * * *", cronScheduleForEnvironment("development"))
	assert.Equal(t, "0 */5 * * * *", cronScheduleForEnvironment("testing"))
	assert.Equal(t, "0 0 * * * *", cronScheduleForEnvironment("production"))
}
