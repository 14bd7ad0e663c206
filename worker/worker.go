package worker

import (
	"context"
	"fmt"
	"time"

	"kotseai-backend/dal"
	"kotseai-backend/infrastructure"
	"kotseai-backend/models"
	"kotseai-backend/utils/logger"

	"github.com/robfig/cron"
)

// Service ensures the DynamoDB tables the application needs exist. It runs
// one pass at startup and then re-verifies on a cron schedule so a dropped
// table in a shared environment heals without a redeploy.
type Service struct {
	config    *models.Config
	workerCfg *models.WorkerConfig
	db        models.DBClient
	cronJob   *cron.Cron
	logger    logger.Logger
	stopChan  chan struct{}
}

// NewService creates a table bootstrap worker
func NewService(ctx context.Context, cfg *models.Config, log logger.Logger) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	dbClient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	workerCfg := &models.WorkerConfig{
		CronSchedule:      cronScheduleForEnvironment(cfg.AppEnv),
		MaxRetries:        5,
		RetryDelay:        2 * time.Second,
		BackoffMultiplier: 2.0,
		Environment:       cfg.AppEnv,
		RequiredTables:    cfg.Tables,
		RunOnce:           cfg.AppEnv == "development",
	}

	return &Service{
		config:    cfg,
		workerCfg: workerCfg,
		db:        dbClient,
		cronJob:   cron.New(),
		logger:    log,
		stopChan:  make(chan struct{}),
	}, nil
}

// Start runs an immediate bootstrap pass and, unless configured to run
// once, schedules periodic re-verification
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("Starting table bootstrap worker...")

	if err := s.EnsureTables(ctx); err != nil {
		return fmt.Errorf("initial table bootstrap failed: %w", err)
	}

	if s.workerCfg.RunOnce {
		s.logger.Info("Table bootstrap complete, worker running once only")
		return nil
	}

	err := s.cronJob.AddFunc(s.workerCfg.CronSchedule, func() {
		if err := s.EnsureTables(ctx); err != nil {
			s.logger.Errorf("Scheduled table verification failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule table verification: %w", err)
	}
	s.cronJob.Start()
	s.logger.Infof("Table verification scheduled: %s", s.workerCfg.CronSchedule)
	return nil
}

// StartInBackground runs Start on its own goroutine
func (s *Service) StartInBackground(ctx context.Context) {
	go func() {
		if err := s.Start(ctx); err != nil {
			s.logger.Errorf("Table bootstrap worker failed: %v", err)
		}
	}()
}

// Stop halts scheduled verification
func (s *Service) Stop() {
	s.cronJob.Stop()
	close(s.stopChan)
	s.logger.Info("Table bootstrap worker stopped")
}

// EnsureTables creates every required table that does not exist yet
func (s *Service) EnsureTables(ctx context.Context) error {
	for _, baseName := range s.workerCfg.RequiredTables {
		tableName := s.config.DynamoDBTablePrefix + "_" + baseName
		if err := s.ensureTableWithRetry(ctx, tableName); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ensureTableWithRetry(ctx context.Context, tableName string) error {
	delay := s.workerCfg.RetryDelay

	for attempt := 0; attempt <= s.workerCfg.MaxRetries; attempt++ {
		if attempt > 0 {
			s.logger.Infof("Retrying table setup for %s in %v (attempt %d/%d)",
				tableName, delay, attempt+1, s.workerCfg.MaxRetries+1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay = time.Duration(float64(delay) * s.workerCfg.BackoffMultiplier)
		}

		exists, err := s.tableExists(ctx, tableName)
		if err != nil {
			s.logger.Errorf("Failed to check table %s: %v", tableName, err)
			continue
		}
		if exists {
			s.logger.Infof("Table %s already exists, skipping creation", tableName)
			return nil
		}

		if err := s.createTable(ctx, tableName); err != nil {
			if isTableAlreadyExistsError(err) {
				// Another instance won the race; the table is there.
				s.logger.Infof("Table %s created concurrently", tableName)
				return nil
			}
			s.logger.Errorf("Attempt %d failed to create table %s: %v", attempt+1, tableName, err)
			continue
		}

		s.logger.Infof("Table %s created successfully", tableName)
		return nil
	}

	return fmt.Errorf("exhausted all retry attempts for table %s", tableName)
}

func (s *Service) createTable(ctx context.Context, tableName string) error {
	input, err := infrastructure.GetTables(tableName)
	if err != nil {
		return fmt.Errorf("failed to load table schema: %w", err)
	}
	return s.db.CreateTable(ctx, input)
}

func (s *Service) tableExists(ctx context.Context, tableName string) (bool, error) {
	_, err := s.db.DescribeTable(ctx, tableName)
	if err != nil {
		if isTableNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// cronScheduleForEnvironment returns environment-specific verification schedules
func cronScheduleForEnvironment(env string) string {
	switch env {
	case "development":
		return "*/30 * * * * *" // Every 30 seconds for development
	case "testing":
		return "0 */5 * * * *" // Every 5 minutes for testing
	default:
		return "0 0 * * * *" // Hourly for production
	}
}
