package models

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DBClient interface to avoid circular dependency
type DBClient interface {
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}

// WorkerConfig holds configuration for the table bootstrap worker
type WorkerConfig struct {
	CronSchedule string `json:"cron_schedule"`

	MaxRetries        int           `json:"max_retries"`
	RetryDelay        time.Duration `json:"retry_delay"`
	BackoffMultiplier float64       `json:"backoff_multiplier"`

	Environment    string   `json:"environment"`
	RequiredTables []string `json:"required_tables"`

	RunOnce bool `json:"run_once"`
}
