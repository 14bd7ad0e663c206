package repository

import (
	"context"

	"kotseai-backend/models"
)

// UserRepositoryInterface defines persistence operations for user accounts
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	RecordLogin(ctx context.Context, userID string) error
}

// ChecklistRepositoryInterface defines persistence operations for generated checklists
type ChecklistRepositoryInterface interface {
	CreateChecklist(ctx context.Context, checklist *models.StoredChecklist) error
	GetChecklistsByUser(ctx context.Context, userID string) ([]*models.StoredChecklist, error)
}

// CacheRepository is a string key/value cache with a repository-managed TTL.
// Get reports a miss as (_, false); callers never see cache errors.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}
