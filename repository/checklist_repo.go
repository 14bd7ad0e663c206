package repository

import (
	"context"

	"kotseai-backend/dal"
	"kotseai-backend/models"
	"kotseai-backend/utils/logger"
)

type ChecklistRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *ChecklistRepository {
	return &ChecklistRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *ChecklistRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_checklists"
}

// CreateChecklist stores a generated checklist for a user
func (r *ChecklistRepository) CreateChecklist(ctx context.Context, checklist *models.StoredChecklist) error {
	if err := r.db.PutItem(ctx, r.tableName(), checklist); err != nil {
		r.logger.Errorf("Failed to store checklist for user %s: %v", checklist.UserID, err)
		return err
	}
	r.logger.Infof("Checklist stored: %s", checklist.ID)
	return nil
}

// GetChecklistsByUser returns a user's checklists, newest first
func (r *ChecklistRepository) GetChecklistsByUser(ctx context.Context, userID string) ([]*models.StoredChecklist, error) {
	var checklists []*models.StoredChecklist
	err := r.db.QueryByIndex(ctx, models.QueryConfig{
		TableName:  r.tableName(),
		IndexName:  "user_id-index",
		KeyName:    "user_id",
		KeyValue:   userID,
		Descending: true,
	}, &checklists)
	if err != nil {
		r.logger.Errorf("Failed to query checklists for user %s: %v", userID, err)
		return nil, err
	}
	if checklists == nil {
		checklists = []*models.StoredChecklist{}
	}
	return checklists, nil
}
