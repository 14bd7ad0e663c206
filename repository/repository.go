package repository

import (
	"kotseai-backend/dal"
	"kotseai-backend/models"
	"kotseai-backend/utils/logger"
)

type Repository struct {
	User      *UserRepository
	Checklist *ChecklistRepository
}

func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, cfg, log),
		Checklist: NewChecklistRepository(db, cfg, log),
	}
}
