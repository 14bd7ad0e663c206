package services

import (
	"context"

	"kotseai-backend/models"
)

// MaintenanceServiceInterface defines the contract for schedule generation
type MaintenanceServiceInterface interface {
	GenerateSchedule(ctx context.Context, profile *models.VehicleProfile, userID string) (*models.MaintenanceSchedule, error)
	ListChecklists(ctx context.Context, userID string) ([]*models.StoredChecklist, error)
}

// CostServiceInterface defines the contract for cost estimation
type CostServiceInterface interface {
	EstimateCosts(ctx context.Context, profile *models.VehicleProfile, items []models.CostItem) (*models.CostReport, error)
}

// VideoServiceInterface defines the contract for DIY video suggestions
type VideoServiceInterface interface {
	Search(ctx context.Context, query string) []models.VideoSuggestion
}
