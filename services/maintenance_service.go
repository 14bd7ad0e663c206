package services

import (
	"context"
	"errors"
	"time"

	"kotseai-backend/models"
	"kotseai-backend/repository"
	"kotseai-backend/utils"
	"kotseai-backend/utils/logger"

	"github.com/go-playground/validator/v10"
)

// MaintenanceService orchestrates the primary flow:
// validate -> prompt -> generate -> parse -> (opportunistically) persist.
type MaintenanceService struct {
	generator     Generator
	checklistRepo repository.ChecklistRepositoryInterface
	validate      *validator.Validate
	logger        logger.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(gen Generator, checklistRepo repository.ChecklistRepositoryInterface, log logger.Logger) *MaintenanceService {
	return &MaintenanceService{
		generator:     gen,
		checklistRepo: checklistRepo,
		validate:      validator.New(),
		logger:        log,
	}
}

// GenerateSchedule produces a validated three-bucket schedule for the
// profile. When userID is non-empty the result is also stored for the
// dashboard; a failed store is logged but never fails the request, since
// the caller already holds a correct result.
func (s *MaintenanceService) GenerateSchedule(ctx context.Context, profile *models.VehicleProfile, userID string) (*models.MaintenanceSchedule, error) {
	if err := s.validateProfile(profile); err != nil {
		return nil, err
	}

	prompt := BuildSchedulePrompt(profile)
	raw := s.generator.GenerateText(ctx, prompt)
	s.logger.Debugf("Raw generation reply: %d bytes", len(raw))

	schedule, err := ParseMaintenanceSchedule(raw)
	if err != nil {
		s.logger.Errorf("Failed to parse maintenance schedule: %v", err)
		return nil, err
	}

	if userID != "" {
		checklist := &models.StoredChecklist{
			ID:           utils.GenerateUUID(),
			UserID:       userID,
			Make:         profile.Make,
			Model:        profile.Model,
			Year:         profile.Year,
			Transmission: profile.Transmission,
			MileageKm:    profile.MileageKm,
			Location:     profile.Location,
			Data:         *schedule,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.checklistRepo.CreateChecklist(ctx, checklist); err != nil {
			s.logger.Errorf("Failed to persist checklist for user %s: %v", userID, err)
		} else {
			s.logger.Infof("Checklist %s stored for user %s", checklist.ID, userID)
		}
	}

	return schedule, nil
}

// ListChecklists returns the caller's stored checklists, newest first
func (s *MaintenanceService) ListChecklists(ctx context.Context, userID string) ([]*models.StoredChecklist, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "user_id", Details: "user identity is required"}
	}
	return s.checklistRepo.GetChecklistsByUser(ctx, userID)
}

func (s *MaintenanceService) validateProfile(profile *models.VehicleProfile) error {
	if profile == nil {
		return &ValidationError{Details: "vehicle profile is required"}
	}
	if err := s.validate.Struct(profile); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{
				Field:   verrs[0].Field(),
				Details: "required vehicle field is missing or invalid",
			}
		}
		return &ValidationError{Details: err.Error()}
	}
	return nil
}
