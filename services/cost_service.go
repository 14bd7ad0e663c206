package services

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"kotseai-backend/models"
	"kotseai-backend/repository"
	"kotseai-backend/utils/logger"

	"github.com/go-playground/validator/v10"
)

// CostService orchestrates cost estimation. Identical vehicle/task
// combinations hit a cache instead of the generation service; everything
// downstream of validation degrades to an empty report rather than failing.
type CostService struct {
	generator Generator
	cache     repository.CacheRepository
	config    *models.Config
	validate  *validator.Validate
	logger    logger.Logger
}

// NewCostService creates a new cost service. cache may be nil, which
// disables caching entirely.
func NewCostService(gen Generator, cache repository.CacheRepository, cfg *models.Config, log logger.Logger) *CostService {
	return &CostService{
		generator: gen,
		cache:     cache,
		config:    cfg,
		validate:  validator.New(),
		logger:    log,
	}
}

// EstimateCosts prices the given maintenance tasks for the vehicle. The
// only error it can return is a ValidationError; a failed or garbled
// generation yields an empty, well-typed report.
func (s *CostService) EstimateCosts(ctx context.Context, profile *models.VehicleProfile, items []models.CostItem) (*models.CostReport, error) {
	if err := s.validateInput(profile, items); err != nil {
		return nil, err
	}

	key := s.cacheKey(profile, items)
	if report, ok := s.cachedReport(ctx, key); ok {
		s.logger.Debugf("Cost report cache hit: %s", key)
		return report, nil
	}

	prompt := BuildCostPrompt(profile, items, s.config.LaborRatePhpPerHour)
	raw := s.generator.GenerateText(ctx, prompt)
	report := ParseCostReport(raw)

	// Only useful reports are cached; a degraded empty result should be
	// retried on the next identical request.
	if len(report.Rows) > 0 {
		s.storeReport(ctx, key, report)
	}

	return report, nil
}

func (s *CostService) validateInput(profile *models.VehicleProfile, items []models.CostItem) error {
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
	if len(items) == 0 {
		return &ValidationError{Field: "items", Details: "at least one maintenance task is required"}
	}
	return nil
}

func (s *CostService) cacheKey(profile *models.VehicleProfile, items []models.CostItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s|%d|%s|%s", profile.Make, profile.Model, profile.Year,
		profile.MileageKm, profile.Transmission, profile.Location)
	for _, it := range items {
		fmt.Fprintf(&b, "|%s:%s", it.Component, it.Action)
	}
	return fmt.Sprintf("cost:%x", sha1.Sum([]byte(strings.ToLower(b.String()))))
}

func (s *CostService) cachedReport(ctx context.Context, key string) (*models.CostReport, bool) {
	if s.cache == nil {
		return nil, false
	}
	val, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var report models.CostReport
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		s.logger.Warnf("Discarding unreadable cached cost report %s: %v", key, err)
		return nil, false
	}
	if report.Rows == nil {
		report.Rows = []models.CostRow{}
	}
	return &report, true
}

func (s *CostService) storeReport(ctx context.Context, key string, report *models.CostReport) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		s.logger.Warnf("Failed to marshal cost report for cache: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		s.logger.Warnf("Failed to cache cost report %s: %v", key, err)
	}
}
