package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"kotseai-backend/models"

	"github.com/tidwall/gjson"
)

// ParseMaintenanceSchedule converts the raw generation reply into a
// validated three-bucket schedule. The generator is asked for pure JSON but
// is not contractually forbidden from wrapping it in code fences, so fences
// are stripped first. Each of immediate/soon/later must resolve to an array;
// anything else is ErrMalformedResponse, never a silent empty-fill.
func ParseMaintenanceSchedule(raw string) (*models.MaintenanceSchedule, error) {
	clean := stripCodeFences(raw)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}

	if !gjson.Valid(clean) {
		return nil, fmt.Errorf("%w: reply is not valid JSON", ErrMalformedResponse)
	}

	for _, key := range []string{"immediate", "soon", "later"} {
		v := gjson.Get(clean, key)
		if !v.Exists() || !v.IsArray() {
			return nil, fmt.Errorf("%w: %q is missing or not an array", ErrMalformedResponse, key)
		}
	}

	var schedule models.MaintenanceSchedule
	if err := json.Unmarshal([]byte(clean), &schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// Item sub-fields are passed through as-is; the consumer only displays
	// them, so absent component/action/interval/reason are tolerated.
	schedule.Normalize()
	return &schedule, nil
}

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
