package models

import (
	"fmt"
	"strconv"
	"strings"
)

// VehicleProfile is the normalized description of the car and query context.
// Immutable once constructed; built from user-submitted form data.
type VehicleProfile struct {
	Make         string `json:"make" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Year         string `json:"year" validate:"required"`
	MileageKm    int    `json:"mileage_km" validate:"gte=0"`
	Transmission string `json:"transmission" validate:"required"`
	Location     string `json:"location" validate:"required"`
}

// MaintenanceRequest is the payload for schedule generation. Mileage arrives
// as a numeric string, matching the submitted form field.
type MaintenanceRequest struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         string `json:"year" binding:"required"`
	Mileage      string `json:"mileage" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Transmission string `json:"transmission" binding:"required"`
}

// CostRequest is the payload for cost estimation
type CostRequest struct {
	Make         string     `json:"make" binding:"required"`
	Model        string     `json:"model" binding:"required"`
	Year         string     `json:"year" binding:"required"`
	Mileage      string     `json:"mileage" binding:"required"`
	Location     string     `json:"location" binding:"required"`
	Transmission string     `json:"transmission" binding:"required"`
	Items        []CostItem `json:"items" binding:"required,min=1,dive"`
}

// CostItem is one maintenance task submitted for pricing
type CostItem struct {
	Component string `json:"component" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

// Profile converts the request into a VehicleProfile, rejecting a mileage
// field that is not a non-negative integer.
func (r *MaintenanceRequest) Profile() (*VehicleProfile, error) {
	return buildProfile(r.Make, r.Model, r.Year, r.Mileage, r.Transmission, r.Location)
}

// Profile converts the cost request into a VehicleProfile
func (r *CostRequest) Profile() (*VehicleProfile, error) {
	return buildProfile(r.Make, r.Model, r.Year, r.Mileage, r.Transmission, r.Location)
}

func buildProfile(make, model, year, mileage, transmission, location string) (*VehicleProfile, error) {
	km, err := strconv.Atoi(strings.TrimSpace(mileage))
	if err != nil {
		return nil, fmt.Errorf("mileage must be a whole number of kilometers: %q", mileage)
	}
	if km < 0 {
		return nil, fmt.Errorf("mileage cannot be negative: %d", km)
	}
	return &VehicleProfile{
		Make:         strings.TrimSpace(make),
		Model:        strings.TrimSpace(model),
		Year:         strings.TrimSpace(year),
		MileageKm:    km,
		Transmission: strings.TrimSpace(transmission),
		Location:     strings.TrimSpace(location),
	}, nil
}
