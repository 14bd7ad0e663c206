package models

import "time"

// MaintenanceItem is one recommended service task
type MaintenanceItem struct {
	Component string `json:"component" dynamodbav:"component"`
	Action    string `json:"action" dynamodbav:"action"`
	Interval  string `json:"interval" dynamodbav:"interval"`
	Reason    string `json:"reason" dynamodbav:"reason"`
}

// MaintenanceSchedule groups recommended tasks into three urgency buckets.
// All three slices are always present, possibly empty, never nil.
type MaintenanceSchedule struct {
	Immediate []MaintenanceItem `json:"immediate" dynamodbav:"immediate"`
	Soon      []MaintenanceItem `json:"soon" dynamodbav:"soon"`
	Later     []MaintenanceItem `json:"later" dynamodbav:"later"`
}

// Normalize replaces nil buckets with empty slices
func (s *MaintenanceSchedule) Normalize() {
	if s.Immediate == nil {
		s.Immediate = []MaintenanceItem{}
	}
	if s.Soon == nil {
		s.Soon = []MaintenanceItem{}
	}
	if s.Later == nil {
		s.Later = []MaintenanceItem{}
	}
}

// StoredChecklist is the persisted record of one generated schedule.
// Never mutated after insert.
type StoredChecklist struct {
	ID           string              `json:"id" dynamodbav:"id"`
	UserID       string              `json:"user_id" dynamodbav:"user_id"`
	Make         string              `json:"make" dynamodbav:"make"`
	Model        string              `json:"model" dynamodbav:"model"`
	Year         string              `json:"year" dynamodbav:"year"`
	Transmission string              `json:"transmission" dynamodbav:"transmission"`
	MileageKm    int                 `json:"mileage_km" dynamodbav:"mileage_km"`
	Location     string              `json:"location" dynamodbav:"location"`
	Data         MaintenanceSchedule `json:"data" dynamodbav:"data"`
	CreatedAt    time.Time           `json:"created_at" dynamodbav:"created_at"`
}
