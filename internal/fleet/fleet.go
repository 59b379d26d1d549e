package fleet

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DocumentType is the kind of compliance document held for a vehicle or driver
type DocumentType string

const (
	DocumentInsurance           DocumentType = "insurance"
	DocumentRegistration        DocumentType = "registration"
	DocumentTechnicalInspection DocumentType = "technical_inspection"
	DocumentLicense             DocumentType = "license"
	DocumentOther               DocumentType = "other"
)

// MaintenanceStatus is the workflow status of a maintenance request
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceApproved   MaintenanceStatus = "approved"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
	MaintenanceArchived   MaintenanceStatus = "archived"
)

// OpenMaintenanceStatuses are the statuses for which a planned date can be overdue
var OpenMaintenanceStatuses = []MaintenanceStatus{
	MaintenancePending,
	MaintenanceApproved,
	MaintenanceInProgress,
}

// Priority of a maintenance request
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Date is a calendar date as sent by the fleet backend. It accepts both
// "2006-01-02" and RFC 3339 timestamps and encodes as "2006-01-02".
type Date struct {
	time.Time
}

// UnmarshalJSON parses a date-only or RFC 3339 string. null and "" give a zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshaling date: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON encodes the date as "2006-01-02", or "" when unset
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(time.DateOnly))
}

// ComplianceDocument is a dated document such as an insurance certificate
type ComplianceDocument struct {
	ID         string       `json:"id"`
	VehicleID  string       `json:"vehicle_id,omitempty"`
	Type       DocumentType `json:"type"`
	Reference  string       `json:"reference,omitempty"`
	ExpiryDate Date         `json:"expiry_date"`
}

// MaintenanceRequest is a planned intervention on a vehicle
type MaintenanceRequest struct {
	ID          string            `json:"id"`
	VehicleID   string            `json:"vehicle_id,omitempty"`
	Title       string            `json:"title"`
	Status      MaintenanceStatus `json:"status"`
	Priority    Priority          `json:"priority,omitempty"`
	PlannedDate Date              `json:"planned_date"`
}

// Snapshot is the set of entities fetched from the fleet backend for a dashboard
type Snapshot struct {
	Documents   []ComplianceDocument `json:"documents"`
	Maintenance []MaintenanceRequest `json:"maintenance"`
}
