package fleet

import (
	"cmp"
	"slices"
	"time"

	"github.com/zombor/fleet-tracker/internal/status"
)

// AlertKind tells which kind of entity raised an alert
type AlertKind string

const (
	AlertCompliance  AlertKind = "compliance"
	AlertMaintenance AlertKind = "maintenance"
)

// Severity of an alert as shown on the dashboard
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Alert is a dashboard entry for an entity that is expired or due soon
type Alert struct {
	Kind          AlertKind     `json:"kind"`
	EntityID      string        `json:"entity_id"`
	VehicleID     string        `json:"vehicle_id,omitempty"`
	Label         string        `json:"label"`
	Date          Date          `json:"date"`
	DaysRemaining int           `json:"days_remaining"`
	Bucket        status.Bucket `json:"bucket"`
	Severity      Severity      `json:"severity"`
}

// Dashboard builds alerts from a snapshot of fleet entities
type Dashboard struct {
	documents   status.Policy[ComplianceDocument]
	maintenance status.Policy[MaintenanceRequest]
}

// NewDashboard creates a Dashboard using threshold days as the due-soon
// window. Callers without a preference pass status.DefaultThreshold.
func NewDashboard(threshold int) *Dashboard {
	open := make([]string, 0, len(OpenMaintenanceStatuses))
	for _, s := range OpenMaintenanceStatuses {
		open = append(open, string(s))
	}

	return &Dashboard{
		documents: status.Policy[ComplianceDocument]{
			Date:      func(d ComplianceDocument) time.Time { return d.ExpiryDate.Time },
			Threshold: threshold,
		},
		maintenance: status.Policy[MaintenanceRequest]{
			Date:      func(m MaintenanceRequest) time.Time { return m.PlannedDate.Time },
			Status:    func(m MaintenanceRequest) string { return string(m.Status) },
			Open:      open,
			Threshold: threshold,
		},
	}
}

// DocumentStatus classifies a single compliance document
func (d *Dashboard) DocumentStatus(doc ComplianceDocument, now time.Time) (status.Classification, bool) {
	return d.documents.Evaluate(doc, now)
}

// MaintenanceStatus classifies a single maintenance request. ok is false for
// closed requests, which are never overdue.
func (d *Dashboard) MaintenanceStatus(req MaintenanceRequest, now time.Time) (status.Classification, bool) {
	return d.maintenance.Evaluate(req, now)
}

// Alerts returns the expired and due-soon entities of snap, most urgent first.
// Ties are ordered by kind and entity ID.
func (d *Dashboard) Alerts(snap Snapshot, now time.Time) []Alert {
	alerts := make([]Alert, 0)

	for _, doc := range snap.Documents {
		c, ok := d.documents.Evaluate(doc, now)
		if !ok || c.Bucket == status.Valid {
			continue
		}
		alerts = append(alerts, newAlert(AlertCompliance, doc.ID, doc.VehicleID, documentLabel(doc), doc.ExpiryDate, c))
	}

	for _, req := range snap.Maintenance {
		c, ok := d.maintenance.Evaluate(req, now)
		if !ok || c.Bucket == status.Valid {
			continue
		}
		alerts = append(alerts, newAlert(AlertMaintenance, req.ID, req.VehicleID, req.Title, req.PlannedDate, c))
	}

	slices.SortFunc(alerts, func(a, b Alert) int {
		return cmp.Or(
			cmp.Compare(a.DaysRemaining, b.DaysRemaining),
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.EntityID, b.EntityID),
		)
	})
	return alerts
}

func newAlert(kind AlertKind, id, vehicleID, label string, date Date, c status.Classification) Alert {
	severity := SeverityWarning
	if c.Bucket == status.Expired {
		severity = SeverityCritical
	}
	return Alert{
		Kind:          kind,
		EntityID:      id,
		VehicleID:     vehicleID,
		Label:         label,
		Date:          date,
		DaysRemaining: c.DaysRemaining,
		Bucket:        c.Bucket,
		Severity:      severity,
	}
}

func documentLabel(doc ComplianceDocument) string {
	if doc.Reference == "" {
		return string(doc.Type)
	}
	return string(doc.Type) + " " + doc.Reference
}

// FilterAlerts keeps the alerts in one of the given buckets. With no buckets
// every alert is kept.
func FilterAlerts(alerts []Alert, buckets ...status.Bucket) []Alert {
	if len(buckets) == 0 {
		return alerts
	}
	filtered := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if slices.Contains(buckets, a.Bucket) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Summary counts alerts per bucket for the dashboard cards
type Summary struct {
	Expired int `json:"expired"`
	DueSoon int `json:"due_soon"`
}

// Summarize counts alerts by bucket
func Summarize(alerts []Alert) Summary {
	var s Summary
	for _, a := range alerts {
		switch a.Bucket {
		case status.Expired:
			s.Expired++
		case status.DueSoon:
			s.DueSoon++
		}
	}
	return s
}
