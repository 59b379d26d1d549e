package status

import (
	"slices"
	"time"
)

// Policy describes how to classify one kind of dated entity
type Policy[T any] struct {
	// Date returns the date the entity is measured against (expiry, planned date...)
	Date func(T) time.Time

	// Status returns the entity's workflow status. May be nil when the
	// entity has no status.
	Status func(T) string

	// Open lists the statuses for which the date still matters. An empty
	// list means every entity is open.
	Open []string

	// Threshold is the due-soon window in days, usually DefaultThreshold.
	// Zero or less leaves only the date itself in the window.
	Threshold int
}

// IsOpen reports whether item is in a status where its date matters
func (p Policy[T]) IsOpen(item T) bool {
	if len(p.Open) == 0 || p.Status == nil {
		return true
	}
	return slices.Contains(p.Open, p.Status(item))
}

// Evaluate classifies item. ok is false when the item is closed or has no
// date; closed entities are never flagged, whatever their date.
func (p Policy[T]) Evaluate(item T, now time.Time) (c Classification, ok bool) {
	if !p.IsOpen(item) {
		return Classification{}, false
	}
	date := p.Date(item)
	if date.IsZero() {
		return Classification{}, false
	}
	return Classify(date, now, p.Threshold), true
}

