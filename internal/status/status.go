package status

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// DefaultThreshold is the number of days before a date at which an entity
// starts being reported as due soon
const DefaultThreshold = 30

const day = 24 * time.Hour

// Bucket is the urgency of a dated entity. Buckets are ordered from most to
// least urgent.
type Bucket int

const (
	Expired Bucket = iota
	DueSoon
	Valid
)

var bucketNames = map[Bucket]string{
	Expired: "expired",
	DueSoon: "due_soon",
	Valid:   "valid",
}

func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return fmt.Sprintf("bucket(%d)", int(b))
}

// MarshalJSON encodes the bucket by name
func (b Bucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a bucket name
func (b *Bucket) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("unmarshaling bucket: %w", err)
	}
	parsed, err := ParseBucket(name)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBucket returns the bucket with the given name
func ParseBucket(name string) (Bucket, error) {
	for b, n := range bucketNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown bucket: %q", name)
}

// Classification is the result of classifying a date against now
type Classification struct {
	DaysRemaining int    `json:"days_remaining"`
	Bucket        Bucket `json:"bucket"`
}

// DaysRemaining returns the number of days from now until target, rounded
// up. A target less than a full day in the past counts as 0.
func DaysRemaining(target, now time.Time) int {
	return int(math.Ceil(float64(target.Sub(now)) / float64(day)))
}

// Classify buckets target relative to now. Both ends of the due-soon range
// are inclusive: 0 and threshold days remaining are DueSoon. A negative
// threshold is treated as 0.
func Classify(target, now time.Time, threshold int) Classification {
	if threshold < 0 {
		threshold = 0
	}
	days := DaysRemaining(target, now)
	c := Classification{DaysRemaining: days}
	switch {
	case days < 0:
		c.Bucket = Expired
	case days <= threshold:
		c.Bucket = DueSoon
	default:
		c.Bucket = Valid
	}
	return c
}
