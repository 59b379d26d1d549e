package fuel

import (
	"time"

	"github.com/zombor/fleet-tracker/internal/ticket"
)

// Draft is a fuel purchase read from a ticket, used to pre-fill the fuel
// purchase form. Fields the parser could not find are listed in Missing so
// the user can fill them in.
type Draft struct {
	ID          string        `json:"id"`
	Source      string        `json:"source"` // file name the text came from
	ContentType string        `json:"content_type,omitempty"`
	Text        string        `json:"text"`
	Fields      ticket.Result `json:"fields"`
	Missing     []string      `json:"missing"`
	ScannedAt   time.Time     `json:"scanned_at"`
}

// Complete reports whether every field was found
func (d *Draft) Complete() bool {
	return len(d.Missing) == 0
}
