package ticket

import "strings"

// Station is one of the known fuel stations a ticket can come from
type Station string

const (
	StationKarenjy   Station = "Karenjy (Ankidona)"
	StationVohibola  Station = "Vohibola (Antarandolo)"
	StationMiregnina Station = "Miregnina (Ampasambazaha)"
)

// KnownStations lists the stations in matching order. The first station whose
// short name appears in the text wins.
var KnownStations = []Station{
	StationKarenjy,
	StationVohibola,
	StationMiregnina,
}

// ShortName returns the station name up to the first space, e.g. "Karenjy"
func (s Station) ShortName() string {
	name, _, _ := strings.Cut(string(s), " ")
	return name
}

// Result contains the fields found in a fuel ticket.
// Empty strings and nil numbers mean the field was not found.
type Result struct {
	Date              string   `json:"date,omitempty"` // YYYY-MM-DD
	Time              string   `json:"time,omitempty"` // HH:MM
	TicketNumber      string   `json:"ticketNumber,omitempty"`
	Station           Station  `json:"station,omitempty"`
	TotalAmount       *float64 `json:"totalAmount,omitempty"`
	UnitPrice         *float64 `json:"unitPrice,omitempty"`
	QuantityPurchased *float64 `json:"quantityPurchased,omitempty"`
}

// Missing returns the JSON names of the fields that were not found, in
// declaration order
func (r Result) Missing() []string {
	missing := make([]string, 0, 7)
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Time == "" {
		missing = append(missing, "time")
	}
	if r.TicketNumber == "" {
		missing = append(missing, "ticketNumber")
	}
	if r.Station == "" {
		missing = append(missing, "station")
	}
	if r.TotalAmount == nil {
		missing = append(missing, "totalAmount")
	}
	if r.UnitPrice == nil {
		missing = append(missing, "unitPrice")
	}
	if r.QuantityPurchased == nil {
		missing = append(missing, "quantityPurchased")
	}
	return missing
}
