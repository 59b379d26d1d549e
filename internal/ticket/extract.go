package ticket

import (
	"regexp"
	"strings"
)

var (
	datePattern         = regexp.MustCompile(`(\d{2}[/-]\d{2}[/-]\d{4})|(\d{4}[/-]\d{2}[/-]\d{2})`)
	yearFirstPattern    = regexp.MustCompile(`^\d{4}`)
	timePattern         = regexp.MustCompile(`\d{2}[:h]\d{2}`)
	ticketNumberPattern = regexp.MustCompile(`(?i)(?:(?:TICKET|NO|NUMERO)` + separator + `+|#` + separator + `*)(\d+)`)
)

// separator is a colon or any space between a ticket keyword and its digits
const separator = `(?::|` + space + `)`

// textMatcher looks for one field anywhere in the ticket text
type textMatcher struct {
	name  string
	apply func(text string, r *Result)
}

// lineMatcher fills one numeric field from the first line containing one of
// its keywords. Keywords are compared against the uppercased line.
type lineMatcher struct {
	name     string
	keywords []string
	pattern  *regexp.Regexp
	field    func(r *Result) **float64
}

// textMatchers run in order over the whole text
var textMatchers = []textMatcher{
	{name: "date", apply: matchDate},
	{name: "time", apply: matchTime},
	{name: "station", apply: matchStation},
	{name: "ticketNumber", apply: matchTicketNumber},
}

// lineMatchers run in order on every line. They are not exclusive: one line
// can fill several fields with the same number.
var lineMatchers = []lineMatcher{
	{
		name:     "totalAmount",
		keywords: []string{"TOTAL", "NET A PAYER", "AR"},
		pattern:  amountWithSpacePattern,
		field:    func(r *Result) **float64 { return &r.TotalAmount },
	},
	{
		name:     "unitPrice",
		keywords: []string{"P.U", "PU", "PRIX"},
		pattern:  amountPattern,
		field:    func(r *Result) **float64 { return &r.UnitPrice },
	},
	{
		name:     "quantityPurchased",
		keywords: []string{"LITRE", " QTE", " VOU"},
		pattern:  amountPattern,
		field:    func(r *Result) **float64 { return &r.QuantityPurchased },
	},
}

// Extract reads the fields of a fuel ticket from OCR text. It never fails:
// fields that cannot be found are left unset.
func Extract(text string) Result {
	var r Result
	for _, m := range textMatchers {
		m.apply(text, &r)
	}
	for _, line := range strings.Split(text, "\n") {
		upper := strings.ToUpper(line)
		for _, m := range lineMatchers {
			m.apply(upper, &r)
		}
	}
	return r
}

func (m lineMatcher) matches(upperLine string) bool {
	for _, kw := range m.keywords {
		if strings.Contains(upperLine, kw) {
			return true
		}
	}
	return false
}

func (m lineMatcher) apply(upperLine string, r *Result) {
	field := m.field(r)
	if *field != nil || !m.matches(upperLine) {
		return
	}
	if v, ok := parseAmount(m.pattern, upperLine); ok {
		*field = &v
	}
}

// matchDate assumes day-first for DD/MM/YYYY; 03/04/2024 is always 3 April
func matchDate(text string, r *Result) {
	match := datePattern.FindString(text)
	if match == "" {
		return
	}
	match = strings.ReplaceAll(match, "-", "/")
	if yearFirstPattern.MatchString(match) {
		r.Date = strings.ReplaceAll(match, "/", "-")
		return
	}
	parts := strings.Split(match, "/")
	r.Date = parts[2] + "-" + parts[1] + "-" + parts[0]
}

func matchTime(text string, r *Result) {
	match := timePattern.FindString(text)
	if match == "" {
		return
	}
	r.Time = strings.Replace(match, "h", ":", 1)
}

func matchStation(text string, r *Result) {
	lower := strings.ToLower(text)
	for _, s := range KnownStations {
		if strings.Contains(lower, strings.ToLower(s.ShortName())) {
			r.Station = s
			return
		}
	}
}

func matchTicketNumber(text string, r *Result) {
	m := ticketNumberPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	r.TicketNumber = m[1]
}
