package fuel

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zombor/fleet-tracker/internal/scanning"
	"github.com/zombor/fleet-tracker/internal/ticket"
)

// IDGenerator generates unique IDs for drafts
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// uuidGenerator generates random (v4) UUIDs
type uuidGenerator struct{}

func (g *uuidGenerator) Generate() string {
	return uuid.NewString()
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service turns fuel tickets into drafts
type Service struct {
	scanner     scanning.Scanner
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source.
// scanner may be nil when only text input is used.
func NewService(scanner scanning.Scanner) *Service {
	return NewServiceWithDeps(scanner, &uuidGenerator{}, &defaultTimeSource{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(scanner scanning.Scanner, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		scanner:     scanner,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	filenameSpaces      = regexp.MustCompile(`\s+`)
)

// sanitizeFilename keeps a short, printable version of a (phone-generated) file name
func sanitizeFilename(filename string) string {
	if strings.TrimSpace(filename) == "" {
		return "ticket"
	}
	filename = filepath.Base(filename)
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	base = unsafeFilenameChars.ReplaceAllString(base, "")
	base = filenameSpaces.ReplaceAllString(base, " ")
	base = strings.TrimSpace(base)

	const maxLen = 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}
	if base == "" {
		base = "ticket"
	}
	return base + ext
}

// ScanTicket reads the text of a ticket image or PDF and extracts its fields
func (s *Service) ScanTicket(filename string, data []byte, contentType string) (*Draft, error) {
	if s.scanner == nil {
		return nil, fmt.Errorf("no scanner configured")
	}

	text, err := s.scanner.ScanText(data, contentType)
	if err != nil {
		slog.Error("Failed to scan ticket",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		return nil, fmt.Errorf("scanning ticket: %w", err)
	}

	draft := s.ExtractText(filename, text)
	draft.ContentType = contentType
	return draft, nil
}

// ExtractText extracts ticket fields from text that was already OCR'd
func (s *Service) ExtractText(source string, text string) *Draft {
	fields := ticket.Extract(text)
	draft := &Draft{
		ID:        s.idGenerator.Generate(),
		Source:    sanitizeFilename(source),
		Text:      text,
		Fields:    fields,
		Missing:   fields.Missing(),
		ScannedAt: s.timeSource.Now(),
	}

	if !draft.Complete() {
		slog.Info("Ticket fields missing", "source", draft.Source, "missing", draft.Missing)
	}
	return draft
}

// Close closes the underlying scanner
func (s *Service) Close() error {
	if s.scanner == nil {
		return nil
	}
	return s.scanner.Close()
}
