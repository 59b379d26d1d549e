package scanning

// Scanner turns a photo or PDF of a fuel ticket into raw text
type Scanner interface {
	// ScanText transcribes the text printed on the ticket, line by line
	ScanText(imageData []byte, contentType string) (string, error)
	// Close closes the scanner and releases resources
	Close() error
}
