package scanning

import (
	"errors"
	"strings"
)

// ErrNoText is returned when the model answered without any transcription
var ErrNoText = errors.New("no text in scanner response")

// cleanTranscription strips the wrapping a vision model sometimes puts around
// a transcription (markdown fences, CRLF line endings, trailing spaces).
// Leading spaces on a line are kept: the ticket parser matches " QTE".
func cleanTranscription(text string) (string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	// Opening fence, possibly with a language tag
	if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, "```") {
		_, rest, found := strings.Cut(trimmed, "\n")
		if !found {
			rest = strings.TrimPrefix(trimmed, "```")
		}
		text = rest
	}
	text = strings.TrimSuffix(strings.TrimRight(text, " \t\n"), "```")

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	text = strings.Trim(strings.Join(lines, "\n"), "\n")

	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}
