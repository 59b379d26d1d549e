package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// encoder writes one JSON document per value to stdout
func (a *app) encoder(pretty bool) *json.Encoder {
	enc := json.NewEncoder(a.stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc
}

// readInput reads a file, or stdin when path is "-"
func (a *app) readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// sourceName is the name recorded on a draft; stdin has none
func sourceName(path string) string {
	if path == "-" {
		return ""
	}
	return path
}

// contentTypeFor guesses the content type of a ticket from its extension
func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	default:
		return "application/octet-stream"
	}
}
