package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/peterbourgon/ff/v4"

	"github.com/zombor/fleet-tracker/internal/fuel"
	"github.com/zombor/fleet-tracker/internal/scanning"
)

func (a *app) scanCommand(parent *ff.FlagSet) *ff.Command {
	fs := ff.NewFlagSet("scan").SetParent(parent)
	var (
		scannerType = fs.StringLong("scanner", "gemini", "Scanner type: 'gemini' or 'ollama'")
		geminiKey   = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel = fs.StringLong("gemini-model", scanning.DefaultGeminiModel, "Google Gemini model name")
		ollamaURL   = fs.StringLong("ollama-url", scanning.DefaultOllamaURL, "Ollama API base URL")
		ollamaModel = fs.StringLong("ollama-model", scanning.DefaultOllamaModel, "Ollama model name (e.g., llava, qwen2-vl)")
		pretty      = fs.BoolLong("pretty", "Indent JSON output")
	)

	return &ff.Command{
		Name:      "scan",
		Usage:     "fleet-tracker scan [FLAGS] IMAGE...",
		ShortHelp: "OCR ticket photos or PDFs and extract their fields",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one image is required")
			}

			scanner, err := newScanner(*scannerType, *geminiKey, *geminiModel, *ollamaURL, *ollamaModel)
			if err != nil {
				return err
			}
			service := fuel.NewService(scanner)
			defer service.Close()

			enc := a.encoder(*pretty)
			for _, path := range args {
				if err := ctx.Err(); err != nil {
					return err
				}
				data, err := a.readInput(path)
				if err != nil {
					return err
				}
				draft, err := service.ScanTicket(sourceName(path), data, contentTypeFor(path))
				if err != nil {
					return err
				}
				if err := enc.Encode(draft); err != nil {
					return fmt.Errorf("encoding draft: %w", err)
				}
			}
			return nil
		},
	}
}

// newScanner creates the OCR scanner selected by the --scanner flag
func newScanner(kind, geminiKey, geminiModel, ollamaURL, ollamaModel string) (scanning.Scanner, error) {
	switch kind {
	case "gemini":
		apiKey := geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("gemini api key is required: set --gemini-key or GEMINI_API_KEY")
		}
		slog.Info("Initializing Gemini scanner...", "model", geminiModel)
		scanner, err := scanning.NewGemini(apiKey, geminiModel)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini: %w", err)
		}
		return scanner, nil
	case "ollama":
		slog.Info("Initializing Ollama scanner...", "url", ollamaURL, "model", ollamaModel)
		scanner, err := scanning.NewOllama(ollamaURL, ollamaModel)
		if err != nil {
			return nil, fmt.Errorf("initializing ollama: %w", err)
		}
		return scanner, nil
	default:
		return nil, fmt.Errorf("invalid scanner type %q: valid types are gemini or ollama", kind)
	}
}
