package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/peterbourgon/ff/v4"

	"github.com/zombor/fleet-tracker/internal/fuel"
)

func (a *app) batchCommand(parent *ff.FlagSet) *ff.Command {
	fs := ff.NewFlagSet("batch").SetParent(parent)
	out := fs.StringLong("out", "tickets.xlsx", "Output XLSX file path")

	return &ff.Command{
		Name:      "batch",
		Usage:     "fleet-tracker batch [FLAGS] FILE...",
		ShortHelp: "extract many OCR text files into an XLSX report",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one text file is required")
			}

			service := fuel.NewService(nil)
			drafts := make([]*fuel.Draft, 0, len(args))
			incomplete := 0
			for _, path := range args {
				data, err := a.readInput(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				draft := service.ExtractText(sourceName(path), string(data))
				if !draft.Complete() {
					incomplete++
				}
				drafts = append(drafts, draft)
			}

			f, err := os.Create(*out)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			if err := fuel.WriteXLSX(f, drafts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing output file: %w", err)
			}

			slog.Info("Batch written", "out", *out, "tickets", len(drafts), "incomplete", incomplete)
			return nil
		},
	}
}
