package main

import (
	"context"
	"fmt"

	"github.com/peterbourgon/ff/v4"

	"github.com/zombor/fleet-tracker/internal/fuel"
)

func (a *app) extractCommand(parent *ff.FlagSet) *ff.Command {
	fs := ff.NewFlagSet("extract").SetParent(parent)
	pretty := fs.BoolLong("pretty", "Indent JSON output")

	return &ff.Command{
		Name:      "extract",
		Usage:     "fleet-tracker extract [FLAGS] [FILE...]",
		ShortHelp: "extract fuel ticket fields from OCR text files (- or no file reads stdin)",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			service := fuel.NewService(nil)
			enc := a.encoder(*pretty)
			for _, path := range args {
				data, err := a.readInput(path)
				if err != nil {
					return err
				}
				draft := service.ExtractText(sourceName(path), string(data))
				if err := enc.Encode(draft); err != nil {
					return fmt.Errorf("encoding draft: %w", err)
				}
			}
			return nil
		},
	}
}
