package main

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/peterbourgon/ff/v4"

	"github.com/zombor/fleet-tracker/internal/fleet"
	"github.com/zombor/fleet-tracker/internal/status"
)

// alertsReport is the JSON document printed by the alerts command
type alertsReport struct {
	Now     string        `json:"now"`
	Summary fleet.Summary `json:"summary"`
	Alerts  []fleet.Alert `json:"alerts"`
}

func (a *app) alertsCommand(parent *ff.FlagSet) *ff.Command {
	fs := ff.NewFlagSet("alerts").SetParent(parent)
	var (
		threshold = fs.IntLong("threshold", status.DefaultThreshold, "Days before a date at which it becomes due soon")
		nowFlag   = fs.StringLong("now", "", "Reference date YYYY-MM-DD (default: current time)")
		bucket    = fs.StringLong("bucket", "", "Only show one bucket: 'expired' or 'due_soon'")
		pretty    = fs.BoolLong("pretty", "Indent JSON output")
	)

	return &ff.Command{
		Name:      "alerts",
		Usage:     "fleet-tracker alerts [FLAGS] [SNAPSHOT.json]",
		ShortHelp: "report expired and due-soon compliance documents and maintenance",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}

			now := time.Now()
			if *nowFlag != "" {
				parsed, err := time.Parse(time.DateOnly, *nowFlag)
				if err != nil {
					return fmt.Errorf("invalid --now date, use YYYY-MM-DD: %w", err)
				}
				now = parsed
			}

			var buckets []status.Bucket
			if *bucket != "" {
				b, err := status.ParseBucket(*bucket)
				if err != nil {
					return err
				}
				if b == status.Valid {
					return fmt.Errorf("invalid --bucket %q: valid entities never raise alerts", *bucket)
				}
				buckets = append(buckets, b)
			}

			data, err := a.readInput(path)
			if err != nil {
				return err
			}
			snap, err := fleet.ReadSnapshot(bytes.NewReader(data))
			if err != nil {
				return err
			}

			alerts := fleet.NewDashboard(*threshold).Alerts(*snap, now)

			// the summary counts every alert, the list honours --bucket
			report := alertsReport{
				Now:     now.Format(time.DateOnly),
				Summary: fleet.Summarize(alerts),
				Alerts:  fleet.FilterAlerts(alerts, buckets...),
			}
			if err := a.encoder(*pretty).Encode(report); err != nil {
				return fmt.Errorf("encoding alerts: %w", err)
			}
			return nil
		},
	}
}
