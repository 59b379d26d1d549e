package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app holds the streams and global flags shared by every subcommand
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel  *string
	logFormat *string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootFlags := ff.NewFlagSet("fleet-tracker")
	a.logLevel = rootFlags.StringLong("log-level", "info", "Log level: debug, info, warn or error")
	a.logFormat = rootFlags.StringLong("log-format", "text", "Log format: 'text' or 'json'")
	showVersion := rootFlags.BoolLong("version", "Show version information")

	root := &ff.Command{
		Name:      "fleet-tracker",
		Usage:     "fleet-tracker [FLAGS] <SUBCOMMAND> ...",
		ShortHelp: "read fuel tickets and report fleet deadlines",
		Flags:     rootFlags,
		Exec: func(ctx context.Context, args []string) error {
			if *showVersion {
				fmt.Fprintln(stdout, version)
				return nil
			}
			return ff.ErrHelp
		},
	}
	root.Subcommands = []*ff.Command{
		a.extractCommand(rootFlags),
		a.scanCommand(rootFlags),
		a.batchCommand(rootFlags),
		a.alertsCommand(rootFlags),
	}

	if err := root.Parse(args, ff.WithEnvVarPrefix("FLEET_TRACKER")); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Command(selected(root)))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	logger, err := newLogger(stderr, *a.logLevel, *a.logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	slog.SetDefault(logger)

	if err := root.Run(ctx); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			fmt.Fprintf(stderr, "%s\n", ffhelp.Command(selected(root)))
			return nil
		}
		slog.Error("Command failed", "command", selected(root).Name, "error", err)
		return err
	}
	return nil
}

// selected returns the subcommand chosen on the command line, or root
func selected(root *ff.Command) *ff.Command {
	if cmd := root.GetSelected(); cmd != nil {
		return cmd
	}
	return root
}

// newLogger builds the slog logger configured by the global flags
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: valid formats are text or json", format)
	}
}
