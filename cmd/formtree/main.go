// Package main provides the CLI entrypoint for formtree.
//
// formtree converts flat, composite-keyed form submissions into nested
// field trees:
//   - build: read flat records (JSON or YAML) and emit nested trees
//   - check: lint flat records against a field schema (YAML or HCL)
//   - print: render built trees as ASCII
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"formtree/flat"
	"formtree/internal/schema"
	"formtree/tree"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	// Minimal logger until a command configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command dispatch for easier testing and error handling.
func run(out io.Writer, args []string) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "build":
		return runBuild(out, args[1:])
	case "check":
		return runCheck(out, args[1:])
	case "print":
		return runPrint(out, args[1:])
	case "help", "-h", "-help", "--help":
		usage(out)
		return nil
	default:
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q (want build, check, or print)", args[0])}
	}
}

func usage(out io.Writer) {
	fmt.Fprint(out, `formtree - convert flat form submissions into nested field trees.

Usage:
  formtree build [options] RECORDS_FILE
  formtree check [options] -schema SCHEMA_FILE RECORDS_FILE
  formtree print [options] RECORDS_FILE

RECORDS_FILE holds an ordered sequence of flat records (.json, .yaml/.yml).
SCHEMA_FILE holds the field definition tree (.yaml/.yml or .hcl).

Run 'formtree COMMAND -h' for command options.
`)
}

// runBuild converts records to nested trees and writes them to out.
func runBuild(out io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("build", flag.ContinueOnError)
	flagSet.SetOutput(out)

	format := flagSet.String("format", "json", "Output format: 'json' or 'yaml'.")
	logLevel := flagSet.String("log-level", "info", "Logging level: 'debug', 'info', 'warn', or 'error'.")
	debug := flagSet.Bool("debug", false, "Dump the built trees to stderr before encoding.")

	records, err := parseCommon(flagSet, args, logLevel)
	if err != nil {
		return err
	}

	forests, err := tree.BuildAll(records)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("Built field trees.", "records", len(records))

	if *debug {
		spew.Fdump(os.Stderr, forests)
	}

	switch strings.ToLower(*format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(forests)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()

		return enc.Encode(forests)
	default:
		return &ExitError{Code: 2, Message: "invalid format: must be 'json' or 'yaml'"}
	}
}

// runCheck lints records against a schema and reports diagnostics.
func runCheck(out io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("check", flag.ContinueOnError)
	flagSet.SetOutput(out)

	schemaPath := flagSet.String("schema", "", "Path to the field schema (.yaml/.yml or .hcl).")
	logLevel := flagSet.String("log-level", "info", "Logging level: 'debug', 'info', 'warn', or 'error'.")

	records, err := parseCommon(flagSet, args, logLevel)
	if err != nil {
		return err
	}

	if *schemaPath == "" {
		return &ExitError{Code: 2, Message: "check requires -schema"}
	}

	s, err := schema.LoadFile(*schemaPath)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if res := s.Validate(); res.HasErrors() {
		for _, d := range res.All() {
			fmt.Fprintf(out, "schema: %s: %s\n", d.Severity, d)
		}

		return &ExitError{Code: 2, Message: "schema is invalid"}
	}

	failed := false

	for i, rec := range records {
		res := schema.Check(s, rec)

		for _, d := range res.All() {
			fmt.Fprintf(out, "record %d: %s: %s\n", i, d.Severity, d)
		}

		if res.HasErrors() {
			failed = true
		}
	}

	if failed {
		return &ExitError{Code: 1, Message: "check failed"}
	}

	slog.Info("Check passed.", "records", len(records))

	return nil
}

// runPrint renders built trees as ASCII art.
func runPrint(out io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("print", flag.ContinueOnError)
	flagSet.SetOutput(out)

	logLevel := flagSet.String("log-level", "info", "Logging level: 'debug', 'info', 'warn', or 'error'.")

	records, err := parseCommon(flagSet, args, logLevel)
	if err != nil {
		return err
	}

	printer := tree.NewPrinter(out)

	for i, rec := range records {
		roots, err := tree.Build(rec)
		if err != nil {
			return &ExitError{Code: 1, Message: fmt.Sprintf("record %d: %v", i, err)}
		}

		if i > 0 {
			fmt.Fprintln(out)
		}

		if err := printer.Print(roots); err != nil {
			return err
		}
	}

	return nil
}

// parseCommon parses command flags, configures logging, and loads the
// records file given as the single positional argument.
func parseCommon(flagSet *flag.FlagSet, args []string, logLevel *string) (flat.Records, error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &ExitError{Code: 0, Message: ""}
		}

		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	if err := setupLogging(*logLevel); err != nil {
		return nil, err
	}

	if flagSet.NArg() != 1 {
		return nil, &ExitError{Code: 2, Message: "expected exactly one records file argument"}
	}

	records, err := flat.LoadFile(flagSet.Arg(0))
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	return records, nil
}

func setupLogging(level string) error {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	return nil
}
