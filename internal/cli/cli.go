package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/appforge/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("appforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
appforge - Builds application class hierarchies from HCL manifests and
resolves their inherited resource paths.

Usage:
  appforge [options] APP_NAME [FRAGMENT...]

Arguments:
  APP_NAME
    Name of the app block to build and bootstrap.
  FRAGMENT
    Relative resource paths to resolve across the realized hierarchy.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifests", "apps", "Path to a single .hcl manifest or a directory of manifests.")
	mFlag := flagSet.String("m", "", "Path to the manifest file or directory (shorthand).")
	roleFlag := flagSet.String("role", "entrypoint", "Caller role for bootstrap. Options: 'entrypoint', 'embedded', or 'test'.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No app name provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	appName := flagSet.Arg(0)
	fragments := flagSet.Args()[1:]

	manifestPath := *manifestFlag
	if *mFlag != "" {
		manifestPath = *mFlag
	}

	role := strings.ToLower(*roleFlag)
	switch role {
	case "entrypoint", "embedded", "test":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid role: must be 'entrypoint', 'embedded', or 'test'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ManifestPath: manifestPath,
		AppName:      appName,
		Role:         role,
		Fragments:    fragments,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
