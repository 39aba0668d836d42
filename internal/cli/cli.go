package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/powergridgo/internal/app"
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
	flagSet := flag.NewFlagSet("powergridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
PowerGridGo - compiles an electrical-network definition into solver matrices.

Usage:
  powergridgo [options] [NETWORK_PATH]

Arguments:
  NETWORK_PATH
    Path to a .hcl network definition file.

Options:
`)
		flagSet.PrintDefaults()
	}

	netFlag := flagSet.String("network", "", "Path to the network definition file.")
	nFlag := flagSet.String("n", "", "Path to the network definition file (shorthand).")
	modeFlag := flagSet.String("mode", "pf", "Analysis mode. Options: 'pf', 'pf_3ph', 'sc' or 'opf'.")
	caseFlag := flagSet.String("case", "max", "Short-circuit case. Options: 'max' or 'min'.")
	seqFlag := flagSet.Int("sequence", 1, "Sequence network to compile. 0 selects the zero sequence.")
	connFlag := flagSet.Bool("check-connectivity", false, "Isolate buses unreachable from any reference bus.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *netFlag != "" {
		path = *netFlag
	} else if *nFlag != "" {
		path = *nFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Network path determined.", "path", path)

	if path == "" {
		slog.Debug("No network path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
		NetworkPath:       path,
		Mode:              strings.ToLower(*modeFlag),
		SCCase:            strings.ToLower(*caseFlag),
		Sequence:          *seqFlag,
		CheckConnectivity: *connFlag,
		LogFormat:         logFormat,
		LogLevel:          logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
