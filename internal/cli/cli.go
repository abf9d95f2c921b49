package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gridquad/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridquad", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridquad - Parallel adaptive 2D midpoint-rule integration.

Usage:
  gridquad [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a run file (.hcl, .json, .yaml or .yml).

Integrands:
`)
		for _, line := range app.AvailableIntegrands() {
			fmt.Fprintf(output, "  %s\n", line)
		}
		fmt.Fprint(output, "\nOptions:\n")
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the run file.")
	cFlag := flagSet.String("c", "", "Path to the run file (shorthand).")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health and status server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	threadsFlag := flagSet.Int("threads", 0, "Override thread_num from the run file. 0 keeps the file's value.")
	maxItersFlag := flagSet.Int("max-iters", 0, "Override max_iters from the run file. 0 keeps the file's value.")
	integrandFlag := flagSet.String("integrand", "", "Override the integrand named in the run file.")
	reportURLFlag := flagSet.String("report-url", "", "socket.io server to stream iterations to. Empty disables reporting.")
	reportNSFlag := flagSet.String("report-namespace", "/", "socket.io namespace for reporting.")
	reportRateFlag := flagSet.Float64("report-rate", 10, "Maximum report events per second.")
	reportInsecureFlag := flagSet.Bool("report-insecure", false, "Skip TLS certificate verification for the report server.")
	cacheFlag := flagSet.String("cache", "", "Result cache: 'memory' or a redis:// URL. Empty disables caching.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Config path determined.", "path", path)

	if path == "" {
		slog.Debug("No config path provided, printing usage and exiting.")
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
		ConfigPath:      path,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		Threads:         *threadsFlag,
		MaxIters:        *maxItersFlag,
		Integrand:       *integrandFlag,
		ReportURL:       *reportURLFlag,
		ReportNamespace: *reportNSFlag,
		ReportRate:      *reportRateFlag,
		ReportInsecure:  *reportInsecureFlag,
		Cache:           *cacheFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
