package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/specialistvlad/knitchart/internal/app"
)

// Environment variables that override the logging defaults.
const (
	EnvLogLevel  = "KNITCHART_LOG_LEVEL"
	EnvLogFormat = "KNITCHART_LOG_FORMAT"
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

func usageError(msg string) error {
	return &ExitError{Code: 2, Message: msg}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("knitchart", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
knitchart - Turn written knitting patterns into ASCII charts.

Usage:
  knitchart [options] [PATTERN_TEXT]

Arguments:
  PATTERN_TEXT
    The pattern itself, e.g. 'cast on 4 sts\nrow 1: k2, p2'. A literal \n
    starts a new line. Longer patterns are easier to keep in a file (-f).

Options:
`)
		flagSet.PrintDefaults()
	}

	var fileFlag, libraryFlag, nameFlag string
	flagSet.StringVar(&fileFlag, "file", "", "Path to a pattern text file. Use '-' for standard input.")
	flagSet.StringVar(&fileFlag, "f", "", "Path to a pattern text file (shorthand).")
	flagSet.StringVar(&libraryFlag, "library", "", "Path to an HCL pattern library file or directory.")
	flagSet.StringVar(&libraryFlag, "l", "", "Path to an HCL pattern library (shorthand).")
	flagSet.StringVar(&nameFlag, "name", "", "Name of the library pattern to chart.")
	flagSet.StringVar(&nameFlag, "n", "", "Name of the library pattern (shorthand).")
	listFlag := flagSet.Bool("list", false, "List the patterns in the library and exit.")
	chartOnlyFlag := flagSet.Bool("chart-only", false, "Print only the chart.")
	keyOnlyFlag := flagSet.Bool("key-only", false, "Print only the key.")
	exportFlag := flagSet.String("export", "", "Write the expanded pattern as HCL to this path.")
	logFormatFlag := flagSet.String("log-format", env.Str(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env.Str(EnvLogLevel, "warn"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError(err.Error())
	}

	// Quoted shell arguments keep \n as two characters; treat them as a line break.
	text := strings.ReplaceAll(strings.Join(flagSet.Args(), " "), `\n`, "\n")
	if text == "" && fileFlag == "" && libraryFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	config, err := app.NewConfig(app.Config{
		Text:        text,
		FilePath:    fileFlag,
		LibraryPath: libraryFlag,
		PatternName: nameFlag,
		List:        *listFlag,
		ChartOnly:   *chartOnlyFlag,
		KeyOnly:     *keyOnlyFlag,
		ExportPath:  *exportFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, usageError(err.Error())
	}
	return config, false, nil
}
