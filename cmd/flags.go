// Package cmd defines the command line flags shared by credfetch commands.
package cmd

import (
	"github.com/urfave/cli/v2"
	"github.com/wcproof/credfetch/cmd/flags"
	"github.com/wcproof/credfetch/io/logs"
)

var (
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Usage:   "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value:   "info",
		EnvVars: []string{"CREDFETCH_VERBOSITY"},
	}
	// LogFormat specifies the log output format.
	LogFormat = flags.EnumValue{
		Name:    "log-format",
		Usage:   "Specify log formatting.",
		EnvVars: []string{"CREDFETCH_LOG_FORMAT"},
		Enum:    logs.Formats,
		Value:   logs.FormatText,
	}
	// LogFileName specifies the log output file name.
	LogFileName = &cli.StringFlag{
		Name:    "log-file",
		Usage:   "Specify log file name, relative or absolute",
		EnvVars: []string{"CREDFETCH_LOG_FILE"},
	}
	// ConfigFileFlag specifies the filepath to load flag values.
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config-file",
		Usage:   "The filepath to a yaml file with flag values",
		EnvVars: []string{"CREDFETCH_CONFIG_FILE"},
	}
	// NoColorFlag disables ANSI colors in terminal output.
	NoColorFlag = &cli.BoolFlag{
		Name:    "no-color",
		Usage:   "Disable colors in logs and in the final summary",
		EnvVars: []string{"CREDFETCH_NO_COLOR"},
	}
)
