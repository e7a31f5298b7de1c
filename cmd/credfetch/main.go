// Package main defines credfetch, a tool that downloads the block header and
// beacon state of a slot from a hosted beacon API and then runs the scripts
// that build a VerifyWithdrawalCredential proof from them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/wcproof/credfetch/cmd"
	"github.com/wcproof/credfetch/cmd/credfetch/flags"
	"github.com/wcproof/credfetch/io/logs"
	"github.com/wcproof/credfetch/monitoring/prometheus"
	"github.com/wcproof/credfetch/runtime/version"
)

var log = logrus.WithField("prefix", "main")

// baseFlags lists the flags of the app before they are wrapped for
// --config-file.
func baseFlags() []cli.Flag {
	return []cli.Flag{
		flags.BeaconAPIFlag,
		flags.APIKeyFlag,
		flags.SlotFlag,
		flags.HeadFileFlag,
		flags.StateFileFlag,
		flags.StateEncoding.StringFlag(),
		flags.StateTimeoutFlag,
		flags.InitScriptFlag,
		flags.CredentialScriptFlag,
		flags.ScriptDirFlag,
		flags.ProgressFlag,
		flags.MetricsTextfileFlag,
		cmd.VerbosityFlag,
		cmd.LogFormat.StringFlag(),
		cmd.LogFileName,
		cmd.NoColorFlag,
		cmd.ConfigFileFlag,
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = version.Name
	app.Usage = "downloads the header and state of a slot and builds a VerifyWithdrawalCredential proof"
	app.Version = version.Version()
	app.Flags = cmd.WrapFlags(baseFlags())
	app.Action = runAction
	app.Commands = []*cli.Command{
		{
			Name:   "run",
			Usage:  "download the header and state, then run both scripts (default)",
			Action: runAction,
		},
		{
			Name:   "fetch",
			Usage:  "only download the header and state",
			Action: fetchAction,
		},
	}
	app.Before = before
	return app
}

func before(cliCtx *cli.Context) error {
	// Load any flags from file, if specified.
	if err := cmd.LoadFlagsFromConfig(cliCtx, cliCtx.App.Flags); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cliCtx.String(cmd.VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	format, err := cmd.LogFormat.Get(cliCtx)
	if err != nil {
		return err
	}
	logFileName := cliCtx.String(cmd.LogFileName.Name)
	// If persistent log files are written - we disable the log messages coloring because
	// the colors are ANSI codes and seen as Gibberish in the log files.
	disableColors := logFileName != "" || cliCtx.Bool(cmd.NoColorFlag.Name)
	if err := logs.ConfigureFormatter(format, disableColors); err != nil {
		return err
	}
	if logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	if cliCtx.String(flags.MetricsTextfileFlag.Name) != "" {
		logrus.AddHook(prometheus.NewLogrusCollector())
	}
	return nil
}

func main() {
	if err := loadEnvFile(); err != nil {
		log.WithError(err).Warn("Could not load environment file")
	}
	cmd.ClearEmptyEnvVars(baseFlags())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().RunContext(ctx, os.Args)
	stop()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
