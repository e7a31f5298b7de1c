package main

import (
	"context"
	"os"

	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/wcproof/credfetch/api/client"
	"github.com/wcproof/credfetch/cmd"
	"github.com/wcproof/credfetch/cmd/credfetch/flags"
	"github.com/wcproof/credfetch/io/file"
	"github.com/wcproof/credfetch/io/logs"
	"github.com/wcproof/credfetch/monitoring/prometheus"
	"github.com/wcproof/credfetch/proofgen"
	"github.com/wcproof/credfetch/proofgen/fetcher"
	"github.com/wcproof/credfetch/proofgen/runner"
	"github.com/wcproof/credfetch/runtime/version"
)

func runAction(cliCtx *cli.Context) error {
	return execute(cliCtx, (*proofgen.Pipeline).Run)
}

func fetchAction(cliCtx *cli.Context) error {
	return execute(cliCtx, (*proofgen.Pipeline).Fetch)
}

func execute(cliCtx *cli.Context, step func(*proofgen.Pipeline, context.Context) (*proofgen.Report, error)) error {
	cfg, err := configFromCLI(cliCtx)
	if err != nil {
		return err
	}
	p, err := newPipeline(cliCtx, cfg)
	if err != nil {
		return err
	}
	log.WithField("beaconAPI", logs.MaskCredentialsLogging(cfg.BaseURL)).WithField("slot", cfg.Slot).Info("Starting")
	rep, err := step(p, cliCtx.Context)
	printSummary(cliCtx.App.Writer, rep, err, !cliCtx.Bool(cmd.NoColorFlag.Name))
	if path := cliCtx.String(flags.MetricsTextfileFlag.Name); path != "" {
		if mErr := prometheus.WriteTextfile(path, nil); mErr != nil {
			log.WithError(mErr).Error("Could not write metrics")
		}
	}
	return err
}

func newPipeline(cliCtx *cli.Context, cfg proofgen.Config) (*proofgen.Pipeline, error) {
	c, err := client.NewClient(cfg.BaseURL, client.WithUserAgent(version.UserAgent()))
	if err != nil {
		return nil, errors.Wrap(err, "could not create beacon API client")
	}
	opts := []fetcher.Option{fetcher.WithHeaderTimeout(cfg.StateTimeout)}
	if cliCtx.Bool(flags.ProgressFlag.Name) {
		opts = append(opts, fetcher.WithProgress(ansi.NewAnsiStderr()))
	}
	return proofgen.New(cfg, fetcher.New(c, opts...), runner.ProcessExecutor{})
}

// configFromCLI builds the pipeline configuration from parsed flags.
// Output paths get ~ and environment variables expanded. Script paths only
// get environment variables expanded, since relative ones are resolved
// against the script directory.
func configFromCLI(cliCtx *cli.Context) (proofgen.Config, error) {
	cfg := proofgen.DefaultConfig()
	cfg.BaseURL = cliCtx.String(flags.BeaconAPIFlag.Name)
	cfg.APIKey = cliCtx.String(flags.APIKeyFlag.Name)
	cfg.Slot = cliCtx.String(flags.SlotFlag.Name)
	cfg.StateTimeout = cliCtx.Duration(flags.StateTimeoutFlag.Name)
	enc, err := flags.StateEncoding.Get(cliCtx)
	if err != nil {
		return cfg, errors.Wrap(proofgen.ErrInvalidConfig, err.Error())
	}
	cfg.StateEncoding = enc

	for dst, name := range map[*string]string{
		&cfg.HeadFile:  flags.HeadFileFlag.Name,
		&cfg.StateFile: flags.StateFileFlag.Name,
	} {
		v := cliCtx.String(name)
		if v == "" {
			*dst = ""
			continue
		}
		expanded, err := file.ExpandPath(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "could not expand %s", name)
		}
		*dst = expanded
	}
	cfg.InitScript = os.ExpandEnv(cliCtx.String(flags.InitScriptFlag.Name))
	cfg.CredentialScript = os.ExpandEnv(cliCtx.String(flags.CredentialScriptFlag.Name))
	if dir := cliCtx.String(flags.ScriptDirFlag.Name); dir != "" {
		expanded, err := file.ExpandPath(dir)
		if err != nil {
			return cfg, errors.Wrap(err, "could not expand script dir")
		}
		cfg.ScriptDir = expanded
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
