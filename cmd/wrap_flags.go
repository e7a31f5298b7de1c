package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

// WrapFlags so that they can be loaded from alternative sources.
// Each flag is copied first: the cli package records parse state on the
// flag value, so every app needs its own.
func WrapFlags(flags []cli.Flag) []cli.Flag {
	wrapped := make([]cli.Flag, 0, len(flags))
	for _, f := range flags {
		switch t := f.(type) {
		case *cli.BoolFlag:
			c := *t
			f = altsrc.NewBoolFlag(&c)
		case *cli.DurationFlag:
			c := *t
			f = altsrc.NewDurationFlag(&c)
		case *cli.StringFlag:
			c := *t
			f = altsrc.NewStringFlag(&c)
		case *cli.Uint64Flag:
			c := *t
			f = altsrc.NewUint64Flag(&c)
		case *cli.IntFlag:
			c := *t
			f = altsrc.NewIntFlag(&c)
		default:
			panic(fmt.Sprintf("cannot convert type %T", f))
		}
		wrapped = append(wrapped, f)
	}
	return wrapped
}

// LoadFlagsFromConfig sets flag values from the yaml file named by
// --config-file. Values given on the command line or in the environment win.
func LoadFlagsFromConfig(cliCtx *cli.Context, flags []cli.Flag) error {
	if cliCtx.IsSet(ConfigFileFlag.Name) {
		if err := altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc(ConfigFileFlag.Name))(cliCtx); err != nil {
			return err
		}
	}
	return nil
}

// ClearEmptyEnvVars unsets the environment variables of flags that are
// exported with an empty value. An empty variable would otherwise count as
// set and hide the value from --config-file.
func ClearEmptyEnvVars(flags []cli.Flag) {
	for _, f := range flags {
		var envVars []string
		switch t := f.(type) {
		case *cli.BoolFlag:
			envVars = t.EnvVars
		case *cli.DurationFlag:
			envVars = t.EnvVars
		case *cli.StringFlag:
			envVars = t.EnvVars
		case *cli.Uint64Flag:
			envVars = t.EnvVars
		case *cli.IntFlag:
			envVars = t.EnvVars
		}
		for _, name := range envVars {
			if v, ok := os.LookupEnv(name); ok && v == "" {
				_ = os.Unsetenv(name)
			}
		}
	}
}
