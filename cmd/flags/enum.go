package flags

// via https://github.com/urfave/cli/issues/602

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// EnumValue allows the cli to present a fixed set of string values.
// The flag itself is a plain string flag so it can still be loaded from a
// config file; call Validate once flags are parsed.
type EnumValue struct {
	Name    string
	Usage   string
	EnvVars []string
	Enum    []string
	Value   string
}

// Validate returns an error unless value is one of the allowed values.
func (e EnumValue) Validate(value string) error {
	for _, enum := range e.Enum {
		if enum == value {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for flag -%s: allowed values are %s", value, e.Name, strings.Join(e.Enum, ", "))
}

// Get returns the parsed, validated flag value.
func (e EnumValue) Get(cliCtx *cli.Context) (string, error) {
	v := cliCtx.String(e.Name)
	if err := e.Validate(v); err != nil {
		return "", err
	}
	return v, nil
}

// StringFlag returns the cli flag for this value. The allowed values are
// appended to the usage text.
func (e EnumValue) StringFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    e.Name,
		Usage:   fmt.Sprintf("%s (%s)", e.Usage, strings.Join(e.Enum, ", ")),
		EnvVars: e.EnvVars,
		Value:   e.Value,
	}
}
