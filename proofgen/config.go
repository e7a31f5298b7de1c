package proofgen

import (
	"time"

	"github.com/pkg/errors"
	"github.com/wcproof/credfetch/api/client/beacon"
	"github.com/wcproof/credfetch/proofgen/fetcher"
	"github.com/wcproof/credfetch/proofgen/runner"
)

// Defaults used when a value is not configured.
const (
	DefaultBaseURL          = "https://data.spiceai.io/eth/beacon"
	DefaultHeadFile         = "HEAD_FILE.json"
	DefaultStateFile        = "STATE_FILE.json"
	DefaultInitScript       = "../automationScript/intialize.sh"
	DefaultCredentialScript = "../automationScript/withdrawalCredential.sh"
)

// State encodings accepted by Config.StateEncoding.
const (
	EncodingJSON = "json"
	EncodingSSZ  = "ssz"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds everything a run needs.
type Config struct {
	BaseURL string
	// APIKey is sent as the X-API-Key header. Never logged.
	APIKey string
	// Slot identifies the header and state to download. Any value accepted
	// by beacon.ParseId works, usually a decimal slot number.
	Slot             string
	HeadFile         string
	StateFile        string
	StateEncoding    string
	StateTimeout     time.Duration
	InitScript       string
	CredentialScript string
	// ScriptDir is the working directory of both scripts. Empty means the
	// current directory.
	ScriptDir string
}

// DefaultConfig returns a Config with every optional value set. APIKey and
// Slot are left empty.
func DefaultConfig() Config {
	return Config{
		BaseURL:          DefaultBaseURL,
		HeadFile:         DefaultHeadFile,
		StateFile:        DefaultStateFile,
		StateEncoding:    EncodingJSON,
		StateTimeout:     fetcher.DefaultHeaderTimeout,
		InitScript:       DefaultInitScript,
		CredentialScript: DefaultCredentialScript,
	}
}

// Validate reports the first missing or malformed value.
func (c Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return errors.Wrap(ErrInvalidConfig, "base url is required")
	case c.APIKey == "":
		return errors.Wrap(ErrInvalidConfig, "api key is required")
	case c.Slot == "":
		return errors.Wrap(ErrInvalidConfig, "slot is required")
	case c.HeadFile == "" || c.StateFile == "":
		return errors.Wrap(ErrInvalidConfig, "output files are required")
	case c.InitScript == "" || c.CredentialScript == "":
		return errors.Wrap(ErrInvalidConfig, "scripts are required")
	case c.StateEncoding != EncodingJSON && c.StateEncoding != EncodingSSZ:
		return errors.Wrapf(ErrInvalidConfig, "unknown state encoding %q", c.StateEncoding)
	case c.StateTimeout < 0:
		return errors.Wrap(ErrInvalidConfig, "state timeout can't be negative")
	}
	if _, err := beacon.ParseId(c.Slot); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

func (c Config) id() beacon.StateOrBlockId {
	// Validate has already checked the slot.
	id, _ := beacon.ParseId(c.Slot)
	return id
}

// HeadRequest describes the block header download.
func (c Config) HeadRequest() fetcher.Request {
	return fetcher.Request{
		Path:       beacon.HeaderPath(c.id()),
		OutputPath: c.HeadFile,
		APIKey:     c.APIKey,
	}
}

// StateRequest describes the beacon state download.
func (c Config) StateRequest() fetcher.Request {
	return fetcher.Request{
		Path:       beacon.StatePath(c.id()),
		OutputPath: c.StateFile,
		APIKey:     c.APIKey,
		SSZ:        c.StateEncoding == EncodingSSZ,
	}
}

// Scripts returns the scripts run after both downloads, in order.
func (c Config) Scripts() []runner.Script {
	return []runner.Script{
		{Name: "initialize", Path: c.InitScript, Dir: c.ScriptDir},
		{Name: "withdrawalCredential", Path: c.CredentialScript, Dir: c.ScriptDir},
	}
}
