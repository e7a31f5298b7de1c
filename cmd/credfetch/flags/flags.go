// Package flags defines the command line flags of credfetch.
package flags

import (
	"github.com/urfave/cli/v2"
	"github.com/wcproof/credfetch/cmd/flags"
	"github.com/wcproof/credfetch/proofgen"
	"github.com/wcproof/credfetch/proofgen/fetcher"
)

var (
	// BeaconAPIFlag is the base url of the beacon API.
	BeaconAPIFlag = &cli.StringFlag{
		Name:    "beacon-api",
		Usage:   "Base url of the beacon API, including any path prefix",
		Value:   proofgen.DefaultBaseURL,
		EnvVars: []string{"CREDFETCH_BEACON_API"},
	}
	// APIKeyFlag is sent as the X-API-Key header.
	APIKeyFlag = &cli.StringFlag{
		Name:    "api-key",
		Usage:   "Key sent in the X-API-Key header of every request (required)",
		EnvVars: []string{"CREDFETCH_API_KEY", "API_KEY"},
	}
	// SlotFlag selects the header and state to download.
	SlotFlag = &cli.StringFlag{
		Name:    "slot",
		Usage:   "Slot whose header and state are downloaded. Also accepts head, finalized, justified, genesis or a 0x root (required)",
		EnvVars: []string{"CREDFETCH_SLOT", "SLOT"},
	}
	// HeadFileFlag is where the header JSON is written.
	HeadFileFlag = &cli.StringFlag{
		Name:    "head-file",
		Usage:   "Output file for the block header JSON",
		Value:   proofgen.DefaultHeadFile,
		EnvVars: []string{"CREDFETCH_HEAD_FILE"},
	}
	// StateFileFlag is where the state is written.
	StateFileFlag = &cli.StringFlag{
		Name:    "state-file",
		Usage:   "Output file for the beacon state",
		Value:   proofgen.DefaultStateFile,
		EnvVars: []string{"CREDFETCH_STATE_FILE"},
	}
	// StateEncoding selects the representation requested for the state.
	StateEncoding = flags.EnumValue{
		Name:    "state-encoding",
		Usage:   "Encoding requested for the beacon state",
		EnvVars: []string{"CREDFETCH_STATE_ENCODING"},
		Enum:    []string{proofgen.EncodingJSON, proofgen.EncodingSSZ},
		Value:   proofgen.EncodingJSON,
	}
	// StateTimeoutFlag bounds the wait for the state response headers.
	StateTimeoutFlag = &cli.DurationFlag{
		Name:    "state-timeout",
		Usage:   "How long to wait for the state response to start. The download itself is not bounded. 0 disables the timeout",
		Value:   fetcher.DefaultHeaderTimeout,
		EnvVars: []string{"CREDFETCH_STATE_TIMEOUT"},
	}
	// InitScriptFlag is the first script run after the downloads.
	InitScriptFlag = &cli.StringFlag{
		Name:    "init-script",
		Usage:   "Script run first, once both files are saved",
		Value:   proofgen.DefaultInitScript,
		EnvVars: []string{"CREDFETCH_INIT_SCRIPT"},
	}
	// CredentialScriptFlag is the script that produces the proof.
	CredentialScriptFlag = &cli.StringFlag{
		Name:    "credential-script",
		Usage:   "Script run second, producing the VerifyWithdrawalCredential JSON",
		Value:   proofgen.DefaultCredentialScript,
		EnvVars: []string{"CREDFETCH_CREDENTIAL_SCRIPT"},
	}
	// ScriptDirFlag is the working directory of both scripts.
	ScriptDirFlag = &cli.StringFlag{
		Name:    "script-dir",
		Usage:   "Working directory of the scripts. Relative script paths are resolved against it. Defaults to the current directory",
		EnvVars: []string{"CREDFETCH_SCRIPT_DIR"},
	}
	// ProgressFlag enables the download progress bar.
	ProgressFlag = &cli.BoolFlag{
		Name:    "progress",
		Usage:   "Show a progress bar while downloading the state",
		EnvVars: []string{"CREDFETCH_PROGRESS"},
	}
	// MetricsTextfileFlag names the file metrics are written to on exit.
	MetricsTextfileFlag = &cli.StringFlag{
		Name:    "metrics-textfile",
		Usage:   "Write prometheus metrics to this file on exit, in node exporter textfile format",
		EnvVars: []string{"CREDFETCH_METRICS_TEXTFILE"},
	}
)
