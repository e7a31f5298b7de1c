package version

import (
	"strings"

	"github.com/pkg/errors"
)

// Consensus forks, in activation order.
const (
	Phase0 = iota
	Altair
	Bellatrix
	Capella
	Deneb
	Electra
)

var forkNames = map[int]string{
	Phase0:    "phase0",
	Altair:    "altair",
	Bellatrix: "bellatrix",
	Capella:   "capella",
	Deneb:     "deneb",
	Electra:   "electra",
}

// ErrUnknownFork is returned for a fork name no release has shipped.
var ErrUnknownFork = errors.New("unknown fork")

// String returns the lowercase fork name as used in the beacon API.
func String(version int) string {
	if name, ok := forkNames[version]; ok {
		return name
	}
	return "unknown version"
}

// FromString parses the value of the Eth-Consensus-Version response
// header, or the "version" field of a v2 debug state response.
func FromString(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range forkNames {
		if n == name {
			return v, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFork, "%q", name)
}
