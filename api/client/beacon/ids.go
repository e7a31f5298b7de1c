package beacon

import (
	"fmt"
	"path"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

const (
	getHeaderPath = "/eth/v1/beacon/headers"
	getStatePath  = "/eth/v2/debug/beacon/states"
)

// ErrInvalidId is returned when a string cannot be used as a state or block id.
var ErrInvalidId = errors.New("invalid state or block id")

// StateOrBlockId represents the block_id / state_id parameters that several of the Eth Beacon API methods accept.
// StateOrBlockId supports the following values:
// - "head" (canonical head in node's view)
// - "genesis"
// - "finalized"
// - "justified"
// - <slot>
// - <hex encoded state or block root with 0x prefix>
type StateOrBlockId string

const (
	IdGenesis   StateOrBlockId = "genesis"
	IdHead      StateOrBlockId = "head"
	IdFinalized StateOrBlockId = "finalized"
	IdJustified StateOrBlockId = "justified"
)

var rootRegex = regexp.MustCompile("^0x[0-9a-fA-F]{64}$")

// IdFromRoot encodes a block root in the format expected by the API in places where a root can be used to identify
// a BeaconState or SignedBeaconBlock.
func IdFromRoot(r [32]byte) StateOrBlockId {
	return StateOrBlockId(fmt.Sprintf("%#x", r))
}

// IdFromSlot encodes a Slot in the format expected by the API in places where a slot can be used to identify
// a BeaconState or SignedBeaconBlock.
func IdFromSlot(s uint64) StateOrBlockId {
	return StateOrBlockId(strconv.FormatUint(s, 10))
}

// ParseId validates a user supplied id: a named id, a decimal slot or a 0x prefixed root.
func ParseId(s string) (StateOrBlockId, error) {
	switch StateOrBlockId(s) {
	case IdGenesis, IdHead, IdFinalized, IdJustified:
		return StateOrBlockId(s), nil
	}
	if rootRegex.MatchString(s) {
		return StateOrBlockId(s), nil
	}
	slot, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidId, "%q", s)
	}
	return IdFromSlot(slot), nil
}

// HeaderPath is the API path of the block header endpoint for id.
func HeaderPath(id StateOrBlockId) string {
	return path.Join(getHeaderPath, string(id))
}

// StatePath is the API path of the debug state endpoint for id.
func StatePath(id StateOrBlockId) string {
	return path.Join(getStatePath, string(id))
}
