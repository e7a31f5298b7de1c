package beacon

import (
	"testing"

	"github.com/wcproof/credfetch/testing/assert"
	"github.com/wcproof/credfetch/testing/require"
)

func TestParseId(t *testing.T) {
	root := "0x" + "ab" + "1c35540cac127315fabb6bf29181f2ae0de1a3fc909d2e76ba771e61312cc4"
	cases := []struct {
		in   string
		want StateOrBlockId
		err  bool
	}{
		{in: "head", want: IdHead},
		{in: "finalized", want: IdFinalized},
		{in: "9179815", want: "9179815"},
		{in: "007", want: "7"},
		{in: root, want: StateOrBlockId(root)},
		{in: "", err: true},
		{in: "-1", err: true},
		{in: "0x1234", err: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseId(c.in)
			if c.err {
				require.ErrorIs(t, err, ErrInvalidId)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestIdFromRoot(t *testing.T) {
	var r [32]byte
	r[31] = 0x01
	assert.Equal(t, StateOrBlockId("0x0000000000000000000000000000000000000000000000000000000000000001"), IdFromRoot(r))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/eth/v1/beacon/headers/9179815", HeaderPath(IdFromSlot(9179815)))
	assert.Equal(t, "/eth/v2/debug/beacon/states/head", StatePath(IdHead))
}
