package version

import (
	"strings"
	"testing"

	"github.com/wcproof/credfetch/testing/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.Equal(t, true, strings.HasPrefix(v, "credfetch/"), v)
	assert.Equal(t, true, strings.Contains(v, "Built at:"), v)
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "credfetch/"+gitTag, UserAgent())
}
