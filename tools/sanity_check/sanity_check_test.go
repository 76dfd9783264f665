package sanity_check

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfTest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SelfTest(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ">sanity_check self test", lines[0])
	assert.Len(t, lines[1], 60)
	assert.Len(t, lines[2], 5)
}
