package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Clipboard = System{}
	_ Clipboard = (*Memory)(nil)
)

func TestMemory(t *testing.T) {
	t.Parallel()
	m := &Memory{Text: "before"}
	got, err := m.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "before", got)

	require.NoError(t, m.WriteAll("after"))
	got, err = m.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "after", got)
}
