package retext_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/retext"
)

func TestWriteLines(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		transform retext.Transform
		lines     []string
		want      string
	}{
		"align":     {transform: retext.Align, lines: []string{"a|bb", "ccc|d"}, want: "a   | bb\nccc | d\n"},
		"smallcaps": {transform: retext.SmallCaps, lines: []string{"Hi", "Go"}, want: "ʜɪ\nɢᴏ\n"},
		"upper":     {transform: retext.Upper, lines: []string{"a", "b"}, want: "A\nB\n"},
		"empty map": {transform: retext.Upper, lines: nil, want: ""},
		"empty":     {transform: retext.Align, lines: nil, want: "\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := retext.WriteLines(&buf, tt.transform, slices.Values(tt.lines))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteLinesMatchesWrite(t *testing.T) {
	t.Parallel()
	var streamed, whole bytes.Buffer
	lines := strings.Split(strings.TrimSuffix(markdownInput, "\n"), "\n")
	require.NoError(t, retext.WriteLines(&streamed, retext.Align, slices.Values(lines)))
	require.NoError(t, retext.Write(&whole, retext.Align, strings.NewReader(markdownInput)))
	assert.Equal(t, whole.String(), streamed.String())
}

func TestWriteLinesAlignOptions(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := retext.WriteLines(&buf, retext.Align, slices.Values([]string{"a;bb", "ccc;d"}),
		retext.WithAlignOptions(retext.AlignOptions{Delimiter: ';'}))
	require.NoError(t, err)
	assert.Equal(t, "a   | bb\nccc | d\n", buf.String())
}

func TestWriteLinesStopsOnWriteError(t *testing.T) {
	t.Parallel()
	calls := 0
	seq := func(yield func(string) bool) {
		for _, s := range []string{"a", "b", "c"} {
			calls++
			if !yield(s) {
				return
			}
		}
	}
	err := retext.WriteLines(&errWriter{}, retext.Upper, seq)
	require.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, 1, calls)
}

func TestWriteLinesErrors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := retext.WriteLines(&buf, "lower", slices.Values([]string{"x"}))
	require.ErrorIs(t, err, retext.ErrUnsupportedTransform)

	err = retext.WriteLines(&buf, retext.Align, slices.Values([]string{"x"}),
		retext.WithAlignOptions(retext.AlignOptions{Prefix: "("}))
	require.ErrorIs(t, err, retext.ErrInvalidPattern)
	assert.Empty(t, buf.String())
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan string, 2)
	ch <- "a|bb"
	ch <- "ccc|d"
	close(ch)
	var buf bytes.Buffer
	require.NoError(t, retext.WriteChan(&buf, retext.Align, ch))
	assert.Equal(t, "a   | bb\nccc | d\n", buf.String())
}
