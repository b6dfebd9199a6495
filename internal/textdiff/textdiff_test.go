package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesEqual(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Lines("stdin", "a | b\n", "a | b\n"))
}

func TestLinesChanged(t *testing.T) {
	t.Parallel()
	got := Lines("stdin", "x\na|b\n", "x\na | b\n")
	want := "--- stdin\n" +
		"+++ stdin (formatted)\n" +
		" x\n" +
		"-a|b\n" +
		"+a | b\n"
	assert.Equal(t, want, got)
}

func TestLinesAddedTrailingNewline(t *testing.T) {
	t.Parallel()
	got := Lines("clipboard", "a", "a\n")
	assert.Contains(t, got, "--- clipboard\n")
	assert.Contains(t, got, "+a\n")
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"empty":         {input: "", want: []string{""}},
		"blank line":    {input: "\n", want: []string{""}},
		"no newline":    {input: "a", want: []string{"a"}},
		"two lines":     {input: "a\nb\n", want: []string{"a", "b"}},
		"inner newline": {input: "a\n\nb", want: []string{"a", "", "b"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitLines(tt.input))
		})
	}
}
