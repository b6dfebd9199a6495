package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    logrus.Level
		wantErr require.ErrorAssertionFunc
	}{
		"empty":   {input: "", want: logrus.InfoLevel, wantErr: require.NoError},
		"debug":   {input: "debug", want: logrus.DebugLevel, wantErr: require.NoError},
		"upper":   {input: "WARN", want: logrus.WarnLevel, wantErr: require.NoError},
		"error":   {input: "error", want: logrus.ErrorLevel, wantErr: require.NoError},
		"unknown": {input: "loud", want: logrus.InfoLevel, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter(t *testing.T) {
	t.Parallel()
	assert.IsType(t, &textFormatter{}, Formatter("text"))
	assert.IsType(t, &textFormatter{}, Formatter(""))
	assert.IsType(t, &logrus.JSONFormatter{}, Formatter("json"))
	f, ok := Formatter("json-pretty").(*logrus.JSONFormatter)
	require.True(t, ok)
	assert.True(t, f.PrettyPrint)
}

func TestNewTextOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l, err := New(&buf, "debug", "text")
	require.NoError(t, err)
	l.WithField("transform", "align").WithField("bytes", 12).Debug("converted")
	assert.Equal(t, "[DEBUG] converted bytes=12 transform=align\n", buf.String())
}

func TestNewFiltersLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l, err := New(&buf, "warn", "text")
	require.NoError(t, err)
	l.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNewJSONOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l, err := New(&buf, "info", "json")
	require.NoError(t, err)
	l.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestNewInvalidLevel(t *testing.T) {
	t.Parallel()
	_, err := New(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)
}
