package retext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedTransform = errors.New("unsupported transform")
	ErrInvalidPattern       = errors.New("invalid pattern")
)

// Transform names a text transformation.
type Transform string

const (
	Align     Transform = "align"
	SmallCaps Transform = "smallcaps"
	Upper     Transform = "upper"
)

var transforms = []Transform{Align, SmallCaps, Upper}

// String returns the transform name.
func (t Transform) String() string { return string(t) }

// Transforms returns all supported transform names.
func Transforms() []Transform {
	out := make([]Transform, len(transforms))
	copy(out, transforms)
	return out
}

// ParseTransform parses a transform name, as given on a command line.
func ParseTransform(s string) (Transform, error) {
	for _, t := range transforms {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTransform, s)
}

// Option configures [Apply], [Write] and [Marshal].
type Option func(*settings)

type settings struct {
	align AlignOptions
}

// WithAlignOptions sets the options used by the [Align] transform.
// Other transforms ignore them.
func WithAlignOptions(o AlignOptions) Option {
	return func(s *settings) { s.align = o }
}

// Apply runs transform t over text and returns the result.
// Only an unknown transform or an invalid align pattern produce an error;
// the transforms themselves are total.
func Apply(t Transform, text string, opts ...Option) (string, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	switch t {
	case Align:
		a, err := NewAligner(s.align)
		if err != nil {
			return "", err
		}
		return a.Convert(text), nil
	case SmallCaps:
		return ToSmallCaps(text), nil
	case Upper:
		return ToUpper(text), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTransform, t)
	}
}

// Write reads all of r, applies t and writes the result to w.
// The whole input is buffered: alignment needs every row before it can
// compute column widths.
func Write(w io.Writer, t Transform, r io.Reader, opts ...Option) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := Apply(t, string(in), opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Marshal applies t to data and returns the bytes.
func Marshal(t Transform, data []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t, bytes.NewReader(data), opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
