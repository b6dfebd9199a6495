// Package config loads align options from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/retext"
)

// ErrInvalidConfig is returned for files that do not decode or hold
// out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// File is the on-disk form of [retext.AlignOptions].
//
//	separator: " | "
//	delimiter: "|"
//	marker: "-"
//	prefix: '\\\w+ '
//	postfix: ""
//	extend_columns: false
type File struct {
	Separator     string `yaml:"separator"`
	Delimiter     string `yaml:"delimiter"`
	Marker        string `yaml:"marker"`
	Prefix        string `yaml:"prefix"`
	Postfix       string `yaml:"postfix"`
	ExtendColumns bool   `yaml:"extend_columns"`
}

// Load decodes a config from r. Unknown keys are rejected. An empty
// document yields the zero File.
func Load(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return f, nil
}

// LoadFile opens path and decodes it with [Load].
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()
	f, err := Load(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// AlignOptions converts f. Delimiter and marker must be empty or a single
// character.
func (f File) AlignOptions() (retext.AlignOptions, error) {
	delim, err := singleRune("delimiter", f.Delimiter)
	if err != nil {
		return retext.AlignOptions{}, err
	}
	marker, err := singleRune("marker", f.Marker)
	if err != nil {
		return retext.AlignOptions{}, err
	}
	return retext.AlignOptions{
		Separator:     f.Separator,
		Delimiter:     delim,
		Marker:        marker,
		Prefix:        f.Prefix,
		Postfix:       f.Postfix,
		ExtendColumns: f.ExtendColumns,
	}, nil
}

func singleRune(field, s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
