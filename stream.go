package retext

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// WriteLines transforms lines from an iterator and writes them to w. Lines
// are given without their trailing newline.
//
// SmallCaps and Upper are per-character maps, so each line is written as soon
// as it arrives, followed by a newline. Align needs every row before it
// knows any column width, so its lines are collected and converted once the
// iterator is exhausted.
func WriteLines(w io.Writer, t Transform, seq iter.Seq[string], opts ...Option) error {
	switch t {
	case Align:
		return streamCollect(w, seq, opts)
	case SmallCaps:
		return streamMap(w, seq, ToSmallCaps)
	case Upper:
		return streamMap(w, seq, ToUpper)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedTransform, t)
	}
}

// WriteChan transforms lines received from a channel and writes them to w.
// It is a thin wrapper around [WriteLines].
func WriteChan(w io.Writer, t Transform, ch <-chan string, opts ...Option) error {
	return WriteLines(w, t, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamCollect(w io.Writer, seq iter.Seq[string], opts []Option) error {
	var lines []string
	for line := range seq {
		lines = append(lines, line)
	}
	out, err := Apply(Align, strings.Join(lines, "\n"), opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func streamMap(w io.Writer, seq iter.Seq[string], fn func(string) string) error {
	var streamErr error
	seq(func(line string) bool {
		if _, err := io.WriteString(w, fn(line)+"\n"); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}
