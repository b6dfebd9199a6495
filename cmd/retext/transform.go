package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/retext"
	"github.com/bjaus/retext/internal/config"
	"github.com/bjaus/retext/internal/textdiff"
)

type transformParams struct {
	clipboard bool
	selfTest  bool
	diff      bool
	fail      bool
}

type alignParams struct {
	config    string
	separator string
	delimiter string
	marker    string
	prefix    string
	postfix   string
	extend    bool
}

func setTransformFlags(fs *pflag.FlagSet, p *transformParams) {
	fs.BoolVarP(&p.clipboard, "clipboard", "c", false, "read from and write back to the clipboard")
	fs.BoolVar(&p.selfTest, "self-test", false, "check the built-in examples and exit")
	fs.BoolVarP(&p.diff, "diff", "d", false, "only display a diff of the changes")
	fs.BoolVar(&p.fail, "fail", false, "non zero exit code when the output differs from the input")
}

func (a *app) transformCommand(t retext.Transform, short string) *cobra.Command {
	var params transformParams
	cmd := &cobra.Command{
		Use:   t.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTransform(t, &params)
		},
	}
	setTransformFlags(cmd.Flags(), &params)
	return cmd
}

func (a *app) alignCommand() *cobra.Command {
	var params transformParams
	var ap alignParams
	cmd := &cobra.Command{
		Use:   retext.Align.String(),
		Short: "Align the columns of pipe-delimited text",
		Long: `Align the columns of pipe-delimited text.

Every line is split on the delimiter and each column is padded to its widest
cell. Markdown header rows such as "---" or ":--:" are redrawn to the column
width, keeping their alignment colons. Works for Markdown tables and for
interlinear gloss lines alike.

Options may be read from a YAML file with --config; flags given on the command
line override the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := ap.options(cmd.Flags())
			if err != nil {
				return err
			}
			return a.runTransform(retext.Align, &params, retext.WithAlignOptions(opts))
		},
	}
	fs := cmd.Flags()
	setTransformFlags(fs, &params)
	fs.StringVar(&ap.config, "config", "", "read align options from a YAML file")
	fs.StringVarP(&ap.separator, "separator", "s", retext.DefaultSeparator, "string placed between output cells")
	fs.StringVar(&ap.delimiter, "delimiter", string(retext.DefaultDelimiter), "character separating input cells")
	fs.StringVar(&ap.marker, "marker", string(retext.DefaultMarker), "repeated character of header rows")
	fs.StringVar(&ap.prefix, "prefix", "", "regular expression removed from the start of each line")
	fs.StringVar(&ap.postfix, "postfix", "", "regular expression removed from the end of each line")
	fs.BoolVar(&ap.extend, "extend", false, "pad columns that only appear after the first line")
	return cmd
}

// options merges the config file, if any, with the flags explicitly set.
func (ap *alignParams) options(fs *pflag.FlagSet) (retext.AlignOptions, error) {
	var f config.File
	if ap.config != "" {
		var err error
		if f, err = config.LoadFile(ap.config); err != nil {
			return retext.AlignOptions{}, err
		}
	}
	override := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	override("separator", &f.Separator, ap.separator)
	override("delimiter", &f.Delimiter, ap.delimiter)
	override("marker", &f.Marker, ap.marker)
	override("prefix", &f.Prefix, ap.prefix)
	override("postfix", &f.Postfix, ap.postfix)
	if fs.Changed("extend") {
		f.ExtendColumns = ap.extend
	}
	return f.AlignOptions()
}

func (a *app) runTransform(t retext.Transform, p *transformParams, opts ...retext.Option) error {
	if p.selfTest {
		return a.selfTest(t)
	}

	source := "stdin"
	var in string
	if p.clipboard {
		source = "clipboard"
		s, err := a.clip.ReadAll()
		if err != nil {
			return err
		}
		in = s
	} else {
		b, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		in = string(b)
	}

	out, err := retext.Apply(t, in, opts...)
	if err != nil {
		return err
	}
	changed := in != out
	a.log.WithFields(logrus.Fields{
		"transform": t.String(),
		"source":    source,
		"runes":     utf8.RuneCountInString(in),
		"changed":   changed,
	}).Debug("converted")

	switch {
	case p.diff:
		if _, err := io.WriteString(a.stdout, textdiff.Lines(source, in, out)); err != nil {
			return err
		}
	case p.clipboard:
		if err := a.clip.WriteAll(out); err != nil {
			return err
		}
	default:
		if _, err := io.WriteString(a.stdout, out); err != nil {
			return fmt.Errorf("failed writing output: %w", err)
		}
	}

	if p.fail && changed {
		return newExitError(2, "unexpected diff")
	}
	return nil
}

// selfTest runs every built-in example of t and fails if any differ.
func (a *app) selfTest(t retext.Transform) error {
	failed := 0
	examples := retext.Examples(t)
	for _, ex := range examples {
		got, err := retext.Apply(t, ex.Input)
		if err != nil {
			return err
		}
		entry := a.log.WithField("example", ex.Name).WithField("transform", t.String())
		if got != ex.Want {
			failed++
			entry.WithField("want", ex.Want).WithField("got", got).Error("example failed")
			continue
		}
		entry.Debug("example passed")
	}
	if failed > 0 {
		return newExitError(1, "%d of %d %s examples failed", failed, len(examples), t)
	}
	fmt.Fprintf(a.stdout, "ok\t%s\t%d examples\n", t, len(examples))
	return nil
}
