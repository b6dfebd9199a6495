// Package retext provides small text transformations for use over standard
// input/output or the clipboard.
//
// The transforms are [Align], [SmallCaps] and [Upper]. The central entry
// points are [Apply], [Write] and [Marshal]. Each takes a [Transform] constant
// and the text to convert:
//
//	out, err := retext.Apply(retext.Align, text)
//	retext.Write(os.Stdout, retext.Upper, os.Stdin)
//
// # Align
//
// Align lines up pipe-delimited columns: Markdown tables,
// interlinear-gloss lines and anything else that uses one separator
// character. It splits every line into trimmed cells and uses the widest
// cell of each column as that column's width. Shorter cells are padded on
// the right. Header-decoration cells such as "---", ":--" or "--:" count as
// width zero. They are redrawn at the column width, and their colons are
// kept:
//
//	| Header | Header 2 | Header 3          |
//	| ------ | -------: | ----------------- |
//	| one    | two      | three three three |
//
// Widths count code points, not terminal display columns.
//
// Use [NewAligner] with [AlignOptions] to change the output separator, the
// input delimiter or the decoration marker. You can also strip a prefix or
// postfix pattern from every line, or track columns that only a later row
// has. Through the registry, use [WithAlignOptions]:
//
//	retext.Apply(retext.Align, text, retext.WithAlignOptions(retext.AlignOptions{
//		Prefix: `\\\w+ `,
//	}))
//
// Alignment never fails on its input. Ragged rows, lines without a separator
// and patterns that do not match all fall back to leaving cells as they are.
//
// # SmallCaps
//
// SmallCaps lower-cases the text and replaces Latin letters with their
// Unicode small-capital forms.
//
// # Upper
//
// Upper applies full Unicode upper-case mapping.
//
// # Self-test
//
// [Examples] returns the built-in examples for a transform. The retext
// command checks them when run with --self-test.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedTransform]: unknown transform name
//   - [ErrInvalidPattern]: a prefix or postfix that is not a valid regular expression
package retext
