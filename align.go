package retext

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Defaults used when the corresponding [AlignOptions] field is zero.
const (
	DefaultSeparator = " | "
	DefaultDelimiter = '|'
	DefaultMarker    = '-'
)

// AlignOptions configures an [Aligner]. The zero value aligns Markdown
// tables: cells split on '|', joined with " | ", decoration drawn with '-'.
type AlignOptions struct {
	// Separator joins cells on output.
	Separator string
	// Delimiter splits input lines into cells. Whitespace around it is dropped.
	Delimiter rune
	// Marker is the repeated character of header-decoration cells.
	Marker rune
	// Prefix is a regular expression removed from the start of every line.
	Prefix string
	// Postfix is a regular expression removed from the end of every line.
	Postfix string
	// ExtendColumns grows the width table when a later row has more columns
	// than the first. When false, extra columns pass through unpadded.
	ExtendColumns bool
}

// Aligner reformats delimited text so every column has a common width.
// An Aligner is immutable and safe for concurrent use.
type Aligner struct {
	sep     string
	delim   string
	prefix  *regexp.Regexp
	postfix *regexp.Regexp
	header  *regexp.Regexp
	extend  bool
}

// NewAligner compiles o into an Aligner. It fails only when Prefix or
// Postfix is not a valid regular expression.
func NewAligner(o AlignOptions) (*Aligner, error) {
	a := &Aligner{
		sep:    o.Separator,
		delim:  string(o.Delimiter),
		extend: o.ExtendColumns,
	}
	if a.sep == "" {
		a.sep = DefaultSeparator
	}
	if o.Delimiter == 0 {
		a.delim = string(DefaultDelimiter)
	}
	marker := o.Marker
	if marker == 0 {
		marker = DefaultMarker
	}
	a.header = headerPattern(marker)

	var err error
	if o.Prefix != "" {
		if a.prefix, err = regexp.Compile("^(?:" + o.Prefix + ")"); err != nil {
			return nil, fmt.Errorf("%w: prefix %q: %s", ErrInvalidPattern, o.Prefix, err)
		}
	}
	if o.Postfix != "" {
		if a.postfix, err = regexp.Compile("(?:" + o.Postfix + ")$"); err != nil {
			return nil, fmt.Errorf("%w: postfix %q: %s", ErrInvalidPattern, o.Postfix, err)
		}
	}
	return a, nil
}

var defaultAligner, _ = NewAligner(AlignOptions{})

// AlignText aligns text with the default options.
func AlignText(text string) string {
	return defaultAligner.Convert(text)
}

// Convert aligns every delimited column of text. Widths are computed over
// all rows before any row is rewritten. The result ends in exactly one
// newline.
func (a *Aligner) Convert(text string) string {
	lines := strings.Split(text, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = a.splitRow(line)
	}
	widths := a.columnWidths(rows)

	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = strings.TrimSpace(strings.Join(a.reformatRow(row, widths), a.sep))
	}
	return strings.TrimSpace(strings.Join(out, "\n")) + "\n"
}

// splitRow strips the configured postfix and prefix, splits on the
// delimiter and trims each cell. An empty line yields a single empty cell.
func (a *Aligner) splitRow(line string) []string {
	if a.postfix != nil {
		line = a.postfix.ReplaceAllLiteralString(line, "")
	}
	if a.prefix != nil {
		line = a.prefix.ReplaceAllLiteralString(line, "")
	}
	cells := strings.Split(line, a.delim)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// cell is the classification of a single cell. When header is set, left
// and right hold the alignment colons (possibly empty) and run holds the
// marker characters.
type cell struct {
	header bool
	left   string
	run    string
	right  string
}

func headerPattern(marker rune) *regexp.Regexp {
	m := regexp.QuoteMeta(string(marker))
	return regexp.MustCompile(`^\s*(:?)(` + m + `+)(:?)\s*$`)
}

// parseCell is the only place cells are classified. Width analysis and
// rewriting both go through it.
func (a *Aligner) parseCell(s string) cell {
	m := a.header.FindStringSubmatch(s)
	if m == nil {
		return cell{}
	}
	return cell{header: true, left: m[1], run: m[2], right: m[3]}
}

// cellWidth is the width a cell asks of its column. Decoration asks for
// nothing.
func (a *Aligner) cellWidth(s string) int {
	if a.parseCell(s).header {
		return 0
	}
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func (a *Aligner) columnWidths(rows [][]string) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for i, c := range rows[0] {
		widths[i] = a.cellWidth(c)
	}
	for _, row := range rows[1:] {
		for i, c := range row {
			w := a.cellWidth(c)
			if i >= len(widths) {
				if !a.extend {
					break
				}
				widths = append(widths, w)
				continue
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (a *Aligner) reformatRow(row []string, widths []int) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = a.reformatCell(i, c, widths)
	}
	return out
}

func (a *Aligner) reformatCell(i int, s string, widths []int) string {
	if i >= len(widths) {
		return s
	}
	width := widths[i]
	c := a.parseCell(s)
	if !c.header {
		return padRight(s, width)
	}
	marker, _ := utf8.DecodeRuneInString(c.run)
	n := max(width-len(c.left)-len(c.right), 0)
	return c.left + strings.Repeat(string(marker), n) + c.right
}

func padRight(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
