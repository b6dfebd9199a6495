// Command retext aligns delimited text, converts it to small caps or
// upper-cases it, reading standard input or the clipboard.
package main

import (
	"os"

	"github.com/bjaus/retext/internal/clipboard"
)

func main() {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		clip:   clipboard.System{},
	}
	os.Exit(a.run(os.Args[1:]))
}
