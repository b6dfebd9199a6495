package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/retext"
	"github.com/bjaus/retext/internal/clipboard"
	"github.com/bjaus/retext/internal/logging"
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	clip   clipboard.Clipboard
	log    *logrus.Logger

	logLevel  string
	logFormat string
}

// exitError carries a specific process exit code.
type exitError struct {
	msg  string
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("%s (%d)", e.msg, e.code)
}

func newExitError(code int, msg string, a ...any) exitError {
	return exitError{msg: fmt.Sprintf(msg, a...), code: code}
}

// run executes the command line and returns the process exit code.
func (a *app) run(args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	var ee exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(a.stderr, ee.msg)
		return ee.code
	}
	fmt.Fprintln(a.stderr, "Error:", err)
	return 1
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "retext",
		Short: "Small text transformations for stdin or the clipboard",
		Long: `Small text transformations for stdin or the clipboard.

Each subcommand reads all of standard input and writes the result to standard
output. With --clipboard it reads the clipboard and writes the result back.
With --self-test it checks its built-in examples instead.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := logging.New(a.stderr, a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "set log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "set log format (text, json, json-pretty)")

	root.AddCommand(
		a.alignCommand(),
		a.transformCommand(retext.SmallCaps, "Convert text to Unicode small capitals"),
		a.transformCommand(retext.Upper, "Convert text to upper case"),
	)
	return root
}
