package main

import (
	"context"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Command is one CLI subcommand, modeled on the argv0-dispatch registry
// pattern from the sibling retrieved repo's "cmd/agent-sandbox" tool:
// a *pflag.FlagSet owned by the command itself, plus an Exec closure
// that captures the flags it just parsed.
type Command struct {
	Flags *flag.FlagSet
	Usage string
	Short string
	Long  string
	Exec  func(ctx context.Context, stdout, stderr io.Writer, args []string) error
}

func fprintln(w io.Writer, a ...interface{})               { fmt.Fprintln(w, a...) }
func fprintf(w io.Writer, format string, a ...interface{})  { fmt.Fprintf(w, format, a...) }
func fprintError(w io.Writer, err error)                    { fmt.Fprintf(w, "error: %v\n", err) }
