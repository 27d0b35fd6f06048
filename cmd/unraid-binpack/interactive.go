package main

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/seethruhead/unraid-binpack/config"
	"github.com/seethruhead/unraid-binpack/locale"
)

// isInteractiveTTY reports whether stdin is attached to a terminal
// (spec.md §6: "Interactive mode is triggered when the process is
// attached to a TTY and no plan options were provided").
func isInteractiveTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptPlanOptions walks the operator through each plan option in turn,
// printing the locale-translated prompt and the current default, and
// overwriting it with whatever (non-blank) line they type.
func promptPlanOptions(opts config.PlanOptions) config.PlanOptions {
	reader := bufio.NewReader(os.Stdin)
	ask := func(messageID, current string) string {
		fprintf(os.Stdout, "%s [%s]: ", locale.T(messageID, nil), current)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return current
		}
		return line
	}

	opts.Src = splitComma(ask(locale.MsgPromptSrc, strings.Join(opts.Src, ",")))
	opts.Dest = splitComma(ask(locale.MsgPromptDest, strings.Join(opts.Dest, ",")))
	opts.MinSpace = ask(locale.MsgPromptMinSpace, opts.MinSpace)
	opts.MinFileSize = ask(locale.MsgPromptMinFileSize, opts.MinFileSize)
	opts.PathFilter = splitComma(ask(locale.MsgPromptPathFilter, strings.Join(opts.PathFilter, ",")))
	opts.PlanFile = ask(locale.MsgPromptPlanFile, opts.PlanFile)
	return opts
}

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
