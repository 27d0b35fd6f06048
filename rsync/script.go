package rsync

import (
	"strconv"
	"strings"

	"github.com/seethruhead/unraid-binpack/plan"
)

const rsyncInvocationPrefix = "rsync -a --remove-source-files --files-from=<(cat <<'EOF'"

// stubScript is emitted verbatim when a plan has no pending moves
// (spec.md §6 "Output artifact").
const stubScript = "#!/bin/bash\nexit 0\n"

// Batch is one (source disk, target disk) unit of transfer work; the
// script renderer emits one backgrounded rsync invocation per batch.
type Batch struct {
	Source     string
	Target     string
	RelPaths   []string
	TotalBytes int64
}

type batchKey struct {
	Source string
	Target string
}

// Batches groups a MovePlan's pending moves by (source disk, target
// disk), in first-seen order. Skipped/failed moves never appear.
func Batches(p plan.MovePlan) []Batch {
	order := make([]batchKey, 0)
	grouped := make(map[batchKey]*Batch)
	for _, m := range p.Moves {
		if m.Status != plan.MoveStatusPending {
			continue
		}
		key := batchKey{Source: m.SourceDiskPath, Target: m.TargetDiskPath}
		b, ok := grouped[key]
		if !ok {
			b = &Batch{Source: m.SourceDiskPath, Target: m.TargetDiskPath}
			grouped[key] = b
			order = append(order, key)
		}
		b.RelPaths = append(b.RelPaths, m.File.RelativePath)
		b.TotalBytes += m.File.SizeBytes
	}

	out := make([]Batch, 0, len(order))
	for _, key := range order {
		out = append(out, *grouped[key])
	}
	return out
}

// RenderOptions configures the script header (spec.md §6's comment
// block). Concurrency is only recorded there, for "show" to report; the
// apply executor takes its concurrency from its own --concurrency flag.
type RenderOptions struct {
	GeneratedDate string // "YYYY-MM-DD"
	PrimarySource string // "<path>" or "" for "auto"
	Concurrency   int
}

// Render materializes plan into the batched rsync shell script described
// in spec.md §6: one stanza per (source disk, target disk) batch, in
// emission order, followed by a single "wait".
func Render(p plan.MovePlan, opts RenderOptions) string {
	if p.Summary.TotalFiles == 0 {
		return stubScript
	}

	primary := opts.PrimarySource
	if primary == "" {
		primary = "auto"
	}

	var out strings.Builder
	out.WriteString("#!/bin/bash\n")
	out.WriteString("#\n")
	out.WriteString("# Unraid Bin-Pack Plan\n")
	out.WriteString(f("# Generated: %s\n", opts.GeneratedDate))
	out.WriteString(f("# Source disk: %s\n", primary))
	out.WriteString(f("# Total files: %d\n", p.Summary.TotalFiles))
	out.WriteString(f("# Total size: %s\n", plan.FormatSize(p.Summary.TotalBytes)))
	out.WriteString(f("# Concurrency: %d\n", opts.Concurrency))
	out.WriteString("#\n")
	out.WriteString("set -e\n")
	out.WriteString("\n")

	for _, b := range Batches(p) {
		out.WriteString(f("# %s -> %s: %d file(s), %s\n",
			b.Source, b.Target, len(b.RelPaths), plan.FormatSize(b.TotalBytes)))
		out.WriteString(rsyncInvocationPrefix + "\n")
		for _, rel := range b.RelPaths {
			out.WriteString(rel)
			out.WriteString("\n")
		}
		out.WriteString("EOF\n")
		out.WriteString(f(") %q %q &\n", b.Source+"/", b.Target+"/"))
		out.WriteString("\n")
	}
	out.WriteString("wait\n")
	return out.String()
}

// Header is the parsed form of the comment block spec.md §6 requires at
// the top of every generated plan script, re-read by the "show"
// subcommand without re-running the planner.
type Header struct {
	Generated     string
	PrimarySource string
	TotalFiles    int
	TotalSize     string
	Concurrency   int
}

// ParseHeader extracts the header comment block from a plan script's
// text (spec.md §6 "Output artifact"). It tolerates the no-op stub
// script, returning a zero Header for it.
func ParseHeader(script string) (Header, error) {
	var h Header
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "# Generated:"):
			h.Generated = strings.TrimSpace(strings.TrimPrefix(line, "# Generated:"))
		case strings.HasPrefix(line, "# Source disk:"):
			h.PrimarySource = strings.TrimSpace(strings.TrimPrefix(line, "# Source disk:"))
		case strings.HasPrefix(line, "# Total files:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "# Total files:")))
			if err != nil {
				return Header{}, e("parsing total files: %w", err)
			}
			h.TotalFiles = n
		case strings.HasPrefix(line, "# Total size:"):
			h.TotalSize = strings.TrimSpace(strings.TrimPrefix(line, "# Total size:"))
		case strings.HasPrefix(line, "# Concurrency:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "# Concurrency:")))
			if err != nil {
				return Header{}, e("parsing concurrency: %w", err)
			}
			h.Concurrency = n
		case strings.HasPrefix(line, "set -e") || strings.HasPrefix(line, "exit 0"):
			return h, nil
		}
	}
	return h, nil
}

// ParseBatches is the inverse of Render's per-batch stanza: it re-derives
// the []Batch the apply executor needs directly from a rendered script,
// so the plan script itself is the only artifact apply depends on (no
// separate serialized MovePlan, per the Open Question on plan storage).
// The stub script (zero-move plans) parses to nil, not an error.
func ParseBatches(script string) ([]Batch, error) {
	lines := strings.Split(script, "\n")
	var batches []Batch

	for i := 0; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") != rsyncInvocationPrefix {
			continue
		}
		i++
		var relPaths []string
		for i < len(lines) && strings.TrimRight(lines[i], "\r") != "EOF" {
			relPaths = append(relPaths, lines[i])
			i++
		}
		if i >= len(lines) {
			return nil, e("unterminated file list in plan script")
		}
		i++ // skip "EOF"
		if i >= len(lines) {
			return nil, e("missing rsync source/target line after file list")
		}
		src, dst, ok := parseTailLine(lines[i])
		if !ok {
			return nil, e("could not parse rsync invocation tail: %q", lines[i])
		}
		batches = append(batches, Batch{Source: src, Target: dst, RelPaths: relPaths})
	}
	return batches, nil
}

// parseTailLine extracts the quoted source/target from a line of the
// shape `) "src/" "dst/" &`.
func parseTailLine(line string) (src, dst string, ok bool) {
	quotes := make([]int, 0, 4)
	for i, r := range line {
		if r == '"' {
			quotes = append(quotes, i)
		}
	}
	if len(quotes) < 4 {
		return "", "", false
	}
	src = line[quotes[0]+1 : quotes[1]]
	dst = line[quotes[2]+1 : quotes[3]]
	src = strings.TrimSuffix(src, "/")
	dst = strings.TrimSuffix(dst, "/")
	return src, dst, true
}
