package main

import (
	"context"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/seethruhead/unraid-binpack/config"
	"github.com/seethruhead/unraid-binpack/debugserver"
	"github.com/seethruhead/unraid-binpack/disk"
	"github.com/seethruhead/unraid-binpack/locale"
	"github.com/seethruhead/unraid-binpack/plan"
	"github.com/seethruhead/unraid-binpack/rsync"
)

// PlanCmd builds the "plan" subcommand: discover/validate disks, scan
// them, run the packer, and render the result as an executable rsync
// script (spec.md §2's control-flow line, §6 "plan options").
func PlanCmd(conf *config.Config) *Command {
	defaults := config.DefaultPlanOptions(conf)

	flags := flag.NewFlagSet("plan", flag.ContinueOnError)
	flagSrc := flags.String("src", "", "comma-separated source disk paths; if absent, evacuate least-full disks automatically")
	flagDest := flags.String("dest", "", "comma-separated destination disk paths; if absent, auto-discover /mnt/disk*")
	flagMinSpace := flags.String("min-space", defaults.MinSpace, "minimum free space to reserve on every destination disk")
	flagMinFileSize := flags.String("min-file-size", defaults.MinFileSize, "minimum file size eligible to move")
	flagPathFilter := flags.String("path-filter", "", "comma-separated path prefixes; only matching files are eligible")
	flags.String("include", "", "reserved; no current filter effect")
	flagExclude := flags.String("exclude", "", "comma-separated substrings used as scan-time exclusions")
	flagMinSplitSize := flags.String("min-split-size", defaults.MinSplitSize, "reserved folder-grouping heuristic knob")
	flagMoveAsFolderThreshold := flags.Float64("move-as-folder-threshold", defaults.MoveAsFolderThreshold, "reserved folder-grouping heuristic knob")
	flagPlanFile := flags.String("plan-file", defaults.PlanFile, "output plan script path")
	flagForce := flags.Bool("force", false, "overwrite an existing plan-file")
	flagDebug := flags.Bool("debug", defaults.Debug, "stream advisory progress events to a debug websocket server")
	flagDebugAddr := flags.String("debug-addr", ":9191", "address for the --debug websocket/metrics server")
	flagConcurrency := flags.Int("concurrency", 0, "apply concurrency to record in the script header")

	return &Command{
		Flags: flags,
		Usage: "plan [flags]",
		Short: "Build a move plan and render it as an executable rsync script",
		Exec: func(ctx context.Context, stdout, stderr io.Writer, _ []string) error {
			opts := defaults
			opts.Src = splitComma(*flagSrc)
			opts.Dest = splitComma(*flagDest)
			opts.MinSpace = *flagMinSpace
			opts.MinFileSize = *flagMinFileSize
			opts.PathFilter = splitComma(*flagPathFilter)
			opts.Exclude = splitComma(*flagExclude)
			opts.MinSplitSize = *flagMinSplitSize
			opts.MoveAsFolderThreshold = *flagMoveAsFolderThreshold
			opts.PlanFile = *flagPlanFile
			opts.Force = *flagForce
			opts.Debug = *flagDebug

			noOptionsGiven := *flagSrc == "" && *flagDest == "" && *flagMinSpace == defaults.MinSpace &&
				*flagMinFileSize == defaults.MinFileSize && *flagPathFilter == ""
			if noOptionsGiven && isInteractiveTTY() {
				opts = promptPlanOptions(opts)
			}

			if !opts.Force {
				if _, err := os.Stat(opts.PlanFile); err == nil {
					fprintf(stderr, "%s exists; pass --force to overwrite\n", opts.PlanFile)
					return nil
				}
			}

			var dbg *debugserver.Server
			if opts.Debug {
				dbg = debugserver.New(*flagDebugAddr)
				go func() {
					if err := dbg.Serve(ctx); err != nil {
						fprintError(stderr, err)
					}
				}()
			}

			return runPlan(ctx, opts, *flagConcurrency, dbg, stdout)
		},
	}
}

func runPlan(ctx context.Context, opts config.PlanOptions, concurrency int, dbg *debugserver.Server, stdout io.Writer) error {
	srcRestriction, allPaths, err := resolveDiskSets(opts)
	if err != nil {
		return err
	}

	if opts.Debug {
		closeSessionLog, err := enableSessionLog(opts.PlanFile + ".log")
		if err != nil {
			return err
		}
		defer closeSessionLog()

		if err := config.WriteDebugDump(opts.PlanFile+".hujson", config.DiskOverridesDump{
			Src:         srcRestriction,
			Dest:        allPaths,
			MinSpace:    opts.MinSpace,
			MinFileSize: opts.MinFileSize,
			PathFilter:  opts.PathFilter,
			Exclude:     opts.Exclude,
		}); err != nil {
			return err
		}
	}

	for _, p := range allPaths {
		if err := disk.ValidatePath(p); err != nil {
			return err
		}
	}

	minSpaceBytes, err := plan.ParseSize(opts.MinSpace)
	if err != nil {
		return err
	}
	minFileSizeBytes, err := plan.ParseSize(opts.MinFileSize)
	if err != nil {
		return err
	}

	wv, err := disk.ScanAll(ctx, allPaths, disk.ScanOptions{Exclude: opts.Exclude})
	if err != nil {
		return err
	}

	var notifier plan.Notifier
	if dbg != nil {
		notifier = dbg.Notifier()
	}

	movePlan, _ := plan.Run(wv, plan.RunOptions{
		Filter: plan.FilterOptions{
			MinSizeBytes: &minFileSizeBytes,
			PathPrefixes: opts.PathFilter,
		},
		SrcDiskPaths:  srcRestriction,
		MinSpaceBytes: minSpaceBytes,
		Notifier:      notifier,
	})

	primary := ""
	if len(srcRestriction) == 1 {
		primary = srcRestriction[0]
	}
	script := rsync.Render(movePlan, rsync.RenderOptions{
		GeneratedDate: time.Now().UTC().Format("2006-01-02"),
		PrimarySource: primary,
		Concurrency:   concurrency,
	})

	if err := os.WriteFile(opts.PlanFile, []byte(script), 0o755); err != nil {
		return err
	}

	if movePlan.Summary.TotalFiles == 0 {
		fprintln(stdout, locale.T(locale.MsgPlanNoMoves, nil))
	} else {
		fprintln(stdout, locale.T(locale.MsgPlanSummary, struct {
			Files, Moves int
			Size         string
		}{
			Files: movePlan.Summary.TotalFiles,
			Moves: len(movePlan.Moves),
			Size:  plan.FormatSize(movePlan.Summary.TotalBytes),
		}))
	}
	fprintln(stdout, locale.T(locale.MsgPlanWroteScript, struct{ Path string }{Path: opts.PlanFile}))
	return nil
}

// resolveDiskSets auto-discovers /mnt/disk* for opts.Dest when left
// blank (spec.md §6 "plan options"), and returns both the source
// restriction to hand PackTightly (empty means "auto-pick the
// least-full disk") and the full universe of disk paths to scan.
func resolveDiskSets(opts config.PlanOptions) (srcRestriction, allPaths []string, err error) {
	dest := opts.Dest
	if len(dest) == 0 {
		discovered, derr := disk.Discover()
		if derr != nil {
			return nil, nil, derr
		}
		dest = discovered
	}
	all := dedupeStrings(append(append([]string{}, opts.Src...), dest...))
	return opts.Src, all, nil
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
