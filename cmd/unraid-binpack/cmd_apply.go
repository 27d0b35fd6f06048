package main

import (
	"context"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/seethruhead/unraid-binpack/apperror"
	"github.com/seethruhead/unraid-binpack/config"
	"github.com/seethruhead/unraid-binpack/locale"
	"github.com/seethruhead/unraid-binpack/rsync"
)

// ApplyCmd builds the "apply" subcommand: read a previously generated
// plan script, re-derive its batches, and run them through the rsync
// executor bounded by --concurrency (spec.md §6 "apply options").
func ApplyCmd(conf *config.Config) *Command {
	defaults := config.DefaultApplyOptions(conf)

	flags := flag.NewFlagSet("apply", flag.ContinueOnError)
	flagPlanFile := flags.String("plan-file", defaults.PlanFile, "plan script to execute")
	flagConcurrency := flags.Int("concurrency", defaults.Concurrency, "number of rsync batches to run in parallel")
	flagDryRun := flags.Bool("dry-run", false, "parse and report batches without invoking rsync")
	flagDebug := flags.Bool("debug", false, "append a session log next to the plan file")

	return &Command{
		Flags: flags,
		Usage: "apply [flags]",
		Short: "Execute a previously generated plan script",
		Exec: func(ctx context.Context, stdout, stderr io.Writer, _ []string) error {
			opts := config.ApplyOptions{
				PlanFile:    *flagPlanFile,
				Concurrency: *flagConcurrency,
				DryRun:      *flagDryRun,
				Debug:       *flagDebug,
			}
			return runApply(ctx, opts, stdout)
		},
	}
}

func runApply(ctx context.Context, opts config.ApplyOptions, stdout io.Writer) error {
	if opts.Debug {
		closeSessionLog, err := enableSessionLog(opts.PlanFile + ".log")
		if err != nil {
			return err
		}
		defer closeSessionLog()
	}

	raw, err := os.ReadFile(opts.PlanFile)
	if err != nil {
		if os.IsNotExist(err) {
			return apperror.NewPlanStorageError(apperror.PlanStorageNotFound, opts.PlanFile, err)
		}
		if os.IsPermission(err) {
			return apperror.NewPlanStorageError(apperror.PlanStoragePermissionDenied, opts.PlanFile, err)
		}
		return apperror.NewPlanStorageError(apperror.PlanStorageLoadFailed, opts.PlanFile, err)
	}

	batches, err := rsync.ParseBatches(string(raw))
	if err != nil {
		return apperror.NewPlanStorageError(apperror.PlanStorageParseError, opts.PlanFile, err)
	}

	if len(batches) == 0 {
		fprintln(stdout, locale.T(locale.MsgPlanNoMoves, nil))
		return nil
	}

	fprintln(stdout, locale.T(locale.MsgApplyStarting, struct{ Batches, Concurrency int }{
		Batches:     len(batches),
		Concurrency: opts.Concurrency,
	}))

	results := rsync.Apply(ctx, batches, rsync.ApplyOptions{
		Concurrency: opts.Concurrency,
		DryRun:      opts.DryRun,
	})

	okCount, failedCount := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			fprintln(stdout, locale.T(locale.MsgApplyBatchFailed, struct {
				Source, Target string
				Err            string
			}{
				Source: r.Batch.Source,
				Target: r.Batch.Target,
				Err:    r.Err.Error(),
			}))
			continue
		}
		okCount++
		fprintln(stdout, locale.T(locale.MsgApplyBatchOK, struct {
			Source, Target string
			Files          int
		}{
			Source: r.Batch.Source,
			Target: r.Batch.Target,
			Files:  len(r.Batch.RelPaths),
		}))
	}

	fprintln(stdout, locale.T(locale.MsgApplyComplete, struct{ OK, Failed int }{OK: okCount, Failed: failedCount}))
	return nil
}
