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

// ShowCmd builds the "show" subcommand: re-read a plan script's header
// comment block and print it, without touching the disks it references
// (spec.md §6 "show option").
func ShowCmd(conf *config.Config) *Command {
	defaults := config.DefaultShowOptions(conf)

	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	flagPlanFile := flags.String("plan-file", defaults.PlanFile, "plan script to inspect")

	return &Command{
		Flags: flags,
		Usage: "show [flags]",
		Short: "Print the summary header of a plan script",
		Exec: func(ctx context.Context, stdout, stderr io.Writer, _ []string) error {
			return runShow(config.ShowOptions{PlanFile: *flagPlanFile}, stdout)
		},
	}
}

func runShow(opts config.ShowOptions, stdout io.Writer) error {
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

	header, err := rsync.ParseHeader(string(raw))
	if err != nil {
		return apperror.NewPlanStorageError(apperror.PlanStorageParseError, opts.PlanFile, err)
	}

	if header.TotalFiles == 0 && header.Generated == "" {
		fprintln(stdout, locale.T(locale.MsgPlanNoMoves, nil))
		return nil
	}

	fprintln(stdout, locale.T(locale.MsgShowHeader, struct {
		Generated, PrimarySource, TotalSize string
		TotalFiles, Concurrency             int
	}{
		Generated:     header.Generated,
		PrimarySource: header.PrimarySource,
		TotalFiles:    header.TotalFiles,
		TotalSize:     header.TotalSize,
		Concurrency:   header.Concurrency,
	}))
	return nil
}
