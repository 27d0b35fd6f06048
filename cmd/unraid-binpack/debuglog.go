package main

import (
	logger "github.com/d2r2/go-logger"

	"github.com/seethruhead/unraid-binpack/core"
	"github.com/seethruhead/unraid-binpack/disk"
	"github.com/seethruhead/unraid-binpack/plan"
	"github.com/seethruhead/unraid-binpack/rsync"
)

// enableSessionLog opens (appending) the sidecar log at path and tees
// the plan/rsync/disk package loggers into it via core.DualLog, so a
// --debug run of plan or apply on the same plan file accumulates one
// session log. The returned func closes the sidecar file; callers
// defer it.
func enableSessionLog(path string) (func() error, error) {
	writeLine, closer, err := core.OpenSessionLog(path)
	if err != nil {
		return nil, err
	}

	plan.SetLogger(core.NewDualLog(plan.Logger(), "plan", 6, "15:04:05", writeLine, logger.DebugLevel))
	rsync.SetLogger(core.NewDualLog(rsync.Logger(), "rsync", 6, "15:04:05", writeLine, logger.DebugLevel))
	disk.SetLogger(core.NewDualLog(disk.Logger(), "disk", 6, "15:04:05", writeLine, logger.DebugLevel))

	return closer, nil
}
