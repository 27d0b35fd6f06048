// Package rsync renders the plan script (spec.md §4.K / §6 "Output
// artifact") and executes it as the apply-side transfer backend. All
// actual byte movement happens here; package plan only ever emits a
// MovePlan, never touches the filesystem.
package rsync

import (
	"fmt"

	logger "github.com/d2r2/go-logger"
)

var lg logger.PackageLog = logger.NewPackageLogger("rsync",
	// logger.DebugLevel,
	logger.InfoLevel,
)

var e = fmt.Errorf
var f = fmt.Sprintf

// SetLogger swaps the package logger. A --debug run uses this to tee
// logging into a core.DualLog session log.
func SetLogger(l logger.PackageLog) { lg = l }

// Logger returns the package's current logger.
func Logger() logger.PackageLog { return lg }

// AppCmd is the rsync console utility system name to run.
const AppCmd = "rsync"
