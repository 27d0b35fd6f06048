// Package disk discovers and scans Unraid-style array mount points,
// turning raw filesystem state into plan.Disk/plan.FileEntry values for
// the planning core. All filesystem and syscall interaction lives here;
// package plan stays pure.
package disk

import (
	"fmt"

	logger "github.com/d2r2/go-logger"
)

var lg logger.PackageLog = logger.NewPackageLogger("disk",
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
