//--------------------------------------------------------------------------------------------------
// This file is a part of Gorsync Backup project (backup RSYNC frontend).
// Copyright (c) 2017-2022 Denis Dyakov <denis.dyakov@gma**.com>
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING
// BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//--------------------------------------------------------------------------------------------------

// Package plan implements the planning core: the WorldView data model,
// PackTightly and its supporting search, the move-chain optimizer, disk
// projection and plan assembly. Everything here is pure: no I/O, no
// goroutines, no global mutable state beyond the package logger.
package plan

import (
	"fmt"

	logger "github.com/d2r2/go-logger"
)

var lg logger.PackageLog = logger.NewPackageLogger("plan",
	// logger.DebugLevel,
	logger.InfoLevel,
)

var e = fmt.Errorf
var f = fmt.Sprintf

// SetLogger swaps the package logger. A --debug run uses this to tee
// logging into a core.DualLog session log; Logger returns the current
// logger so the caller can wrap it as DualLog's parent instead of
// discarding the normal console sink.
func SetLogger(l logger.PackageLog) { lg = l }

// Logger returns the package's current logger.
func Logger() logger.PackageLog { return lg }
