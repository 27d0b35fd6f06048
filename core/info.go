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

package core

import (
	"runtime"

	"github.com/davecgh/go-spew/spew"
)

// contain version, passed in through SetVersion from main.version,
// which is initialized with option:
// -ldflags "-X main.version `head -1 version`"
var _version string

// SetVersion save application version provided with compile via -ldflags CLI parameter.
func SetVersion(version string) {
	_version = version
}

// GetAppVersion returns string representation of application version.
func GetAppVersion() string {
	return spew.Sprintf("v%s", _version)
}

// GetAppArchitecture returns application architecture.
func GetAppArchitecture() string {
	return runtime.GOARCH
}

// GetGolangVersion returns golang version used to compile application.
func GetGolangVersion() string {
	return runtime.Version()
}

// GetAppTitle returns application non-translatable title.
func GetAppTitle() string {
	return "Unraid Bin-Pack"
}
