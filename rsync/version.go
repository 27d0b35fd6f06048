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

package rsync

import (
	"bufio"
	"bytes"
	"regexp"

	shell "github.com/d2r2/go-shell"

	"github.com/seethruhead/unraid-binpack/core"
)

// IsInstalled verifies that the rsync binary is present on PATH.
func IsInstalled() error {
	app := shell.NewApp(AppCmd)
	return app.CheckIsInstalled()
}

// GetRsyncVersion runs "rsync --version" and extracts version/protocol.
func GetRsyncVersion() (version string, protocol string, err error) {
	app := shell.NewApp(AppCmd, "--version")
	var stdOut, stdErr bytes.Buffer
	exitCode := app.Run(&stdOut, &stdErr)
	if exitCode.Error != nil {
		return "", "", exitCode.Error
	}
	scanner := bufio.NewScanner(&stdOut)
	scanner.Split(bufio.ScanLines)

	// Expression should parse a line variant:
	//		rsync  version 3.1.3  protocol version 31
	//		rsync  version v3.2.3  protocol version 31
	re := regexp.MustCompile(`version\s+v?(?P<version>\d+\.\d+(\.\d+)?)(\s+protocol\s+version\s+(?P<protocol>\d+))?`)
	for scanner.Scan() {
		line := scanner.Text()
		m := core.ExtractNamedGroups(re, line)
		if len(m) > 0 {
			if g, ok := m["version"]; ok {
				version = line[g[0]:g[1]]
			}
			if g, ok := m["protocol"]; ok {
				protocol = line[g[0]:g[1]]
			}
			break
		}
	}
	if version == "" {
		return "", "", &ExtractVersionAndProtocolError{}
	}
	return version, protocol, nil
}
