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
	"fmt"

	logger "github.com/d2r2/go-logger"
	"github.com/davecgh/go-spew/spew"
)

// WriteLine is a delegate to describe log output call.
type WriteLine func(line string) error

// DualLog tees a package logger to an optional sidecar file, used by
// --debug runs to persist a session log next to the generated plan
// script. DualLog implements logger.PackageLog.
type DualLog struct {
	parent      logger.PackageLog
	packageName string
	packageLen  int
	timeFormat  string

	customWriteLine WriteLine
	customLogLevel  logger.LogLevel
}

// Static cast to verify that type implement specific interface
var _ logger.PackageLog = &DualLog{}

func NewDualLog(parent logger.PackageLog, packageName string, packageLen int,
	timeFormat string, writeLine WriteLine, customLogLevel logger.LogLevel) *DualLog {

	v := &DualLog{parent: parent, packageName: packageName, packageLen: packageLen,
		timeFormat: timeFormat, customLogLevel: customLogLevel,
		customWriteLine: writeLine}
	return v
}

func (v *DualLog) getFormat() logger.FormatOptions {
	options := logger.FormatOptions{TimeFormat: v.timeFormat,
		LevelLength: logger.LevelShort, PackageLength: v.packageLen}
	return options
}

// Printf implement logger.PackageLog.Printf method.
func (v *DualLog) Printf(level logger.LogLevel, format string, args ...interface{}) {
	if v.parent != nil {
		v.parent.Printf(level, format, args...)
	}
	if v.customWriteLine != nil && level <= v.customLogLevel {
		msg := spew.Sprintf(format, args...)
		out := logger.FormatMessage(v.getFormat(), level, v.packageName, msg, false)
		err := v.customWriteLine(out + fmt.Sprintln())
		if err != nil {
			v.parent.Fatal(err)
		}
	}
}

// Print implement logger.PackageLog.Print method.
func (v *DualLog) Print(level logger.LogLevel, args ...interface{}) {
	if v.parent != nil {
		v.parent.Print(level, args...)
	}
	if v.customWriteLine != nil && level <= v.customLogLevel {
		msg := fmt.Sprint(args...)
		out := logger.FormatMessage(v.getFormat(), level, v.packageName, msg, false)
		err := v.customWriteLine(out + fmt.Sprintln())
		if err != nil {
			v.parent.Fatal(err)
		}
	}
}

func (v *DualLog) Debugf(format string, args ...interface{}) { v.Printf(logger.DebugLevel, format, args...) }
func (v *DualLog) Debug(args ...interface{})                  { v.Print(logger.DebugLevel, args...) }
func (v *DualLog) Infof(format string, args ...interface{})   { v.Printf(logger.InfoLevel, format, args...) }
func (v *DualLog) Info(args ...interface{})                   { v.Print(logger.InfoLevel, args...) }
func (v *DualLog) Notifyf(format string, args ...interface{}) { v.Printf(logger.NotifyLevel, format, args...) }
func (v *DualLog) Notify(args ...interface{})                 { v.Print(logger.NotifyLevel, args...) }
func (v *DualLog) Warningf(format string, args ...interface{}) { v.Printf(logger.WarnLevel, format, args...) }
func (v *DualLog) Warnf(format string, args ...interface{})    { v.Printf(logger.WarnLevel, format, args...) }
func (v *DualLog) Warning(args ...interface{})                 { v.Print(logger.WarnLevel, args...) }
func (v *DualLog) Warn(args ...interface{})                    { v.Print(logger.WarnLevel, args...) }
func (v *DualLog) Errorf(format string, args ...interface{})   { v.Printf(logger.ErrorLevel, format, args...) }
func (v *DualLog) Error(args ...interface{})                   { v.Print(logger.ErrorLevel, args...) }
func (v *DualLog) Panicf(format string, args ...interface{})   { v.Printf(logger.PanicLevel, format, args...) }
func (v *DualLog) Panic(args ...interface{})                   { v.Print(logger.PanicLevel, args...) }
func (v *DualLog) Fatalf(format string, args ...interface{})   { v.Printf(logger.FatalLevel, format, args...) }
func (v *DualLog) Fatal(args ...interface{})                   { v.Print(logger.FatalLevel, args...) }
