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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/d2r2/go-logger"
	flag "github.com/spf13/pflag"

	"github.com/seethruhead/unraid-binpack/config"
	"github.com/seethruhead/unraid-binpack/core"
	"github.com/seethruhead/unraid-binpack/locale"
	"github.com/seethruhead/unraid-binpack/rsync"
)

// Contains version initialized with option:
// -ldflags "-X main.version `head -1 version`"
var version string

var lg = logger.NewPackageLogger("main",
	logger.InfoLevel,
)

func main() {
	os.Exit(Run(os.Stdout, os.Stderr, os.Args))
}

// Run isolates the entry point from global state (os.Args/os.Stdout) so
// it can be exercised from tests without forking a process.
func Run(stdout, stderr *os.File, args []string) int {
	core.SetVersion(version)
	locale.SetLanguage("")

	flags := flag.NewFlagSet("unraid-binpack", flag.ContinueOnError)
	flags.SetInterspersed(false) // stop parsing at the subcommand
	flags.Usage = func() {}
	flagVersion := flags.BoolP("version", "v", false, "Print version and exit")
	flagHelp := flags.BoolP("help", "h", false, "Show help")

	if err := flags.Parse(args[1:]); err != nil {
		reportError(stderr, err)
		return 1
	}

	if *flagVersion {
		fprintf(stdout, "%s %s\n", core.GetAppTitle(), core.GetAppVersion())
		version, protocol, err := rsync.GetRsyncVersion()
		if err != nil {
			fprintln(stdout, "  rsync: not detected")
		} else {
			fprintf(stdout, "  rsync %s (protocol %s)\n", version, protocol)
		}
		fprintf(stdout, "  go %s (%s)\n", core.GetGolangVersion(), core.GetAppArchitecture())
		return 0
	}

	rest := flags.Args()
	if *flagHelp || len(rest) == 0 {
		printUsage(stdout)
		return 0
	}

	confPath, err := config.DefaultPath()
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	conf, err := config.Load(confPath)
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		lg.Info("Received interrupt, cancelling...")
		cancel()
	}()

	commands := map[string]*Command{
		"plan":  PlanCmd(conf),
		"apply": ApplyCmd(conf),
		"show":  ShowCmd(conf),
	}

	name := rest[0]
	cmd, ok := commands[name]
	if !ok {
		fprintf(stderr, "unknown subcommand %q\n\n", name)
		printUsage(stderr)
		return 1
	}

	if err := cmd.Flags.Parse(rest[1:]); err != nil {
		reportError(stderr, err)
		return 1
	}

	if err := cmd.Exec(ctx, stdout, stderr, cmd.Flags.Args()); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func printUsage(w *os.File) {
	fprintln(w, core.GetAppTitle()+" — JBOD disk consolidation planner")
	fprintln(w)
	fprintln(w, "Usage: unraid-binpack <plan|apply|show> [flags]")
	fprintln(w)
	fprintln(w, "  plan   build a move plan and render it as an executable rsync script")
	fprintln(w, "  apply  execute a previously generated plan script")
	fprintln(w, "  show   print the summary header of a plan script")
}
