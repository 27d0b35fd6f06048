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
	"bytes"
	"context"
	"os"
	"sync"

	shell "github.com/d2r2/go-shell"

	"github.com/seethruhead/unraid-binpack/apperror"
)

// BatchResult is the outcome of running one Batch.
type BatchResult struct {
	Batch Batch
	Err   error
}

// ApplyOptions configures the apply-side executor (spec.md §6 "apply").
type ApplyOptions struct {
	Concurrency int
	DryRun      bool
}

// Apply runs each batch's rsync invocation, bounded by opts.Concurrency
// concurrent batches (spec.md §5: "The script executor ... may run
// per-target-disk batches in parallel, bounded by a concurrency
// integer"). Context cancellation stops in-flight batches by killing
// their rsync process; already-completed batches are unaffected. With
// DryRun set, no process is started and every batch reports success.
func Apply(ctx context.Context, batches []Batch, opts ApplyOptions) []BatchResult {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]BatchResult, len(batches))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, b := range batches {
		wg.Add(1)
		go func(i int, b Batch) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if opts.DryRun {
				results[i] = BatchResult{Batch: b}
				return
			}
			results[i] = BatchResult{Batch: b, Err: runBatch(ctx, b)}
		}(i, b)
	}
	wg.Wait()
	return results
}

// runBatch runs one rsync invocation for a batch, writing the relative
// file list to a temp file and pointing --files-from at it — the same
// list of paths the script renderer inlines as a heredoc.
func runBatch(ctx context.Context, b Batch) error {
	listFile, err := os.CreateTemp("", "unraid-binpack-batch-*.list")
	if err != nil {
		return apperror.NewTransferError(apperror.TransferFailed, b.Source, err)
	}
	defer os.Remove(listFile.Name())
	for _, rel := range b.RelPaths {
		if _, werr := listFile.WriteString(rel + "\n"); werr != nil {
			listFile.Close()
			return apperror.NewTransferError(apperror.TransferFailed, b.Source, werr)
		}
	}
	listFile.Close()

	args := []string{"-a", "--remove-source-files", "--files-from=" + listFile.Name(), b.Source + "/", b.Target + "/"}
	app := shell.NewApp(AppCmd, args...)

	var stdOut, stdErr bytes.Buffer
	lg.Debugf("Args: %v", args)
	waitCh, err := app.Start(&stdOut, &stdErr)
	if err != nil {
		return classifyStartError(err, b.Source)
	}

	select {
	case <-ctx.Done():
		lg.Debugf("Killing rsync batch: %s -> %s", b.Source, b.Target)
		if killErr := app.Kill(); killErr != nil {
			return killErr
		}
		return &ProcessTerminatedError{Batch: b.Source + "->" + b.Target}
	case st := <-waitCh:
		if st.Error != nil {
			return st.Error
		}
		if st.ExitCode != 0 {
			lg.Debugf("STDERR: %v", stdErr.String())
			return classifyExitError(NewCallFailedError(st.ExitCode, &stdErr), b)
		}
		return nil
	}
}

// classifyStartError maps a process-start failure (rsync missing from
// PATH, or the source path vanishing) onto the §7 Transfer taxonomy.
func classifyStartError(err error, source string) error {
	if os.IsNotExist(err) {
		return apperror.NewTransferError(apperror.TransferSourceNotFound, source, err)
	}
	if os.IsPermission(err) {
		return apperror.NewTransferError(apperror.TransferSourcePermissionDenied, source, err)
	}
	return apperror.NewTransferError(apperror.TransferBackendUnavailable, source, err)
}

// classifyExitError maps a non-zero rsync exit code onto the §7
// Transfer taxonomy using rsync's own exit-code semantics.
func classifyExitError(err *CallFailedError, b Batch) error {
	switch err.ExitCode {
	case 23, 24:
		return apperror.NewTransferError(apperror.TransferSourceNotFound, b.Source, err)
	case 11:
		return apperror.NewTransferError(apperror.TransferDiskFull, b.Target, err)
	default:
		return apperror.NewTransferError(apperror.TransferFailed, b.Target, err)
	}
}
