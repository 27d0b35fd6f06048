package disk

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/seethruhead/unraid-binpack/apperror"
	"github.com/seethruhead/unraid-binpack/plan"
)

// ScanOptions configures a scan pass over one or more disks.
type ScanOptions struct {
	// Exclude is a list of substrings; any path containing one is
	// skipped during the walk (spec.md §6 "--exclude").
	Exclude []string
	// MaxConcurrentStats bounds how many file-stat goroutines run at
	// once per disk; 0 means unbounded, matching spec.md §5's default.
	MaxConcurrentStats int
}

// ScanDisk walks diskPath and returns one plan.FileEntry per regular file
// found, stat'd concurrently (spec.md §5: "File-stat lookups within a
// scan may run concurrently, unbounded by default"). Directory entries
// matching opts.Exclude are skipped entirely; excluded regular files are
// simply not visited.
func ScanDisk(ctx context.Context, diskPath string, opts ScanOptions) ([]plan.FileEntry, error) {
	var paths []string
	err := filepath.WalkDir(diskPath, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return apperror.NewScanError(apperror.ScanPermissionDenied, p, walkErr)
			}
			if os.IsNotExist(walkErr) {
				return nil // vanished mid-scan; skip, not fatal to the whole scan
			}
			return apperror.NewScanError(apperror.ScanFailed, p, walkErr)
		}
		if containsAny(p, opts.Exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.NewScanError(apperror.ScanPathNotFound, diskPath, err)
		}
		if se, ok := err.(*apperror.ScanError); ok {
			return nil, se
		}
		return nil, apperror.NewScanError(apperror.ScanFailed, diskPath, err)
	}

	return statAll(ctx, diskPath, paths, opts.MaxConcurrentStats)
}

func containsAny(path string, substrings []string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(path, s) {
			return true
		}
	}
	return false
}

type statResult struct {
	entry plan.FileEntry
	err   error
}

// statAll runs os.Stat over paths concurrently, optionally bounded by
// maxConcurrent, and assembles plan.FileEntry values relative to
// diskPath.
func statAll(ctx context.Context, diskPath string, paths []string, maxConcurrent int) ([]plan.FileEntry, error) {
	results := make(chan statResult, len(paths))
	var sem chan struct{}
	if maxConcurrent > 0 {
		sem = make(chan struct{}, maxConcurrent)
	}

	var wg sync.WaitGroup
pathLoop:
	for _, p := range paths {
		select {
		case <-ctx.Done():
			break pathLoop
		default:
		}

		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			info, err := os.Stat(p)
			if err != nil {
				if os.IsPermission(err) {
					results <- statResult{err: apperror.NewScanError(apperror.ScanPermissionDenied, p, err)}
				} else {
					results <- statResult{err: apperror.NewScanError(apperror.ScanFileStatFailed, p, err)}
				}
				return
			}

			rel, relErr := filepath.Rel(diskPath, p)
			if relErr != nil {
				rel = p
			}
			results <- statResult{entry: plan.FileEntry{
				AbsolutePath: p,
				RelativePath: rel,
				SizeBytes:    info.Size(),
				DiskPath:     diskPath,
			}}
		}(p)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var entries []plan.FileEntry
	for res := range results {
		if res.err != nil {
			lg.Warn(res.err.Error())
			continue
		}
		entries = append(entries, res.entry)
	}
	return entries, nil
}

// ScanAll fans out one concurrent ScanDisk call per disk (spec.md §5) and
// merges the results into a single plan.WorldView alongside the disks'
// capacity figures obtained via FreeSpace.
func ScanAll(ctx context.Context, diskPaths []string, opts ScanOptions) (plan.WorldView, error) {
	type diskResult struct {
		disk  plan.Disk
		files []plan.FileEntry
		err   error
	}

	results := make([]diskResult, len(diskPaths))
	var wg sync.WaitGroup
	for i, path := range diskPaths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			total, free, err := FreeSpace(path)
			if err != nil {
				results[i] = diskResult{err: err}
				return
			}
			files, err := ScanDisk(ctx, path, opts)
			if err != nil {
				results[i] = diskResult{err: err}
				return
			}
			results[i] = diskResult{
				disk:  plan.Disk{Path: path, TotalBytes: total, FreeBytes: free},
				files: files,
			}
		}(i, path)
	}
	wg.Wait()

	var wv plan.WorldView
	for _, r := range results {
		if r.err != nil {
			return plan.WorldView{}, r.err
		}
		wv.Disks = append(wv.Disks, r.disk)
		wv.Files = append(wv.Files, r.files...)
	}
	return wv, nil
}
