package plan

import (
	"path"
	"sort"
)

// FindBestDestination returns the path of the best disk to receive file,
// or "" if none fit. Candidates are disks that are neither sourceDiskPath
// nor already in processedDisks, and whose (FreeBytes - minSpaceBytes) >=
// file.SizeBytes. Among candidates, the one with the least free space that
// still fits wins (best-fit): this concentrates remaining free space.
func FindBestDestination(file FileEntry, wv WorldView, sourceDiskPath string,
	processedDisks map[string]bool, minSpaceBytes int64) string {

	var candidates []Disk
	for _, d := range wv.Disks {
		if d.Path == sourceDiskPath || processedDisks[d.Path] {
			continue
		}
		if d.FreeBytes-minSpaceBytes >= file.SizeBytes {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FreeBytes < candidates[j].FreeBytes
	})
	return candidates[0].Path
}

// DestinationPath computes a FileMove's destination absolute path:
// targetDiskPath + "/" + file's relative path.
func DestinationPath(targetDiskPath string, relativePath string) string {
	return path.Join(targetDiskPath, relativePath)
}
