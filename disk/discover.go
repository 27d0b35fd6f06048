package disk

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/seethruhead/unraid-binpack/apperror"
)

// diskNamePattern matches the array mount-point naming convention
// (spec.md §6 "Disk discovery"); /mnt/disks (the unassigned-devices
// pseudo-mount) deliberately does not match it.
var diskNamePattern = regexp.MustCompile(`^disk\d+$`)

const mntRoot = "/mnt"

// Discover reads /mnt, keeps entries matching "^disk\d+$", prepends
// "/mnt/", and returns them sorted numerically ascending (disk2 before
// disk10).
func Discover() ([]string, error) {
	entries, err := os.ReadDir(mntRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.NewDiskError(apperror.DiskNotFound, mntRoot, err)
		}
		if os.IsPermission(err) {
			return nil, apperror.NewDiskError(apperror.DiskPermissionDenied, mntRoot, err)
		}
		return nil, apperror.NewDiskError(apperror.DiskStatsFailed, mntRoot, err)
	}

	var names []string
	for _, ent := range entries {
		if diskNamePattern.MatchString(ent.Name()) {
			names = append(names, ent.Name())
		}
	}

	sort.Slice(names, func(i, j int) bool {
		return diskNumber(names[i]) < diskNumber(names[j])
	})

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(mntRoot, name)
	}
	return paths, nil
}

func diskNumber(name string) int {
	digits := name[len("disk"):]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
