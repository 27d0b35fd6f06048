package disk

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/seethruhead/unraid-binpack/apperror"
)

// ValidatePath checks that path exists, is a directory, and is a mount
// point (its device identifier differs from its parent's) — spec.md §6
// "Path validation". The root "/" is always accepted without the
// mount-point check.
func ValidatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return apperror.NewDiskError(apperror.DiskNotFound, path, err)
		}
		if os.IsPermission(err) {
			return apperror.NewDiskError(apperror.DiskPermissionDenied, path, err)
		}
		return apperror.NewDiskError(apperror.DiskStatsFailed, path, err)
	}
	if !info.IsDir() {
		return apperror.NewDiskError(apperror.DiskNotADirectory, path, nil)
	}

	clean := filepath.Clean(path)
	if clean == "/" {
		return nil
	}

	isMount, err := isMountPoint(clean)
	if err != nil {
		return apperror.NewDiskError(apperror.DiskStatsFailed, path, err)
	}
	if !isMount {
		return apperror.NewDiskError(apperror.DiskNotAMountPoint, path, nil)
	}
	return nil
}

// isMountPoint reports whether path's device identifier differs from its
// parent directory's, per the glossary definition of "mount point".
func isMountPoint(path string) (bool, error) {
	var st, parentSt unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, err
	}
	if err := unix.Stat(filepath.Dir(path), &parentSt); err != nil {
		return false, err
	}
	return st.Dev != parentSt.Dev, nil
}

// FreeSpace reports the total and free byte counts of the filesystem
// mounted at path, via statfs.
func FreeSpace(path string) (totalBytes, freeBytes int64, err error) {
	var st unix.Statfs_t
	if statErr := unix.Statfs(path, &st); statErr != nil {
		return 0, 0, apperror.NewDiskError(apperror.DiskStatsFailed, path, statErr)
	}
	blockSize := int64(st.Bsize)
	return blockSize * int64(st.Blocks), blockSize * int64(st.Bavail), nil
}
