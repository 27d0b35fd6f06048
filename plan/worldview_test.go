package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMove_FreeSpaceConservation(t *testing.T) {
	wv := WorldView{
		Disks: []Disk{
			{Path: "/mnt/disk1", TotalBytes: 1000, FreeBytes: 900},
			{Path: "/mnt/disk2", TotalBytes: 1000, FreeBytes: 100},
		},
		Files: []FileEntry{
			{AbsolutePath: "/mnt/disk1/a", RelativePath: "a", SizeBytes: 50, DiskPath: "/mnt/disk1"},
		},
	}
	move := FileMove{
		File:             wv.Files[0],
		SourceDiskPath:   "/mnt/disk1",
		TargetDiskPath:   "/mnt/disk2",
		DestAbsolutePath: "/mnt/disk2/a",
		Status:           MoveStatusPending,
	}

	before := totalFree(wv)
	next := ApplyMove(wv, move)
	after := totalFree(next)

	assert.Equal(t, before, after, "sum of free bytes must be invariant under ApplyMove")

	d1, _ := next.DiskByPath("/mnt/disk1")
	d2, _ := next.DiskByPath("/mnt/disk2")
	assert.Equal(t, int64(950), d1.FreeBytes)
	assert.Equal(t, int64(50), d2.FreeBytes)

	assert.Equal(t, "/mnt/disk2", next.Files[0].DiskPath)
	assert.Equal(t, "/mnt/disk2/a", next.Files[0].AbsolutePath)
}

func TestApplyMove_DoesNotAliasOriginal(t *testing.T) {
	wv := WorldView{
		Disks: []Disk{{Path: "/mnt/disk1", TotalBytes: 100, FreeBytes: 50}, {Path: "/mnt/disk2", TotalBytes: 100, FreeBytes: 50}},
		Files: []FileEntry{{AbsolutePath: "/mnt/disk1/a", RelativePath: "a", SizeBytes: 10, DiskPath: "/mnt/disk1"}},
	}
	original := WorldView{Disks: append([]Disk(nil), wv.Disks...), Files: append([]FileEntry(nil), wv.Files...)}

	move := FileMove{File: wv.Files[0], SourceDiskPath: "/mnt/disk1", TargetDiskPath: "/mnt/disk2", DestAbsolutePath: "/mnt/disk2/a"}
	_ = ApplyMove(wv, move)

	require.Empty(t, cmp.Diff(original, wv), "ApplyMove must not mutate its input")
}

func totalFree(wv WorldView) int64 {
	var total int64
	for _, d := range wv.Disks {
		total += d.FreeBytes
	}
	return total
}
