package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankDisksByFullness_ExcludesEmptyAndSortsAscending(t *testing.T) {
	disks := []Disk{
		{Path: "/mnt/disk1", TotalBytes: 1000, FreeBytes: 500}, // 50% used
		{Path: "/mnt/disk2", TotalBytes: 1000, FreeBytes: 900}, // 10% used
		{Path: "/mnt/disk3", TotalBytes: 1000, FreeBytes: 1000}, // empty, no files anyway
	}
	files := []FileEntry{
		{AbsolutePath: "/mnt/disk1/a", DiskPath: "/mnt/disk1"},
		{AbsolutePath: "/mnt/disk2/a", DiskPath: "/mnt/disk2"},
	}
	ranked := RankDisksByFullness(disks, files)
	require.Len(t, ranked, 2)
	assert.Equal(t, "/mnt/disk2", ranked[0].Path)
	assert.Equal(t, "/mnt/disk1", ranked[1].Path)
}

func TestRankDisksByFullness_TiesBrokenByPath(t *testing.T) {
	disks := []Disk{
		{Path: "/mnt/disk2", TotalBytes: 1000, FreeBytes: 500},
		{Path: "/mnt/disk1", TotalBytes: 1000, FreeBytes: 500},
	}
	files := []FileEntry{
		{AbsolutePath: "/mnt/disk1/a", DiskPath: "/mnt/disk1"},
		{AbsolutePath: "/mnt/disk2/a", DiskPath: "/mnt/disk2"},
	}
	ranked := RankDisksByFullness(disks, files)
	require.Len(t, ranked, 2)
	assert.Equal(t, "/mnt/disk1", ranked[0].Path)
	assert.Equal(t, "/mnt/disk2", ranked[1].Path)
}
