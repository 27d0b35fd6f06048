package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBestDestination_PrefersTighterFit(t *testing.T) {
	wv := WorldView{Disks: []Disk{
		{Path: "/mnt/disk1", TotalBytes: 100 * sizeGiB, FreeBytes: 20 * sizeGiB},
		{Path: "/mnt/disk2", TotalBytes: 100 * sizeGiB, FreeBytes: 50 * sizeGiB},
	}}
	file := FileEntry{SizeBytes: 15 * sizeGiB}

	dest := FindBestDestination(file, wv, "/mnt/disk0", map[string]bool{}, 0)
	assert.Equal(t, "/mnt/disk1", dest)
}

func TestFindBestDestination_ExcludesSourceAndProcessed(t *testing.T) {
	wv := WorldView{Disks: []Disk{
		{Path: "/mnt/disk1", TotalBytes: 100, FreeBytes: 90},
		{Path: "/mnt/disk2", TotalBytes: 100, FreeBytes: 90},
	}}
	file := FileEntry{SizeBytes: 10}

	dest := FindBestDestination(file, wv, "/mnt/disk1", map[string]bool{"/mnt/disk2": true}, 0)
	assert.Equal(t, "", dest)
}

func TestFindBestDestination_RespectsMinSpace(t *testing.T) {
	wv := WorldView{Disks: []Disk{{Path: "/mnt/disk2", TotalBytes: 1000, FreeBytes: 150}}}
	file := FileEntry{SizeBytes: 100}

	dest := FindBestDestination(file, wv, "/mnt/disk1", map[string]bool{}, 100)
	assert.Equal(t, "", dest, "150 free - 100 minSpace = 50 available, file needs 100")
}
