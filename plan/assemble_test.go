package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemblePlan_SummarizesPendingOnly(t *testing.T) {
	moves := []FileMove{
		{File: FileEntry{SizeBytes: 100}, TargetDiskPath: "/mnt/disk1", Status: MoveStatusPending},
		{File: FileEntry{SizeBytes: 200}, TargetDiskPath: "/mnt/disk1", Status: MoveStatusPending},
		{File: FileEntry{SizeBytes: 9999}, TargetDiskPath: "/mnt/disk2", Status: MoveStatusFailed},
	}
	mp := AssemblePlan(moves)
	assert.Equal(t, 2, mp.Summary.TotalFiles)
	assert.Equal(t, int64(300), mp.Summary.TotalBytes)
	assert.Equal(t, 2, mp.Summary.MovesPerDisk["/mnt/disk1"])
	assert.Equal(t, int64(300), mp.Summary.BytesPerDisk["/mnt/disk1"])
	assert.Equal(t, 0, mp.Summary.MovesPerDisk["/mnt/disk2"])
	assert.Len(t, mp.Moves, 3, "skipped/failed moves are retained in the list")
}
