package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeChain_CollapsesABC(t *testing.T) {
	moves := []FileMove{
		{
			File:             FileEntry{AbsolutePath: "/mnt/disk8/f", RelativePath: "f"},
			SourceDiskPath:   "/mnt/disk8",
			TargetDiskPath:   "/mnt/disk7",
			DestAbsolutePath: "/mnt/disk7/f",
			Status:           MoveStatusPending,
		},
		{
			File:             FileEntry{AbsolutePath: "/mnt/disk7/f", RelativePath: "f"},
			SourceDiskPath:   "/mnt/disk7",
			TargetDiskPath:   "/mnt/disk6",
			DestAbsolutePath: "/mnt/disk6/f",
			Status:           MoveStatusPending,
		},
	}
	optimized := OptimizeChain(moves)
	require.Len(t, optimized, 1)
	assert.Equal(t, "/mnt/disk8", optimized[0].SourceDiskPath)
	assert.Equal(t, "/mnt/disk6", optimized[0].TargetDiskPath)
	assert.Equal(t, "/mnt/disk8/f", optimized[0].File.AbsolutePath)
}

func TestOptimizeChain_DropsNoOpSelfMoves(t *testing.T) {
	moves := []FileMove{
		{
			File:             FileEntry{AbsolutePath: "/mnt/disk1/f", RelativePath: "f"},
			SourceDiskPath:   "/mnt/disk1",
			TargetDiskPath:   "/mnt/disk2",
			DestAbsolutePath: "/mnt/disk2/f",
			Status:           MoveStatusPending,
		},
		{
			File:             FileEntry{AbsolutePath: "/mnt/disk2/f", RelativePath: "f"},
			SourceDiskPath:   "/mnt/disk2",
			TargetDiskPath:   "/mnt/disk1",
			DestAbsolutePath: "/mnt/disk1/f",
			Status:           MoveStatusPending,
		},
	}
	optimized := OptimizeChain(moves)
	assert.Empty(t, optimized)
}

func TestOptimizeChain_PassesNonPendingThrough(t *testing.T) {
	moves := []FileMove{
		{SourceDiskPath: "/mnt/disk1", TargetDiskPath: "/mnt/disk2", Status: MoveStatusCompleted},
	}
	optimized := OptimizeChain(moves)
	require.Len(t, optimized, 1)
	assert.Equal(t, MoveStatusCompleted, optimized[0].Status)
}

func TestOptimizeChain_Idempotent(t *testing.T) {
	moves := []FileMove{
		{
			File:             FileEntry{AbsolutePath: "/mnt/disk8/f", RelativePath: "f"},
			SourceDiskPath:   "/mnt/disk8",
			TargetDiskPath:   "/mnt/disk7",
			DestAbsolutePath: "/mnt/disk7/f",
			Status:           MoveStatusPending,
		},
		{
			File:             FileEntry{AbsolutePath: "/mnt/disk7/f", RelativePath: "f"},
			SourceDiskPath:   "/mnt/disk7",
			TargetDiskPath:   "/mnt/disk6",
			DestAbsolutePath: "/mnt/disk6/f",
			Status:           MoveStatusPending,
		},
	}
	once := OptimizeChain(moves)
	twice := OptimizeChain(once)
	assert.Equal(t, once, twice)
}
