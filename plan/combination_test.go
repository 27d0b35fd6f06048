package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestCombination_PerfectPairBeatsLargestSingle(t *testing.T) {
	candidates := []FileEntry{
		{AbsolutePath: "/mnt/disk1/a", SizeBytes: 540 * sizeMiB},
		{AbsolutePath: "/mnt/disk1/b", SizeBytes: 345 * sizeMiB},
		{AbsolutePath: "/mnt/disk1/c", SizeBytes: 200 * sizeMiB},
	}
	comb, ok := FindBestCombination(candidates, 545*sizeMiB, 0)
	require.True(t, ok)
	assert.Len(t, comb.Files, 2)
	var total int64
	for _, fe := range comb.Files {
		total += fe.SizeBytes
	}
	assert.Equal(t, int64(545*sizeMiB), total)
	assert.InDelta(t, 1.0, comb.Score, 0.0001)
}

func TestFindBestCombination_FallsBackToSingleFile(t *testing.T) {
	candidates := []FileEntry{
		{AbsolutePath: "/mnt/disk1/a", SizeBytes: 90},
	}
	comb, ok := FindBestCombination(candidates, 100, 0)
	require.True(t, ok)
	assert.Len(t, comb.Files, 1)
	assert.Equal(t, int64(90), comb.Size)
}

func TestFindBestCombination_NoneFit(t *testing.T) {
	candidates := []FileEntry{{AbsolutePath: "/mnt/disk1/a", SizeBytes: 1000}}
	_, ok := FindBestCombination(candidates, 100, 0)
	assert.False(t, ok)
}

func TestFindBestCombination_EmptyAvailableBytes(t *testing.T) {
	_, ok := FindBestCombination([]FileEntry{{SizeBytes: 10}}, 0, 0)
	assert.False(t, ok)
}

func TestSampleByBucket_DeduplicatesAndCapsPerBucket(t *testing.T) {
	var files []FileEntry
	for i := 0; i < 20; i++ {
		files = append(files, FileEntry{AbsolutePath: f("/mnt/disk1/%d", i), SizeBytes: int64(i) * sizeKiB})
	}
	sample := sampleByBucket(files)
	// all 20 land in the first bucket (<100KiB); expect at most 3 representatives.
	assert.LessOrEqual(t, len(sample), 3)
}
