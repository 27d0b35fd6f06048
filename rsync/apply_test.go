package rsync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_DryRunReportsSuccessWithoutSpawningRsync(t *testing.T) {
	batches := []Batch{
		{Source: "/mnt/disk2", Target: "/mnt/disk1", RelPaths: []string{"a.mkv"}, TotalBytes: 100},
		{Source: "/mnt/disk3", Target: "/mnt/disk1", RelPaths: []string{"b.jpg"}, TotalBytes: 200},
	}

	results := Apply(context.Background(), batches, ApplyOptions{Concurrency: 2, DryRun: true})
	require.Len(t, results, 2)
	for i, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, batches[i], r.Batch)
	}
}

func TestApply_ZeroConcurrencyDefaultsToOne(t *testing.T) {
	batches := []Batch{{Source: "/mnt/disk2", Target: "/mnt/disk1", RelPaths: []string{"a"}}}
	results := Apply(context.Background(), batches, ApplyOptions{DryRun: true})
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}
