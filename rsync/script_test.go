package rsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seethruhead/unraid-binpack/plan"
)

func samplePlan() plan.MovePlan {
	return plan.MovePlan{
		Moves: []plan.FileMove{
			{
				File:           plan.FileEntry{AbsolutePath: "/mnt/disk2/videos/a.mkv", RelativePath: "videos/a.mkv", SizeBytes: 100},
				SourceDiskPath: "/mnt/disk2",
				TargetDiskPath: "/mnt/disk1",
				Status:         plan.MoveStatusPending,
			},
			{
				File:           plan.FileEntry{AbsolutePath: "/mnt/disk3/photos/b.jpg", RelativePath: "photos/b.jpg", SizeBytes: 200},
				SourceDiskPath: "/mnt/disk3",
				TargetDiskPath: "/mnt/disk1",
				Status:         plan.MoveStatusPending,
			},
			{
				File:           plan.FileEntry{AbsolutePath: "/mnt/disk2/videos/c.mkv", RelativePath: "videos/c.mkv", SizeBytes: 50},
				SourceDiskPath: "/mnt/disk2",
				TargetDiskPath: "/mnt/disk2",
				Status:         plan.MoveStatusSkipped,
			},
		},
		Summary: plan.PlanSummary{
			TotalFiles:   2,
			TotalBytes:   300,
			MovesPerDisk: map[string]int{"/mnt/disk1": 2},
			BytesPerDisk: map[string]int64{"/mnt/disk1": 300},
		},
	}
}

func TestBatches_GroupsBySourceTargetAndSkipsNonPending(t *testing.T) {
	batches := Batches(samplePlan())
	require.Len(t, batches, 2)
	assert.Equal(t, "/mnt/disk2", batches[0].Source)
	assert.Equal(t, "/mnt/disk1", batches[0].Target)
	assert.Equal(t, []string{"videos/a.mkv"}, batches[0].RelPaths)
	assert.Equal(t, int64(100), batches[0].TotalBytes)

	assert.Equal(t, "/mnt/disk3", batches[1].Source)
	assert.Equal(t, []string{"photos/b.jpg"}, batches[1].RelPaths)
}

func TestRender_EmptyPlanEmitsStub(t *testing.T) {
	script := Render(plan.MovePlan{}, RenderOptions{})
	assert.Equal(t, stubScript, script)
}

func TestRender_ThenParseHeaderRoundTrips(t *testing.T) {
	p := samplePlan()
	script := Render(p, RenderOptions{GeneratedDate: "2024-01-15", PrimarySource: "/mnt/disk2", Concurrency: 4})

	header, err := ParseHeader(script)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", header.Generated)
	assert.Equal(t, "/mnt/disk2", header.PrimarySource)
	assert.Equal(t, 2, header.TotalFiles)
	assert.Equal(t, 4, header.Concurrency)
	assert.Equal(t, plan.FormatSize(300), header.TotalSize)
}

func TestRender_ThenParseBatchesRoundTrips(t *testing.T) {
	p := samplePlan()
	script := Render(p, RenderOptions{GeneratedDate: "2024-01-15", Concurrency: 2})

	batches, err := ParseBatches(script)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "/mnt/disk2", batches[0].Source)
	assert.Equal(t, "/mnt/disk1", batches[0].Target)
	assert.Equal(t, []string{"videos/a.mkv"}, batches[0].RelPaths)
	assert.Equal(t, "/mnt/disk3", batches[1].Source)
}

func TestParseBatches_StubScriptParsesToNil(t *testing.T) {
	batches, err := ParseBatches(stubScript)
	require.NoError(t, err)
	assert.Nil(t, batches)
}

func TestParseHeader_StubScriptIsZeroValue(t *testing.T) {
	header, err := ParseHeader(stubScript)
	require.NoError(t, err)
	assert.Equal(t, Header{}, header)
}
