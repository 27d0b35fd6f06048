package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactEvent_InitRoundTrip(t *testing.T) {
	disks := []Disk{
		{Path: "/mnt/disk1", TotalBytes: 1000, FreeBytes: 500},
		{Path: "/mnt/disk2", TotalBytes: 2000, FreeBytes: 100},
	}
	line := EncodeInitEvent(disks)
	parsed, err := ParseCompactEvent(line)
	require.NoError(t, err)
	assert.Equal(t, byte('I'), parsed.Kind)
	require.Len(t, parsed.Disks, 2)
	assert.Equal(t, CompactDiskEntry{Path: "/mnt/disk1", Total: 1000, Free: 500}, parsed.Disks[0])
	assert.Equal(t, CompactDiskEntry{Path: "/mnt/disk2", Total: 2000, Free: 100}, parsed.Disks[1])
}

func TestCompactEvent_MoveRoundTrip(t *testing.T) {
	line := EncodeMoveEvent("movie.mkv", 2, 0, 123456)
	parsed, err := ParseCompactEvent(line)
	require.NoError(t, err)
	assert.Equal(t, byte('M'), parsed.Kind)
	assert.Equal(t, "movie.mkv", parsed.File)
	assert.Equal(t, 2, parsed.From)
	assert.Equal(t, 0, parsed.To)
	assert.Equal(t, int64(123456), parsed.Size)
}

func TestCompactEvent_FailRoundTrip_ReasonWithPipes(t *testing.T) {
	line := EncodeFailEvent("f.txt", 1, "too large|no destination fits")
	parsed, err := ParseCompactEvent(line)
	require.NoError(t, err)
	assert.Equal(t, byte('F'), parsed.Kind)
	assert.Equal(t, "f.txt", parsed.File)
	assert.Equal(t, 1, parsed.From)
	assert.Equal(t, "too large|no destination fits", parsed.Reason)
}

func TestCompactEvent_NoteRoundTrip_MessageWithPipes(t *testing.T) {
	line := EncodeNoteEvent("disk3 is | nearly full")
	parsed, err := ParseCompactEvent(line)
	require.NoError(t, err)
	assert.Equal(t, byte('N'), parsed.Kind)
	assert.Equal(t, "disk3 is | nearly full", parsed.Note)
}

func TestParseCompactEvent_UnknownKind(t *testing.T) {
	_, err := ParseCompactEvent("X|whatever")
	assert.Error(t, err)
}
