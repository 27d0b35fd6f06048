package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_MinSize(t *testing.T) {
	minSize := int64(50 * sizeMiB)
	files := []FileEntry{
		{AbsolutePath: "/mnt/disk1/a", SizeBytes: 10 * sizeMiB},
		{AbsolutePath: "/mnt/disk1/b", SizeBytes: 100 * sizeMiB},
	}
	out := Filter(files, FilterOptions{MinSizeBytes: &minSize})
	assert.Len(t, out, 1)
	assert.Equal(t, "/mnt/disk1/b", out[0].AbsolutePath)
}

func TestFilter_PathPrefix(t *testing.T) {
	files := []FileEntry{
		{AbsolutePath: "/mnt/disk1/videos/movie.mkv"},
		{AbsolutePath: "/mnt/disk1/photos/pic.jpg"},
	}
	out := Filter(files, FilterOptions{PathPrefixes: []string{"/videos/"}})
	assert.Len(t, out, 1)
	assert.Equal(t, "/mnt/disk1/videos/movie.mkv", out[0].AbsolutePath)
}

func TestFilter_PrefixAndSizeAreAnded(t *testing.T) {
	minSize := int64(10)
	files := []FileEntry{
		{AbsolutePath: "/mnt/disk1/videos/a", SizeBytes: 5},
		{AbsolutePath: "/mnt/disk1/videos/b", SizeBytes: 20},
		{AbsolutePath: "/mnt/disk1/photos/c", SizeBytes: 20},
	}
	out := Filter(files, FilterOptions{MinSizeBytes: &minSize, PathPrefixes: []string{"/videos/"}})
	assert.Len(t, out, 1)
	assert.Equal(t, "/mnt/disk1/videos/b", out[0].AbsolutePath)
}

func TestFilter_NoMountSegmentUsesAbsolutePath(t *testing.T) {
	files := []FileEntry{{AbsolutePath: "/data/videos/a"}}
	out := Filter(files, FilterOptions{PathPrefixes: []string{"/data/videos"}})
	assert.Len(t, out, 1)
}
