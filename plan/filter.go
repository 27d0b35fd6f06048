package plan

import (
	"regexp"
	"strings"
)

// diskSegmentPattern strips a leading "/mnt/diskN" segment from an
// absolute path, per §4.B's prefix-match rule.
var diskSegmentPattern = regexp.MustCompile(`^/mnt/disk\d+`)

// relativeToMount strips the leading "/mnt/diskN" segment from an absolute
// path, if present; otherwise it returns the path unchanged.
func relativeToMount(absolutePath string) string {
	if loc := diskSegmentPattern.FindStringIndex(absolutePath); loc != nil {
		return absolutePath[loc[1]:]
	}
	return absolutePath
}

// Filter keeps the files that pass both the minimum-size and path-prefix
// constraints in opts. A file passes when its size is >= MinSizeBytes (if
// set) AND, if PathPrefixes is non-empty, its disk-relative path has a
// prefix match against at least one entry. Pure transform.
func Filter(files []FileEntry, opts FilterOptions) []FileEntry {
	out := make([]FileEntry, 0, len(files))
	for _, fe := range files {
		if opts.MinSizeBytes != nil && fe.SizeBytes < *opts.MinSizeBytes {
			continue
		}
		if len(opts.PathPrefixes) > 0 {
			rel := relativeToMount(fe.AbsolutePath)
			if !hasAnyPrefix(rel, opts.PathPrefixes) {
				continue
			}
		}
		out = append(out, fe)
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
