package plan

import "sort"

// RankDisksByFullness returns the disks that currently hold at least one
// file, annotated with UsedBytes/UsedPct, sorted ascending by UsedPct
// (ties broken by path ascending for determinism). Disks with no files
// have nothing to evacuate and are excluded.
func RankDisksByFullness(disks []Disk, files []FileEntry) []RankedDisk {
	hasFiles := make(map[string]bool)
	for _, fe := range files {
		hasFiles[fe.DiskPath] = true
	}

	ranked := make([]RankedDisk, 0, len(disks))
	for _, d := range disks {
		if !hasFiles[d.Path] {
			continue
		}
		used := d.UsedBytes()
		var usedPct float64
		if d.TotalBytes > 0 {
			usedPct = float64(used) / float64(d.TotalBytes)
		}
		ranked = append(ranked, RankedDisk{Disk: d, UsedBytes: used, UsedPct: usedPct})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].UsedPct != ranked[j].UsedPct {
			return ranked[i].UsedPct < ranked[j].UsedPct
		}
		return ranked[i].Path < ranked[j].Path
	})

	return ranked
}
