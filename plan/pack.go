package plan

import "sort"

// PackOptions configures a single PackTightly invocation.
type PackOptions struct {
	// SrcDiskPaths restricts source selection to this set, if non-empty.
	SrcDiskPaths []string
	// MinSpaceBytes is the reserved headroom kept free on every
	// destination after a fill.
	MinSpaceBytes int64
	// MaxCombinationSize bounds FindBestCombination's search (0 = default).
	MaxCombinationSize int
	// Notifier receives advisory progress events; may be nil.
	Notifier Notifier
}

// PackTightly iterates disks least-full first, evacuating each onto the
// fullest remaining destinations that still fit, and returns the ordered
// list of moves it produced (files that cannot be placed are never
// recorded as moves — only pending FileMoves are appended; failures only
// surface as events, per §4.G's failure semantics).
//
// Where a source's current file best fills a destination together with
// other remaining files (§4.F), PackTightly prefers that combination over
// moving the single largest file alone — the sole way to satisfy both the
// per-file procedure in §4.G and the combination-preferred behavior its
// own test scenarios require.
func PackTightly(wv WorldView, opts PackOptions) []FileMove {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	filtered := wv // filtering happens before PackTightly is called; see Run
	ranked := RankDisksByFullness(filtered.Disks, filtered.Files)
	ranked = excludePseudoDisk(ranked)
	if len(opts.SrcDiskPaths) > 0 {
		ranked = restrictToSources(ranked, opts.SrcDiskPaths)
	}

	current := wv
	processed := make(map[string]bool)
	processed[pseudoDiskUnassigned] = true // never offered as a destination
	var moves []FileMove
	step := 0

	notify := func(action string, meta SnapshotMeta) {
		step++
		notifier.NotifySnapshot(Snapshot{Step: step, Action: action, Meta: meta})
	}
	notify("Start", SnapshotMeta{TotalFiles: len(wv.Files)})

	for {
		var source *RankedDisk
		for i := range ranked {
			if !processed[ranked[i].Path] {
				source = &ranked[i]
				break
			}
		}
		if source == nil {
			break
		}

		notify(f("Processing %s", source.Path), SnapshotMeta{})
		drainSource(source.Path, &current, processed, opts, notify, &moves)
		processed[source.Path] = true

		if remainingDisk, ok := current.DiskByPath(source.Path); ok && len(current.FilesOnDisk(source.Path)) == 0 {
			notify(f("%s: EMPTY!", remainingDisk.Path), SnapshotMeta{})
		}
	}

	return moves
}

func excludePseudoDisk(ranked []RankedDisk) []RankedDisk {
	out := ranked[:0:0]
	for _, rd := range ranked {
		if rd.Path == pseudoDiskUnassigned {
			continue
		}
		out = append(out, rd)
	}
	return out
}

func restrictToSources(ranked []RankedDisk, srcDiskPaths []string) []RankedDisk {
	allowed := make(map[string]bool, len(srcDiskPaths))
	for _, p := range srcDiskPaths {
		allowed[p] = true
	}
	out := ranked[:0:0]
	for _, rd := range ranked {
		if allowed[rd.Path] {
			out = append(out, rd)
		}
	}
	return out
}

// eligibleDestinations returns the destination candidates open to
// source: not source itself, not /mnt/disks, not already processed.
func eligibleDestinations(wv WorldView, source string, processed map[string]bool) []Disk {
	var out []Disk
	for _, d := range wv.Disks {
		if d.Path == source || d.Path == pseudoDiskUnassigned || processed[d.Path] {
			continue
		}
		out = append(out, d)
	}
	return out
}

func maxAvailableSpace(destinations []Disk, minSpaceBytes int64) int64 {
	var max int64
	for _, d := range destinations {
		avail := d.FreeBytes - minSpaceBytes
		if avail > max {
			max = avail
		}
	}
	return max
}

// drainSource repeatedly picks the best destination and combination for
// the source's remaining files until nothing more fits, emitting move and
// fail events and mutating *current and *moves as it goes.
func drainSource(source string, current *WorldView, processed map[string]bool,
	opts PackOptions, notify func(string, SnapshotMeta), moves *[]FileMove) {

	remaining := append([]FileEntry(nil), current.FilesOnDisk(source)...)
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].SizeBytes > remaining[j].SizeBytes
	})

	for len(remaining) > 0 {
		destinations := eligibleDestinations(*current, source, processed)
		maxAvail := maxAvailableSpace(destinations, opts.MinSpaceBytes)

		largest := remaining[0]
		if largest.SizeBytes > maxAvail {
			notify(f("Can't move %s", largest.RelativePath), SnapshotMeta{
				FileName: largest.RelativePath,
				Reason:   "too large",
			})
			remaining = remaining[1:]
			continue
		}

		destPath := FindBestDestination(largest, *current, source, processed, opts.MinSpaceBytes)
		if destPath == "" {
			notify(f("Can't move %s", largest.RelativePath), SnapshotMeta{
				FileName: largest.RelativePath,
				Reason:   "no destination fits",
			})
			remaining = remaining[1:]
			continue
		}

		destDisk, _ := current.DiskByPath(destPath)
		available := destDisk.FreeBytes - opts.MinSpaceBytes

		comb, ok := FindBestCombination(remaining, available, opts.MaxCombinationSize)
		if !ok {
			notify(f("Can't move %s", largest.RelativePath), SnapshotMeta{
				FileName: largest.RelativePath,
				Reason:   "no destination fits",
			})
			remaining = remaining[1:]
			continue
		}

		chosen := make(map[string]bool, len(comb.Files))
		for _, cf := range comb.Files {
			chosen[cf.AbsolutePath] = true

			move := FileMove{
				File:             cf,
				SourceDiskPath:   source,
				TargetDiskPath:   destPath,
				DestAbsolutePath: DestinationPath(destPath, cf.RelativePath),
				Status:           MoveStatusPending,
			}
			*moves = append(*moves, move)
			*current = ApplyMove(*current, move)

			notify(f("✓ %s -> %s", cf.RelativePath, destPath), SnapshotMeta{
				TargetFreeGB: float64(destDisk.FreeBytes) / float64(sizeGiB),
				FileName:     cf.RelativePath,
				FileSizeMB:   float64(cf.SizeBytes) / float64(sizeMiB),
			})
		}

		filtered := remaining[:0]
		for _, fe := range remaining {
			if !chosen[fe.AbsolutePath] {
				filtered = append(filtered, fe)
			}
		}
		remaining = filtered
	}
}
