package plan

// ApplyMove returns a new WorldView with move applied atomically: the
// source disk's free bytes increase by the file's size, the target disk's
// free bytes decrease by the same amount, and the file's disk/absolute
// path become the target's. No other fields change. Pre-conditions (that
// the disks exist and the target has headroom) are the caller's
// responsibility; the reducer itself never fails.
func ApplyMove(wv WorldView, move FileMove) WorldView {
	newDisks := make([]Disk, len(wv.Disks))
	copy(newDisks, wv.Disks)
	for i, d := range newDisks {
		switch d.Path {
		case move.SourceDiskPath:
			newDisks[i].FreeBytes += move.File.SizeBytes
		case move.TargetDiskPath:
			newDisks[i].FreeBytes -= move.File.SizeBytes
		}
	}

	newFiles := make([]FileEntry, len(wv.Files))
	copy(newFiles, wv.Files)
	for i, fe := range newFiles {
		if fe.AbsolutePath == move.File.AbsolutePath {
			newFiles[i].DiskPath = move.TargetDiskPath
			newFiles[i].AbsolutePath = move.DestAbsolutePath
		}
	}

	return WorldView{Disks: newDisks, Files: newFiles}
}
