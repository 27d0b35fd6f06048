package plan

// InitialDiskState is the before-snapshot ProjectDiskStates consumes.
type InitialDiskState struct {
	Path       string
	TotalBytes int64
	FreeBytes  int64
}

// ProjectDiskStates computes, from an initial set of disk states and a
// sequence of moves, the final free-byte total per disk and the count of
// disks that became fully evacuated (initialUsed > 0 and finalUsed == 0).
// Pure: it never mutates initial or moves.
func ProjectDiskStates(initial []InitialDiskState, moves []FileMove) ProjectionResult {
	changes := make(map[string]int64, len(initial))
	for _, m := range moves {
		if m.Status != MoveStatusPending {
			continue
		}
		changes[m.SourceDiskPath] += m.File.SizeBytes
		changes[m.TargetDiskPath] -= m.File.SizeBytes
	}

	result := ProjectionResult{}
	for _, d := range initial {
		initialUsed := d.TotalBytes - d.FreeBytes
		finalFree := d.FreeBytes + changes[d.Path]
		finalUsed := d.TotalBytes - finalFree
		evacuated := initialUsed > 0 && finalUsed == 0

		result.Initial = append(result.Initial, DiskProjection{
			Path: d.Path, TotalBytes: d.TotalBytes,
			InitialFree: d.FreeBytes, FinalFree: d.FreeBytes,
		})
		result.Final = append(result.Final, DiskProjection{
			Path: d.Path, TotalBytes: d.TotalBytes,
			InitialFree: d.FreeBytes, FinalFree: finalFree, Evacuated: evacuated,
		})
		if evacuated {
			result.EvacuatedCount++
		}
	}
	return result
}
