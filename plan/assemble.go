package plan

// AssemblePlan builds a MovePlan's summary from an (optimized) move list.
// Only pending moves count toward totals; skipped/failed moves are kept
// in the Moves slice but excluded from the summary, per §4.J.
func AssemblePlan(moves []FileMove) MovePlan {
	summary := PlanSummary{
		MovesPerDisk: make(map[string]int),
		BytesPerDisk: make(map[string]int64),
	}
	for _, m := range moves {
		if m.Status != MoveStatusPending {
			continue
		}
		summary.TotalFiles++
		summary.TotalBytes += m.File.SizeBytes
		summary.MovesPerDisk[m.TargetDiskPath]++
		summary.BytesPerDisk[m.TargetDiskPath] += m.File.SizeBytes
	}
	return MovePlan{Moves: moves, Summary: summary}
}
