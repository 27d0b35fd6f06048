package plan

// RunOptions bundles the per-invocation parameters control flow threads
// through filter -> PackTightly -> optimize -> project -> assemble
// (spec §2's control-flow line).
type RunOptions struct {
	Filter             FilterOptions
	SrcDiskPaths       []string
	MinSpaceBytes      int64
	MaxCombinationSize int
	Notifier           Notifier
}

// Run executes one full planning pass over wv and returns the optimized
// MovePlan together with its disk projection. It does not render a
// script; that is the script renderer's job (package rsync), which
// consumes the returned MovePlan.
func Run(wv WorldView, opts RunOptions) (MovePlan, ProjectionResult) {
	filteredFiles := Filter(wv.Files, opts.Filter)
	filtered := WorldView{Disks: wv.Disks, Files: filteredFiles}

	initial := make([]InitialDiskState, len(wv.Disks))
	for i, d := range wv.Disks {
		initial[i] = InitialDiskState{Path: d.Path, TotalBytes: d.TotalBytes, FreeBytes: d.FreeBytes}
	}

	raw := PackTightly(filtered, PackOptions{
		SrcDiskPaths:       opts.SrcDiskPaths,
		MinSpaceBytes:      opts.MinSpaceBytes,
		MaxCombinationSize: opts.MaxCombinationSize,
		Notifier:           opts.Notifier,
	})

	optimized := OptimizeChain(raw)
	movePlan := AssemblePlan(optimized)
	projection := ProjectDiskStates(initial, optimized)

	return movePlan, projection
}
