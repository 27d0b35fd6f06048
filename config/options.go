package config

// PlanOptions bridges parsed "plan" CLI flags (spec.md §6) to the
// plan/disk packages' inputs. MinSplitSize and MoveAsFolderThreshold
// are accepted and stored but never consulted by plan.PackTightly —
// reserved folder-grouping knobs per spec.md §9's Open Question.
type PlanOptions struct {
	Src                  []string
	Dest                 []string
	MinSpace             string
	MinFileSize          string
	PathFilter           []string
	Include              []string
	Exclude              []string
	MinSplitSize         string
	MoveAsFolderThreshold float64
	PlanFile             string
	Force                bool
	Debug                bool
}

// ApplyOptions bridges parsed "apply" CLI flags to the rsync executor.
type ApplyOptions struct {
	PlanFile    string
	Concurrency int
	DryRun      bool
	Debug       bool
}

// ShowOptions bridges parsed "show" CLI flags.
type ShowOptions struct {
	PlanFile string
}

// DefaultPlanOptions returns PlanOptions seeded from persisted Config
// defaults, before CLI flags are applied on top.
func DefaultPlanOptions(conf *Config) PlanOptions {
	return PlanOptions{
		MinSpace:              conf.minSpace(),
		MinFileSize:           conf.minFileSize(),
		PathFilter:            splitNonEmpty(conf.pathFilter()),
		MinSplitSize:          "1GB",
		MoveAsFolderThreshold: 0.9,
		PlanFile:              conf.planFile(),
		Debug:                 conf.debugEnabled(),
	}
}

// DefaultApplyOptions returns ApplyOptions seeded from persisted Config
// defaults.
func DefaultApplyOptions(conf *Config) ApplyOptions {
	return ApplyOptions{
		PlanFile:    conf.planFile(),
		Concurrency: conf.concurrency(),
	}
}

// DefaultShowOptions returns ShowOptions seeded from persisted Config
// defaults.
func DefaultShowOptions(conf *Config) ShowOptions {
	return ShowOptions{PlanFile: conf.planFile()}
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
