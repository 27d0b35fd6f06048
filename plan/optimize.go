package plan

import "regexp"

// OptimizeChain collapses transitive move chains (A->B->C becomes A->C)
// and drops no-op self-moves, per §4.H. Non-pending moves pass through
// unchanged. Idempotent: OptimizeChain(OptimizeChain(xs)) == OptimizeChain(xs).
func OptimizeChain(moves []FileMove) []FileMove {
	destToSource := make(map[string]*FileMove)
	sourceToDest := make(map[string]bool)
	for i := range moves {
		m := &moves[i]
		if m.Status != MoveStatusPending {
			continue
		}
		destToSource[m.DestAbsolutePath] = m
		sourceToDest[m.File.AbsolutePath] = true
	}

	rewritten := make([]FileMove, len(moves))
	copy(rewritten, moves)

	for i := range rewritten {
		m := &rewritten[i]
		if m.Status != MoveStatusPending {
			continue
		}
		origin := m.File.AbsolutePath
		visited := map[string]bool{origin: true}
		for {
			prev, ok := destToSource[origin]
			if !ok {
				break
			}
			next := prev.File.AbsolutePath
			if visited[next] {
				break
			}
			visited[next] = true
			origin = next
		}
		if origin != m.File.AbsolutePath {
			m.File.AbsolutePath = origin
			m.SourceDiskPath = deriveDiskFromAbsolutePath(origin)
			m.File.RelativePath = relativeToMount(origin)
			if len(m.File.RelativePath) > 0 && m.File.RelativePath[0] == '/' {
				m.File.RelativePath = m.File.RelativePath[1:]
			}
		}
	}

	var out []FileMove
	for i := range rewritten {
		m := rewritten[i]
		if m.Status != MoveStatusPending {
			out = append(out, m)
			continue
		}
		// (a) drop intermediates: this move's destination is itself the
		// source of some other move in the pre-optimization map.
		if sourceToDest[m.DestAbsolutePath] {
			continue
		}
		// (b) drop self-moves created by rewriting.
		if m.SourceDiskPath == m.TargetDiskPath {
			continue
		}
		out = append(out, m)
	}
	return out
}

var mountDiskPattern = regexp.MustCompile(`^(/mnt/disk\d+)`)

// deriveDiskFromAbsolutePath extracts the leading "/mnt/diskN" segment
// from an absolute path, used to re-derive a rewritten move's source disk.
func deriveDiskFromAbsolutePath(absolutePath string) string {
	if m := mountDiskPattern.FindStringSubmatch(absolutePath); m != nil {
		return m[1]
	}
	return absolutePath
}
