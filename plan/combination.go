package plan

import "sort"

// DefaultMaxCombinationSize bounds the largest k-combination considered by
// FindBestCombination (§4.F).
const DefaultMaxCombinationSize = 5

// bucketBoundaries partitions candidate files by size for sampling, per
// §4.F: 0, 100 KiB, 1 MiB, 10 MiB, 100 MiB, infinity.
var bucketBoundaries = []int64{0, 100 * sizeKiB, sizeMiB, 10 * sizeMiB, 100 * sizeMiB}

// Combination is a set of files chosen to fill a destination together,
// with its aggregate size and utilization score (sum / availableBytes).
type Combination struct {
	Files []FileEntry
	Size  int64
	Score float64
}

// FindBestCombination picks the single file or small tuple of files from
// candidates that best fills a destination with availableBytes free,
// maximizing sum(sizes)/availableBytes without exceeding it. Returns
// (Combination{}, false) if nothing fits.
func FindBestCombination(candidates []FileEntry, availableBytes int64, maxCombinationSize int) (Combination, bool) {
	if maxCombinationSize <= 0 {
		maxCombinationSize = DefaultMaxCombinationSize
	}
	if availableBytes <= 0 || len(candidates) == 0 {
		return Combination{}, false
	}

	best, found := bestSingleFile(candidates, availableBytes)

	sample := sampleByBucket(candidates)
	if comb, ok := bestFromCombinations(sample, availableBytes, maxCombinationSize); ok {
		if !found || comb.Score > best.Score {
			best, found = comb, true
		}
	}

	return best, found
}

// bestSingleFile returns the largest file that fits within availableBytes.
func bestSingleFile(candidates []FileEntry, availableBytes int64) (Combination, bool) {
	var bestFile *FileEntry
	for i := range candidates {
		fe := candidates[i]
		if fe.SizeBytes > availableBytes {
			continue
		}
		if bestFile == nil || fe.SizeBytes > bestFile.SizeBytes {
			bestFile = &candidates[i]
		}
	}
	if bestFile == nil {
		return Combination{}, false
	}
	return Combination{
		Files: []FileEntry{*bestFile},
		Size:  bestFile.SizeBytes,
		Score: float64(bestFile.SizeBytes) / float64(availableBytes),
	}, true
}

// sampleByBucket partitions files into size buckets and samples up to
// three representatives per non-empty bucket (smallest, median, largest),
// deduplicated by absolute path.
func sampleByBucket(candidates []FileEntry) []FileEntry {
	buckets := make([][]FileEntry, len(bucketBoundaries)+1)
	for _, fe := range candidates {
		idx := len(bucketBoundaries)
		for i, boundary := range bucketBoundaries {
			if fe.SizeBytes < boundary {
				idx = i
				break
			}
		}
		buckets[idx] = append(buckets[idx], fe)
	}

	seen := make(map[string]bool)
	var sample []FileEntry
	addUnique := func(fe FileEntry) {
		if !seen[fe.AbsolutePath] {
			seen[fe.AbsolutePath] = true
			sample = append(sample, fe)
		}
	}

	for _, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].SizeBytes < bucket[j].SizeBytes
		})
		addUnique(bucket[0])
		addUnique(bucket[len(bucket)/2])
		addUnique(bucket[len(bucket)-1])
	}

	return sample
}

// bestFromCombinations enumerates k-combinations of sample for k =
// 2..min(maxCombinationSize, len(sample)), keeping the highest-scoring
// combination whose total size fits within availableBytes. Ties go to the
// first encountered in iteration order, which is deterministic because
// sample members are produced in ascending-size-per-bucket order.
func bestFromCombinations(sample []FileEntry, availableBytes int64, maxCombinationSize int) (Combination, bool) {
	n := len(sample)
	maxK := maxCombinationSize
	if n < maxK {
		maxK = n
	}

	var best Combination
	found := false

	for k := 2; k <= maxK; k++ {
		indexes := make([]int, k)
		for i := range indexes {
			indexes[i] = i
		}
		for {
			var size int64
			for _, idx := range indexes {
				size += sample[idx].SizeBytes
			}
			if size <= availableBytes {
				score := float64(size) / float64(availableBytes)
				if !found || score > best.Score {
					files := make([]FileEntry, k)
					for i, idx := range indexes {
						files[i] = sample[idx]
					}
					best = Combination{Files: files, Size: size, Score: score}
					found = true
				}
			}
			if !nextCombination(indexes, n) {
				break
			}
		}
	}

	return best, found
}

// nextCombination advances indexes (a k-combination of [0,n)) to the next
// combination in lexicographic order, returning false once exhausted.
func nextCombination(indexes []int, n int) bool {
	k := len(indexes)
	i := k - 1
	for i >= 0 && indexes[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	indexes[i]++
	for j := i + 1; j < k; j++ {
		indexes[j] = indexes[j-1] + 1
	}
	return true
}
