// Package split partitions row indices into disjoint subsets while
// preserving the relative frequency of a stratification column.
package split

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
)

// Options controls how sparse strata are handled.
type Options struct {
	// Strict makes a stratum that cannot appear on both sides of the split
	// an error instead of a logged warning.
	Strict bool
}

// StratumError reports a stratification level with too few members to be
// represented on both sides of a split.
type StratumError struct {
	Level string
	Count int
}

func (e *StratumError) Error() string {
	return fmt.Sprintf("split: stratum %q has %d member(s), too few to appear in both subsets", e.Level, e.Count)
}

// Stratified partitions the indices 0..len(strata)-1 into two disjoint sets.
// The left set holds approximately frac of each stratification level, the
// right set the remainder. The same seed and input always produce the same
// partition. Every index lands in exactly one side.
func Stratified(strata []string, frac float64, seed int64, opts Options) (left, right []int, err error) {
	if len(strata) == 0 {
		return nil, nil, fmt.Errorf("split: empty population")
	}
	if frac <= 0 || frac >= 1 {
		return nil, nil, fmt.Errorf("split: fraction %v outside (0, 1)", frac)
	}

	groups := map[string][]int{}
	for i, level := range strata {
		groups[level] = append(groups[level], i)
	}
	levels := make([]string, 0, len(groups))
	for level := range groups {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	rng := rand.New(rand.NewSource(seed))
	for _, level := range levels {
		idx := groups[level]
		rng.Shuffle(len(idx), func(a, b int) {
			idx[a], idx[b] = idx[b], idx[a]
		})
		nLeft := int(math.Round(frac * float64(len(idx))))
		if nLeft == 0 || nLeft == len(idx) {
			if opts.Strict {
				return nil, nil, &StratumError{Level: level, Count: len(idx)}
			}
			log.Printf("split: stratum %q has %d member(s); it will appear on only one side", level, len(idx))
		}
		left = append(left, idx[:nLeft]...)
		right = append(right, idx[nLeft:]...)
	}

	sort.Ints(left)
	sort.Ints(right)
	return left, right, nil
}
