package lines

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"

	"github.com/rocketscienceinc/inarow/internal/apperror"
)

// ContainsRun - reports whether the sequence holds k contiguous cells equal to target.
// Windows with an empty cell never match.
func ContainsRun[T comparable](sequence []T, k int, target T) (bool, error) {
	if k <= 0 {
		return false, fmt.Errorf("%w: run length %d has to be greater than 0", apperror.ErrInvalidArgument, k)
	}

	if k > len(sequence) {
		return false, nil
	}

	var empty T
	if target == empty {
		return false, fmt.Errorf("%w: cannot seek an empty cell", apperror.ErrInvalidArgument)
	}

	for start := 0; start+k <= len(sequence); start++ {
		if windowMatches(sequence[start:start+k], target) {
			return true, nil
		}
	}

	return false, nil
}

// RunStartIndices - lazily yields the start offset of every matching window, ascending.
// The returned sequence can be ranged over any number of times.
func RunStartIndices[T comparable](sequence []T, k int, target T) (iter.Seq[int], error) {
	found, err := ContainsRun(sequence, k, target)
	if err != nil {
		return nil, err
	}

	snapshot := slices.Clone(sequence)

	return func(yield func(int) bool) {
		if !found {
			return
		}

		for start := 0; start+k <= len(snapshot); start++ {
			if !windowMatches(snapshot[start:start+k], target) {
				continue
			}

			if !yield(start) {
				return
			}
		}
	}, nil
}

func windowMatches[T comparable](window []T, target T) bool {
	var empty T

	for _, cell := range window {
		if cell == empty {
			return false
		}
	}

	for _, cell := range window {
		if cell != target {
			return false
		}
	}

	return true
}
