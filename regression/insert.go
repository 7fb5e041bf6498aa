package regression

import "github.com/katalvlaran/lvdrift/fixation"

// Insert reassembles a sequence of len(forward)+len(regressions) fixations,
// putting regressions[k] at position index[k] and filling every other
// position from forward in order. It is the inverse of Slice.
//
// index must be strictly ascending and every entry must lie inside the
// reassembled sequence. Neither input is modified.
//
// Errors: ErrIndexMismatch, ErrIndexOrder, ErrIndexRange.
func Insert(forward, regressions fixation.Sequence, index []int) (fixation.Sequence, error) {
	if len(regressions) != len(index) {
		return nil, ErrIndexMismatch
	}
	n := len(forward) + len(regressions)
	var k int
	for k = range index {
		if index[k] < 0 || index[k] >= n {
			return nil, ErrIndexRange
		}
		if k > 0 && index[k] <= index[k-1] {
			return nil, ErrIndexOrder
		}
	}

	out := make(fixation.Sequence, 0, n)
	var p, fw int
	k = 0
	for p = 0; p < n; p++ {
		if k < len(index) && index[k] == p {
			out = append(out, regressions[k])
			k++
			continue
		}
		out = append(out, forward[fw])
		fw++
	}

	return out, nil
}
