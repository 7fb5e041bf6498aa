package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, negative or NaN SlopePenalty).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrDimensionMismatch indicates points of different (or zero) dimension.
	ErrDimensionMismatch = errors.New("dtw: all points must share the same non-zero dimension")

	// ErrPathNeedsMatrix indicates that path recovery requires MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNoPath indicates that no finite-cost alignment exists (e.g. a window
	// too narrow for the length difference) while a path was requested.
	ErrNoPath = errors.New("dtw: no finite alignment path")
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix - keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace of the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows - only keep the current and previous row.
//     Reduces memory to O(m), but cannot recover the path.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling rows, distance only.
	TwoRows
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       - maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     -1 means unlimited; 0 allows only the diagonal.
//   - SlopePenalty - cost added to every non-diagonal step.
//   - ReturnPath   - backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   - FullMatrix or TwoRows storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the unconstrained, penalty-free recursion with
// full-matrix storage and no path.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

// Coord is one step of a warping path: index I into the first sequence
// aligned with index J into the second.
type Coord struct {
	I int
	J int
}
