// Package dtw computes Dynamic Time Warping (DTW) alignments between two
// ordered sequences of points, with an optional alignment path.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping their index
//	axes to minimise cumulative point-to-point distance. In lvdrift it aligns
//	a fixation sequence (x, y) with the word centres of a passage (x, y): the
//	words a fixation is aligned to tell which text line it belongs to.
//
// ✨ Key features:
//   - points of any dimension, Euclidean cost (gonum floats.Distance)
//   - full-matrix mode: exact O(N·M) time & memory, backtracked path
//   - two-rows mode: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - optional slope penalty on non-diagonal steps
//   - deterministic backtracking: on equal cost the diagonal step wins,
//     then the step from (i-1, j), then the step from (i, j-1)
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(fixationXY, wordXY, &opts)
//	mapping := dtw.Mapping(path, len(fixationXY)) // words per fixation
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
