// Package fixation defines the data model shared by every drift-correction
// algorithm in lvdrift: a Fixation is one gaze dwell point and a Sequence is
// the temporally ordered list of fixations recorded during a reading trial.
//
// Order is load-bearing. Chaining, segmentation, regression detection and
// DTW alignment all depend on the temporal order, so nothing in lvdrift ever
// reorders a Sequence.
//
// Ownership:
//
//	Algorithms never alias the caller's buffer. Every correction clones its
//	input, reassigns only the Y channel of the clone and returns it. X and
//	Duration pass through untouched.
//
// Line references are plain ascending []float64 (one vertical centre per line
// of text). ValidateLines enforces that contract for every algorithm.
package fixation
