// Package trial reads and writes the per-trial JSON files that surround the
// correction algorithms.
//
// Fixations are stored as an object mapping a 1-based fixation number to
// [x, y, duration]:
//
//	{"1": [512.3, 140.2, 231], "2": [580.0, 143.9, 187], ...}
//
// Keys are ordered numerically, not lexically, so "10" follows "9". A
// two-element entry [x, y] is accepted and gets Duration 0.
//
// AOI tables are a JSON array of word boxes:
//
//	[{"kind": "word", "name": "The", "x": 480, "y": 120, "width": 40, "height": 40}, ...]
package trial
