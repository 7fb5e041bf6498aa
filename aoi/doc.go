// Package aoi extracts the geometric references the drift-correction
// algorithms consume from an area-of-interest table.
//
// An AOI is the bounding box of one word on the stimulus image. Two
// references are derived from a Table:
//
//	LineCenters - the vertical centre (y + height/2) of every distinct text
//	              line, ascending. This is the line_Y input of attach, chain,
//	              cluster, merge, regress, segment, split and stretch.
//	WordCenters - the (x + width/2, y + height/2) centre of every word, in
//	              reading order. This is the word_XY input of warp.
//
// Complexity: O(n log n) for LineCenters (sort + dedup), O(n) for WordCenters.
package aoi
