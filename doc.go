// Package lvdrift corrects vertical drift in eye-tracking recordings of
// multi-line reading.
//
// 🚀 What is lvdrift?
//
//	Raw fixations recorded while reading slowly slide off the text line
//	the reader was actually on. lvdrift implements the published family of
//	correction algorithms and the glue to run them on trial files:
//		• Line-based: Attach, Chain, Cluster, Merge, Regress, Segment, Split, Stretch
//		• Word-based: Warp (dynamic time warping against word centres)
//		• Hybrids: Warp with isolated or cleaned-up regressions, adaptive selection
//		• Tools: regression slicing, agreement reports, JSON trial codec
//
// ✨ Guarantees
//
//   - value-in / value-out: inputs are never modified
//   - only Y is reassigned; X and Duration pass through
//   - deterministic tie-breaks; explicit seeds for the randomised algorithms
//   - numerical non-convergence is traced, never fatal
//
// Packages:
//
//	fixation/   - Fixation and Sequence data model, input validation
//	aoi/        - AOI tables, line positions and word centres
//	dtw/        - dynamic time warping with optional path recovery
//	kmeans/     - 1-D k-means with k-means++ seeding and restarts
//	drift/      - the nine correction algorithms and their registry
//	regression/ - separating regressions from forward reading and back
//	hybrid/     - Warp compositors around the regressions
//	trial/      - per-trial fixation and AOI JSON files
//	config/     - JSON tuning file → algorithm options
//	cmd/driftcorrect - batch correction from the command line
//
// Quick example:
//
//	lines, _ := aoi.LineCenters(table)
//	out, err := drift.Chain(seq, lines)
//
//	go get github.com/katalvlaran/lvdrift
package lvdrift
