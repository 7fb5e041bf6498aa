// Package hybrid composes Warp with a line-based algorithm around the
// regressions of a trial.
//
// Word alignment assumes the reader moves through the words in order, which
// regressions violate. Every compositor here therefore slices the trial
// with regression.Slice, warps only the forward-reading part, and puts the
// regressions back at their original positions:
//
//	Cleanup   raw regressions reinserted, then the secondary algorithm
//	          runs over the whole reassembled trial
//	Isolated  the secondary algorithm corrects only the regressions,
//	          which are then reinserted next to the warped forward part
//	Adaptive  Regress as detector: no regression pattern ⇒ plain Warp,
//	          otherwise Isolated with Regress as secondary
//
// Cleanup and Isolated give different results whenever the word centres do
// not coincide with the line positions: Isolated keeps the warped y-values
// of the forward part, Cleanup snaps them again.
//
// Named compositions ("warp_chain_cleanup", "warp_regress_regs",
// "adaptive", ...) are available through Lookup in the same call shape as
// drift.Lookup.
package hybrid

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lvdrift.hybrid'.
func tracer() tracing.Trace {
	return tracing.Select("lvdrift.hybrid")
}

const (
	opCleanup  = "cleanup"
	opIsolated = "isolated"
	opAdaptive = "adaptive"
)

func wrap(op string, err error) error {
	return fmt.Errorf("hybrid: %s: %w", op, err)
}
