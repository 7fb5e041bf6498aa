// Package regression separates regressive fixations from forward reading.
//
// A regression is a backward eye movement: either an upward jump to an
// earlier line, or a leftward saccade within the current line. Word-level
// alignment behaves badly on them, so the hybrid correctors in lvdrift pull
// them out with Slice, correct the forward part, and put them back with
// Insert at their original positions.
//
// 🔍 Detection (left-to-right reading, h = mean line height):
//
//	start  y < last.y − h                                  (upward jump)
//	       x < last.x − h/2  and  |y − last.y| < h/2        (leftward jump)
//	end    y > before.y + h/2                               (below the origin)
//	       x > before.x  and  y ≥ before.y                  (caught up)
//
// where last is the previous fixation and before is the fixation that
// preceded the regression. When a regression ends, the fixation seen just
// before the end test is moved back to the forward part. The first fixation
// is always forward reading.
//
// WithDirection(RightToLeft) mirrors every x comparison for right-to-left
// scripts.
//
// 🧮 Round trip:
//
//	s, _ := regression.Slice(seq, lines)
//	back, _ := regression.Insert(s.Forward, s.Regressions, s.Index)
//	// back equals seq element for element
package regression

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvdrift.regression'.
func tracer() tracing.Trace {
	return tracing.Select("lvdrift.regression")
}
