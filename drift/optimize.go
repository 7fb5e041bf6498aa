// SPDX-License-Identifier: MIT

package drift

import (
	"context"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// minimize runs method on f from x0 and returns the best location found.
//
// Failure statuses and iteration limits are not errors: whatever location
// the optimiser reached is used, matching the best-effort policy for
// numerical fits. Only a cancelled ctx (or an optimiser that produced no
// location at all) is reported. While ctx is done, f evaluates to +Inf so
// the optimiser stops quickly.
func minimize(ctx context.Context, op string, p optimize.Problem, x0 []float64, iters int, method optimize.Method) ([]float64, error) {
	f := p.Func
	p.Func = func(x []float64) float64 {
		if ctx.Err() != nil {
			return math.Inf(1)
		}
		return f(x)
	}

	settings := &optimize.Settings{MajorIterations: iters}
	res, err := optimize.Minimize(p, x0, settings, method)
	if cerr := ctx.Err(); cerr != nil {
		return nil, wrap(op, cerr)
	}
	if res == nil {
		return nil, wrap(op, err)
	}
	if err != nil || !converged(res.Status) {
		tracer().Infof("%s: optimiser stopped with status %v (err=%v); using best parameters", op, res.Status, err)
	}
	tracer().Debugf("%s: f=%g at %v after %d major iterations", op, res.F, res.X, res.MajorIterations)

	return res.X, nil
}

// converged reports whether status is one of the tolerance-based stops.
func converged(status optimize.Status) bool {
	switch status {
	case optimize.Success, optimize.GradientThreshold, optimize.FunctionConvergence,
		optimize.StepConvergence, optimize.MethodConverge, optimize.FunctionThreshold:
		return true
	}
	return false
}
