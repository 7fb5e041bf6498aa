package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/katalvlaran/lvdrift/config"
	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/fixation"
	"github.com/katalvlaran/lvdrift/hybrid"
	"github.com/katalvlaran/lvdrift/trial"
)

// ErrUsage indicates missing or contradictory command line input.
var ErrUsage = errors.New("driftcorrect: usage")

// Job is one correction request.
type Job struct {
	Fixations string
	AOI       string
	Algorithm string
	Config    string
	Out       string
	Gold      string
	Seed      *int64
}

// Result is what Run reports back.
type Result struct {
	RunID     string
	Algorithm string
	Lines     []float64
	Before    fixation.Sequence
	After     fixation.Sequence
	Gold      *drift.Report
}

// Names lists every algorithm Run accepts, sorted.
func Names() []string {
	names := append(drift.Names(), hybrid.Names()...)
	sort.Strings(names)

	return names
}

// Run loads the trial, corrects it and writes the output file if one is set.
func Run(job Job) (Result, error) {
	if job.Fixations == "" || job.AOI == "" {
		return Result{}, fmt.Errorf("%w: -fixations and -aoi are required", ErrUsage)
	}
	res := Result{RunID: uuid.NewString(), Algorithm: job.Algorithm}

	var (
		tuning  config.Tuning
		opts    []drift.Option
		hopts   []hybrid.Option
		correct drift.Algorithm
		err     error
	)
	if job.Config != "" {
		cfg, err := config.Load(job.Config)
		if err != nil {
			return Result{}, err
		}
		tuning = *cfg
	}
	opts = tuning.Options()
	if job.Seed != nil {
		opts = append(opts, drift.WithSeed(*job.Seed))
	}
	hopts = []hybrid.Option{hybrid.WithSliceOptions(tuning.RegressionOptions()...)}

	if correct, err = lookup(job.Algorithm, hopts); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if res.Before, err = trial.LoadFixations(job.Fixations); err != nil {
		return Result{}, err
	}
	table, err := trial.LoadAOI(job.AOI)
	if err != nil {
		return Result{}, err
	}
	ref := drift.Reference{}
	if ref.Lines, err = aoi.LineCenters(table); err != nil {
		return Result{}, err
	}
	if ref.Words, err = aoi.WordCenters(table); err != nil {
		return Result{}, err
	}
	res.Lines = ref.Lines

	tracer().Infof("run %s: %s on %d fixations, %d lines, %d words",
		res.RunID, job.Algorithm, len(res.Before), len(ref.Lines), len(ref.Words))
	if res.After, err = correct(context.Background(), res.Before, ref, opts...); err != nil {
		return Result{}, err
	}

	if job.Gold != "" {
		gold, err := trial.LoadFixations(job.Gold)
		if err != nil {
			return Result{}, err
		}
		report, err := drift.Compare(res.After, gold, 0.5)
		if err != nil {
			return Result{}, err
		}
		res.Gold = &report
		tracer().Infof("run %s: %d/%d fixations match the gold standard", res.RunID, report.Matching, report.N)
	}

	if job.Out != "" {
		if err = trial.SaveFixations(job.Out, res.After); err != nil {
			return Result{}, err
		}
		tracer().Infof("run %s: wrote %s", res.RunID, job.Out)
	}

	return res, nil
}

func lookup(name string, hopts []hybrid.Option) (drift.Algorithm, error) {
	fn, err := drift.Lookup(name)
	if err == nil {
		return fn, nil
	}
	if !errors.Is(err, drift.ErrUnknownAlgorithm) {
		return nil, err
	}

	return hybrid.Lookup(name, hopts...)
}
