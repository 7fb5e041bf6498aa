package trial

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/katalvlaran/lvdrift/fixation"
)

// DecodeFixations parses a fixation object from r.
//
// Errors: ErrBadKey, ErrBadEntry, fixation.ErrEmptySequence, and JSON syntax
// errors.
func DecodeFixations(r io.Reader) (fixation.Sequence, error) {
	var raw map[string][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("trial: decode fixations: %w", err)
	}
	if len(raw) == 0 {
		return nil, fixation.ErrEmptySequence
	}

	keys := make([]int, 0, len(raw))
	byKey := make(map[int][]float64, len(raw))
	for k, v := range raw {
		n, err := strconv.Atoi(k)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadKey, k)
		}
		if len(v) < 2 || len(v) > 3 {
			return nil, fmt.Errorf("%w: key %q has %d", ErrBadEntry, k, len(v))
		}
		if _, dup := byKey[n]; dup {
			return nil, fmt.Errorf("%w: %q repeats fixation %d", ErrBadKey, k, n)
		}
		keys = append(keys, n)
		byKey[n] = v
	}
	sort.Ints(keys)

	seq := make(fixation.Sequence, len(keys))
	for i, n := range keys {
		v := byKey[n]
		seq[i] = fixation.Fixation{X: v[0], Y: v[1]}
		if len(v) == 3 {
			seq[i].Duration = v[2]
		}
	}

	return seq, nil
}

// EncodeFixations writes seq as a fixation object keyed "1".."n".
func EncodeFixations(w io.Writer, seq fixation.Sequence) error {
	out := make(map[string][3]float64, len(seq))
	for i, f := range seq {
		out[strconv.Itoa(i+1)] = [3]float64{f.X, f.Y, f.Duration}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("trial: encode fixations: %w", err)
	}

	return nil
}

// DecodeAOI parses an AOI table from r.
//
// Errors: aoi.ErrEmptyTable, and JSON syntax errors.
func DecodeAOI(r io.Reader) (aoi.Table, error) {
	var t aoi.Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("trial: decode aoi: %w", err)
	}
	if len(t) == 0 {
		return nil, aoi.ErrEmptyTable
	}

	return t, nil
}
