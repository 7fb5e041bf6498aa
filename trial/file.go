package trial

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/katalvlaran/lvdrift/fixation"
)

// LoadFixations reads a fixation file.
func LoadFixations(path string) (fixation.Sequence, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeFixations(f)
}

// LoadAOI reads an AOI table file.
func LoadAOI(path string) (aoi.Table, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeAOI(f)
}

// SaveFixations writes seq to path, replacing any existing file.
func SaveFixations(path string, seq fixation.Sequence) (err error) {
	clean := filepath.Clean(path)
	if filepath.Ext(clean) != ".json" {
		return fmt.Errorf("%w: %q", ErrNotJSON, path)
	}
	f, err := os.Create(clean)
	if err != nil {
		return fmt.Errorf("trial: create %s: %w", clean, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodeFixations(f, seq)
}

func open(path string) (*os.File, error) {
	clean := filepath.Clean(path)
	if filepath.Ext(clean) != ".json" {
		return nil, fmt.Errorf("%w: %q", ErrNotJSON, path)
	}
	f, err := os.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("trial: open %s: %w", clean, err)
	}

	return f, nil
}
