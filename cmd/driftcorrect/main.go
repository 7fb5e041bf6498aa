// Command driftcorrect applies a vertical drift-correction algorithm to a
// trial's fixation file and writes the corrected fixations.
//
// Usage:
//
//	driftcorrect -fixations trial.json -aoi trial_aoi.json -algorithm warp -out corrected.json
//
// Line positions and word centres are derived from the AOI table. Every
// algorithm of the drift and hybrid packages is available by name; -list
// prints them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'lvdrift.cli'
func tracer() tracing.Trace {
	return tracing.Select("lvdrift.cli")
}

// traceKeys are the tracers whose level -trace controls.
var traceKeys = []string{
	"lvdrift.cli",
	"lvdrift.drift",
	"lvdrift.hybrid",
	"lvdrift.kmeans",
	"lvdrift.regression",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Info"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	var job Job
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	list := flag.Bool("list", false, "List the available algorithms and exit")
	flag.StringVar(&job.Fixations, "fixations", "", "Fixation file to correct (JSON)")
	flag.StringVar(&job.AOI, "aoi", "", "AOI table of the trial (JSON)")
	flag.StringVar(&job.Algorithm, "algorithm", "warp", "Correction algorithm")
	flag.StringVar(&job.Config, "config", "", "Optional tuning file (JSON)")
	flag.StringVar(&job.Out, "out", "", "Where to write the corrected fixations (JSON)")
	flag.StringVar(&job.Gold, "gold", "", "Optional manually corrected fixations to compare against (JSON)")
	seed := flag.Int64("seed", 0, "Random seed for cluster and split")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			job.Seed = seed
		}
	})

	if err := setTraceLevel(*tlevel); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	if *list {
		printNames(Names())
		return
	}

	res, err := Run(job)
	if err != nil {
		pterm.Error.Println(err.Error())
		if errors.Is(err, ErrUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(3)
	}
	printResult(res)
}

// setTraceLevel applies the -trace level to every lvdrift tracer.
func setTraceLevel(level string) error {
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "Debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "Info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "Error":
			t.SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level: %s", level)
		}
	}
	tracer().Infof("Trace level is %s", level)

	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
