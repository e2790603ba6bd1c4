// Command pointing-jones prints or plots the Jones response matrices of one
// telescope station tracking a fixed celestial direction.
//
// Example:
//
//	pointing-jones print LOFAR HBA SE607 Hamaker 2012-04-01T01:02:03 \
//	    60 1 6.11 1.02 60e6
//
// prints the Jones matrices of LOFAR station SE607 in the HBA band at 60 MHz,
// tracking RA-DEC 6.11 1.02 (radians, J2000) for 60 s from the given start
// time, using the Hamaker beam model.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/David-McKenna/dreamBeam/internal/jones"
	"github.com/David-McKenna/dreamBeam/internal/jonesio"
)

var (
	frmt    = flag.String("frmt", "csv", "Output format: csv or pac")
	pararot = flag.Bool("pararot", true, "Apply the parallactic rotation correction")
	dataDir = flag.String("data", defaultDataDir(), "Reference data root directory")
	plotDir = flag.String("plotdir", ".", "Directory for plot output")
)

const usage = `Usage:
  pointing-jones [flags] print|plot telescope band stnID beammodel beginUTC duration timeStep pointingRA pointingDEC [frequency]`

const timeLayout = "2006-01-02T15:04:05"

func defaultDataDir() string {
	if dir := os.Getenv("DREAMBEAM_DATA"); dir != "" {
		return dir
	}
	return "."
}

// runConfig is the fully parsed command line.
type runConfig struct {
	Action    string
	Telescope string
	Band      string
	Station   string
	BeamModel string

	Begin    time.Time
	Duration time.Duration
	Step     time.Duration

	Direction jones.CelestialDirection

	Freq    float64
	HasFreq bool

	ParallacticRot bool
}

// parseArgs validates the positional arguments.
func parseArgs(args []string) (*runConfig, error) {
	next := func(want string) (string, error) {
		if len(args) == 0 {
			return "", fmt.Errorf("specify %s", want)
		}
		arg := args[0]
		args = args[1:]
		return arg, nil
	}

	cfg := &runConfig{}
	var err error

	if cfg.Action, err = next("output-type: 'print' or 'plot'"); err != nil {
		return nil, err
	}
	if cfg.Action != "print" && cfg.Action != "plot" {
		return nil, fmt.Errorf("unknown output-type %q: 'print' or 'plot'", cfg.Action)
	}
	if cfg.Telescope, err = next("telescope"); err != nil {
		return nil, err
	}
	if cfg.Band, err = next("band/feed"); err != nil {
		return nil, err
	}
	if cfg.Station, err = next("station-ID"); err != nil {
		return nil, err
	}
	if cfg.BeamModel, err = next("beam-model"); err != nil {
		return nil, err
	}

	beginArg, err := next("start-time (UTC in ISO format: yyyy-mm-ddTHH:MM:SS)")
	if err != nil {
		return nil, err
	}
	cfg.Begin, err = time.Parse(timeLayout, beginArg)
	if err != nil {
		return nil, fmt.Errorf("wrong start-time format %q (yyyy-mm-ddTHH:MM:SS)", beginArg)
	}

	if cfg.Duration, err = nextSeconds(&args, "duration (in seconds)"); err != nil {
		return nil, err
	}
	if cfg.Step, err = nextSeconds(&args, "step-time (in seconds)"); err != nil {
		return nil, err
	}

	raArg, err := next("pointing direction (in radians): RA DEC")
	if err != nil {
		return nil, err
	}
	decArg, err := next("pointing direction (in radians): RA DEC")
	if err != nil {
		return nil, err
	}
	cfg.Direction.RA, err = strconv.ParseFloat(raArg, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed RA %q: specify radians", raArg)
	}
	cfg.Direction.Dec, err = strconv.ParseFloat(decArg, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed DEC %q: specify radians", decArg)
	}
	cfg.Direction.Frame = "J2000"

	if len(args) > 0 {
		cfg.Freq, err = strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed frequency %q: specify Hz", args[0])
		}
		cfg.HasFreq = true
	}

	return cfg, nil
}

func nextSeconds(args *[]string, want string) (time.Duration, error) {
	if len(*args) == 0 {
		return 0, fmt.Errorf("specify %s", want)
	}
	arg := (*args)[0]
	*args = (*args)[1:]

	sec, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s: %q", want, arg)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

// run executes a parsed command against a generator, writing print output
// to w.
func run(cfg *runConfig, gen jones.Generator, format jonesio.Format, plotOut string, w io.Writer) error {
	res, err := gen.Track(jones.TrackRequest{
		Telescope:      cfg.Telescope,
		Station:        cfg.Station,
		Band:           cfg.Band,
		BeamModel:      cfg.BeamModel,
		Begin:          cfg.Begin,
		Duration:       cfg.Duration,
		Step:           cfg.Step,
		Direction:      cfg.Direction,
		ParallacticRot: cfg.ParallacticRot,
	})
	if err != nil {
		return err
	}
	grid := &res.Grid

	if !cfg.HasFreq {
		if cfg.Action == "plot" {
			// Full-grid plotting picks the mid-band channel.
			files, err := jonesio.PlotChannelPower(plotOut, grid, len(grid.Freqs)/2)
			if err != nil {
				return err
			}
			log.Printf("wrote %v", files)
			return nil
		}
		return jonesio.WriteGrid(w, grid, format)
	}

	idx, err := jonesio.SelectChannel(grid.Freqs, cfg.Freq)
	if err != nil {
		return err
	}
	if cfg.Action == "plot" {
		files, err := jonesio.PlotChannelPower(plotOut, grid, idx)
		if err != nil {
			return err
		}
		log.Printf("wrote %v", files)
		return nil
	}
	return jonesio.WriteChannel(w, grid, idx, cfg.Freq, format)
}

func main() {
	flag.Parse()

	cfg, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg.ParallacticRot = *pararot

	format, err := jonesio.ParseFormat(*frmt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	gen := jones.NewTracker(*dataDir)
	if err := run(cfg, gen, format, *plotDir, os.Stdout); err != nil {
		if errors.Is(err, jonesio.ErrFreqOutOfRange) || errors.Is(err, jonesio.ErrNoMatchingChannel) {
			log.Fatalf("frequency selection failed: %v", err)
		}
		log.Fatalf("pointing-jones failed: %v", err)
	}
}
