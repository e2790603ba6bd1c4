// Package jones computes time/frequency grids of polarimetric response
// (Jones) matrices for a station tracking a fixed celestial direction. The
// Generator interface is the boundary to the beam-model and coordinate
// subsystem; Tracker is the built-in implementation.
package jones

import (
	"fmt"
	"time"

	"github.com/David-McKenna/dreamBeam/internal/telescope"
)

// JonesGrid is a grid of 2x2 complex response matrices over time and
// frequency. Tensor is indexed [frequency][time][row][col]; its shape is
// always (len(Freqs), len(Times), 2, 2). Frequencies are the channelization
// of the beam model that produced the grid, never user-chosen.
type JonesGrid struct {
	Times  []time.Time
	Freqs  []float64
	Tensor [][][2][2]complex128
}

// Validate checks the grid's shape invariant.
func (g *JonesGrid) Validate() error {
	if len(g.Tensor) != len(g.Freqs) {
		return fmt.Errorf("jones grid has %d frequency planes for %d channels: %w",
			len(g.Tensor), len(g.Freqs), telescope.ErrInvalidArgument)
	}
	for i, plane := range g.Tensor {
		if len(plane) != len(g.Times) {
			return fmt.Errorf("jones grid channel %d has %d time samples, want %d: %w",
				i, len(plane), len(g.Times), telescope.ErrInvalidArgument)
		}
	}
	return nil
}

// TimeAxis builds the sample instants for a tracking window: begin plus every
// whole step up to and including duration, so a 60 s window at 1 s steps
// yields 61 samples. The axis is well defined even when the duration is not
// an exact multiple of the step; the final partial step is not sampled.
func TimeAxis(begin time.Time, duration, step time.Duration) ([]time.Time, error) {
	if step <= 0 {
		return nil, fmt.Errorf("time step must be positive, got %v: %w",
			step, telescope.ErrInvalidArgument)
	}
	if duration < 0 {
		return nil, fmt.Errorf("duration must be non-negative, got %v: %w",
			duration, telescope.ErrInvalidArgument)
	}

	n := int(duration/step) + 1
	times := make([]time.Time, n)
	for i := range times {
		times[i] = begin.Add(time.Duration(i) * step).UTC()
	}
	return times, nil
}
