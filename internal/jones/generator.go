package jones

import (
	"errors"
	"time"
)

// ErrBeforeEpoch marks a requested window that begins before the telescope
// model's epoch availability.
var ErrBeforeEpoch = errors.New("window precedes telescope epoch availability")

// CelestialDirection is a tracked pointing: right ascension and declination
// in radians within a named reference frame (only J2000 is supported).
type CelestialDirection struct {
	RA    float64
	Dec   float64
	Frame string
}

// TrackRequest describes one on-axis tracking computation.
type TrackRequest struct {
	Telescope string
	Station   string
	Band      string
	BeamModel string

	Begin    time.Time
	Duration time.Duration
	Step     time.Duration

	Direction CelestialDirection

	// ParallacticRot selects whether the parallactic rotation correction
	// is applied to each output Jones matrix.
	ParallacticRot bool
}

// Diagnostic is the per-sample record the display collaborator consumes:
// the instantaneous parallactic angle and the topocentric pointing used in
// the correction, all in radians.
type Diagnostic struct {
	Time             time.Time
	ParallacticAngle float64
	Azimuth          float64
	Elevation        float64
}

// TrackResult is the grid plus its per-sample diagnostics.
type TrackResult struct {
	Grid        JonesGrid
	Diagnostics []Diagnostic
}

// Generator computes a Jones grid for a tracked pointing. Geometry and
// catalog failures propagate unchanged; the frequency axis is fixed by the
// beam model's channelization regardless of the requested window.
type Generator interface {
	Track(req TrackRequest) (TrackResult, error)
}
