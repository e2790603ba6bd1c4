package jones

import (
	"math"

	"github.com/David-McKenna/dreamBeam/internal/telescope"
)

// hamakerElement is the Hamaker dual-polarized element variant: a crossed
// pair of dipoles along the station frame's x and y axes, projected onto the
// spherical (theta, phi) field basis of the arriving radiation and scaled by
// the model's per-channel gain.
type hamakerElement struct {
	channels []float64
	gains    []float64
}

func newHamakerElement(m *telescope.Model) ElementResponse {
	return &hamakerElement{channels: m.Channels, gains: m.Gains}
}

// JonesAt returns the element Jones toward station-frame (az, el) at freq.
// Directions below the horizon get a zero response.
func (h *hamakerElement) JonesAt(freq, az, el float64) [2][2]complex128 {
	if el < 0 {
		return [2][2]complex128{}
	}

	g := complex(h.gain(freq), 0)
	sinAz, cosAz := math.Sincos(az)
	sinEl := math.Sin(el)

	// Columns are the (theta, phi) field components; rows the p (x dipole)
	// and q (y dipole) feeds.
	return [2][2]complex128{
		{g * complex(cosAz*sinEl, 0), g * complex(-sinAz, 0)},
		{g * complex(sinAz*sinEl, 0), g * complex(cosAz, 0)},
	}
}

// gain linearly interpolates the per-channel gains at freq; models without
// gains are unscaled.
func (h *hamakerElement) gain(freq float64) float64 {
	if len(h.gains) == 0 || len(h.gains) != len(h.channels) {
		return 1.0
	}
	if freq <= h.channels[0] {
		return h.gains[0]
	}
	last := len(h.channels) - 1
	if freq >= h.channels[last] {
		return h.gains[last]
	}
	for i := 0; i < last; i++ {
		lo, hi := h.channels[i], h.channels[i+1]
		if freq >= lo && freq <= hi {
			frac := (freq - lo) / (hi - lo)
			return h.gains[i] + frac*(h.gains[i+1]-h.gains[i])
		}
	}
	return h.gains[last]
}
