package jones

import (
	"fmt"

	"github.com/David-McKenna/dreamBeam/internal/telescope"
)

// ElementResponse is the antenna-element polarimetry capability: the Jones
// matrix of the element toward a station-frame direction at one frequency.
// Azimuth and elevation are in radians.
type ElementResponse interface {
	JonesAt(freq, az, el float64) [2][2]complex128
}

// elementFactory builds a response variant from a telescope model's
// parameters.
type elementFactory func(*telescope.Model) ElementResponse

// beamModels is the registry of response variants, selected by the model's
// beam-model name.
var beamModels = map[string]elementFactory{
	"Hamaker": newHamakerElement,
}

// ElementFor resolves the beam-model variant named by the model. Unknown
// names fail with telescope.ErrNotFound.
func ElementFor(m *telescope.Model) (ElementResponse, error) {
	factory, ok := beamModels[m.BeamModel]
	if !ok {
		return nil, fmt.Errorf("beam model %q: %w", m.BeamModel, telescope.ErrNotFound)
	}
	return factory(m), nil
}
