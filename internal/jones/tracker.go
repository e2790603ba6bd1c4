package jones

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/David-McKenna/dreamBeam/internal/telescope"
	"github.com/David-McKenna/dreamBeam/internal/units"
)

// Tracker is the built-in Generator. For each time sample it rotates the
// J2000 spherical basis at the tracked direction into the station frame
// (earth rotation via GMST, then the station alignment), derives the
// topocentric pointing, computes the parallactic rotation from the two bases,
// and applies the beam model's element response on every channel.
type Tracker struct {
	Store   *telescope.Store
	Catalog *telescope.Catalog
}

// NewTracker builds a Tracker over a shared reference-data root.
func NewTracker(root string) *Tracker {
	return &Tracker{
		Store:   telescope.NewStore(root),
		Catalog: telescope.NewCatalog(root),
	}
}

var _ Generator = (*Tracker)(nil)

// Track computes the Jones grid for req.
func (t *Tracker) Track(req TrackRequest) (TrackResult, error) {
	if req.Direction.Frame != "" && req.Direction.Frame != "J2000" {
		return TrackResult{}, fmt.Errorf("unsupported reference frame %q: %w",
			req.Direction.Frame, telescope.ErrInvalidArgument)
	}

	geom, err := t.Store.ResolveStationGeometry(req.Telescope, req.Station, req.Band)
	if err != nil {
		return TrackResult{}, err
	}
	if r, c := geom.Rot.Dims(); r != 3 || c != 3 {
		return TrackResult{}, fmt.Errorf("station %s alignment is %dx%d, need 3x3: %w",
			req.Station, r, c, telescope.ErrMalformed)
	}

	model, err := t.Catalog.GetTelescopeModel(req.Telescope, req.BeamModel)
	if err != nil {
		return TrackResult{}, err
	}
	if !model.EpochStart.IsZero() && req.Begin.Before(model.EpochStart) {
		return TrackResult{}, fmt.Errorf("begin %s before %s model epoch %s: %w",
			req.Begin.UTC().Format(time.RFC3339), req.Telescope,
			model.EpochStart.UTC().Format(time.RFC3339), ErrBeforeEpoch)
	}

	elem, err := ElementFor(model)
	if err != nil {
		return TrackResult{}, err
	}

	times, err := TimeAxis(req.Begin, req.Duration, req.Step)
	if err != nil {
		return TrackResult{}, err
	}

	freqs := make([]float64, len(model.Channels))
	copy(freqs, model.Channels)

	basisJ2000 := sphericalBasis(sph2cart(req.Direction.RA, req.Direction.Dec))

	tensor := make([][][2][2]complex128, len(freqs))
	for fi := range tensor {
		tensor[fi] = make([][2][2]complex128, len(times))
	}
	diags := make([]Diagnostic, len(times))

	for ti, instant := range times {
		rotated, az, el := t.pointStation(geom.Rot, basisJ2000, instant)

		para := parallacticRotation(rotated, az, el)
		angle := math.Atan2(para[1][0], para[0][0])
		if !req.ParallacticRot {
			para = [2][2]float64{{1, 0}, {0, 1}}
		}
		diags[ti] = Diagnostic{
			Time:             instant,
			ParallacticAngle: angle,
			Azimuth:          az,
			Elevation:        el,
		}

		for fi, freq := range freqs {
			e := elem.JonesAt(freq, az, el)
			tensor[fi][ti] = mul2x2(e, para)
		}
	}

	grid := JonesGrid{Times: times, Freqs: freqs, Tensor: tensor}
	if err := grid.Validate(); err != nil {
		return TrackResult{}, err
	}
	return TrackResult{Grid: grid, Diagnostics: diags}, nil
}

// pointStation rotates the J2000 basis at the target into the station frame
// at the given instant and returns the rotated basis plus the station-frame
// azimuth and elevation of the pointing.
func (t *Tracker) pointStation(stnRot *mat.Dense, basisJ2000 *mat.Dense, instant time.Time) (*mat.Dense, float64, float64) {
	var toEarth mat.Dense
	toEarth.Mul(rotZ(units.GMST(instant)), basisJ2000)

	var rotated mat.Dense
	rotated.Mul(stnRot, &toEarth)

	x, y, z := rotated.At(0, 0), rotated.At(1, 0), rotated.At(2, 0)
	az := math.Atan2(y, x)
	el := math.Asin(z / math.Sqrt(x*x+y*y+z*z))
	return &rotated, az, el
}

// parallacticRotation is the 2x2 change of polarization basis between the
// rotated J2000 spherical basis and the station-frame spherical basis along
// the same direction: B_stn[:,1:]^T * B_rotated[:,1:].
func parallacticRotation(rotated *mat.Dense, az, el float64) [2][2]float64 {
	stn := sphericalBasisAt(az, el)

	var p [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += stn.At(k, i+1) * rotated.At(k, j+1)
			}
			p[i][j] = sum
		}
	}
	return p
}

// sph2cart converts spherical angles (azimuthal, elevation-like) in radians
// to a Cartesian unit vector.
func sph2cart(lon, lat float64) [3]float64 {
	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)
	return [3]float64{cosLat * cosLon, cosLat * sinLon, sinLat}
}

// sphericalBasis builds the 3x3 matrix whose columns are the spherical basis
// vectors (r_hat, phi_hat, theta_hat) at the Cartesian direction d.
func sphericalBasis(d [3]float64) *mat.Dense {
	az := math.Atan2(d[1], d[0])
	el := math.Asin(d[2] / math.Sqrt(d[0]*d[0]+d[1]*d[1]+d[2]*d[2]))
	return sphericalBasisAt(az, el)
}

func sphericalBasisAt(az, el float64) *mat.Dense {
	sinAz, cosAz := math.Sincos(az)
	sinEl, cosEl := math.Sincos(el)
	return mat.NewDense(3, 3, []float64{
		cosEl * cosAz, -sinAz, sinEl * cosAz,
		cosEl * sinAz, cosAz, sinEl * sinAz,
		sinEl, 0, -cosEl,
	})
}

// rotZ is the frame rotation taking inertial (J2000) coordinates to
// earth-fixed coordinates for hour angle theta.
func rotZ(theta float64) *mat.Dense {
	sin, cos := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	})
}

// mul2x2 multiplies a complex element response by a real rotation.
func mul2x2(e [2][2]complex128, p [2][2]float64) [2][2]complex128 {
	var out [2][2]complex128
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = e[i][0]*complex(p[0][j], 0) + e[i][1]*complex(p[1][j], 0)
		}
	}
	return out
}
