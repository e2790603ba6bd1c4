package jones

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-McKenna/dreamBeam/internal/telescope"
)

func TestTimeAxis(t *testing.T) {
	begin := time.Date(2012, 4, 1, 1, 2, 3, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		step     time.Duration
		count    int
	}{
		{"60s at 1s is inclusive", 60 * time.Second, time.Second, 61},
		{"zero duration yields the begin instant", 0, time.Second, 1},
		{"non-multiple duration drops the partial step", 5 * time.Second, 2 * time.Second, 3},
		{"sub-second steps", time.Second, 250 * time.Millisecond, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times, err := TimeAxis(begin, tt.duration, tt.step)
			require.NoError(t, err)
			require.Len(t, times, tt.count)

			assert.True(t, times[0].Equal(begin))
			for i := 1; i < len(times); i++ {
				assert.Equal(t, tt.step, times[i].Sub(times[i-1]))
			}
		})
	}
}

func TestTimeAxisInvalid(t *testing.T) {
	begin := time.Date(2012, 4, 1, 1, 2, 3, 0, time.UTC)

	_, err := TimeAxis(begin, time.Minute, 0)
	assert.True(t, errors.Is(err, telescope.ErrInvalidArgument), "zero step: got %v", err)

	_, err = TimeAxis(begin, time.Minute, -time.Second)
	assert.True(t, errors.Is(err, telescope.ErrInvalidArgument), "negative step: got %v", err)

	_, err = TimeAxis(begin, -time.Second, time.Second)
	assert.True(t, errors.Is(err, telescope.ErrInvalidArgument), "negative duration: got %v", err)
}

func TestJonesGridValidate(t *testing.T) {
	begin := time.Date(2012, 4, 1, 0, 0, 0, 0, time.UTC)
	times, err := TimeAxis(begin, 2*time.Second, time.Second)
	require.NoError(t, err)

	grid := JonesGrid{
		Times:  times,
		Freqs:  []float64{100e6, 110e6},
		Tensor: [][][2][2]complex128{make([][2][2]complex128, 3), make([][2][2]complex128, 3)},
	}
	assert.NoError(t, grid.Validate())

	t.Run("frequency plane count mismatch", func(t *testing.T) {
		bad := grid
		bad.Freqs = []float64{100e6}
		assert.Error(t, bad.Validate())
	})

	t.Run("time sample count mismatch", func(t *testing.T) {
		bad := grid
		bad.Tensor = [][][2][2]complex128{make([][2][2]complex128, 3), make([][2][2]complex128, 2)}
		assert.Error(t, bad.Validate())
	})
}
