// Package jonesio selects channels from Jones grids and serializes them as
// csv or pac text, or as channel-power plots.
package jonesio

import (
	"errors"
	"fmt"
	"math"
)

// ChannelTolerance is the absolute frequency tolerance, in Hz, within which
// a requested frequency matches a channel.
const ChannelTolerance = 190e3

var (
	// ErrFreqOutOfRange marks a requested frequency outside the band
	// extent, checked before any channel-distance computation.
	ErrFreqOutOfRange = errors.New("requested frequency outside band")

	// ErrNoMatchingChannel marks an in-range frequency with no channel
	// within tolerance.
	ErrNoMatchingChannel = errors.New("no channel within tolerance of requested frequency")
)

// SelectChannel returns the index of the channel in freqs (ascending) closest
// to freq. Frequencies below freqs[0] or above freqs[len-1] fail with
// ErrFreqOutOfRange; in-range frequencies farther than ChannelTolerance from
// every channel fail with ErrNoMatchingChannel.
func SelectChannel(freqs []float64, freq float64) (int, error) {
	if len(freqs) == 0 {
		return 0, fmt.Errorf("empty frequency axis: %w", ErrFreqOutOfRange)
	}
	if freq < freqs[0] || freq > freqs[len(freqs)-1] {
		return 0, fmt.Errorf("frequency %g Hz outside band [%g, %g]: %w",
			freq, freqs[0], freqs[len(freqs)-1], ErrFreqOutOfRange)
	}

	best := -1
	bestDist := math.Inf(1)
	for i, f := range freqs {
		if d := math.Abs(f - freq); d < bestDist {
			best = i
			bestDist = d
		}
	}
	if bestDist > ChannelTolerance {
		return 0, fmt.Errorf("frequency %g Hz is %g Hz from nearest channel (tolerance %g): %w",
			freq, bestDist, float64(ChannelTolerance), ErrNoMatchingChannel)
	}
	return best, nil
}
