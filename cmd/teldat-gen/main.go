// Command teldat-gen writes a telescope beam-model blob into a reference
// data tree, for provisioning new telescopes and building test fixtures.
//
// Example:
//
//	teldat-gen -data ./refdata -telescope LOFAR -model Hamaker \
//	    -epoch 2010-01-01T00:00:00 -chan-start 110e6 -chan-step 195312.5 -chans 512
package main

import (
	"flag"
	"log"
	"time"

	"github.com/David-McKenna/dreamBeam/internal/telescope"
)

var (
	dataDir   = flag.String("data", ".", "Reference data root directory")
	telName   = flag.String("telescope", "", "Telescope name (required)")
	beamModel = flag.String("model", "Hamaker", "Beam model name")
	epoch     = flag.String("epoch", "2000-01-01T00:00:00", "Model epoch availability (UTC)")
	chanStart = flag.Float64("chan-start", 110e6, "First channel frequency in Hz")
	chanStep  = flag.Float64("chan-step", 195312.5, "Channel spacing in Hz")
	chanCount = flag.Int("chans", 512, "Number of channels")
)

func main() {
	flag.Parse()

	if *telName == "" {
		log.Fatal("telescope name is required")
	}
	if *chanCount <= 0 || *chanStep <= 0 {
		log.Fatal("channel count and spacing must be positive")
	}

	epochStart, err := time.Parse("2006-01-02T15:04:05", *epoch)
	if err != nil {
		log.Fatalf("malformed epoch %q: %v", *epoch, err)
	}

	channels := make([]float64, *chanCount)
	for i := range channels {
		channels[i] = *chanStart + float64(i)*(*chanStep)
	}

	model := &telescope.Model{
		Telescope:  *telName,
		BeamModel:  *beamModel,
		EpochStart: epochStart.UTC(),
		Channels:   channels,
	}

	cat := telescope.NewCatalog(*dataDir)
	if err := cat.PutTelescopeModel(model); err != nil {
		log.Fatalf("failed to write telescope model: %v", err)
	}
	log.Printf("wrote %s (%d channels, %g-%g Hz)",
		cat.ModelPath(*telName, *beamModel), len(channels),
		channels[0], channels[len(channels)-1])
}
