package jonesio

import (
	"fmt"
	"math/cmplx"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/David-McKenna/dreamBeam/internal/jones"
)

// PlotChannelPower renders the p-channel and q-channel powers of one
// frequency channel over time as PNG files in dir, returning the file paths.
// The x axis is seconds since the first time sample.
func PlotChannelPower(dir string, g *jones.JonesGrid, fi int) ([]string, error) {
	if fi < 0 || fi >= len(g.Freqs) {
		return nil, fmt.Errorf("channel index %d out of range [0, %d)", fi, len(g.Freqs))
	}
	if len(g.Times) == 0 {
		return nil, fmt.Errorf("cannot plot an empty grid")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create plot dir: %w", err)
	}

	pPts := make(plotter.XYs, len(g.Times))
	qPts := make(plotter.XYs, len(g.Times))
	for ti, instant := range g.Times {
		x := instant.Sub(g.Times[0]).Seconds()
		j := g.Tensor[fi][ti]
		pPts[ti] = plotter.XY{X: x, Y: power(j[0][0]) + power(j[0][1])}
		qPts[ti] = plotter.XY{X: x, Y: power(j[1][0]) + power(j[1][1])}
	}

	var files []string
	for _, ch := range []struct {
		name string
		pts  plotter.XYs
	}{
		{"p-channel", pPts},
		{"q-channel", qPts},
	} {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s power at %g Hz", ch.name, g.Freqs[fi])
		p.X.Label.Text = "Time (s)"
		p.Y.Label.Text = "Power"

		line, err := plotter.NewLine(ch.pts)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s line: %w", ch.name, err)
		}
		line.Width = vg.Points(1)
		p.Add(line)

		file := filepath.Join(dir, fmt.Sprintf("%s.png", ch.name))
		if err := p.Save(10*vg.Inch, 4*vg.Inch, file); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", file, err)
		}
		files = append(files, file)
	}
	return files, nil
}

func power(v complex128) float64 {
	a := cmplx.Abs(v)
	return a * a
}
