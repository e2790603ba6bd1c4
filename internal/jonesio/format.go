package jonesio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/David-McKenna/dreamBeam/internal/jones"
	"github.com/David-McKenna/dreamBeam/internal/units"
)

// Format selects the output serialization.
type Format string

const (
	// FormatCSV is comma-delimited with a header line, ISO-8601 UTC
	// timestamps, and one combined token per complex value.
	FormatCSV Format = "csv"

	// FormatPAC is the legacy space-delimited format the pac tool
	// consumes: no header, times as modified Julian dates, and each
	// complex value as two real/imaginary tokens.
	FormatPAC Format = "pac"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatPAC:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want csv or pac)", s)
	}
}

// Header lines for the two csv extraction modes.
const (
	csvHeaderFull   = "Time, Freq, J00, J01, J10, J11"
	csvHeaderPinned = "Time, Freq, J11, J12, J21, J22"
)

// Time layouts matching datetime.isoformat() for a naive UTC instant:
// whole seconds normally, six fractional digits when the instant has a
// sub-second component.
const (
	isoTime     = "2006-01-02T15:04:05"
	isoTimeFrac = "2006-01-02T15:04:05.000000"
)

func isoFormat(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond() != 0 {
		return t.Format(isoTimeFrac)
	}
	return t.Format(isoTime)
}

// WriteGrid emits one row per (time, frequency) pair, time-outer and
// frequency-inner, in the requested format.
func WriteGrid(w io.Writer, g *jones.JonesGrid, frmt Format) error {
	bw := bufio.NewWriter(w)
	if frmt == FormatCSV {
		fmt.Fprintln(bw, csvHeaderFull)
	}
	for ti, instant := range g.Times {
		for fi, freq := range g.Freqs {
			j := g.Tensor[fi][ti]
			if err := writeRow(bw, frmt, instant, freq, j); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteChannel emits one row per time sample for the single channel fi. Rows
// carry the caller's requested frequency freq, which may differ from the
// channel's own value within the selection tolerance.
func WriteChannel(w io.Writer, g *jones.JonesGrid, fi int, freq float64, frmt Format) error {
	if fi < 0 || fi >= len(g.Freqs) {
		return fmt.Errorf("channel index %d out of range [0, %d)", fi, len(g.Freqs))
	}

	bw := bufio.NewWriter(w)
	if frmt == FormatCSV {
		fmt.Fprintln(bw, csvHeaderPinned)
	}
	for ti, instant := range g.Times {
		if err := writeRow(bw, frmt, instant, freq, g.Tensor[fi][ti]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(w io.Writer, frmt Format, instant time.Time, freq float64, j [2][2]complex128) error {
	var fields []string
	switch frmt {
	case FormatCSV:
		fields = []string{
			isoFormat(instant),
			formatFloat(freq),
			strconv.FormatComplex(j[0][0], 'g', -1, 128),
			strconv.FormatComplex(j[0][1], 'g', -1, 128),
			strconv.FormatComplex(j[1][0], 'g', -1, 128),
			strconv.FormatComplex(j[1][1], 'g', -1, 128),
		}
		_, err := fmt.Fprintln(w, strings.Join(fields, ","))
		return err
	case FormatPAC:
		fields = []string{
			formatFloat(units.MJD(instant)),
			formatFloat(freq),
			pacComplex(j[0][0]),
			pacComplex(j[0][1]),
			pacComplex(j[1][0]),
			pacComplex(j[1][1]),
		}
		_, err := fmt.Fprintln(w, strings.Join(fields, " "))
		return err
	default:
		return fmt.Errorf("unknown output format %q", frmt)
	}
}

// pacComplex renders a complex value as two separate decimal tokens.
func pacComplex(v complex128) string {
	return formatFloat(real(v)) + " " + formatFloat(imag(v))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
