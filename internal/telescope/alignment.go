package telescope

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

func (s *Store) alignmentPath(telescope, station, band string) string {
	return filepath.Join(s.Root, telescope, "share", "alignment",
		fmt.Sprintf("%s_%s.txt", station, band))
}

// ReadAlignment parses the alignment (rotation) matrix file for
// (telescope, station, band). The matrix shape comes entirely from the file;
// squareness is not enforced, but all rows must hold the same number of
// columns.
func (s *Store) ReadAlignment(telescope, station, band string) (*mat.Dense, error) {
	path := s.alignmentPath(telescope, station, band)
	data, err := s.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("alignment %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("alignment %s: %v", path, err)
	}

	var (
		values []float64
		rows   int
		cols   int
	)
	for i, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("alignment %s line %d: expected %d columns, got %d: %w",
				path, i+1, cols, len(fields), ErrMalformed)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("alignment %s line %d: %v: %w", path, i+1, err, ErrMalformed)
			}
			values = append(values, v)
		}
		rows++
	}

	if rows == 0 {
		return nil, fmt.Errorf("alignment %s: empty file: %w", path, ErrMalformed)
	}

	return mat.NewDense(rows, cols, values), nil
}
