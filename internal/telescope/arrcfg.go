// Package telescope resolves the physical geometry of radio-telescope
// stations from on-disk reference data: CASA-style array-configuration files
// for positions and per-station alignment files for orientations, joined by
// a resolver, plus a catalog of persisted beam-model objects.
package telescope

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/David-McKenna/dreamBeam/internal/fsutil"
)

// StationRecord is one row of a CASA array-configuration file: a station
// name (at most 5 characters by file format; longer names arrive truncated),
// its telescope-centric Cartesian position in meters, and its dish diameter.
type StationRecord struct {
	Name string
	Pos  [3]float64
	Diam float64
}

// Store reads station reference data rooted at a directory. Every call
// re-reads its source file; nothing is cached between calls.
type Store struct {
	FS   fsutil.FileSystem
	Root string
}

// NewStore returns a Store reading from the OS filesystem under root.
func NewStore(root string) *Store {
	return &Store{FS: fsutil.OSFileSystem{}, Root: root}
}

func (s *Store) arrayConfigPath(telescope, band string) string {
	return filepath.Join(s.Root, telescope, "share", "simmos",
		fmt.Sprintf("%s_%s.cfg", telescope, band))
}

// ReadArrayConfig parses the array-configuration file for (telescope, band)
// into station records in file order. Rows are whitespace-delimited
// `X Y Z Diam Name`. Duplicate names are kept; downstream position lookups
// only ever reach the first occurrence.
func (s *Store) ReadArrayConfig(telescope, band string) ([]StationRecord, error) {
	path := s.arrayConfigPath(telescope, band)
	data, err := s.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("array configuration %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("array configuration %s: %v", path, err)
	}

	var records []StationRecord
	for i, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 5 {
			return nil, fmt.Errorf("array configuration %s line %d: expected 5 fields, got %d: %w",
				path, i+1, len(fields), ErrMalformed)
		}

		var rec StationRecord
		for j := 0; j < 3; j++ {
			rec.Pos[j], err = strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("array configuration %s line %d field %d: %v: %w",
					path, i+1, j+1, err, ErrMalformed)
			}
		}
		rec.Diam, err = strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("array configuration %s line %d diameter: %v: %w",
				path, i+1, err, ErrMalformed)
		}
		rec.Name = fields[4]
		records = append(records, rec)
	}

	return records, nil
}
