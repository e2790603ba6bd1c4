package telescope

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StationGeometry is a station's telescope-centric position joined with its
// alignment rotation. Constructed only once the station name is confirmed
// present in the array configuration; the rotation is loaded independently
// and may be missing even for a listed station.
type StationGeometry struct {
	Pos [3]float64
	Rot *mat.Dense
}

// ResolveStationGeometry answers "what is station's position and orientation
// for (telescope, band)?". The position comes from the first matching name in
// the array configuration; the rotation from the station's alignment file.
// The two lookups do not cross-validate: a listed station with no alignment
// file fails here with ErrNotFound rather than at load time.
func (s *Store) ResolveStationGeometry(telescope, station, band string) (StationGeometry, error) {
	records, err := s.ReadArrayConfig(telescope, band)
	if err != nil {
		return StationGeometry{}, err
	}

	idx := -1
	for i, rec := range records {
		if rec.Name == station {
			idx = i
			break
		}
	}
	if idx < 0 {
		return StationGeometry{}, fmt.Errorf("station %q not in %s %s configuration: %w",
			station, telescope, band, ErrNotFound)
	}

	rot, err := s.ReadAlignment(telescope, station, band)
	if err != nil {
		return StationGeometry{}, err
	}

	return StationGeometry{Pos: records[idx].Pos, Rot: rot}, nil
}

// ListStations returns all station names for (telescope, band) in file order,
// duplicates included. The band must be concrete: the configuration filename
// is built from it, so an empty band fails with ErrInvalidArgument before any
// file access.
func (s *Store) ListStations(telescope, band string) ([]string, error) {
	if band == "" {
		return nil, fmt.Errorf("band must be specified to list %s stations: %w",
			telescope, ErrInvalidArgument)
	}

	records, err := s.ReadArrayConfig(telescope, band)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}
	return names, nil
}
