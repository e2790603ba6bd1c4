package telescope

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/David-McKenna/dreamBeam/internal/fsutil"
)

// Model is the persisted telescope beam-model object. Consumers treat it as
// a capability provider: the beam-model name selects a response variant in
// the jones package, the channels fix the frequency axis of every grid
// computed with it, and EpochStart bounds the usable observation window.
type Model struct {
	Telescope  string
	BeamModel  string
	EpochStart time.Time

	// Channels is the model's channelization in Hz, ascending. Grids built
	// from this model carry exactly these frequencies.
	Channels []float64

	// Gains optionally scales the element response per channel. When
	// present it must be the same length as Channels; when absent the
	// response is unscaled.
	Gains []float64
}

// Catalog maps (telescope, beamModel) identifiers to persisted Model blobs.
// There is no result caching: repeated calls re-read and re-decode the blob.
// Callers needing amortized cost must cache externally, keyed on the full
// (telescope, beamModel) pair.
type Catalog struct {
	FS   fsutil.FileSystem
	Root string
}

// NewCatalog returns a Catalog reading from the OS filesystem under root.
func NewCatalog(root string) *Catalog {
	return &Catalog{FS: fsutil.OSFileSystem{}, Root: root}
}

// ModelPath is the storage path for a model blob, a pure function of the two
// identifiers.
func (c *Catalog) ModelPath(telescope, beamModel string) string {
	return filepath.Join(c.Root, telescope, "data",
		fmt.Sprintf("teldat_%s_%s.p", telescope, beamModel))
}

// GetTelescopeModel reads and decodes the model blob for
// (telescope, beamModel).
func (c *Catalog) GetTelescopeModel(telescope, beamModel string) (*Model, error) {
	path := c.ModelPath(telescope, beamModel)
	data, err := c.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("telescope model %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("telescope model %s: %v", path, err)
	}

	var m Model
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return nil, fmt.Errorf("telescope model %s: %v: %w", path, err, ErrDeserialize)
	}
	return &m, nil
}

// PutTelescopeModel encodes and writes a model blob to its catalog path,
// creating parent directories. Used by the teldat-gen tool and test fixtures.
func (c *Catalog) PutTelescopeModel(m *Model) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("encode telescope model: %v", err)
	}

	path := c.ModelPath(m.Telescope, m.BeamModel)
	if err := c.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("telescope model %s: %v", path, err)
	}
	if err := c.FS.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("telescope model %s: %v", path, err)
	}
	return nil
}
