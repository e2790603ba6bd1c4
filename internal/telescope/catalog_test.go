package telescope

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-McKenna/dreamBeam/internal/fsutil"
)

func testModel() *Model {
	return &Model{
		Telescope:  "LOFAR",
		BeamModel:  "Hamaker",
		EpochStart: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		Channels:   []float64{100e6, 110e6, 120e6},
		Gains:      []float64{1.0, 0.9, 0.8},
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	cat := &Catalog{FS: fs, Root: "refdata"}

	require.NoError(t, cat.PutTelescopeModel(testModel()))

	m, err := cat.GetTelescopeModel("LOFAR", "Hamaker")
	require.NoError(t, err)
	assert.Equal(t, testModel(), m)
}

func TestCatalogModelPath(t *testing.T) {
	cat := &Catalog{Root: "refdata"}
	assert.Equal(t, "refdata/LOFAR/data/teldat_LOFAR_Hamaker.p",
		cat.ModelPath("LOFAR", "Hamaker"))
}

func TestCatalogMissingModel(t *testing.T) {
	cat := &Catalog{FS: fsutil.NewMemoryFileSystem(), Root: "refdata"}

	_, err := cat.GetTelescopeModel("LOFAR", "Hamaker")
	assert.True(t, errors.Is(err, ErrNotFound), "want ErrNotFound, got %v", err)
}

func TestCatalogCorruptModel(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	cat := &Catalog{FS: fs, Root: "refdata"}
	require.NoError(t, fs.WriteFile(cat.ModelPath("LOFAR", "Hamaker"),
		[]byte("not a gob stream"), 0644))

	_, err := cat.GetTelescopeModel("LOFAR", "Hamaker")
	assert.True(t, errors.Is(err, ErrDeserialize), "want ErrDeserialize, got %v", err)
}

// countingFS wraps a FileSystem and counts reads, to observe caching.
type countingFS struct {
	fsutil.FileSystem
	reads int
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads++
	return c.FileSystem.ReadFile(name)
}

var _ fsutil.FileSystem = (*countingFS)(nil)

func TestCatalogDoesNotCache(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	cat := &Catalog{FS: fs, Root: "refdata"}
	require.NoError(t, cat.PutTelescopeModel(testModel()))

	counting := &countingFS{FileSystem: fs}
	cat.FS = counting

	for i := 0; i < 3; i++ {
		_, err := cat.GetTelescopeModel("LOFAR", "Hamaker")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, counting.reads)
}

func TestCatalogWriteFailure(t *testing.T) {
	cat := &Catalog{FS: readOnlyFS{}, Root: "refdata"}

	err := cat.PutTelescopeModel(testModel())
	assert.Error(t, err)
}

// readOnlyFS rejects all writes.
type readOnlyFS struct{}

func (readOnlyFS) ReadFile(string) ([]byte, error)              { return nil, os.ErrNotExist }
func (readOnlyFS) WriteFile(string, []byte, os.FileMode) error  { return os.ErrPermission }
func (readOnlyFS) MkdirAll(string, os.FileMode) error           { return os.ErrPermission }
