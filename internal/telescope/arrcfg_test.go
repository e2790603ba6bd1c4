package telescope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-McKenna/dreamBeam/internal/fsutil"
)

const lofarHBACfg = ` 3370287.366  712053.586  5349991.228  31.3  SE607
 3370272.092  712125.596  5349990.934  31.3  SE608
 3370312.664  712000.551  5349985.717  31.3  UK608
`

func newTestStore(t *testing.T) (*Store, *fsutil.MemoryFileSystem) {
	t.Helper()
	fs := fsutil.NewMemoryFileSystem()
	return &Store{FS: fs, Root: "refdata"}, fs
}

func writeArrayConfig(t *testing.T, fs *fsutil.MemoryFileSystem, telescope, band, contents string) {
	t.Helper()
	path := "refdata/" + telescope + "/share/simmos/" + telescope + "_" + band + ".cfg"
	require.NoError(t, fs.WriteFile(path, []byte(contents), 0644))
}

func writeAlignment(t *testing.T, fs *fsutil.MemoryFileSystem, telescope, station, band, contents string) {
	t.Helper()
	path := "refdata/" + telescope + "/share/alignment/" + station + "_" + band + ".txt"
	require.NoError(t, fs.WriteFile(path, []byte(contents), 0644))
}

func TestReadArrayConfig(t *testing.T) {
	store, fs := newTestStore(t)
	writeArrayConfig(t, fs, "LOFAR", "HBA", lofarHBACfg)

	records, err := store.ReadArrayConfig("LOFAR", "HBA")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "SE607", records[0].Name)
	assert.Equal(t, [3]float64{3370287.366, 712053.586, 5349991.228}, records[0].Pos)
	assert.Equal(t, 31.3, records[0].Diam)
	assert.Equal(t, "UK608", records[2].Name)
}

func TestReadArrayConfigSkipsBlankLines(t *testing.T) {
	store, fs := newTestStore(t)
	writeArrayConfig(t, fs, "LOFAR", "LBA", "\n1 2 3 4 A\n\n5 6 7 8 B\n\n")

	records, err := store.ReadArrayConfig("LOFAR", "LBA")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Name)
	assert.Equal(t, "B", records[1].Name)
}

func TestReadArrayConfigMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.ReadArrayConfig("LOFAR", "HBA")
	assert.True(t, errors.Is(err, ErrNotFound), "want ErrNotFound, got %v", err)
}

func TestReadArrayConfigMalformed(t *testing.T) {
	store, fs := newTestStore(t)

	t.Run("wrong field count", func(t *testing.T) {
		writeArrayConfig(t, fs, "LOFAR", "HBA", "1 2 3 SE607\n")
		_, err := store.ReadArrayConfig("LOFAR", "HBA")
		assert.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)
	})

	t.Run("non-numeric position", func(t *testing.T) {
		writeArrayConfig(t, fs, "LOFAR", "HBA", "1 two 3 4 SE607\n")
		_, err := store.ReadArrayConfig("LOFAR", "HBA")
		assert.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)
	})

	t.Run("non-numeric diameter", func(t *testing.T) {
		writeArrayConfig(t, fs, "LOFAR", "HBA", "1 2 3 big SE607\n")
		_, err := store.ReadArrayConfig("LOFAR", "HBA")
		assert.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)
	})
}

func TestReadArrayConfigKeepsDuplicates(t *testing.T) {
	store, fs := newTestStore(t)
	writeArrayConfig(t, fs, "LOFAR", "HBA", "1 2 3 4 SE607\n5 6 7 8 SE607\n")

	records, err := store.ReadArrayConfig("LOFAR", "HBA")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, records[0].Name, records[1].Name)
}
