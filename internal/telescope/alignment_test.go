package telescope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const identityRot = "1 0 0\n0 1 0\n0 0 1\n"

func TestReadAlignment(t *testing.T) {
	store, fs := newTestStore(t)
	writeAlignment(t, fs, "LOFAR", "SE607", "HBA",
		" 0.866 -0.5 0\n 0.5 0.866 0\n 0 0 1\n")

	rot, err := store.ReadAlignment("LOFAR", "SE607", "HBA")
	require.NoError(t, err)

	r, c := rot.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.866, rot.At(0, 0))
	assert.Equal(t, -0.5, rot.At(0, 1))
	assert.Equal(t, 1.0, rot.At(2, 2))
}

func TestReadAlignmentShapeFromFile(t *testing.T) {
	// The loader does not enforce squareness: shape follows the file.
	store, fs := newTestStore(t)
	writeAlignment(t, fs, "LOFAR", "SE607", "LBA", "1 2 3 4\n5 6 7 8\n")

	rot, err := store.ReadAlignment("LOFAR", "SE607", "LBA")
	require.NoError(t, err)

	r, c := rot.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, c)
}

func TestReadAlignmentMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.ReadAlignment("LOFAR", "SE607", "HBA")
	assert.True(t, errors.Is(err, ErrNotFound), "want ErrNotFound, got %v", err)
}

func TestReadAlignmentMalformed(t *testing.T) {
	store, fs := newTestStore(t)

	t.Run("non-numeric", func(t *testing.T) {
		writeAlignment(t, fs, "LOFAR", "SE607", "HBA", "1 0 0\n0 one 0\n0 0 1\n")
		_, err := store.ReadAlignment("LOFAR", "SE607", "HBA")
		assert.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)
	})

	t.Run("ragged rows", func(t *testing.T) {
		writeAlignment(t, fs, "LOFAR", "SE607", "HBA", "1 0 0\n0 1\n")
		_, err := store.ReadAlignment("LOFAR", "SE607", "HBA")
		assert.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)
	})

	t.Run("empty file", func(t *testing.T) {
		writeAlignment(t, fs, "LOFAR", "SE607", "HBA", "\n\n")
		_, err := store.ReadAlignment("LOFAR", "SE607", "HBA")
		assert.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)
	})
}
