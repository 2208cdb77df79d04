package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	t.Parallel()
	b := NewBuffer(32)
	defer b.Destroy()

	assert.Equal(t, 32, b.Len())
	assert.Len(t, b.Bytes(), 32)
}

func TestFromSlice_Copies(t *testing.T) {
	t.Parallel()
	src := []byte{1, 2, 3, 4}
	b := FromSlice(src)
	defer b.Destroy()

	assert.Equal(t, src, b.Bytes())

	// Mutating the source must not affect the buffer.
	src[0] = 99
	assert.Equal(t, byte(1), b.Bytes()[0])
}

func TestDestroy_ZerosAndReleases(t *testing.T) {
	t.Parallel()
	b := FromSlice([]byte{0xaa, 0xbb, 0xcc})
	data := b.Bytes()

	b.Destroy()

	assert.Nil(t, b.Bytes())
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.IsLocked())
	for i, v := range data {
		assert.Zero(t, v, "byte %d not zeroed", i)
	}
}

func TestDestroy_Idempotent(t *testing.T) {
	t.Parallel()
	b := FromSlice([]byte{1})
	b.Destroy()
	assert.NotPanics(t, b.Destroy)
}

func TestZero(t *testing.T) {
	t.Parallel()
	data := []byte{1, 2, 3}
	Zero(data)
	assert.Equal(t, []byte{0, 0, 0}, data)
}

func TestRandomBytes(t *testing.T) {
	t.Parallel()
	b1, err := RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, b1, 32)

	b2, err := RandomBytes(32)
	require.NoError(t, err)
	assert.NotEqual(t, b1, b2)
}
