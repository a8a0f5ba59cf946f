package meshio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/casc/core"
)

const tetrahedronOFF = `OFF
4 4 0
0 0 0
1 0 0
0 1 0
0 0 1
3 0 1 2
3 0 1 3
3 0 2 3
3 1 2 3
`

func TestReadOFFBuildsTetrahedron(t *testing.T) {
	c := core.New(3)
	positions, err := ReadOFF(strings.NewReader(tetrahedronOFF), c)
	require.NoError(t, err)
	assert.Len(t, positions, 4)
	assert.Equal(t, 4, c.Size(1))
	assert.Equal(t, 6, c.Size(2))
	assert.Equal(t, 4, c.Size(3))
}

func TestWriteOFFRoundTrips(t *testing.T) {
	c := core.New(3)
	positions, err := ReadOFF(strings.NewReader(tetrahedronOFF), c)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteOFF(&buf, c, positions))

	c2 := core.New(3)
	positions2, err := ReadOFF(strings.NewReader(buf.String()), c2)
	require.NoError(t, err)
	assert.Equal(t, c.Size(1), c2.Size(1))
	assert.Equal(t, c.Size(2), c2.Size(2))
	assert.Equal(t, c.Size(3), c2.Size(3))
	assert.Len(t, positions2, 4)
}

func TestReadOFFRejectsMissingHeader(t *testing.T) {
	c := core.New(3)
	_, err := ReadOFF(strings.NewReader("not off\n4 4 0\n"), c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
}
