package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrid builds a Grid from rows of '#' (wall) and '.' (floor) glyphs.
func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x := range row {
			cells[y][x] = row[x] == '#'
		}
	}
	g, err := NewGrid(cells)
	require.NoError(t, err)
	return g
}

// openGrid builds a fully walkable width x height grid.
func openGrid(t *testing.T, width, height int) *Grid {
	t.Helper()
	rows := make([]string, height)
	for y := range rows {
		rows[y] = strings.Repeat(".", width)
	}
	return mustGrid(t, rows...)
}

// borderedGrid builds a grid whose outermost ring is walls.
func borderedGrid(t *testing.T, width, height int) *Grid {
	t.Helper()
	rows := make([]string, height)
	for y := range rows {
		if y == 0 || y == height-1 {
			rows[y] = strings.Repeat("#", width)
		} else {
			rows[y] = "#" + strings.Repeat(".", width-2) + "#"
		}
	}
	return mustGrid(t, rows...)
}

func TestNewGridRejectsEmpty(t *testing.T) {
	_, err := NewGrid(nil)
	require.Error(t, err)

	_, err = NewGrid([][]bool{})
	require.Error(t, err)

	_, err = NewGrid([][]bool{{}})
	require.Error(t, err)
}

func TestNewGridRejectsRaggedRows(t *testing.T) {
	_, err := NewGrid([][]bool{
		{false, false, false},
		{false, false},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ragged")
}

func TestWalkableBounds(t *testing.T) {
	g := mustGrid(t,
		"...",
		".#.",
		"...",
	)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())

	assert.True(t, g.Walkable(0, 0))
	assert.False(t, g.Walkable(1, 1))
	assert.True(t, g.Walkable(2, 2))

	assert.False(t, g.Walkable(-1, 0))
	assert.False(t, g.Walkable(0, -1))
	assert.False(t, g.Walkable(3, 0))
	assert.False(t, g.Walkable(0, 3))
}
