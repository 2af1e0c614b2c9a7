package gol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywang13/GameofLife/util"
)

// Build a matrix from rows of 'X' and '.'
func matrixFromRows(rows ...string) Matrix {
	matrix := MakeMatrix(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, char := range row {
			if char == 'X' {
				matrix.Set(x, y, Alive)
			}
		}
	}
	return matrix
}

func matrixRows(matrix Matrix) []string {
	rows := make([]string, matrix.Height())
	for y := range rows {
		var builder strings.Builder
		for x := 0; x != matrix.Width(); x++ {
			if matrix.IsAlive(x, y) {
				builder.WriteByte('X')
			} else {
				builder.WriteByte('.')
			}
		}
		rows[y] = builder.String()
	}
	return rows
}

func TestMakeMatrixRowsAreIndependent(t *testing.T) {
	matrix := MakeMatrix(4, 3)
	require.Equal(t, 4, matrix.Width())
	require.Equal(t, 3, matrix.Height())

	matrix.Set(3, 0, Alive)
	assert.Equal(t, []string{"...X", "....", "...."}, matrixRows(matrix))

	// Appending to a row must not spill into the next one
	_ = append(matrix.pixels[0], Alive)
	assert.Equal(t, Dead, matrix.Get(0, 1))
}

func TestGetSetWrap(t *testing.T) {
	matrix := MakeMatrix(5, 4)
	matrix.Set(-1, -1, Alive)
	assert.True(t, matrix.IsAlive(4, 3))
	assert.True(t, matrix.IsAlive(9, 7))
	assert.True(t, matrix.IsAlive(-6, -5))
	assert.False(t, matrix.IsAlive(0, 0))
}

func TestCountNeighboursWrapsCorners(t *testing.T) {
	matrix := MakeMatrix(5, 4)
	matrix.Set(0, 0, Alive)

	for _, cell := range []util.Cell{{X: 4, Y: 3}, {X: 0, Y: 3}, {X: 4, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}} {
		assert.Equal(t, 1, matrix.countNeighbours(cell), "neighbour of %v", cell)
	}
	assert.Equal(t, 0, matrix.countNeighbours(util.Cell{X: 0, Y: 0}), "a cell is not its own neighbour")
	assert.Equal(t, 0, matrix.countNeighbours(util.Cell{X: 2, Y: 2}))
}

func TestCountNeighboursSmallestWorld(t *testing.T) {
	matrix := matrixFromRows(
		"XXX",
		"XXX",
		"XXX",
	)
	for y := 0; y != 3; y++ {
		for x := 0; x != 3; x++ {
			assert.Equal(t, 8, matrix.countNeighbours(util.Cell{X: x, Y: y}))
		}
	}
}

func TestCheckAndFlipRules(t *testing.T) {
	tests := []struct {
		name       string
		alive      bool
		neighbours int
		want       uint8
	}{
		{"alive with 0 dies", true, 0, Dead},
		{"alive with 1 dies", true, 1, Dead},
		{"alive with 2 lives", true, 2, Alive},
		{"alive with 3 lives", true, 3, Alive},
		{"alive with 4 dies", true, 4, Dead},
		{"alive with 8 dies", true, 8, Dead},
		{"dead with 2 stays dead", false, 2, Dead},
		{"dead with 3 is born", false, 3, Alive},
		{"dead with 4 stays dead", false, 4, Dead},
	}
	around := []util.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			matrix := MakeMatrix(6, 6)
			next_matrix := MakeMatrix(6, 6)
			if test.alive {
				matrix.Set(2, 2, Alive)
			}
			for _, cell := range around[:test.neighbours] {
				matrix.Set(cell.X, cell.Y, Alive)
			}
			live := matrix.checkAndFlip(util.Cell{X: 2, Y: 2}, next_matrix)
			assert.Equal(t, test.want, next_matrix.Get(2, 2))
			assert.Equal(t, test.want == Alive, live == 1)
		})
	}
}

func TestAliveCells(t *testing.T) {
	matrix := matrixFromRows(
		".X..",
		"....",
		"X..X",
	)
	assert.Equal(t, 3, matrix.AliveCount())
	assert.Equal(t, []util.Cell{{X: 1, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2}}, matrix.AliveCells())

	other := MakeMatrix(4, 3)
	assert.False(t, matrix.Equal(other))
	other.CopyFrom(matrix)
	assert.True(t, matrix.Equal(other))
	assert.False(t, matrix.Equal(MakeMatrix(3, 4)))
}
