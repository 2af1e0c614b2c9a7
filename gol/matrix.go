package gol

import (
	"github.com/raywang13/GameofLife/util"
)

const (
	Dead  uint8 = 0x00
	Alive uint8 = 0xFF
)

type Matrix struct {
	width  int
	height int
	pixels [][]uint8
}

// Make matrix object with empty data
// Every row is a window onto one contiguous pixel array
func MakeMatrix(width, height int) Matrix {
	matrix := Matrix{
		width:  width,
		height: height,
		pixels: make([][]uint8, height),
	}
	pixel_data := make([]uint8, width*height)
	for i := 0; i != height; i++ {
		matrix.pixels[i] = pixel_data[0:width:width]
		pixel_data = pixel_data[width:]
	}
	return matrix
}

func (matrix Matrix) Width() int  { return matrix.width }
func (matrix Matrix) Height() int { return matrix.height }

// Wrap a coordinate on both axes, negative values included
func (matrix Matrix) wrap(x, y int) (int, int) {
	x %= matrix.width
	if x < 0 {
		x += matrix.width
	}
	y %= matrix.height
	if y < 0 {
		y += matrix.height
	}
	return x, y
}

// Get returns the state of the cell at column x, row y on the torus.
func (matrix Matrix) Get(x, y int) uint8 {
	x, y = matrix.wrap(x, y)
	return matrix.pixels[y][x]
}

// Set stores the state of the cell at column x, row y on the torus.
func (matrix Matrix) Set(x, y int, value uint8) {
	x, y = matrix.wrap(x, y)
	matrix.pixels[y][x] = value
}

func (matrix Matrix) IsAlive(x, y int) bool {
	return matrix.Get(x, y) == Alive
}

// Get positions of eight surrounding cells
func (matrix Matrix) getSurrounding(cell util.Cell) [8]util.Cell {
	if cell.X == 0 || cell.Y == 0 || cell.X == matrix.width-1 || cell.Y == matrix.height-1 {
		return [8]util.Cell{
			{X: (cell.X - 1 + matrix.width) % matrix.width, Y: (cell.Y - 1 + matrix.height) % matrix.height},
			{X: cell.X, Y: (cell.Y - 1 + matrix.height) % matrix.height},
			{X: (cell.X + 1) % matrix.width, Y: (cell.Y - 1 + matrix.height) % matrix.height},
			{X: (cell.X - 1 + matrix.width) % matrix.width, Y: cell.Y},
			{X: (cell.X + 1) % matrix.width, Y: cell.Y},
			{X: (cell.X - 1 + matrix.width) % matrix.width, Y: (cell.Y + 1) % matrix.height},
			{X: cell.X, Y: (cell.Y + 1) % matrix.height},
			{X: (cell.X + 1) % matrix.width, Y: (cell.Y + 1) % matrix.height},
		}
	}
	return [8]util.Cell{
		{X: cell.X - 1, Y: cell.Y - 1},
		{X: cell.X, Y: cell.Y - 1},
		{X: cell.X + 1, Y: cell.Y - 1},
		{X: cell.X - 1, Y: cell.Y},
		{X: cell.X + 1, Y: cell.Y},
		{X: cell.X - 1, Y: cell.Y + 1},
		{X: cell.X, Y: cell.Y + 1},
		{X: cell.X + 1, Y: cell.Y + 1},
	}
}

// Count alive cells among the eight surrounding cells
// Width and height must both be at least 3, otherwise a neighbour is counted twice
func (matrix Matrix) countNeighbours(cell util.Cell) int {
	count := 0
	for _, surrounding := range matrix.getSurrounding(cell) {
		if matrix.pixels[surrounding.Y][surrounding.X] == Alive {
			count++
		}
	}
	return count
}

// Compute the next state of a cell and write it to next_matrix
// Return 1 if the written cell is alive
func (matrix Matrix) checkAndFlip(cell util.Cell, next_matrix Matrix) int {
	switch matrix.countNeighbours(cell) {
	case 2:
		// Copying
		state := matrix.pixels[cell.Y][cell.X]
		next_matrix.pixels[cell.Y][cell.X] = state
		if state == Alive {
			return 1
		}
		return 0
	case 3:
		next_matrix.pixels[cell.Y][cell.X] = Alive
		return 1
	default:
		next_matrix.pixels[cell.Y][cell.X] = Dead
		return 0
	}
}

func (matrix Matrix) AliveCount() int {
	count := 0
	for _, row := range matrix.pixels {
		for _, value := range row {
			if value == Alive {
				count++
			}
		}
	}
	return count
}

// AliveCells lists live cells in row-major order.
func (matrix Matrix) AliveCells() []util.Cell {
	cells := make([]util.Cell, 0)
	for y, row := range matrix.pixels {
		for x, value := range row {
			if value == Alive {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

func (matrix Matrix) Equal(other Matrix) bool {
	if matrix.width != other.width || matrix.height != other.height {
		return false
	}
	for y := range matrix.pixels {
		for x := range matrix.pixels[y] {
			if matrix.pixels[y][x] != other.pixels[y][x] {
				return false
			}
		}
	}
	return true
}

// Copy pixel data of a matrix with identical dimensions
func (matrix Matrix) CopyFrom(other Matrix) {
	for y := range matrix.pixels {
		copy(matrix.pixels[y], other.pixels[y])
	}
}
