package gol

import (
	"github.com/raywang13/GameofLife/util"
)

type Block struct {
	Start util.Cell // Top-left corner of block
	End   util.Cell // Bottom-right corner of block (not inclusive)
}

func (block Block) Rows() int { return block.End.Y - block.Start.Y }
func (block Block) Cols() int { return block.End.X - block.Start.X }

// Block assigned to worker of the given rank in a ThreadRows x ThreadCols topology
// Ranks are laid out row-major: rank k sits on thread row k/ThreadCols, thread column k%ThreadCols
// With p.Uneven set, the last row and column of blocks absorb the remainders
func blockFor(p Params, rank int) Block {
	part_height := p.ImageHeight / p.ThreadRows
	part_width := p.ImageWidth / p.ThreadCols
	row := rank / p.ThreadCols
	col := rank % p.ThreadCols
	start := util.Cell{X: col * part_width, Y: row * part_height}
	end := util.Cell{X: start.X + part_width, Y: start.Y + part_height}
	if p.Uneven {
		if row == p.ThreadRows-1 {
			end.Y = p.ImageHeight
		}
		if col == p.ThreadCols-1 {
			end.X = p.ImageWidth
		}
	}
	return Block{Start: start, End: end}
}

// Divide matrix into one block per worker, indexed by rank
func divideToBlocks(p Params) []Block {
	blocks := make([]Block, p.Threads())
	for rank := range blocks {
		blocks[rank] = blockFor(p, rank)
	}
	return blocks
}
