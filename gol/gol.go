package gol

import (
	"errors"
	"fmt"
	"io"
)

// Mode selects how generation 0 is produced.
type Mode rune

const (
	InputMode    Mode = 'i' // Rows of 'X' and ' ' read from the input
	GenerateMode Mode = 'g' // Cells drawn with a probability read from the input
)

var (
	ErrInvalidParams  = errors.New("gol: invalid parameters")
	ErrUnevenTopology = errors.New("gol: thread topology does not divide the world")
)

// Params provides the details of how to run the Game of Life.
type Params struct {
	ThreadRows     int // r, rows of threads
	ThreadCols     int // s, columns of threads
	ImageHeight    int // Rows in the world
	ImageWidth     int // Columns in the world
	MaxGenerations int
	Mode           Mode
	Seed           int64 // Seed of the random source used by GenerateMode
	Uneven         bool  // Let the last row and column of blocks absorb remainders
}

func (p Params) Threads() int {
	return p.ThreadRows * p.ThreadCols
}

func (p Params) validate() error {
	switch {
	case p.ThreadRows < 1 || p.ThreadCols < 1:
		return fmt.Errorf("%w: thread topology %dx%d", ErrInvalidParams, p.ThreadRows, p.ThreadCols)
	case p.ImageHeight < 3 || p.ImageWidth < 3:
		return fmt.Errorf("%w: world %dx%d is smaller than 3x3", ErrInvalidParams, p.ImageHeight, p.ImageWidth)
	case p.ThreadRows > p.ImageHeight || p.ThreadCols > p.ImageWidth:
		return fmt.Errorf("%w: thread topology %dx%d exceeds world %dx%d",
			ErrInvalidParams, p.ThreadRows, p.ThreadCols, p.ImageHeight, p.ImageWidth)
	case p.MaxGenerations < 0:
		return fmt.Errorf("%w: max generations %d", ErrInvalidParams, p.MaxGenerations)
	case p.Mode != InputMode && p.Mode != GenerateMode:
		return fmt.Errorf("%w: mode %q", ErrInvalidParams, rune(p.Mode))
	case !p.Uneven && (p.ImageHeight%p.ThreadRows != 0 || p.ImageWidth%p.ThreadCols != 0):
		return fmt.Errorf("%w: %dx%d threads on a %dx%d world",
			ErrUnevenTopology, p.ThreadRows, p.ThreadCols, p.ImageHeight, p.ImageWidth)
	}
	return nil
}

// Run reads or generates generation 0 from in, writes every generation to out and
// evolves the world with p.Threads() workers. events may be nil; otherwise it is
// closed before Run returns.
func Run(p Params, in io.Reader, out io.Writer, events chan<- Event) (result Result, err error) {
	if events != nil {
		defer close(events)
	}
	if err := p.validate(); err != nil {
		return Result{}, err
	}

	io := newIoState(p, in, out)
	go startIo(io)
	defer func() {
		if quitErr := io.quit(); err == nil {
			err = quitErr
		}
	}()

	world := MakeMatrix(p.ImageWidth, p.ImageHeight)
	if err := io.Initialise(world); err != nil {
		return Result{}, err
	}
	if err := io.Publish(0, world); err != nil {
		return Result{}, err
	}

	result, err = distributor(p, world, io, events)
	sendEvent(events, FinalGenerationComplete{result.Generations, result.Alive, result.Extinct})
	sendEvent(events, StateChange{result.Generations, Quitting})
	return result, err
}
