package gol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
)

const (
	aliveIo = 'X'
	deadIo  = ' '
)

var ErrShortInput = errors.New("gol: input ended before the world was complete")

// Initializer fills generation 0.
type Initializer interface {
	Initialise(world Matrix) error
}

// Publisher records a completed generation. It is called once for generation 0 and
// then by the round leader while every worker is parked at the barrier.
type Publisher interface {
	Publish(generation int, world Matrix) error
}

// ioState is the internal ioState of the io goroutine.
type ioState struct {
	params    Params
	reader    *bufio.Reader
	writer    *bufio.Writer
	operation *ioOperation
	cond      *sync.Cond
}

// ioCommand allows requesting behaviour from the io goroutine.
type ioCommand uint8

// This is a way of creating enums in Go.
// It will evaluate to:
//
//	ioOutput   = 0
//	ioInput    = 1
//	ioGenerate = 2
//	ioQuit     = 3
const (
	ioOutput ioCommand = iota
	ioInput
	ioGenerate
	ioQuit
)

type ioOperation struct {
	command    ioCommand
	generation int
	world      Matrix
	err        error
	completed  bool
}

func newIoState(p Params, in io.Reader, out io.Writer) *ioState {
	return &ioState{
		params: p,
		reader: bufio.NewReader(in),
		writer: bufio.NewWriter(out),
		cond:   sync.NewCond(new(sync.Mutex)),
	}
}

// writeWorld prints the world as rows of 'X' and ' ' followed by its title.
func (io *ioState) writeWorld() error {
	world := io.operation.world
	line := make([]byte, world.width+1)
	line[world.width] = '\n'
	for _, row := range world.pixels {
		for x, value := range row {
			if value == Alive {
				line[x] = aliveIo
			} else {
				line[x] = deadIo
			}
		}
		if _, err := io.writer.Write(line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(io.writer, "Generation %d\n\n", io.operation.generation); err != nil {
		return err
	}
	return io.writer.Flush()
}

func (io *ioState) prompt(text string) error {
	if _, err := fmt.Fprintln(io.writer, text); err != nil {
		return err
	}
	return io.writer.Flush()
}

// readWorld reads one line per row. 'X' is alive, any other character is dead,
// and a short line leaves the rest of its row dead.
func (io *ioState) readWorld() error {
	if err := io.prompt("Enter generation 0"); err != nil {
		return err
	}
	world := io.operation.world
	for y := 0; y != world.height; y++ {
		line, err := io.reader.ReadString('\n')
		if err != nil {
			if !isEOF(err) {
				return err
			}
			if line == "" {
				return fmt.Errorf("%w: got %d of %d rows", ErrShortInput, y, world.height)
			}
		}
		line = strings.TrimRight(line, "\r\n")
		for x := 0; x != world.width; x++ {
			if x < len(line) && line[x] == aliveIo {
				world.pixels[y][x] = Alive
			} else {
				world.pixels[y][x] = Dead
			}
		}
	}
	return nil
}

// generateWorld asks for a probability and draws every cell from a source seeded with params.Seed.
func (io *ioState) generateWorld() error {
	if err := io.prompt("What's the prob that a cell is alive?"); err != nil {
		return err
	}
	var probability float64
	if _, err := fmt.Fscan(io.reader, &probability); err != nil {
		if isEOF(err) {
			return fmt.Errorf("%w: missing probability", ErrShortInput)
		}
		return fmt.Errorf("%w: probability: %v", ErrInvalidParams, err)
	}
	if probability < 0 || probability > 1 {
		return fmt.Errorf("%w: probability %v outside [0, 1]", ErrInvalidParams, probability)
	}
	fillRandom(io.operation.world, probability, io.params.Seed)
	return nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func fillRandom(world Matrix, probability float64, seed int64) {
	random := rand.New(rand.NewSource(seed))
	for _, row := range world.pixels {
		for x := range row {
			if random.Float64() < probability {
				row[x] = Alive
			} else {
				row[x] = Dead
			}
		}
	}
}

// startIo should be the entrypoint of the io goroutine.
func startIo(io *ioState) {
	io.cond.L.Lock()
	defer io.cond.L.Unlock()
	for {
		for io.operation == nil || io.operation.completed {
			io.cond.Wait()
		}
		switch io.operation.command {
		case ioInput:
			io.operation.err = io.readWorld()
		case ioGenerate:
			io.operation.err = io.generateWorld()
		case ioOutput:
			io.operation.err = io.writeWorld()
		case ioQuit:
			io.operation.err = io.writer.Flush()
			io.operation.completed = true
			io.cond.Broadcast()
			return
		}
		io.operation.completed = true
		io.cond.Broadcast()
	}
}

// Initiate an IO request once the previous one has completed
func (io *ioState) sendIoRequest(operation *ioOperation) {
	io.cond.L.Lock()
	for io.operation != nil && !io.operation.completed {
		io.cond.Wait()
	}
	io.operation = operation
	io.cond.Broadcast()
	io.cond.L.Unlock()
}

// Wait until operation completed and return its error
func (io *ioState) waitIoRequest(operation *ioOperation) error {
	io.cond.L.Lock()
	for !operation.completed {
		io.cond.Wait()
	}
	io.cond.L.Unlock()
	return operation.err
}

// Send a signal to IO thread to quit and wait for its final flush
func (io *ioState) quit() error {
	operation := &ioOperation{command: ioQuit}
	io.sendIoRequest(operation)
	return io.waitIoRequest(operation)
}

func (io *ioState) Initialise(world Matrix) error {
	command := ioGenerate
	if io.params.Mode == InputMode {
		command = ioInput
	}
	operation := &ioOperation{command: command, world: world}
	io.sendIoRequest(operation)
	return io.waitIoRequest(operation)
}

func (io *ioState) Publish(generation int, world Matrix) error {
	operation := &ioOperation{command: ioOutput, generation: generation, world: world}
	io.sendIoRequest(operation)
	return io.waitIoRequest(operation)
}
