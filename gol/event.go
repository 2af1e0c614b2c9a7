package gol

import (
	"fmt"

	"github.com/raywang13/GameofLife/util"
)

// Event represents any Game of Life event that needs to be communicated to the caller of Run.
type Event interface {
	fmt.Stringer

	// GetCompletedGenerations should return the number of fully completed generations.
	GetCompletedGenerations() int
}

// State represents a change in the state of execution.
type State int

const (
	Executing State = iota
	Quitting
)

// StateChange is sent whenever the run starts executing generations or is about to return.
type StateChange struct {
	CompletedGenerations int
	NewState             State
}

// GenerationComplete is sent by the round leader after the buffers are swapped and the
// new generation has been published.
type GenerationComplete struct {
	CompletedGenerations int
	CellsCount           int
}

// Extinct is sent when a computed generation has no live cells. The dead generation is
// neither published nor counted.
type Extinct struct {
	CompletedGenerations int
}

// FinalGenerationComplete is the last event before the channel is closed.
type FinalGenerationComplete struct {
	CompletedGenerations int
	Alive                []util.Cell
	Extinct              bool
}

func (s State) String() string {
	switch s {
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedGenerations() int {
	return event.CompletedGenerations
}

func (event GenerationComplete) String() string {
	return fmt.Sprintf("Alive Cells %v", event.CellsCount)
}

func (event GenerationComplete) GetCompletedGenerations() int {
	return event.CompletedGenerations
}

func (event Extinct) String() string {
	return "Extinct"
}

func (event Extinct) GetCompletedGenerations() int {
	return event.CompletedGenerations
}

func (event FinalGenerationComplete) String() string {
	return fmt.Sprintf("Final Generation %v", event.CompletedGenerations)
}

func (event FinalGenerationComplete) GetCompletedGenerations() int {
	return event.CompletedGenerations
}
