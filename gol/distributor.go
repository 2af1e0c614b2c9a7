package gol

import (
	"sync"

	"github.com/raywang13/GameofLife/util"
)

// Result summarises a finished run.
type Result struct {
	Generations int         // Number of generations completed and published
	Extinct     bool        // Stopped because the next generation had no live cells
	Alive       []util.Cell // Live cells of the last completed generation
}

// Shared state of one run. Workers only touch it under the barrier lock,
// except for reads between rounds while no leader can be running.
type simulation struct {
	p          Params
	worlds     [2]Matrix // Double buffer, worlds[active] is read and worlds[1-active] written
	active     int
	generation int  // Completed generations, advanced by the leader only
	live       int  // Live cells written during the current round
	extinct    bool // Set by the leader when a round produced no live cells
	err        error
	barrier    *Barrier
	publisher  Publisher
	events     chan<- Event
}

func (s *simulation) current() Matrix { return s.worlds[s.active] }
func (s *simulation) next() Matrix    { return s.worlds[1-s.active] }

// Leader actions, run exactly once per round by the last worker to reach the barrier
func (s *simulation) completeRound() {
	if s.live == 0 {
		s.extinct = true
		sendEvent(s.events, Extinct{s.generation})
	} else {
		s.active = 1 - s.active
		s.generation++
		if err := s.publisher.Publish(s.generation, s.current()); err != nil {
			s.err = err
		}
		sendEvent(s.events, GenerationComplete{s.generation, s.live})
	}
	s.live = 0
}

// Workers stop together: every one of them reads these after the same barrier round
func (s *simulation) stopped() bool {
	return s.extinct || s.err != nil || s.generation >= s.p.MaxGenerations
}

// distributor runs the simulation on world until MaxGenerations or extinction.
// world holds generation 0 and must already have been published.
func distributor(p Params, world Matrix, publisher Publisher, events chan<- Event) (Result, error) {
	s := &simulation{
		p:         p,
		publisher: publisher,
		events:    events,
	}
	s.worlds[0] = MakeMatrix(p.ImageWidth, p.ImageHeight)
	s.worlds[0].CopyFrom(world)
	s.worlds[1] = MakeMatrix(p.ImageWidth, p.ImageHeight)

	blocks := divideToBlocks(p)
	s.barrier = NewBarrier(len(blocks), s.completeRound)

	sendEvent(events, StateChange{0, Executing})

	var wg sync.WaitGroup
	wg.Add(len(blocks))
	for _, block := range blocks {
		go func(block Block) {
			defer wg.Done()
			worker(s, block)
		}(block)
	}
	wg.Wait()

	result := Result{
		Generations: s.generation,
		Extinct:     s.extinct,
		Alive:       s.current().AliveCells(),
	}
	return result, s.err
}

// worker computes its block every round and meets the other workers at the barrier.
// The barrier call is the only way out of an iteration, so no worker can leave the
// others waiting on a round it skipped.
func worker(s *simulation, block Block) {
	for !s.stopped() {
		matrix, next_matrix := s.current(), s.next()
		live := 0
		for y := block.Start.Y; y != block.End.Y; y++ {
			for x := block.Start.X; x != block.End.X; x++ {
				live += matrix.checkAndFlip(util.Cell{X: x, Y: y}, next_matrix)
			}
		}
		s.barrier.Wait(func() {
			s.live += live
		})
	}
}

func sendEvent(events chan<- Event, event Event) {
	if events != nil {
		events <- event
	}
}
