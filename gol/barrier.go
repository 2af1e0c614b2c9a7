package gol

import "sync"

// Barrier is a reusable rendezvous for a fixed party of goroutines.
//
// Every round the last goroutine to arrive becomes the leader: it runs the
// trip function while still holding the barrier lock, resets the arrival
// count and advances the epoch before waking the others. A waiter only
// leaves once the epoch has moved past the one it observed on entry, so a
// stray wakeup sends it back to sleep instead of into the next round.
type Barrier struct {
	mutex   sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	epoch   uint64
	trip    func()
}

func NewBarrier(parties int, trip func()) *Barrier {
	if parties <= 0 {
		panic("barrier parties must be positive")
	}
	barrier := &Barrier{parties: parties, trip: trip}
	barrier.cond = sync.NewCond(&barrier.mutex)
	return barrier
}

// Wait blocks until all parties have arrived in the current round.
// arrive, if not nil, runs under the barrier lock before the caller is
// counted, so it may touch state that the trip function reads.
// It returns true for the leader of the round.
func (barrier *Barrier) Wait(arrive func()) bool {
	barrier.mutex.Lock()
	defer barrier.mutex.Unlock()

	epoch := barrier.epoch
	if arrive != nil {
		arrive()
	}
	barrier.arrived++
	if barrier.arrived == barrier.parties {
		if barrier.trip != nil {
			barrier.trip()
		}
		barrier.arrived = 0
		barrier.epoch++
		barrier.cond.Broadcast()
		return true
	}
	for barrier.epoch == epoch {
		barrier.cond.Wait()
	}
	return false
}

// Epoch is the number of completed rounds.
func (barrier *Barrier) Epoch() uint64 {
	barrier.mutex.Lock()
	defer barrier.mutex.Unlock()
	return barrier.epoch
}
