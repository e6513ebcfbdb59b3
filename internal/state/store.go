package state

import (
	"fmt"
	"log/slog"
	"sync"
)

// Slot names a class of fetch whose results supersede one another.
type Slot int

const (
	SlotOffers Slot = iota
	SlotOffer
	SlotNearby
	SlotComments
	SlotAuth
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotOffers:
		return "offers"
	case SlotOffer:
		return "offer"
	case SlotNearby:
		return "nearby"
	case SlotComments:
		return "comments"
	case SlotAuth:
		return "auth"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// Ticket identifies one fetch within its slot.
type Ticket struct {
	Slot       Slot
	Generation uint64
}

// Dispatcher is the part of the Store the fetch flows depend on.
type Dispatcher interface {
	Dispatch(events ...Event)
	Begin(slot Slot) Ticket
	DispatchIfCurrent(t Ticket, events ...Event) bool
	Snapshot() State
}

// Ensure Store implements Dispatcher at compile time.
var _ Dispatcher = (*Store)(nil)

// Store owns the application state and serializes every transition.
// The zero value is ready to use and starts from Initial().
type Store struct {
	// Logger receives a debug record per applied event. Optional.
	Logger *slog.Logger

	mu          sync.Mutex
	ready       bool
	state       State
	generations [slotCount]uint64
	subs        map[int]chan State
	nextSub     int
}

// NewStore returns a Store starting from initial.
func NewStore(initial State) *Store {
	return &Store{ready: true, state: initial}
}

func (s *Store) ensure() {
	if !s.ready {
		s.state = Initial()
		s.ready = true
	}
}

// Dispatch applies events in order and publishes the resulting state once.
func (s *Store) Dispatch(events ...Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure()
	s.apply(events)
}

// Begin starts a fetch in slot. Any ticket issued earlier for the same slot
// becomes stale.
func (s *Store) Begin(slot Slot) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[slot]++
	return Ticket{Slot: slot, Generation: s.generations[slot]}
}

// DispatchIfCurrent applies events only when t is still the newest ticket of
// its slot. It reports whether the events were applied.
func (s *Store) DispatchIfCurrent(t Ticket, events ...Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure()
	if t.Slot < 0 || t.Slot >= slotCount || s.generations[t.Slot] != t.Generation {
		if s.Logger != nil {
			s.Logger.Debug("dropped stale result", "slot", t.Slot.String(), "generation", t.Generation)
		}
		return false
	}
	s.apply(events)
	return true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure()
	return s.state.Clone()
}

// Subscribe returns a channel that receives the state after every dispatch
// and a function that ends the subscription. A subscriber that falls behind
// only sees the newest state.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]chan State)
	}
	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// apply runs with s.mu held.
func (s *Store) apply(events []Event) {
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		s.state = Reduce(s.state, ev)
		if s.Logger != nil {
			s.Logger.Debug("dispatch", "event", fmt.Sprintf("%T", ev))
		}
	}
	if len(s.subs) == 0 {
		return
	}
	snap := s.state.Clone()
	for _, ch := range s.subs {
		publish(ch, snap)
	}
}

func publish(ch chan State, snap State) {
	select {
	case ch <- snap:
		return
	default:
	}
	// Replace the unread state with the newer one.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}
