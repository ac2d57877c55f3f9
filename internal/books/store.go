package books

import "sync"

// Store owns the current State and feeds events through Reduce one at a
// time, in the order Dispatch is called.
type Store struct {
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     *State
	nextID    int
	listeners map[int]func(*State)
}

// NewStore creates a store starting from initial, or InitialState when nil.
func NewStore(initial *State) *Store {
	if initial == nil {
		initial = InitialState()
	}
	return &Store{
		state:     initial,
		listeners: make(map[int]func(*State)),
	}
}

// State returns the current snapshot. Callers must not modify it.
func (s *Store) State() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces event against the current state and returns the result.
// Listeners run before Dispatch returns and only when the state changed;
// they must not call Dispatch themselves.
func (s *Store) Dispatch(event Event) *State {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	return s.apply(event)
}

// Update calls build with the current state and dispatches the events it
// returns, with no other dispatch in between. build must not call Dispatch
// or Update.
func (s *Store) Update(build func(*State) []Event) *State {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	current := s.State()
	for _, event := range build(current) {
		current = s.apply(event)
	}
	return current
}

// apply requires dispatchMu.
func (s *Store) apply(event Event) *State {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, event)
	s.state = next
	listeners := make([]func(*State), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	if next != prev {
		for _, fn := range listeners {
			fn(next)
		}
	}
	return next
}

// Subscribe registers fn to receive every new state. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(*State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}
