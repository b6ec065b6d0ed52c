package signal

import (
	"slices"
	"sync"
)

// Manual is an in-process signal flipped by the application itself. It
// backs the "manual" source and tests.
type Manual struct {
	mu          sync.Mutex
	dark        bool
	supported   bool
	subscribers map[uint64]func(bool)
	nextID      uint64
}

// NewManual returns a supported Manual signal with the given initial reading.
func NewManual(dark bool) *Manual {
	return &Manual{dark: dark, supported: true, subscribers: make(map[uint64]func(bool))}
}

// NewUnsupported returns a Manual signal that reports no preference until Set is called.
func NewUnsupported() *Manual {
	m := NewManual(false)
	m.supported = false
	return m
}

// PrefersDark returns the current reading.
func (m *Manual) PrefersDark() (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dark, m.supported
}

// Subscribe registers fn. It is never called from within Subscribe.
func (m *Manual) Subscribe(fn func(dark bool)) (cancel func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}

// Set changes the reading and notifies subscribers synchronously, in
// registration order, when the value changed.
func (m *Manual) Set(dark bool) {
	m.update(func(bool) bool { return dark })
}

// Flip inverts the reading and returns the new value.
func (m *Manual) Flip() bool {
	return m.update(func(current bool) bool { return !current })
}

func (m *Manual) update(next func(current bool) bool) bool {
	m.mu.Lock()
	dark := next(m.dark)
	changed := !m.supported || m.dark != dark
	m.dark = dark
	m.supported = true
	fns := m.snapshotLocked()
	m.mu.Unlock()

	if changed {
		for _, fn := range fns {
			fn(dark)
		}
	}
	return dark
}

// Subscribers returns the number of live registrations.
func (m *Manual) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers)
}

func (m *Manual) snapshotLocked() []func(bool) {
	ids := make([]uint64, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(bool), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.subscribers[id])
	}
	return fns
}
