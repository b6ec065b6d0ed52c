// Package theme resolves the light/dark appearance from an explicit user
// choice, the operating system signal and a light default, and keeps the
// rendering surface in sync with the result.
package theme

import (
	"sync"

	"github.com/alexisbeaulieu97/playground/internal/logger"
)

// Options wires an Engine to its collaborators. Nil Store and Signal are
// replaced with an always-empty store and an unsupported signal.
type Options struct {
	Store    Store
	Signal   Signal
	Appliers []Applier
	Logger   *logger.Logger
}

// Engine owns the process-wide theme preference. It is safe for use from
// multiple goroutines; transitions are serialised in arrival order.
type Engine struct {
	mu       sync.Mutex
	store    Store
	signal   Signal
	appliers []Applier
	log      *logger.Logger

	state  State
	cancel func()
	gen    uint64
	closed bool

	listenersMu sync.Mutex
	listeners   map[uint64]func(State)
	nextID      uint64
}

// New resolves the cold-start state (persisted value, then OS signal, then
// light), subscribes to the OS signal when no override exists and applies
// the resulting mode.
func New(opts Options) *Engine {
	e := &Engine{
		store:     opts.Store,
		signal:    opts.Signal,
		appliers:  append([]Applier(nil), opts.Appliers...),
		log:       opts.Logger.WithFields(map[string]any{"component": "theme"}),
		listeners: make(map[uint64]func(State)),
	}
	if e.store == nil {
		e.store = emptyStore{}
	}
	if e.signal == nil {
		e.signal = unsupportedSignal{}
	}

	e.mu.Lock()
	if mode, ok := e.loadPersisted(); ok {
		e.state = State{Mode: mode, Override: true}
	} else {
		e.state = State{Mode: e.systemMode()}
		e.subscribeLocked()
	}
	e.applyLocked()
	e.mu.Unlock()

	return e
}

// Observe returns the current mode and whether the user has overridden it.
func (e *Engine) Observe() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Subscribed reports whether the engine is currently listening to the OS signal.
func (e *Engine) Subscribed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancel != nil
}

// Toggle flips light and dark and records the result as the user's choice.
func (e *Engine) Toggle() State {
	e.mu.Lock()
	next := State{Mode: e.state.Mode.Toggle(), Override: true}
	e.overrideLocked(next)
	e.mu.Unlock()

	e.notify(next)
	return next
}

// SetExplicit records mode as the user's choice. Repeating the current
// choice is a no-op and performs no additional write.
func (e *Engine) SetExplicit(mode Mode) (State, error) {
	if !mode.Valid() {
		return e.Observe(), ErrInvalidMode
	}

	e.mu.Lock()
	if e.state.Override && e.state.Mode == mode {
		current := e.state
		e.mu.Unlock()
		return current, nil
	}
	next := State{Mode: mode, Override: true}
	e.overrideLocked(next)
	e.mu.Unlock()

	e.notify(next)
	return next, nil
}

// ClearOverride forgets the user's choice, adopts the OS signal as read at
// the moment of the call and resumes listening for OS changes.
func (e *Engine) ClearOverride() State {
	e.mu.Lock()
	if err := e.store.Clear(); err != nil {
		e.log.Error(err, "clear theme preference")
	}
	next := State{Mode: e.systemMode()}
	e.state = next
	e.subscribeLocked()
	e.applyLocked()
	e.mu.Unlock()

	e.notify(next)
	return next
}

// OnChange registers fn to run after every transition. fn runs outside the
// engine lock and may call back into the engine.
func (e *Engine) OnChange(fn func(State)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	e.listenersMu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	e.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.listenersMu.Lock()
			delete(e.listeners, id)
			e.listenersMu.Unlock()
		})
	}
}

// Close releases the OS subscription. The engine keeps answering Observe
// and still accepts explicit choices, but never resubscribes.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.unsubscribeLocked()
}

func (e *Engine) overrideLocked(next State) {
	if err := e.store.Save(next.Mode); err != nil {
		e.log.Error(err, "persist theme preference")
	}
	e.unsubscribeLocked()
	e.state = next
	e.applyLocked()
}

func (e *Engine) handleSignal(gen uint64, dark bool) {
	e.mu.Lock()
	if e.closed || gen != e.gen || e.state.Override {
		e.mu.Unlock()
		return
	}
	next := State{Mode: modeFor(dark)}
	if next == e.state {
		e.mu.Unlock()
		return
	}
	e.state = next
	e.applyLocked()
	e.mu.Unlock()

	e.notify(next)
}

func (e *Engine) loadPersisted() (Mode, bool) {
	mode, ok, err := e.store.Load()
	if err != nil {
		e.log.Error(err, "load theme preference")
		return "", false
	}
	if !ok || !mode.Valid() {
		return "", false
	}
	return mode, true
}

func (e *Engine) systemMode() Mode {
	dark, supported := e.signal.PrefersDark()
	if !supported {
		return Light
	}
	return modeFor(dark)
}

func (e *Engine) subscribeLocked() {
	if e.closed || e.cancel != nil {
		return
	}
	e.gen++
	gen := e.gen
	cancel := e.signal.Subscribe(func(dark bool) {
		e.handleSignal(gen, dark)
	})
	if cancel == nil {
		cancel = func() {}
	}
	e.cancel = cancel
}

func (e *Engine) unsubscribeLocked() {
	if e.cancel == nil {
		return
	}
	cancel := e.cancel
	e.cancel = nil
	e.gen++
	cancel()
}

func (e *Engine) applyLocked() {
	for _, applier := range e.appliers {
		applier.Apply(e.state.Mode)
	}
	e.log.WithFields(map[string]any{"phase": e.state.Phase()}).Debug("theme applied")
}

func (e *Engine) notify(state State) {
	e.listenersMu.Lock()
	fns := make([]func(State), 0, len(e.listeners))
	for _, fn := range e.listeners {
		fns = append(fns, fn)
	}
	e.listenersMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

type emptyStore struct{}

func (emptyStore) Load() (Mode, bool, error) { return "", false, nil }
func (emptyStore) Save(Mode) error           { return nil }
func (emptyStore) Clear() error              { return nil }

type unsupportedSignal struct{}

func (unsupportedSignal) PrefersDark() (bool, bool)            { return false, false }
func (unsupportedSignal) Subscribe(func(bool)) (cancel func()) { return func() {} }
