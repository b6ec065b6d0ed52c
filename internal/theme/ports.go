package theme

// Store persists the single user override value.
type Store interface {
	// Load returns the persisted mode. ok is false when nothing is stored.
	Load() (mode Mode, ok bool, err error)
	Save(mode Mode) error
	Clear() error
}

// Signal is the live operating-system "prefers dark" indicator.
type Signal interface {
	// PrefersDark reads the signal synchronously. supported is false when
	// the host cannot report a preference.
	PrefersDark() (dark bool, supported bool)
	// Subscribe registers fn for change notifications and returns the
	// teardown for that registration.
	Subscribe(fn func(dark bool)) (cancel func())
}

// Applier pushes the effective mode onto a rendering surface.
type Applier interface {
	Apply(mode Mode)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(mode Mode)

// Apply calls f(mode).
func (f ApplierFunc) Apply(mode Mode) {
	f(mode)
}
