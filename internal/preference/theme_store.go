package preference

import (
	"github.com/alexisbeaulieu97/playground/internal/theme"
)

// ThemeKey is the single key under which the theme override is stored.
const ThemeKey = "theme"

// ThemeStore exposes a KV as the theme engine's persistence port. Values
// other than "light" and "dark" read as absent.
type ThemeStore struct {
	kv KV
}

// NewThemeStore wraps kv.
func NewThemeStore(kv KV) *ThemeStore {
	return &ThemeStore{kv: kv}
}

// Load returns the persisted override, if any.
func (s *ThemeStore) Load() (theme.Mode, bool, error) {
	raw, ok, err := s.kv.Get(ThemeKey)
	if err != nil || !ok {
		return "", false, err
	}
	mode := theme.Mode(raw)
	if !mode.Valid() {
		return "", false, nil
	}
	return mode, true, nil
}

// Save persists mode.
func (s *ThemeStore) Save(mode theme.Mode) error {
	return s.kv.Set(ThemeKey, mode.String())
}

// Clear removes the persisted override.
func (s *ThemeStore) Clear() error {
	return s.kv.Delete(ThemeKey)
}

var _ theme.Store = (*ThemeStore)(nil)
