package theme

import (
	"sync"

	"github.com/Josepavese/folio/internal/themestore"
)

// Binding caches the Theme for the store's current mode so every component
// reads the same value. It is updated synchronously from the store's
// notification round, before Toggle returns.
type Binding struct {
	mu    sync.RWMutex
	theme Theme
}

// NewBinding starts with the theme for mode until attached.
func NewBinding(mode themestore.Mode) *Binding {
	return &Binding{theme: FromMode(mode)}
}

// Attach subscribes to store and adopts its current mode. The returned
// func detaches; calling it more than once is harmless.
func (b *Binding) Attach(store *themestore.Store) (detach func()) {
	b.set(store.Mode())
	return store.Subscribe(b.set)
}

// Current returns the cached theme.
func (b *Binding) Current() Theme {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.theme
}

func (b *Binding) set(mode themestore.Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.theme = FromMode(mode)
}
