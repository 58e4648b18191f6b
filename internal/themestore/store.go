// Package themestore owns the light/dark display mode for a session: it
// restores the mode from durable storage or the host's colour-scheme
// preference, flips it on request, persists it best-effort and notifies
// subscribers synchronously.
package themestore

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Josepavese/folio/internal/prefs"
)

// DefaultKey is the storage key holding the mode token.
const DefaultKey = "theme"

// ErrNotFound is what a Storage returns for a key that was never saved.
var ErrNotFound = prefs.ErrNotFound

// Storage is durable key/value storage for the mode token.
type Storage interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

// SchemeDetector reports the host's preferred colour scheme. ok is false
// when the host expresses no preference.
type SchemeDetector interface {
	PrefersDark() (dark bool, ok bool)
}

// Listener receives the mode after every change.
type Listener func(Mode)

type subscription struct {
	id string
	fn Listener
}

// Store is the single source of truth for the display mode.
type Store struct {
	storage  Storage
	detector SchemeDetector
	key      string
	logger   *zap.Logger

	mu       sync.Mutex
	mode     Mode
	subs     []subscription
	draining bool
	pending  int
	restored *Mode
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for degraded storage paths.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Store in Light mode. Call Initialize to restore the
// persisted or host-preferred mode. storage and detector may be nil.
func New(storage Storage, detector SchemeDetector, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		detector: detector,
		key:      DefaultKey,
		logger:   zap.NewNop(),
		mode:     Light,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize restores the mode: a recognised stored token wins, then the
// host preference, then Light. It never fails and never writes storage.
// Subscribers are notified with the result.
func (s *Store) Initialize() Mode {
	mode := s.resolve()

	s.mu.Lock()
	if s.draining {
		// Called while a round is running: the round finishes with the old
		// value and the restored one gets its own round afterwards.
		s.restored = &mode
		s.mu.Unlock()
		return mode
	}
	s.mode = mode
	s.draining = true
	s.mu.Unlock()

	s.broadcast()
	s.drain()
	return s.Mode()
}

func (s *Store) resolve() Mode {
	if s.storage != nil {
		raw, err := s.storage.Load(s.key)
		switch {
		case err == nil:
			if m, ok := ParseMode(raw); ok {
				return m
			}
			s.logger.Debug("ignoring unrecognised stored theme", zap.String("value", raw))
		case errors.Is(err, ErrNotFound):
		default:
			s.logger.Debug("theme storage unavailable", zap.Error(err))
		}
	}

	if s.detector != nil {
		if dark, ok := s.detector.PrefersDark(); ok {
			if dark {
				return Dark
			}
			return Light
		}
	}
	return Light
}

// Mode returns the current mode.
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle flips the mode, persists it and notifies every subscriber before
// returning. A Toggle issued while a notification round is running is queued
// behind it and returns at once with the mode its own round will apply.
//
// The "applied before return" guarantee holds for a single goroutine,
// including listeners calling back into the store. A Toggle from another
// goroutine that lands on a running round returns before its mode is
// applied, persisted or broadcast; Mode and storage catch up when the
// running round drains the queue.
func (s *Store) Toggle() Mode {
	s.mu.Lock()
	s.pending++
	if s.draining {
		projected := s.mode
		if s.restored != nil {
			projected = *s.restored
		}
		if s.pending%2 == 1 {
			projected = projected.Toggle()
		}
		s.mu.Unlock()
		return projected
	}
	s.draining = true
	s.mu.Unlock()

	s.drain()
	return s.Mode()
}

// drain applies queued toggles one round at a time. Only the goroutine that
// set draining runs it.
func (s *Store) drain() {
	defer func() {
		if r := recover(); r != nil {
			// A panicking listener must not wedge the store.
			s.mu.Lock()
			s.draining = false
			s.pending = 0
			s.restored = nil
			s.mu.Unlock()
			panic(r)
		}
	}()
	for {
		s.mu.Lock()
		if s.restored != nil {
			s.mode = *s.restored
			s.restored = nil
			s.mu.Unlock()
			s.broadcast()
			continue
		}
		if s.pending == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		s.pending--
		s.mode = s.mode.Toggle()
		mode := s.mode
		s.mu.Unlock()

		s.persist(mode)
		s.broadcast()
	}
}

func (s *Store) persist(mode Mode) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(s.key, mode.String()); err != nil {
		s.logger.Warn("theme not persisted, keeping it for this session",
			zap.String("mode", mode.String()), zap.Error(err))
	}
}

// broadcast delivers the current mode to every subscriber. The lock is not
// held while listeners run so they may read Mode or call Toggle.
func (s *Store) broadcast() {
	s.mu.Lock()
	mode := s.mode
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		if !s.subscribed(sub.id) {
			continue
		}
		sub.fn(mode)
	}
}

func (s *Store) subscribed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.id == id {
			return true
		}
	}
	return false
}

// Subscribe registers fn for mode changes. The returned function removes it
// and is safe to call more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	id := uuid.NewString()

	s.mu.Lock()
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()
	s.logger.Debug("theme subscriber added", zap.String("subscription", id))

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
			s.mu.Unlock()
			s.logger.Debug("theme subscriber removed", zap.String("subscription", id))
		})
	}
}
