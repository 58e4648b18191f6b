package themestore

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Josepavese/folio/internal/prefs"
)

type failingStorage struct {
	loadErr error
	saveErr error
	saves   int
}

func (f *failingStorage) Load(string) (string, error) { return "", f.loadErr }
func (f *failingStorage) Save(string, string) error {
	f.saves++
	return f.saveErr
}

func TestInitialize_IsIdempotentWithoutToggle(t *testing.T) {
	storage := prefs.NewMemoryStorage()
	s := New(storage, StaticScheme{Dark: true, Known: true})

	first := s.Initialize()
	second := s.Initialize()

	assert.Equal(t, first, second)
	assert.Equal(t, Dark, second)
}

func TestToggle_IsAnInvolution(t *testing.T) {
	for _, start := range []Mode{Light, Dark} {
		t.Run(start.String(), func(t *testing.T) {
			storage := prefs.NewMemoryStorage()
			require.NoError(t, storage.Save(DefaultKey, start.String()))

			s := New(storage, nil)
			require.Equal(t, start, s.Initialize())

			s.Toggle()
			assert.Equal(t, start, s.Toggle())
		})
	}
}

func TestToggle_PersistsForNextSession(t *testing.T) {
	storage := prefs.NewMemoryStorage()

	first := New(storage, StaticScheme{})
	require.Equal(t, Light, first.Initialize())
	require.Equal(t, Dark, first.Toggle())

	next := New(storage, StaticScheme{Dark: false, Known: true})
	assert.Equal(t, Dark, next.Initialize(), "stored token must beat host preference")
}

func TestInitialize_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		storage  Storage
		detector SchemeDetector
		want     Mode
	}{
		{"host prefers dark", prefs.NewMemoryStorage(), StaticScheme{Dark: true, Known: true}, Dark},
		{"host prefers light", prefs.NewMemoryStorage(), StaticScheme{Dark: false, Known: true}, Light},
		{"no preference anywhere", prefs.NewMemoryStorage(), StaticScheme{}, Light},
		{"no detector", prefs.NewMemoryStorage(), nil, Light},
		{"no storage", nil, StaticScheme{Dark: true, Known: true}, Dark},
		{"storage broken, host dark", &failingStorage{loadErr: errors.New("disk gone")}, StaticScheme{Dark: true, Known: true}, Dark},
		{"storage broken, no host", &failingStorage{loadErr: errors.New("disk gone")}, nil, Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.storage, tt.detector)
			assert.Equal(t, tt.want, s.Initialize())
		})
	}
}

func TestInitialize_IgnoresUnknownToken(t *testing.T) {
	storage := prefs.NewMemoryStorage()
	require.NoError(t, storage.Save(DefaultKey, "sepia"))

	s := New(storage, StaticScheme{Dark: true, Known: true})
	assert.Equal(t, Dark, s.Initialize())

	// Initialize never writes.
	raw, err := storage.Load(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "sepia", raw)
}

func TestToggle_SaveFailureKeepsMode(t *testing.T) {
	storage := &failingStorage{loadErr: ErrNotFound, saveErr: errors.New("quota exceeded")}
	s := New(storage, nil)
	s.Initialize()

	assert.Equal(t, Dark, s.Toggle())
	assert.Equal(t, Dark, s.Mode())
	assert.Equal(t, 1, storage.saves)
}

func TestToggle_NotifiesSynchronouslyInOrder(t *testing.T) {
	s := New(prefs.NewMemoryStorage(), nil)
	s.Initialize()

	var got []string
	s.Subscribe(func(m Mode) { got = append(got, "a:"+m.String()) })
	s.Subscribe(func(m Mode) { got = append(got, "b:"+m.String()) })

	s.Toggle()
	assert.Equal(t, []string{"a:dark", "b:dark"}, got)
}

func TestInitialize_Broadcasts(t *testing.T) {
	s := New(prefs.NewMemoryStorage(), StaticScheme{Dark: true, Known: true})

	var seen []Mode
	s.Subscribe(func(m Mode) { seen = append(seen, m) })
	s.Initialize()

	assert.Equal(t, []Mode{Dark}, seen)
}

func TestListenersSeeConsistentMode(t *testing.T) {
	s := New(prefs.NewMemoryStorage(), nil)
	s.Initialize()

	for i := 0; i < 3; i++ {
		s.Subscribe(func(m Mode) {
			assert.Equal(t, m, s.Mode(), "Mode() must match the delivered value")
		})
	}
	s.Toggle()
	s.Toggle()
}

func TestToggle_ReentrantCallIsQueued(t *testing.T) {
	s := New(prefs.NewMemoryStorage(), nil)
	s.Initialize()

	var first, second []Mode
	reentered := false
	s.Subscribe(func(m Mode) {
		first = append(first, m)
		if !reentered {
			reentered = true
			projected := s.Toggle()
			assert.Equal(t, Light, projected)
			assert.Equal(t, Dark, s.Mode(), "queued toggle must not apply mid-round")
		}
	})
	s.Subscribe(func(m Mode) { second = append(second, m) })

	final := s.Toggle()

	assert.Equal(t, Light, final)
	assert.Equal(t, []Mode{Dark, Light}, first)
	assert.Equal(t, []Mode{Dark, Light}, second, "every listener completes a round before the next")
}

func TestToggle_FromAnotherGoroutineIsAppliedByTheRunningRound(t *testing.T) {
	storage := prefs.NewMemoryStorage()
	s := New(storage, nil)
	s.Initialize()

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	s.Subscribe(func(Mode) {
		once.Do(func() {
			close(entered)
			<-release
		})
	})

	done := make(chan Mode, 1)
	go func() { done <- s.Toggle() }()
	<-entered

	// The Dark round is still running: this toggle only reports its mode.
	assert.Equal(t, Light, s.Toggle())
	assert.Equal(t, Dark, s.Mode())
	stored, err := storage.Load(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	close(release)
	assert.Equal(t, Light, <-done, "the running round drains the queued toggle")
	assert.Equal(t, Light, s.Mode())
	stored, err = storage.Load(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "light", stored)
}

func TestUnsubscribe(t *testing.T) {
	s := New(nil, nil)
	s.Initialize()

	calls := 0
	unsubscribe := s.Subscribe(func(Mode) { calls++ })
	s.Toggle()
	unsubscribe()
	unsubscribe()
	s.Toggle()

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeDuringRound(t *testing.T) {
	s := New(nil, nil)
	s.Initialize()

	var unsubscribeB func()
	bCalls := 0
	s.Subscribe(func(Mode) { unsubscribeB() })
	unsubscribeB = s.Subscribe(func(Mode) { bCalls++ })

	s.Toggle()
	assert.Equal(t, 0, bCalls)
}

func TestPanickingListenerDoesNotWedgeStore(t *testing.T) {
	s := New(nil, nil)
	s.Initialize()

	unsubscribe := s.Subscribe(func(Mode) { panic("boom") })
	assert.Panics(t, func() { s.Toggle() })
	unsubscribe()

	assert.Equal(t, Light, s.Toggle())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"light", Light, true},
		{"dark", Dark, true},
		{" DARK\n", Dark, true},
		{"", Light, false},
		{"auto", Light, false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
