package app

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Josepavese/folio/internal/prefs"
	"github.com/Josepavese/folio/internal/section"
	"github.com/Josepavese/folio/internal/themestore"
	"github.com/Josepavese/folio/internal/tui/kit/theme"
	"github.com/Josepavese/folio/internal/tui/kit/view"
	tea "github.com/charmbracelet/bubbletea"
)

// fakePage lays anchors out as consecutive 10 line blocks.
type fakePage struct {
	view.BaseViewlet
	anchors []string
	offset  int
	themes  []themestore.Mode
}

func (p *fakePage) Init() tea.Cmd { return nil }
func (p *fakePage) View() string  { return "page" }

func (p *fakePage) Update(msg tea.Msg) (view.Viewlet, tea.Cmd) {
	switch msg := msg.(type) {
	case view.ThemeMsg:
		p.themes = append(p.themes, msg.Mode)
	case tea.KeyMsg:
		if msg.String() == "down" {
			p.offset++
		}
	}
	return p, nil
}

func (p *fakePage) Bounds(id string) (section.Bounds, bool) {
	for i, a := range p.anchors {
		if a == id {
			return section.Bounds{ID: id, Top: i*10 - p.offset, Bottom: i*10 + 9 - p.offset}, true
		}
	}
	return section.Bounds{}, false
}

func (p *fakePage) Offset() int { return p.offset }

func (p *fakePage) ScrollTo(id string) bool {
	for i, a := range p.anchors {
		if a == id {
			p.offset = i * 10
			return true
		}
	}
	return false
}

var anchors = []string{"hero", "about", "skills", "contact"}

func newApp(t *testing.T, width int) (*App, *fakePage) {
	t.Helper()
	store := themestore.New(prefs.NewMemoryStorage(), themestore.StaticScheme{})
	binding := theme.NewBinding(store.Mode())
	page := &fakePage{anchors: anchors}
	a := New(store, binding, section.NewTracker(anchors), page, Options{Title: "Alex", NarrowWidth: 80})
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: width, Height: 30})
	return a, page
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_TabCyclesSections(t *testing.T) {
	a, page := newApp(t, 120)

	want := []string{"about", "skills", "contact", "hero"}
	for _, w := range want {
		a.Update(key("tab"))
		if a.Tracker.Active() != w || a.Shell.Active() != w {
			t.Fatalf("after tab: tracker=%q shell=%q, want %q", a.Tracker.Active(), a.Shell.Active(), w)
		}
	}

	a.Update(key("shift+tab"))
	if a.Tracker.Active() != "contact" {
		t.Errorf("shift+tab should wrap to the last section, got %q", a.Tracker.Active())
	}
	if page.offset != 30 {
		t.Errorf("offset = %d, want 30", page.offset)
	}
}

func TestApp_NumberJumps(t *testing.T) {
	a, _ := newApp(t, 120)

	a.Update(key("3"))
	if a.Tracker.Active() != "skills" {
		t.Errorf("3 should jump to skills, got %q", a.Tracker.Active())
	}
	a.Update(key("9"))
	if a.Tracker.Active() != "skills" {
		t.Errorf("out of range digit should do nothing, got %q", a.Tracker.Active())
	}
}

func TestApp_ScrollUpdatesTrackerAndHeader(t *testing.T) {
	a, _ := newApp(t, 120)

	for i := 0; i < 3; i++ {
		a.Update(key("down"))
	}
	if a.Shell.Scrolled() {
		t.Error("offset 3 is not past the threshold")
	}
	a.Update(key("down"))
	if !a.Shell.Scrolled() {
		t.Error("offset 4 is past the threshold")
	}

	// Reference line 2: offset 8 puts line 10 (about) on it.
	for i := 0; i < 4; i++ {
		a.Update(key("down"))
	}
	if a.Tracker.Active() != "about" {
		t.Errorf("active = %q, want about", a.Tracker.Active())
	}
}

func TestApp_ToggleTheme(t *testing.T) {
	a, page := newApp(t, 120)

	a.Update(key("t"))
	if a.Store.Mode() != themestore.Dark {
		t.Fatalf("store mode = %v, want dark", a.Store.Mode())
	}
	if len(page.themes) != 1 || page.themes[0] != themestore.Dark {
		t.Errorf("page theme messages = %v", page.themes)
	}
}

func TestApp_DrawerIsModal(t *testing.T) {
	a, page := newApp(t, 60)

	a.Update(key("m"))
	if !a.Shell.DrawerOpen() {
		t.Fatal("m should open the drawer when narrow")
	}

	a.Update(key("down"))
	if page.offset != 0 {
		t.Error("keys must not reach the page while the drawer is open")
	}
	a.Update(key("down"))
	a.Update(key("enter"))

	if a.Shell.DrawerOpen() {
		t.Error("selecting closes the drawer")
	}
	if a.Tracker.Active() != "skills" {
		t.Errorf("active = %q, want skills", a.Tracker.Active())
	}
}

func TestApp_DrawerIgnoredWhenWide(t *testing.T) {
	a, _ := newApp(t, 120)
	a.Update(key("m"))
	if a.Shell.DrawerOpen() {
		t.Error("drawer must not open on wide terminals")
	}
}

func TestApp_Quit(t *testing.T) {
	a, _ := newApp(t, 120)
	quit := false
	a.OnQuit = func() { quit = true }

	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if !quit {
		t.Error("OnQuit not called")
	}
}

func TestApp_StatusMsg(t *testing.T) {
	a, _ := newApp(t, 120)
	a.Update(view.StatusMsg{Text: "content reloaded"})
	if got := a.View(); !strings.Contains(got, "content reloaded") {
		t.Error("status text should be shown in the footer")
	}
}

// TestApp_RunDetachesOnExit verifies the theme binding stops following the
// store once Run returns.
func TestApp_RunDetachesOnExit(t *testing.T) {
	storage := prefs.NewMemoryStorage()
	if err := storage.Save(themestore.DefaultKey, "dark"); err != nil {
		t.Fatal(err)
	}
	store := themestore.New(storage, themestore.StaticScheme{})
	binding := theme.NewBinding(themestore.Light)
	page := &fakePage{anchors: anchors}
	a := New(store, binding, section.NewTracker(anchors), page, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx, tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if binding.Current().Mode != themestore.Dark {
		t.Fatalf("Run should restore the stored mode, got %v", binding.Current().Mode)
	}
	store.Toggle()
	if binding.Current().Mode != themestore.Dark {
		t.Error("binding still attached after Run returned")
	}
}
