package shell

import (
	"strings"
	"testing"

	"github.com/Josepavese/folio/internal/themestore"
	"github.com/Josepavese/folio/internal/tui/kit/layout"
	"github.com/Josepavese/folio/internal/tui/kit/theme"
	"github.com/Josepavese/folio/internal/tui/kit/view"
	"github.com/Josepavese/folio/internal/tui/kit/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type stubBody struct {
	view.BaseViewlet
}

func (b *stubBody) Init() tea.Cmd                          { return nil }
func (b *stubBody) Update(tea.Msg) (view.Viewlet, tea.Cmd) { return b, nil }
func (b *stubBody) View() string                           { return "body" }
func (b *stubBody) Shortcuts() []view.Shortcut {
	return []view.Shortcut{{Key: "↑/↓", Label: "scroll"}}
}
func (b *stubBody) Resize(r layout.Rect) { b.BaseViewlet.Resize(r) }

var items = []NavItem{
	{ID: "hero", Label: "Hero"},
	{ID: "about", Label: "About"},
	{ID: "contact", Label: "Contact"},
}

func newShell(w, h int) (*Shell, *stubBody) {
	s := NewShell(theme.NewBinding(themestore.Dark), items, 80)
	s.Title = "Alex"
	body := &stubBody{}
	s.SetBody(body)
	s.Resize(w, h)
	return &s, body
}

func TestShell_ResizeRegular(t *testing.T) {
	s, body := newShell(100, 30)

	if s.Narrow() {
		t.Fatal("100 columns should not be narrow")
	}
	wantBody := 30 - layout.HeaderHeight - layout.FooterHeight
	if body.Height() != wantBody || body.Width() != 100 {
		t.Errorf("body = %dx%d, want 100x%d", body.Width(), body.Height(), wantBody)
	}
}

func TestShell_ResizeNarrow(t *testing.T) {
	s, body := newShell(60, 30)

	if !s.Narrow() {
		t.Fatal("60 columns should be narrow")
	}
	wantBody := 30 - layout.CompactHeaderHeight - layout.FooterHeight
	if body.Height() != wantBody {
		t.Errorf("body height = %d, want %d", body.Height(), wantBody)
	}
}

func TestShell_View(t *testing.T) {
	for _, w := range []int{60, 100} {
		s, _ := newShell(w, 20)
		out := s.View()
		if h := lipgloss.Height(out); h != 20 {
			t.Errorf("width %d: view height = %d, want 20", w, h)
		}
		if !strings.Contains(out, "☾ dark") {
			t.Errorf("width %d: footer should show the mode", w)
		}
	}
}

func TestShell_DrawerOnlyWhenNarrow(t *testing.T) {
	s, _ := newShell(100, 30)
	s.ToggleDrawer()
	if s.DrawerOpen() {
		t.Fatal("drawer must stay closed on wide terminals")
	}

	s.Resize(60, 30)
	s.SetActive("about")
	s.ToggleDrawer()
	if !s.DrawerOpen() {
		t.Fatal("drawer should open when narrow")
	}
	if !strings.Contains(s.View(), "› About") {
		t.Error("drawer cursor should start on the active section")
	}

	s.MoveDrawer(1)
	if got := s.SelectDrawer(); got != "contact" {
		t.Errorf("SelectDrawer = %q, want contact", got)
	}
	if s.DrawerOpen() {
		t.Error("selecting closes the drawer")
	}

	s.ToggleDrawer()
	s.Resize(120, 30)
	if s.DrawerOpen() {
		t.Error("widening past the breakpoint closes the drawer")
	}
}

func TestShell_SetActive(t *testing.T) {
	s, _ := newShell(100, 30)
	s.SetActive("contact")
	if s.Active() != "contact" {
		t.Errorf("Active = %q", s.Active())
	}
	s.SetActive("missing")
	if s.Active() != "contact" {
		t.Errorf("unknown id should be ignored, got %q", s.Active())
	}
}

func TestShell_HandleMouse_Tab(t *testing.T) {
	s, _ := newShell(100, 30)

	widths := widget.TabWidths([]string{"Hero", "About", "Contact"})
	x := 2 + widths[0] + 1 // inside the About tab
	zone, id := s.HandleMouse(tea.MouseMsg{X: x, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if zone != ZoneHeader || id != "about" {
		t.Errorf("HandleMouse = (%v, %q), want header/about", zone, id)
	}

	zone, id = s.HandleMouse(tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if zone != ZoneBody || id != "" {
		t.Errorf("HandleMouse(body) = (%v, %q)", zone, id)
	}
}

func TestShell_HandleMouse_Drawer(t *testing.T) {
	s, _ := newShell(60, 30)
	s.ToggleDrawer()

	// Drawer line 0 is padding; items start on the next body line.
	y := s.grid.Body.Y + 3
	zone, id := s.HandleMouse(tea.MouseMsg{X: 4, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if zone != ZoneBody || id != "contact" {
		t.Errorf("HandleMouse = (%v, %q), want body/contact", zone, id)
	}
	if s.DrawerOpen() {
		t.Error("clicking an item closes the drawer")
	}
}

func TestShell_DrawerPanel(t *testing.T) {
	s, _ := newShell(60, 30)
	if got := s.DrawerWidth(); got < theme.Width.DrawerMin || got > 60 {
		t.Fatalf("DrawerWidth = %d, want between %d and 60", got, theme.Width.DrawerMin)
	}

	s.ToggleDrawer()
	y := s.grid.Body.Y + 3
	zone, id := s.HandleMouse(tea.MouseMsg{X: s.DrawerWidth() + 2, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if zone != ZoneBody || id != "" {
		t.Errorf("click beside the panel = (%v, %q), want body and no selection", zone, id)
	}
	if s.DrawerOpen() {
		t.Error("clicking beside the panel closes the drawer")
	}
}
