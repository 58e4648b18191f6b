package shell

import (
	"strings"

	"github.com/Josepavese/folio/internal/tui/kit/layout"
	"github.com/Josepavese/folio/internal/tui/kit/theme"
	"github.com/Josepavese/folio/internal/tui/kit/view"
	"github.com/Josepavese/folio/internal/tui/kit/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MouseZone represents a zone in the shell grid.
type MouseZone int

const (
	ZoneNone MouseZone = iota
	ZoneHeader
	ZoneBody
	ZoneFooter
)

// NavItem is one entry of the section navigation.
type NavItem struct {
	ID    string
	Label string
}

// Shell is the chrome around the page: the nav header (tabs, or a compact
// title bar with a drawer on narrow terminals), the body and the status bar.
type Shell struct {
	Width  int
	Height int

	// Title is shown in the compact header.
	Title string

	// NarrowWidth is the first width that shows the nav tabs.
	NarrowWidth int

	theme *theme.Binding
	items []NavItem
	body  view.Viewlet

	active   int
	scrolled bool
	status   string
	drawer   widget.Drawer

	grid       layout.Grid
	breakpoint layout.Breakpoint
}

// NewShell creates a shell over items, styled from binding.
func NewShell(binding *theme.Binding, items []NavItem, narrowWidth int) Shell {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	return Shell{
		NarrowWidth: narrowWidth,
		theme:       binding,
		items:       items,
		drawer:      widget.NewDrawer(labels),
	}
}

// SetBody mounts the body viewlet, sizing it if the shell has a size.
func (s *Shell) SetBody(v view.Viewlet) {
	s.body = v
	if s.grid.Body.Width > 0 {
		v.Resize(s.grid.Body)
	}
}

// Init initializes the body.
func (s *Shell) Init() tea.Cmd {
	if s.body == nil {
		return nil
	}
	return s.body.Init()
}

// SetActive highlights the nav item with id. Unknown ids are ignored.
func (s *Shell) SetActive(id string) {
	for i, it := range s.items {
		if it.ID == id {
			s.active = i
			return
		}
	}
}

// Active returns the highlighted nav item id.
func (s *Shell) Active() string {
	if len(s.items) == 0 {
		return ""
	}
	return s.items[s.active].ID
}

// SetScrolled switches the header to its scrolled style.
func (s *Shell) SetScrolled(v bool) { s.scrolled = v }

// Scrolled reports whether the header uses its scrolled style.
func (s *Shell) Scrolled() bool { return s.scrolled }

// SetStatus sets the transient status text.
func (s *Shell) SetStatus(text string) { s.status = text }

// Narrow reports whether the nav is collapsed into the drawer.
func (s *Shell) Narrow() bool { return s.breakpoint == layout.Narrow }

// DrawerOpen reports whether the drawer is shown.
func (s *Shell) DrawerOpen() bool { return s.drawer.Open() }

// ToggleDrawer opens or closes the drawer. It does nothing on wide terminals.
func (s *Shell) ToggleDrawer() {
	if !s.Narrow() {
		return
	}
	s.drawer.Toggle(s.active)
}

// CloseDrawer hides the drawer.
func (s *Shell) CloseDrawer() { s.drawer.Close() }

// MoveDrawer moves the drawer cursor.
func (s *Shell) MoveDrawer(delta int) { s.drawer.Move(delta) }

// SelectDrawer closes the drawer and returns the chosen item id.
func (s *Shell) SelectDrawer() string {
	i := s.drawer.Select()
	if i < 0 || i >= len(s.items) {
		return ""
	}
	return s.items[i].ID
}

// Resize updates dimensions and propagates to the body. Leaving the narrow
// breakpoint closes the drawer.
func (s *Shell) Resize(w, h int) {
	s.Width = w
	s.Height = h
	s.breakpoint = layout.Detect(w, s.NarrowWidth)
	if !s.Narrow() {
		s.drawer.Close()
	}

	s.grid = layout.CalculateGrid(w, h, layout.HeaderHeightFor(s.breakpoint))
	if s.body != nil {
		s.body.Resize(s.grid.Body)
	}
}

// View stacks header, body (with the drawer over it) and footer.
func (s *Shell) View() string {
	if s.Width == 0 || s.Height == 0 {
		return ""
	}
	t := s.theme.Current()

	header := layout.Place(s.grid.Header, s.renderHeader(t))

	bodyContent := ""
	if s.body != nil {
		bodyContent = s.body.View()
	}
	if s.drawer.Open() {
		bodyContent = layout.Overlay(layout.Place(s.grid.Body, bodyContent), s.renderDrawer(t))
	}
	body := layout.Place(s.grid.Body, bodyContent)

	footer := layout.Place(s.grid.Footer, s.renderFooter(t))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (s *Shell) labels() []string {
	labels := make([]string, len(s.items))
	for i, it := range s.items {
		labels[i] = it.Label
	}
	return labels
}

func (s *Shell) renderHeader(t theme.Theme) string {
	if s.Narrow() {
		return s.renderCompactHeader(t)
	}
	return widget.RenderTabs(widget.TabsRenderOptions{
		Labels:         s.labels(),
		ActiveIndex:    s.active,
		Width:          s.Width,
		Scrolled:       s.scrolled,
		HighlightColor: t.Palette.Accent,
		InactiveColor:  t.Palette.TextDim,
		BorderColor:    t.Palette.SurfaceHighlight,
		ScrolledColor:  t.Palette.Accent,
	})
}

func (s *Shell) renderCompactHeader(t theme.Theme) string {
	style := t.Styles.Header
	rule := "─"
	if s.scrolled {
		style = t.Styles.HeaderScrolled
		rule = "━"
	}

	menu := "≡ menu"
	if s.drawer.Open() {
		menu = "✕ close"
	}
	current := ""
	if len(s.items) > 0 {
		current = s.items[s.active].Label
	}
	right := t.Styles.NavItemActive.Render(current) + "  " + t.Styles.NavItem.Render(menu)
	left := t.Styles.Name.Render(s.Title)

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := style.Width(s.Width).Render(" " + left + strings.Repeat(" ", gap) + right + " ")
	return line + "\n" + lipgloss.NewStyle().Foreground(t.Palette.SurfaceHighlight).Render(strings.Repeat(rule, s.Width))
}

func (s *Shell) drawerStyles(t theme.Theme) widget.DrawerStyles {
	return widget.DrawerStyles{
		Container: t.Styles.Drawer,
		Item:      t.Styles.DrawerItem,
		Focus:     t.Styles.DrawerItemFocus,
		Active:    t.Styles.NavItemActive,
		MinWidth:  theme.Width.DrawerMin,
	}
}

// DrawerWidth is the width of the drawer panel at the current size.
func (s *Shell) DrawerWidth() int {
	return s.drawer.PanelWidth(s.Width, s.drawerStyles(s.theme.Current()))
}

func (s *Shell) renderDrawer(t theme.Theme) string {
	styles := s.drawerStyles(t)
	return s.drawer.View(s.drawer.PanelWidth(s.Width, styles), s.active, styles)
}

func (s *Shell) renderFooter(t theme.Theme) string {
	sb := widget.NewStatusBar(s.Width, widget.StatusBarStyles{
		Key:    t.Styles.Label.Bold(true),
		Label:  t.Styles.Label,
		Status: t.Styles.TextDim,
	})

	items := []widget.StatusBarItem{
		{Key: "t", Label: "theme"},
		{Key: "⭾", Label: "section"},
	}
	if s.Narrow() {
		items = append(items, widget.StatusBarItem{Key: "m", Label: "menu"})
	}
	if s.body != nil {
		for _, sc := range s.body.Shortcuts() {
			items = append(items, widget.StatusBarItem{Key: sc.Key, Label: sc.Label})
		}
	}
	items = append(items, widget.StatusBarItem{Key: "q", Label: "quit"})
	sb.SetItems(items)

	icon := "☀"
	if t.IsDark {
		icon = "☾"
	}
	status := icon + " " + t.Mode.String()
	if s.status != "" {
		status = s.status + "  " + status
	}
	sb.SetStatus(status)
	return sb.View()
}

// HandleMouse localizes a click. A click on a nav tab or a drawer item
// returns that item's id; everything else returns the zone and "".
func (s *Shell) HandleMouse(msg tea.MouseMsg) (MouseZone, string) {
	left := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	switch {
	case s.grid.Header.Contains(msg.X, msg.Y):
		if !left {
			return ZoneHeader, ""
		}
		if s.Narrow() {
			s.ToggleDrawer()
			return ZoneHeader, ""
		}
		lx, _ := s.grid.Header.Local(msg.X, msg.Y)
		i := widget.TabAt(widget.TabWidths(s.labels()), s.active, s.Width, lx)
		if i >= 0 {
			return ZoneHeader, s.items[i].ID
		}
		return ZoneHeader, ""

	case s.grid.Body.Contains(msg.X, msg.Y):
		if left && s.drawer.Open() {
			lx, ly := s.grid.Body.Local(msg.X, msg.Y)
			if i := s.drawer.ItemAt(ly); i >= 0 && lx < s.DrawerWidth() {
				s.drawer.Cursor = i
				return ZoneBody, s.SelectDrawer()
			}
			s.drawer.Close()
		}
		return ZoneBody, ""

	case s.grid.Footer.Contains(msg.X, msg.Y):
		return ZoneFooter, ""
	}
	return ZoneNone, ""
}
