package app

import (
	"context"

	"github.com/Josepavese/folio/internal/section"
	"github.com/Josepavese/folio/internal/themestore"
	"github.com/Josepavese/folio/internal/tui/kit/shell"
	"github.com/Josepavese/folio/internal/tui/kit/theme"
	"github.com/Josepavese/folio/internal/tui/kit/view"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options configures an App.
type Options struct {
	// Title is shown in the compact header.
	Title string

	// NarrowWidth is the first terminal width that shows the nav tabs.
	NarrowWidth int

	// Inbox carries messages from outside the program (content reloads).
	Inbox <-chan tea.Msg

	Logger *zap.Logger
}

// App is the TUI controller. It owns the chrome and routes keys between
// the theme store, the section tracker and the page.
type App struct {
	Store   *themestore.Store
	Theme   *theme.Binding
	Tracker *section.Tracker
	Shell   shell.Shell

	page   view.Page
	inbox  <-chan tea.Msg
	logger *zap.Logger

	// Hooks
	OnQuit func()
}

// New wires an App. The nav lists the tracker's anchors.
func New(store *themestore.Store, binding *theme.Binding, tracker *section.Tracker, page view.Page, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	anchors := tracker.Anchors()
	items := make([]shell.NavItem, len(anchors))
	for i, id := range anchors {
		items[i] = shell.NavItem{ID: id, Label: section.Label(id)}
	}

	sh := shell.NewShell(binding, items, opts.NarrowWidth)
	sh.Title = opts.Title
	sh.SetBody(page)

	return &App{
		Store:   store,
		Theme:   binding,
		Tracker: tracker,
		Shell:   sh,
		page:    page,
		inbox:   opts.Inbox,
		logger:  logger,
	}
}

// Init mounts the page and takes the first tracker reading.
func (a *App) Init() tea.Cmd {
	cmd := a.Shell.Init()
	a.observe()
	return cmd
}

// Update handles the main loop.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Shell.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			a.observe()
			return a, cmd
		}

	case tea.MouseMsg:
		if _, id := a.Shell.HandleMouse(msg); id != "" {
			a.jump(id)
			return a, nil
		}

	case view.StatusMsg:
		a.Shell.SetStatus(msg.Text)
		return a, nil
	}

	_, cmd := a.page.Update(msg)
	a.observe()
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		if a.OnQuit != nil {
			a.OnQuit()
		}
		return tea.Quit, true
	case "t":
		a.toggleTheme()
		return nil, true
	}

	if a.Shell.DrawerOpen() {
		switch key {
		case "up", "k":
			a.Shell.MoveDrawer(-1)
		case "down", "j":
			a.Shell.MoveDrawer(1)
		case "enter", " ":
			a.jump(a.Shell.SelectDrawer())
		case "esc", "m":
			a.Shell.CloseDrawer()
		}
		// The drawer is modal: nothing reaches the page while it is open.
		return nil, true
	}

	switch key {
	case "m":
		if a.Shell.Narrow() {
			a.Shell.ToggleDrawer()
			return nil, true
		}
	case "tab":
		a.step(1)
		return nil, true
	case "shift+tab":
		a.step(-1)
		return nil, true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		anchors := a.Tracker.Anchors()
		if i := int(key[0] - '1'); i < len(anchors) {
			a.jump(anchors[i])
		}
		return nil, true
	}
	return nil, false
}

func (a *App) toggleTheme() {
	mode := a.Store.Toggle()
	a.logger.Debug("theme toggled", zap.Stringer("mode", mode))
	// The binding is already current; the page re-renders its markdown.
	a.page.Update(view.ThemeMsg{Mode: mode})
}

// step moves to the next or previous section, wrapping around.
func (a *App) step(delta int) {
	anchors := a.Tracker.Anchors()
	if len(anchors) == 0 {
		return
	}
	i := a.Tracker.Index(a.Tracker.Active())
	if i < 0 {
		i = 0
	}
	n := len(anchors)
	a.jump(anchors[((i+delta)%n+n)%n])
}

func (a *App) jump(id string) {
	if id == "" {
		return
	}
	if !a.page.ScrollTo(id) {
		a.logger.Debug("section not on page", zap.String("section", id))
	}
	a.observe()
}

func (a *App) observe() {
	if a.Tracker.Observe(a.page.Offset(), a.page) {
		a.logger.Debug("active section", zap.String("section", a.Tracker.Active()))
	}
	a.Shell.SetActive(a.Tracker.Active())
	a.Shell.SetScrolled(a.Tracker.Scrolled())
}

// View delegates rendering to the Shell.
func (a *App) View() string {
	return a.Shell.View()
}

// Run attaches the theme binding to the store, restores the persisted mode
// and runs the program until quit or ctx is done. The binding is detached
// on every exit path.
func (a *App) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	detach := a.Theme.Attach(a.Store)
	defer detach()

	mode := a.Store.Initialize()
	a.page.Update(view.ThemeMsg{Mode: mode})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	options := append([]tea.ProgramOption{
		tea.WithContext(runCtx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)
	p := tea.NewProgram(a, options...)

	if a.inbox != nil {
		go func() {
			for {
				select {
				case <-runCtx.Done():
					return
				case msg, ok := <-a.inbox:
					if !ok {
						return
					}
					p.Send(msg)
				}
			}
		}()
	}

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancelled from outside: a normal shutdown.
		return nil
	}
	return err
}
