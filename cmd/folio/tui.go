package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Josepavese/folio/internal/content"
	"github.com/Josepavese/folio/internal/logging"
	"github.com/Josepavese/folio/internal/section"
	"github.com/Josepavese/folio/internal/tui/app/pages/portfolio"
	"github.com/Josepavese/folio/internal/tui/kit/app"
	"github.com/Josepavese/folio/internal/tui/kit/theme"
)

// runTUI launches the terminal portfolio.
func runTUI(ctx context.Context, e *env) error {
	profile, err := e.profile()
	if err != nil {
		return err
	}

	store := e.themeStore()
	binding := theme.NewBinding(store.Mode())
	tracker := section.NewTracker(nil,
		section.WithReferenceOffset(e.cfg.Tracker.ReferenceOffset),
		section.WithScrolledThreshold(e.cfg.Tracker.ScrolledThreshold),
	)
	page := portfolio.New(profile, binding, tracker.Anchors(), logging.Component(e.logger, "page"))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbox := make(chan tea.Msg, 1)
	e.watch(ctx, func(p *content.Profile) {
		select {
		case inbox <- portfolio.ContentMsg{Profile: p}:
		case <-ctx.Done():
		}
	})

	a := app.New(store, binding, tracker, page, app.Options{
		Title:       profile.Name,
		NarrowWidth: e.cfg.Layout.NarrowWidth,
		Inbox:       inbox,
		Logger:      logging.Component(e.logger, "tui"),
	})
	e.logger.Info("starting terminal portfolio")
	return a.Run(ctx)
}
