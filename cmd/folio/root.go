package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Josepavese/folio/internal/config"
	"github.com/Josepavese/folio/internal/content"
	"github.com/Josepavese/folio/internal/logging"
	"github.com/Josepavese/folio/internal/prefs"
	"github.com/Josepavese/folio/internal/themestore"
)

// env is what every command needs after flag parsing.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

type rootOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "A personal portfolio for the terminal and the browser",
		Long: `folio renders a portfolio profile as a scrollable terminal page with
section navigation and a light/dark theme that persists between sessions.
The same profile can be served over HTTP or exported as static HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(true)
			if err != nil {
				return err
			}
			defer e.logger.Sync()
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return runTUI(ctx, e)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", config.DefaultPath(), "config file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newConfigCmd(opts),
		newThemeCmd(opts),
		newSectionsCmd(opts),
		newServeCmd(opts),
		newExportCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load reads the configuration and builds the logger. The terminal UI owns
// the screen, so it logs to the configured file; other commands log to
// stderr.
func (o *rootOptions) load(interactive bool) (*env, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}

	logOpts := logging.Options{Level: cfg.Log.Level}
	if interactive {
		logOpts.File = cfg.Log.File
	}
	if o.verbose {
		logOpts.Level = "debug"
		logOpts.Development = !interactive
	}
	logger, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger}, nil
}

// themeStore builds the theme store over the preferences file. Without a
// usable file the mode lives for the session only.
func (e *env) themeStore() *themestore.Store {
	var storage themestore.Storage = prefs.NewMemoryStorage()
	if e.cfg.PrefsFile != "" {
		storage = prefs.NewFileStorage(e.cfg.PrefsFile)
	} else {
		e.logger.Info("no prefs_file configured, theme is kept for this session only")
	}
	return themestore.New(storage, themestore.SchemeFromSetting(e.cfg.Theme.Scheme),
		themestore.WithKey(e.cfg.Theme.Key),
		themestore.WithLogger(logging.Component(e.logger, "theme")),
	)
}

func (e *env) profile() (*content.Profile, error) {
	p, err := content.Load(e.cfg.Profile, e.cfg.PublicationsDir)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return p, nil
}

// watch reloads content in the background while ctx lives. It does nothing
// for the built-in profile.
func (e *env) watch(ctx context.Context, onChange func(*content.Profile)) {
	if e.cfg.Profile == "" && e.cfg.PublicationsDir == "" {
		return
	}
	w := content.Watcher{
		ProfilePath:     e.cfg.Profile,
		PublicationsDir: e.cfg.PublicationsDir,
		Logger:          logging.Component(e.logger, "content"),
	}
	go func() {
		if err := w.Run(ctx, onChange); err != nil {
			e.logger.Warn("content watcher stopped", zap.Error(err))
		}
	}()
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
