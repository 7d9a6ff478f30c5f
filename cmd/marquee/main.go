package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/source/omdb"
	"github.com/mmcdole/marquee/internal/debounce"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/scroll"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app holds what every command needs once configuration is loaded
type app struct {
	cfg        *adapter.Config
	configPath string
	logger     *slog.Logger
	closer     io.Closer
	client     *omdb.Client
}

func (a *app) Close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "marquee",
		Short:         "Search and browse movies from the terminal",
		Long:          "marquee is a terminal front end for the OMDb movie database.\nRun without arguments to start the interactive browser.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, configPath, true)
			if err != nil {
				return err
			}
			defer a.Close()
			return runTUI(a)
		},
	}
	root.SetVersionTemplate("marquee {{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default "+adapter.DefaultConfigDir()+"/config.yaml)")

	root.AddCommand(
		newSearchCmd(&configPath),
		newLatestCmd(&configPath),
		newDetailCmd(&configPath),
		newSetupCmd(&configPath),
	)
	return root
}

// loadApp loads configuration, sets up logging and builds the OMDb client.
// With interactive set, a missing API key starts the setup prompt.
func loadApp(cmd *cobra.Command, configPath string, interactive bool) (*app, error) {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, closer = adapter.NullLogger(), nil
	}
	slog.SetDefault(logger)
	logger.Info("starting marquee", "version", Version, "command", cmd.Name())

	a := &app{cfg: cfg, configPath: configPath, logger: logger, closer: closer}

	if !cfg.IsConfigured() {
		if !interactive {
			a.Close()
			return nil, fmt.Errorf("no OMDb API key configured: run 'marquee setup' or set MARQUEE_OMDB_API_KEY")
		}
		if err := runSetup(cmd, a); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.client = omdb.NewClient(cfg.OMDb.BaseURL, cfg.OMDb.APIKey, logger,
		omdb.WithTimeout(cfg.OMDb.Timeout),
		omdb.WithRateLimit(cfg.OMDb.RateLimit, cfg.OMDb.Burst),
	)
	return a, nil
}

// newController builds a controller over the OMDb client
func (a *app) newController(notifier domain.Notifier) *service.Controller {
	return service.NewController(a.client, a.logger,
		service.WithSubjects(a.cfg.Search.LatestSubjects),
		service.WithNotifier(notifier),
	)
}

func runTUI(a *app) error {
	bridge := tui.NewBridge()
	ctrl := a.newController(bridge)
	details := service.NewDetailService(a.client, a.logger)

	model := tui.NewModel(ctrl, details, bridge, tui.Options{
		Quiet:       a.cfg.Search.Debounce,
		ScrollQuiet: a.cfg.UI.ScrollDebounce,
		Thresholds: scroll.Thresholds{
			CompactAbove: a.cfg.UI.CompactAbove,
			ExpandBelow:  a.cfg.UI.ExpandBelow,
		},
		RowHeight:     a.cfg.UI.RowHeight,
		ToastDuration: a.cfg.UI.ToastDuration,
		Theme:         a.cfg.UI.Theme,
		Clock:         debounce.SystemClock{},
	}, a.logger)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}
