package cmd

import (
	"fmt"
	"io"
	"os"

	"cinematrix-cli/booking"
	"cinematrix-cli/config"
	"cinematrix-cli/logger"
	"cinematrix-cli/store"
	"cinematrix-cli/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type BuildInfo struct {
	Version string
	Commit  string
}

type options struct {
	catalogPath string
	cfg         *config.Config
}

func Execute(build BuildInfo) {
	if err := NewRootCmd(build).Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd(build BuildInfo) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "cinematrix",
		Short:        "Cinema ticket booking from the terminal",
		Long:         `Pick a movie, a showtime and your seats, then confirm the booking. Run without a command for the interactive seat map.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.cfg = config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog JSON file (overrides CINEMATRIX_CATALOG)")
	rootCmd.AddCommand(
		newMoviesCmd(opts),
		newSeatsCmd(opts),
		newBookCmd(opts),
		newCatalogCmd(opts),
		newVersionCmd(build),
	)
	return rootCmd
}

func runInteractive(opts *options) error {
	log, err := opts.openLogger(nil)
	if err != nil {
		return err
	}
	defer log.Close()

	state, err := opts.loadState(log)
	if err != nil {
		return err
	}
	log.Info("APP", "starting interactive booking")
	app := tui.New(state, tui.Options{Logger: log, MovieID: opts.cfg.UI.MovieID})
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Error("APP", err.Error())
		return err
	}
	return nil
}

// openLogger writes to terminal (nil for none) and the configured log file. A log file that
// cannot be opened is reported on terminal and skipped.
func (o *options) openLogger(terminal io.Writer) (*logger.Logger, error) {
	cfg := o.config()
	log, err := logger.New(logger.Options{
		Terminal: terminal,
		FilePath: cfg.Log.File,
		Level:    cfg.Log.Level,
	})
	if err == nil {
		return log, nil
	}
	if terminal != nil {
		fmt.Fprintf(terminal, "log file disabled: %v\n", err)
	}
	return logger.New(logger.Options{Terminal: terminal, Level: cfg.Log.Level})
}

func (o *options) config() *config.Config {
	if o.cfg == nil {
		o.cfg = config.Load()
	}
	return o.cfg
}

// loadState builds the booking state from the --catalog flag, the configured catalog file or the
// built-in catalog, in that order. A catalog file that was asked for explicitly must exist.
func (o *options) loadState(log *logger.Logger) (*booking.State, error) {
	cfg := o.config()
	path, explicit := cfg.Catalog.Path, cfg.Catalog.Explicit
	if o.catalogPath != "" {
		path, explicit = o.catalogPath, true
	}

	catalog, found, err := store.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	if !found {
		if explicit {
			return nil, fmt.Errorf("catalog file %s: %w", path, os.ErrNotExist)
		}
		log.Debug("CATALOG", "using built-in catalog")
		return booking.NewDefault(), nil
	}

	state, err := booking.New(catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	log.Info("CATALOG", fmt.Sprintf("loaded %d movies from %s", len(state.Movies()), path))
	return state, nil
}
