package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sortlist/internal/config"
	"sortlist/internal/reorder"
	"sortlist/internal/trace"
	"sortlist/internal/ui"
)

// options holds the parsed command-line flags.
type options struct {
	itemsPath  string
	logFile    string
	title      string
	verbose    bool
	printOrder bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "sortlist",
		Short: "Reorder a list in the terminal by dragging it with the mouse",
		Long: `sortlist shows a list of items in the terminal. Drag an item by its
grab handle (⠿) to reorder it, or click its delete handle (✕) to remove it.
Shift+arrows move the selected item from the keyboard.

When the program exits, the final order is printed as YAML in the same
format accepted by --items.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, opts)
			return run(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.itemsPath, "items", "", "YAML file with the items to show")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file (default $SORTLIST_LOG_FILE or sortlist.log)")
	f.StringVar(&opts.title, "title", "", "list title (default $SORTLIST_TITLE or Items)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	f.BoolVar(&opts.printOrder, "print-order", true, "print the final order as YAML on exit")
	return cmd
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) {
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = opts.title
	}
}

func run(ctx context.Context, out io.Writer, cfg config.Config, opts options) error {
	logger, err := newLogger(cfg.LogFile, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	items, err := loadItems(opts.itemsPath)
	if err != nil {
		return err
	}

	tp, err := trace.NewProvider(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	view, err := ui.NewListView(cfg.Title, items, logger, reorder.WithTracer(tp.Tracer()))
	if err != nil {
		return err
	}
	list := view.List()
	defer list.Destroy()

	logger.Info("starting", zap.Int("items", list.Len()), zap.String("title", cfg.Title))
	app := ui.NewAppModel(view, logger)
	p := tea.NewProgram(app.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if !opts.printOrder {
		return nil
	}
	return writeOrder(out, list, logger)
}

// loadItems reads the item file, or returns the built-in items if path is empty.
func loadItems(path string) ([]reorder.Item, error) {
	if path == "" {
		return config.DefaultItems(), nil
	}
	return config.LoadItems(path)
}

func writeOrder(out io.Writer, list *reorder.List, logger *zap.Logger) error {
	items, err := list.Items()
	if err != nil {
		return err
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	logger.Info("final order", zap.Strings("ids", ids))
	return config.WriteItems(out, items)
}

// newLogger builds a JSON file logger. The terminal belongs to the TUI, so
// logs never go to stdout or stderr. An empty path disables logging.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
