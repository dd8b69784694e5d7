package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"addressbook/internal/config"
	"addressbook/internal/logging"
	"addressbook/internal/session"
	"addressbook/internal/store"
	"addressbook/internal/ui"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	dataPath   string
	backend    string
	noColor    bool

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "book",
	Short: "book - a terminal address book",
	Long: `book keeps contacts with phone numbers and birthdays.

Run without arguments to start the interactive assistant. The book is
loaded on start and saved on close, exit, end of input or Ctrl-C.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <workspace>/.book/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Contact book file (overrides storage.path)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend: file or sqlite")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	birthdaysCmd.Flags().IntVar(&birthdayDays, "days", 0, "Lookahead in days (default: birthdays.window_days)")

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup resolves the workspace, loads config and builds the logger.
func setup() error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	workspace = ws

	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadWorkspace(ws)
	}
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	logger, err = logging.New(cfg.Logging, ws, verbose)
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryBoot).Debug("configuration loaded",
		zap.String("workspace", ws),
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path),
	)
	return nil
}

func resolveWorkspace() (string, error) {
	if workspace == "" {
		return os.Getwd()
	}
	return filepath.Abs(workspace)
}

// applyFlags layers command-line flags over the loaded config.
func applyFlags(c *config.Config) error {
	if dataPath != "" {
		c.Storage = c.Storage.ForPath(dataPath)
	}
	if backend != "" {
		c.Storage.Backend = backend
	}
	if noColor {
		c.UX.Color = false
	}
	return c.Validate()
}

// openStore opens the configured backend with its path resolved against
// the workspace.
func openStore(ctx context.Context, sc config.StorageConfig) (store.Store, error) {
	sc.Path = sc.ResolvePath(workspace)
	return store.Open(ctx, sc, logging.For(logger, logging.CategoryStore))
}

// newSession loads the book and wraps it in a session writing to cmd's
// output.
func newSession(ctx context.Context, cmd *cobra.Command) (*session.Session, store.Store, error) {
	st, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	book, err := st.Load(ctx)
	if err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("failed to load contacts: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := ui.Plain()
	if cfg.UX.Color {
		styles = ui.NewStyles(out, ui.ThemeNamed(cfg.UX.Theme))
	}
	s := session.New(book, st, out,
		session.WithLogger(logger),
		session.WithStyles(styles),
		session.WithWindow(cfg.Birthdays.WindowDays),
	)
	return s, st, nil
}

// runInteractive is the default command: the read-eval loop on stdin.
func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, st, err := newSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return s.Run(ctx, cmd.InOrStdin())
}
