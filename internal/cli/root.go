package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/kamus/internal/config"
	"github.com/faizmokh/kamus/internal/dictionary"
	"github.com/faizmokh/kamus/internal/files"
	"github.com/faizmokh/kamus/internal/logging"
	"github.com/faizmokh/kamus/internal/navigator"
	"github.com/faizmokh/kamus/internal/render"
	"github.com/faizmokh/kamus/internal/ui"
	"github.com/faizmokh/kamus/internal/version"
)

// environment carries what every command needs once flags are parsed. The
// config is loaded lazily so subcommands work without the root pre-run.
type environment struct {
	manager *files.Manager

	configPath string
	dictPath   string

	cfg    *config.Config
	logger *slog.Logger
	loader *dictionary.Loader
}

func newEnvironment(manager *files.Manager) *environment {
	return &environment{manager: manager}
}

func (e *environment) setup(cmd *cobra.Command) error {
	if e.cfg != nil {
		return nil
	}

	cfg, err := config.Load(e.configPath, e.manager.ConfigPath())
	if err != nil {
		return err
	}
	if e.dictPath != "" {
		cfg.Dictionary.Path = e.dictPath
	}

	e.cfg = cfg
	e.logger = logging.New(cfg.Log, cmd.ErrOrStderr())
	e.loader = dictionary.NewLoader(e.logger)
	return nil
}

// openTable loads the configured dictionary. Failures are fatal for every command.
func (e *environment) openTable(ctx context.Context, cmd *cobra.Command) (*dictionary.Table, error) {
	if err := e.setup(cmd); err != nil {
		return nil, err
	}
	path, err := e.manager.Resolve(e.cfg.Dictionary.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve dictionary path: %w", err)
	}
	return e.loader.Load(ctx, path)
}

// renderer returns the renderer named by format, or the configured one when empty.
func (e *environment) renderer(format string) (render.Renderer, error) {
	if format == "" {
		format = e.cfg.UI.Renderer
	}
	return render.ByName(format, e.cfg.UI.Width)
}

// tuiLogger writes to the configured log file; the terminal belongs to the TUI.
func (e *environment) tuiLogger() (*slog.Logger, func() error, error) {
	if e.cfg.Log.File == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	file, err := e.manager.OpenLog(e.cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(e.cfg.Log, file), file.Close, nil
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	env := newEnvironment(manager)

	cmd := &cobra.Command{
		Use:     "kamus",
		Short:   "Browse a day-by-day vocabulary dictionary from your terminal.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := env.openTable(ctx, cmd)
			if err != nil {
				return err
			}
			renderer, err := env.renderer("")
			if err != nil {
				return err
			}
			logger, closeLog, err := env.tuiLogger()
			if err != nil {
				return err
			}
			defer closeLog()

			m := ui.NewModel(navigator.New(table), renderer, logger)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&env.dictPath, "file", "f", "", "Dictionary JSON file (default: config dictionary.path)")
	cmd.PersistentFlags().StringVar(&env.configPath, "config", "", "Config file (default: $KAMUS_CONFIG or ~/.kamus/config.yaml)")

	cmd.AddCommand(
		newShowCommand(ctx, env),
		newPrevCommand(ctx, env),
		newNextCommand(ctx, env),
		newJumpCommand(ctx, env),
		newDaysCommand(ctx, env),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/kamus/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kamus %s\n", version.Info())
		},
	}
}
