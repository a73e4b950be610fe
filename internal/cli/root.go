package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"portfolio-cli/internal/config"
	"portfolio-cli/internal/format"
	"portfolio-cli/internal/logging"
	"portfolio-cli/internal/session"
	"portfolio-cli/internal/store"
	"portfolio-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Dir        string
	Theme      string
	Persist    bool
	LogLevel   string
	LogFile    string
	PrettyJSON bool
	Format     string

	cfg *config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "AI/ML engineer portfolio: terminal dashboard, web UI and CLI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  portfolio

  # Scriptable commands
  portfolio projects list --format text
  portfolio projects add --title "Graph Net" --tags "GNN, PyTorch"

  # Keep changes between runs
  portfolio --persist projects delete 2

  # Direct project lookup (shortcut for: portfolio projects show 3)
  portfolio 3
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return writeErr(cmd, err)
		}
		if err := app.applyFlags(cmd, cfg); err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			_ = app.log.Sync()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Data directory for --persist (default: config dir)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Theme (dark|light|auto); overrides config")
	cmd.PersistentFlags().BoolVar(&app.Persist, "persist", false, "Load and save projects in a local SQLite file")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("PORTFOLIO_FORMAT", format.JSON), "Output format (json|edn|text)")

	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newSkillsCmd(app))
	cmd.AddCommand(newProfileCmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newWebCmd(app))
	cmd.AddCommand(newWebTUICmd(app))

	return cmd
}

// applyFlags layers explicit flags over the loaded config (file, then env).
func (a *App) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if v := strings.TrimSpace(a.Theme); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if cmd.Flags().Changed("persist") {
		cfg.Persist = a.Persist
	}
	if v := strings.TrimSpace(a.Dir); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(a.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(a.LogFile); v != "" {
		cfg.LogFile = v
	}
	return cfg.Validate()
}

// logger returns the process logger. Servers log to stderr; everything else
// stays quiet unless a log file is configured.
func (a *App) logger(console bool) (*zap.Logger, error) {
	if a.log != nil {
		return a.log, nil
	}
	var (
		l   *zap.Logger
		err error
	)
	if console {
		l, err = logging.New(a.cfg.LogLevel, a.cfg.LogFile)
	} else {
		l, err = logging.ForTUI(a.cfg.LogLevel, a.cfg.LogFile)
	}
	if err != nil {
		return nil, err
	}
	a.log = l
	return l, nil
}

// openSession builds the session for this process: seeded and in-memory by
// default, restored from and tracked into SQLite when persistence is on.
func (a *App) openSession(ctx context.Context, log *zap.Logger) (*session.Session, error) {
	if !a.cfg.Persist {
		return session.NewDefault(), nil
	}
	dir, err := a.cfg.DataPath()
	if err != nil {
		return nil, err
	}
	st := store.Store{Dir: dir}
	sess, err := st.Restore(ctx, session.NewDefault)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", st.Path(), err)
	}
	st.Track(ctx, sess, log)
	log.Info("session restored", zap.String("db", st.Path()), zap.Int("projects", sess.Projects.Len()))
	return sess, nil
}

// persistHints tells scripted callers that a mutation only lived in memory.
func (a *App) persistHints() []string {
	if a.cfg.Persist {
		return []string{}
	}
	return []string{"changes are not saved; pass --persist to keep them"}
}

func runTUI(cmd *cobra.Command, app *App) error {
	log, err := app.logger(false)
	if err != nil {
		return writeErr(cmd, err)
	}
	sess, err := app.openSession(cmd.Context(), log)
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(sess, tui.Options{Theme: app.cfg.Theme, Logger: log})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
