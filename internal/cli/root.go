package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/olehluchkiv/gosolid/internal/config"
	"github.com/olehluchkiv/gosolid/internal/console"
	"github.com/olehluchkiv/gosolid/internal/logging"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root has configured it.
type app struct {
	configPath string
	logLevel   string
	logFile    string
	noColor    bool

	cfg     config.Config
	logger  *slog.Logger
	cleanup func()
}

func (a *app) printer(cmd *cobra.Command) *console.Printer {
	return console.New(cmd.OutOrStdout(), a.cfg.ColorEnabled() && !a.noColor)
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = a.logFile
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger, cleanup, err := logging.Setup(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.cleanup = cleanup
	logger.Debug("configuration loaded", "log_level", cfg.LogLevel, "log_file", cfg.LogFile)
	return nil
}

// close releases the log file. Safe to call more than once.
func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

// newRootCmd builds the gosolid command tree. The returned app must be
// closed once the command has run.
func newRootCmd(version string) (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "gosolid",
		Short: "Run and audit side-by-side SOLID principle examples",
		Long: `gosolid runs small demonstrations of the five SOLID principles, each
shown as a violating and an adhering version, and audits Go packages for the
structural anti-patterns those demonstrations illustrate.`,
		Version: version,
		// Errors are returned by our own RunE functions; usage would only add noise.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "gosolid version %s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default layers ~/.config/gosolid/config.yaml and ./.gosolid.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFile, "log-file", "", "also write JSON logs to this file")
	pf.BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		newListCmd(a),
		newRunCmd(a),
		newAuditCmd(a),
		newDiagramCmd(a),
		newVersionCmd(),
	)
	return root, a
}

// executeRoot runs root and closes the app, failed commands included.
func executeRoot(ctx context.Context, root *cobra.Command, a *app) error {
	defer a.close()
	return root.ExecuteContext(ctx)
}

// Execute runs the root command with signal-aware cancellation and exits
// non-zero on error.
func Execute(version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, a := newRootCmd(version)
	if err := executeRoot(ctx, root, a); err != nil {
		// Cobra prints the error, we just exit non-zero
		stop()
		os.Exit(1)
	}
}
