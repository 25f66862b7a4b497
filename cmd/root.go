// Package cmd provides the root command and CLI setup for keyctx.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/keyctx/internal/adapter"
	"github.com/mouse-blink/keyctx/internal/config"
	"github.com/mouse-blink/keyctx/internal/controller"
	"github.com/mouse-blink/keyctx/internal/domain"
	"github.com/mouse-blink/keyctx/internal/logging"
	m "github.com/mouse-blink/keyctx/internal/model"
)

// workflow and ui are built per command from the config of the target
// directory unless already set.
var workflow domain.Workflow
var ui controller.UI

var configFlag string
var manifestFlag string
var logLevelFlag string
var logFormatFlag string
var scopeFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `keyctx rewrites the key bindings of every mod in a mods directory so
that each mod listens on its own keys, guarded by a per-mod selector.

Runs are idempotent: every apply starts from the pristine backups, so
running it again after adding or removing mods renumbers everything
consistently. Settings are read from <dir>/.keyctx.yaml when present.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "keyctx",
		Short:        "Per-mod key binding injector",
		Long:         rootLongDescription,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "config file (default <dir>/"+config.FileName+")")
	flags.StringVarP(&manifestFlag, "manifest", "m", "", "manifest path relative to the mods directory; .yaml or .yml writes YAML")
	flags.StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&logFormatFlag, "log-format", "", "log format: console or json")
	flags.StringVar(&scopeFlag, "scope", "", "selector scope: local or global")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// session is everything a command needs for one directory.
type session struct {
	cfg      config.Config
	log      *zap.Logger
	workflow domain.Workflow
	ui       controller.UI
}

func (s session) close() {
	_ = s.log.Sync()
}

// loadConfig reads the config for root and applies flag overrides.
func loadConfig(root string) (config.Config, error) {
	cfg, err := config.LoadForRoot(root, configFlag)
	if err != nil {
		return config.Config{}, err
	}

	if manifestFlag != "" {
		cfg.Manifest = manifestFlag
	}

	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}

	if logFormatFlag != "" {
		cfg.Logging.Format = logFormatFlag
	}

	if scopeFlag != "" {
		cfg.Scope = m.SelectorScope(scopeFlag)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("flags: %w", err)
	}

	return cfg, nil
}

func newSession(cmd *cobra.Command, root string) (session, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return session{}, err
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return session{}, err
	}

	s := session{cfg: cfg, log: log, workflow: workflow, ui: ui}

	if s.workflow == nil {
		fs := adapter.NewLocalConfigFSAdapter()
		s.workflow = domain.NewWorkflow(fs,
			adapter.NewManifestStore(fs),
			adapter.NewDisplayStore(fs),
			cfg,
			domain.WithLogger(log),
		)
	}

	if s.ui == nil {
		s.ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	}

	log.Debug("session ready",
		zap.String("command", cmd.Name()),
		zap.String("root", root),
		zap.String("scope", string(cfg.Scope)),
	)

	return s, nil
}

// rootArg returns the directory argument, defaulting to the working directory.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return "."
}
