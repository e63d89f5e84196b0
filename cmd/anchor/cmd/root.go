package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	anchor "github.com/SimonDaKappa/go-anchor"
	"github.com/SimonDaKappa/go-anchor/internal/config"
	"github.com/SimonDaKappa/go-anchor/internal/logger"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	flagEnvFile string

	log        *slog.Logger
	dispatcher *anchor.Dispatcher

	now    time.Time
	hasNow bool
}

// NewRootCmd builds the anchor command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "anchor",
		Short:         "check single values against named validation rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.flagEnvFile, "env-file", "",
		"env file to load before reading ANCHOR_* variables (default ./.env if present)")

	rootCmd.AddCommand(
		newCheckCmd(a),
		newBatchCmd(a),
		newRulesCmd(a),
	)

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	var files []string
	if a.flagEnvFile != "" {
		files = append(files, a.flagEnvFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	// Validated by config.Load.
	level, _ := cfg.Level()
	a.now, a.hasNow, _ = cfg.ReferenceTime()

	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("cli")),
	)

	a.dispatcher = anchor.NewDispatcher(anchor.DispatcherOpts{
		Logger: a.log,
	})

	return nil
}

// checkOptions returns the options for checking ref, adding the configured
// reference time to date comparisons that carry no param of their own.
func (a *app) checkOptions(ref anchor.RuleRef, explicitParam bool) []anchor.CheckOption {
	opts := ref.Options()
	if ref.HasParam || explicitParam || !a.hasNow {
		return opts
	}
	if ref.Name == anchor.RuleAfter || ref.Name == anchor.RuleBefore {
		opts = append(opts, anchor.WithParam(a.now))
	}
	return opts
}
