// Package main provides the CLI entrypoint for ofremap.
//
// ofremap drives the OptiFine development retransformer outside of a game
// launch. It reads a launch profile describing the game directory, mod list,
// pinned classes and rename tables, and can:
//   - list the classes the transformer would claim
//   - replay the ordering vote for a class against an audit log
//   - remap a class body document
//   - validate a launch profile
//   - inspect and export the loaded rename tables
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	Version = "0.1.0"
	appName = "ofremap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds state shared by every subcommand.
type app struct {
	profile string
	verbose bool
	logger  *zap.Logger
}

func rootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Remap OptiFine classes into development names",
		Long: `ofremap remaps classes shipped by OptiFine from srg names into the
names used by a development environment.

Every command reads a launch profile (--profile) listing the game directory,
the installed mods, the classes pinned for remapping and the rename tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.profile, "profile", "p", "profile.yaml", "Launch profile path (YAML)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		a.targetsCmd(),
		a.voteCmd(),
		a.transformCmd(),
		a.checkCmd(),
		a.mappingsCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

func (a *app) initLogger() error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger = logger

	return nil
}
