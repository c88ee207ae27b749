package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ofremap/internal/audit"
	"ofremap/internal/classnode"
	"ofremap/internal/diagnostic"
	"ofremap/internal/environment"
	"ofremap/internal/gate"
	"ofremap/internal/retransform"
	"ofremap/internal/target"
)

var errDeferred = errors.New("class deferred")

func (a *app) loadEnv() (*environment.Static, error) {
	env, err := environment.LoadFile(a.profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return env, nil
}

func (a *app) transformer(exclude []string) (*retransform.Transformer, error) {
	env, err := a.loadEnv()
	if err != nil {
		return nil, err
	}

	return retransform.NewFromEnvironment(env,
		retransform.WithLogger(a.logger),
		retransform.WithExcludePatterns(exclude...))
}

// loadTrail returns the audit trail of class from the log at path, or an
// empty trail when path is empty. class must be in internal form.
func loadTrail(path, class string) (audit.Trail, error) {
	if path == "" {
		return nil, nil
	}

	log, err := audit.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return log.ForClass(class), nil
}

func (a *app) warnUnclaimed(tr *retransform.Transformer, class string) {
	if !tr.Claims(class) {
		a.logger.Warn("Class is not a remap target", zap.String("class", class))
	}
}

func (a *app) targetsCmd() *cobra.Command {
	var exclude []string

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the classes the transformer claims",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.transformer(exclude)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range tr.Targets() {
				fmt.Fprintln(out, t)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Extra doublestar patterns of class names to skip")

	return cmd
}

func (a *app) voteCmd() *cobra.Command {
	var class, auditPath string

	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Replay the ordering vote for a class",
		Long: `Prints "proceed" when the class may be remapped now and "defer" when
it must wait for OptiFine's own transformer. The class's audit trail is read
from the audit log given with --audit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.transformer(nil)
			if err != nil {
				return err
			}

			name := target.Class(class).ClassName
			a.warnUnclaimed(tr, name)

			trail, err := loadTrail(auditPath, name)
			if err != nil {
				return err
			}

			vote := tr.CastVote(retransform.VotingContext{ClassName: name, Audit: trail})
			fmt.Fprintln(cmd.OutOrStdout(), vote)

			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Internal class name")
	cmd.Flags().StringVar(&auditPath, "audit", "", "Audit log path (YAML)")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

func (a *app) transformCmd() *cobra.Command {
	var outPath, auditPath string

	cmd := &cobra.Command{
		Use:   "transform <class.yaml>",
		Short: "Remap a class body document",
		Long: `Reads a class body document, remaps every symbolic reference and
writes the result to --output (stdout by default).

With --audit the ordering vote is cast first and a deferred class is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.transformer(nil)
			if err != nil {
				return err
			}

			in, err := classnode.LoadFile(args[0])
			if err != nil {
				return err
			}

			a.warnUnclaimed(tr, in.Name)

			ctx := retransform.VotingContext{ClassName: in.Name}
			if auditPath != "" {
				if ctx.Audit, err = loadTrail(auditPath, in.Name); err != nil {
					return err
				}

				if tr.CastVote(ctx) == gate.Defer {
					return fmt.Errorf("%w: %s has not been transformed by OptiFine yet", errDeferred, in.Name)
				}
			}

			out := tr.Transform(in, ctx)
			if outPath != "" {
				return classnode.WriteFile(out, outPath)
			}

			return classnode.Encode(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (default stdout)")
	cmd.Flags().StringVar(&auditPath, "audit", "", "Audit log path (YAML)")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a launch profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.loadEnv()
			if err != nil {
				return err
			}

			diags := environment.Validate(env, retransform.MappingID)
			printDiagnostics(cmd.OutOrStdout(), diags.All())

			if diags.HasErrors() {
				return diags.Error()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", a.profile)

			return nil
		},
	}
}

func printDiagnostics(w io.Writer, diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%-7s %s\n", d.Severity, d)
	}
}
