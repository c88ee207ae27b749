package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ofremap/internal/environment"
	"ofremap/internal/naming"
	"ofremap/internal/retransform"
)

func (a *app) mappingsCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Inspect the rename tables of a launch profile",
	}

	cmd.PersistentFlags().StringVar(&id, "id", retransform.MappingID, "Mapping id")

	cmd.AddCommand(a.mappingsResolveCmd(&id), a.mappingsExportCmd(&id))

	return cmd
}

func (a *app) resolver(id string) (naming.Resolver, error) {
	env, err := a.loadEnv()
	if err != nil {
		return nil, err
	}

	return environment.RequireNameMapping(env, id)
}

func (a *app) mappingsResolveCmd(id *string) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <class|method|field> <name>",
		Short: "Print the new name for one symbol",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := naming.ParseDomain(args[0])
			if err != nil {
				return err
			}

			r, err := a.resolver(*id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), r.Resolve(domain, args[1]))

			return nil
		},
	}
}

func (a *app) mappingsExportCmd(id *string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the merged rename table as YAML",
		Long: `Writes the rename table registered under --id, with every overlay
merged in, to --output (stdout by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver(*id)
			if err != nil {
				return err
			}

			table, ok := r.(*naming.Table)
			if !ok {
				return fmt.Errorf("mapping %q is not a rename table", *id)
			}

			if outPath != "" {
				return naming.WriteFile(table, outPath)
			}

			data, err := naming.Marshal(table)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (default stdout)")

	return cmd
}
