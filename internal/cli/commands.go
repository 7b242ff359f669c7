package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankaccounts/internal/buildinfo"
	"bankaccounts/internal/logger"
	"bankaccounts/internal/scenario"
)

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in example (plain, savings and checking accounts)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := scenario.Demo()
			if err != nil {
				return err
			}
			rep, err := a.runner().Run(cmd.Context(), s)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), rep)
		},
	}
}

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			logger.L().Info("scenario.loaded", "path", args[0], "accounts", len(s.Accounts), "steps", len(s.Steps))

			rep, err := a.runner().Run(cmd.Context(), s)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), rep)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
