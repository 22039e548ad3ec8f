package main

import (
	"fmt"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewDiffCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [ref]",
		Short: "Show store changes",
		Long:  `Show uncommitted store changes, or the changes between HEAD and a given revision.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  makeDiffRunner(uc),
	}

	return cmd
}

func makeDiffRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ref := ""
		if len(args) > 0 {
			ref = args[0]
		}

		scopeHint, storePath := targetFlags(cmd)

		out, err := uc.Diff.Execute(cmd.Context(), internal.DiffInput{
			Ref: ref, Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out)
		}

		fmt.Fprint(cmd.OutOrStdout(), out.Patch)
		return nil
	}
}
