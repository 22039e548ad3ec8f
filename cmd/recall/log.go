package main

import (
	"fmt"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewLogCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show mutation history",
		Long:  `Show the commit history of the memory store.`,
		RunE:  makeLogRunner(uc),
	}

	cmd.Flags().IntP("number", "n", 10, "Limit number of commits")
	cmd.Flags().Bool("oneline", false, "Show each commit on one line")
	return cmd
}

func makeLogRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("number")
		oneline, _ := cmd.Flags().GetBool("oneline")
		scopeHint, storePath := targetFlags(cmd)

		out, err := uc.Log.Execute(cmd.Context(), internal.LogInput{
			Limit: limit, Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("get log: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out.Commits)
		}

		for _, c := range out.Commits {
			if oneline {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.Hash[:7], c.Message)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "commit %s\n", c.Hash)
				fmt.Fprintf(cmd.OutOrStdout(), "Date:   %s\n\n", c.Timestamp.Format("Mon Jan 2 15:04:05 2006 -0700"))
				fmt.Fprintf(cmd.OutOrStdout(), "    %s\n\n", c.Message)
			}
		}
		return nil
	}
}
