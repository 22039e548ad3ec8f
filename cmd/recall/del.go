package main

import (
	"fmt"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewDelCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "del <topic> [title]",
		Aliases: []string{"delete", "rm"},
		Short:   "Delete a memory or a whole topic",
		Long:    `Delete one memory by topic and title, or every memory under a topic when no title is given.`,
		Args:    cobra.RangeArgs(1, 2),
		RunE:    makeDelRunner(uc),
	}

	cmd.Flags().StringP("message", "m", "", "Commit message")
	return cmd
}

func makeDelRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		title := ""
		if len(args) > 1 {
			title = args[1]
		}

		scopeHint, storePath := targetFlags(cmd)
		message, _ := cmd.Flags().GetString("message")

		out, err := uc.DeleteMemory.Execute(cmd.Context(), internal.DeleteMemoryInput{
			Topic: topic, Title: title, Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("delete memory: %w", err)
		}

		if err := autoCommit(cmd.Context(), uc.Commit, message, "del", topic, title, scopeHint, storePath); err != nil {
			return fmt.Errorf("commit: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out)
		}

		if title != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s/%s\n", topic, title)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d memories from %s\n", out.Removed, topic)
		return nil
	}
}
