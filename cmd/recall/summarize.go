package main

import (
	"fmt"
	"strings"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewSummarizeCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize <topic>",
		Short: "Summarize a topic",
		Long:  `Return every memory of a topic as structured data for a downstream summarizer.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeSummarizeRunner(uc),
	}

	return cmd
}

func makeSummarizeRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		scopeHint, storePath := targetFlags(cmd)

		out, err := uc.SummarizeTopic.Execute(cmd.Context(), internal.SummarizeTopicInput{
			Topic: args[0], Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("summarize topic: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries\n", out.Topic, out.TotalEntries)
		for _, entry := range out.Entries {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", entry.Title)
			if len(entry.Tags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  tags: %s\n", strings.Join(entry.Tags, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", entry.Content)
		}
		return nil
	}
}
