package main

import (
	"fmt"
	"strings"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewTopicsCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "topics",
		Aliases: []string{"ls"},
		Short:   "List topics",
		Long:    `List every topic with its memory count, observed tags, and most recent activity.`,
		RunE:    makeTopicsRunner(uc),
	}

	return cmd
}

func makeTopicsRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, storePath := targetFlags(cmd)

		out, err := uc.ListTopics.Execute(cmd.Context(), internal.ListTopicsInput{
			Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out)
		}

		if out.TotalTopics == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No topics")
			return nil
		}

		for _, topic := range out.Topics {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)", topic.Topic, topic.Count)
			if len(topic.Tags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " [%s]", strings.Join(topic.Tags, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), " %s\n", topic.LatestActivity.Format("2006-01-02 15:04"))
		}
		return nil
	}
}
