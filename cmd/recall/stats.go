package main

import (
	"fmt"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewStatsCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show store statistics",
		Long:  `Show store-wide statistics: total memories, total topics, and the most frequent tags.`,
		RunE:  makeStatsRunner(uc),
	}

	return cmd
}

func makeStatsRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, storePath := targetFlags(cmd)

		out, err := uc.GetStatistics.Execute(cmd.Context(), internal.GetStatisticsInput{
			Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("get statistics: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Memories: %d\n", out.TotalMemories)
		fmt.Fprintf(cmd.OutOrStdout(), "Topics:   %d\n", out.TotalTopics)
		if len(out.TopTags) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Top tags:")
			for _, tag := range out.TopTags {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d)\n", tag.Tag, tag.Count)
			}
		}
		return nil
	}
}
