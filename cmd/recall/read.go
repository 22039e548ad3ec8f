package main

import (
	"fmt"
	"strings"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewReadCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Query memories",
		Long:  `Query memories by topic, title, keyword, or tags. All given filters must match.`,
		RunE:  makeReadRunner(uc),
	}

	cmd.Flags().String("topic", "", "Exact topic to search in")
	cmd.Flags().String("title", "", "Exact title to look up")
	cmd.Flags().StringP("query", "q", "", "Case-insensitive keyword search")
	cmd.Flags().StringArrayP("tag", "t", nil, "Match memories carrying any of these tags (repeatable)")
	return cmd
}

func makeReadRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		title, _ := cmd.Flags().GetString("title")
		query, _ := cmd.Flags().GetString("query")
		tags, _ := cmd.Flags().GetStringArray("tag")
		scopeHint, storePath := targetFlags(cmd)

		out, err := uc.ReadMemories.Execute(cmd.Context(), internal.ReadMemoriesInput{
			Topic: topic, Title: title, Query: query, Tags: tags,
			Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("read memories: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out)
		}

		if out.Count == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No memories found")
			return nil
		}

		for _, mem := range out.Memories {
			printMemory(cmd, mem)
		}
		return nil
	}
}

func printMemory(cmd *cobra.Command, mem internal.MemoryOutput) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s/%s\n", mem.Topic, mem.Title)
	if len(mem.Tags) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  tags: %s\n", strings.Join(mem.Tags, ", "))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", mem.Content)
}
