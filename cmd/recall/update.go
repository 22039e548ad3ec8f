package main

import (
	"fmt"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewUpdateCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <topic> <title>",
		Short: "Update a memory",
		Long:  `Replace the content or the tag set of an existing memory.`,
		Args:  cobra.ExactArgs(2),
		RunE:  makeUpdateRunner(uc),
	}

	cmd.Flags().StringP("content", "c", "", "Replacement content")
	cmd.Flags().StringArrayP("tag", "t", nil, "Replacement tag (repeatable)")
	cmd.Flags().Bool("clear-tags", false, "Remove every tag from the memory")
	cmd.Flags().Bool("diff", false, "Print a line diff of the content change")
	cmd.Flags().StringP("message", "m", "", "Commit message")
	return cmd
}

func makeUpdateRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		topic, title := args[0], args[1]
		scopeHint, storePath := targetFlags(cmd)
		message, _ := cmd.Flags().GetString("message")
		showDiff, _ := cmd.Flags().GetBool("diff")

		var newContent *string
		if cmd.Flags().Changed("content") {
			content, _ := cmd.Flags().GetString("content")
			newContent = &content
		}

		newTags, err := resolveUpdateTags(cmd)
		if err != nil {
			return err
		}

		out, err := uc.UpdateMemory.Execute(cmd.Context(), internal.UpdateMemoryInput{
			Topic: topic, Title: title, NewContent: newContent, NewTags: newTags,
			Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("update memory: %w", err)
		}

		if err := autoCommit(cmd.Context(), uc.Commit, message, "update", topic, title, scopeHint, storePath); err != nil {
			return fmt.Errorf("commit: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out)
		}

		if showDiff && out.Diff != "" {
			fmt.Fprint(cmd.OutOrStdout(), out.Diff)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s/%s\n", out.Memory.Topic, out.Memory.Title)
		return nil
	}
}

// resolveUpdateTags distinguishes "leave tags alone" (nil) from "clear them"
// (empty slice).
func resolveUpdateTags(cmd *cobra.Command) ([]string, error) {
	clearTags, _ := cmd.Flags().GetBool("clear-tags")
	tags, _ := cmd.Flags().GetStringArray("tag")

	if clearTags {
		if len(tags) > 0 {
			return nil, fmt.Errorf("--clear-tags cannot be combined with --tag")
		}
		return []string{}, nil
	}

	if cmd.Flags().Changed("tag") {
		return tags, nil
	}
	return nil, nil
}
