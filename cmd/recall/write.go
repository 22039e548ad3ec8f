package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewWriteCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <topic> <title> [content]",
		Short: "Store a new memory",
		Long:  `Store a new memory under a topic and title. Reads content from stdin if not provided.`,
		Args:  cobra.RangeArgs(2, 3),
		RunE:  makeWriteRunner(uc),
	}

	cmd.Flags().StringArrayP("tag", "t", nil, "Tag to attach (repeatable)")
	cmd.Flags().StringP("message", "m", "", "Commit message")
	return cmd
}

func makeWriteRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		topic, title := args[0], args[1]

		content, err := resolveContent(args, 2)
		if err != nil {
			return err
		}

		tags, _ := cmd.Flags().GetStringArray("tag")
		message, _ := cmd.Flags().GetString("message")
		scopeHint, storePath := targetFlags(cmd)

		out, err := uc.WriteMemory.Execute(cmd.Context(), internal.WriteMemoryInput{
			Topic: topic, Title: title, Content: content, Tags: tags,
			Scope: scopeHint, Store: storePath,
		})
		if err != nil {
			return fmt.Errorf("write memory: %w", err)
		}

		if err := autoCommit(cmd.Context(), uc.Commit, message, "write", topic, title, scopeHint, storePath); err != nil {
			return fmt.Errorf("commit: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputJSON(cmd, out)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Stored %s/%s\n", out.Memory.Topic, out.Memory.Title)
		return nil
	}
}

func resolveContent(args []string, index int) (string, error) {
	if len(args) > index {
		return args[index], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// autoCommit records the mutation in history. Explicit-store targets have no
// repository, so a missing one is not an error.
func autoCommit(ctx context.Context, commitUC *internal.CommitUseCase, message, verb, topic, title, scopeHint, storePath string) error {
	if message == "" {
		message = verb + ": " + topic
		if title != "" {
			message += "/" + title
		}
	}

	_, err := commitUC.Execute(ctx, internal.CommitInput{
		Message: message, Scope: scopeHint, Store: storePath,
	})
	if errors.Is(err, internal.ErrNoHistory) {
		return nil
	}
	return err
}
