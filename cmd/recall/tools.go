package main

import (
	"encoding/json"
	"fmt"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewToolsCmd(uc *internal.UseCases) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tool surface",
		Long:  `List the memory tools exposed to a conversational assistant, with their argument schemas.`,
		RunE:  makeToolsListRunner(uc),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "call <name> [arguments-json]",
		Short: "Invoke a tool by name",
		Long:  `Invoke a tool the way an assistant would, with a JSON argument object, and print the result envelope.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  makeToolsCallRunner(uc),
	})

	return cmd
}

func makeToolsListRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		tools := internal.NewDispatcher(uc).Tools()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return outputToolsJSON(cmd, tools)
		}

		for _, tool := range tools {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", tool.Name, tool.Description)
		}
		return nil
	}
}

func makeToolsCallRunner(uc *internal.UseCases) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var raw json.RawMessage
		if len(args) > 1 {
			raw = json.RawMessage(args[1])
		}

		scopeHint, storePath := targetFlags(cmd)
		dispatcher := internal.NewTargetDispatcher(uc, scopeHint, storePath)

		result := dispatcher.Dispatch(cmd.Context(), args[0], raw)
		return outputJSON(cmd, result)
	}
}

func outputToolsJSON(cmd *cobra.Command, tools []*internal.Tool) error {
	out := make([]map[string]any, 0, len(tools))
	for _, tool := range tools {
		out = append(out, map[string]any{
			"name":        tool.Name,
			"description": tool.Description,
			"parameters":  tool.Schema,
		})
	}
	return outputJSON(cmd, out)
}
