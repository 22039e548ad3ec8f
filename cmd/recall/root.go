package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCmd(version string, a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "recall",
		Short:         "Structured memory for conversational assistants",
		Long:          `A topic/title keyed note store with tags, keyword search, statistics, and git-backed history.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)
	setHelpWithExternals(rootCmd)

	if a != nil {
		addSubcommands(rootCmd, a)
	}

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("scope", "", "Target scope (global|project)")
	cmd.PersistentFlags().String("store", "", "Path to a specific store file")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
}

func addSubcommands(root *cobra.Command, a *app) {
	root.AddCommand(
		NewInitCmd(),
		NewWriteCmd(a.uc),
		NewReadCmd(a.uc),
		NewUpdateCmd(a.uc),
		NewDelCmd(a.uc),
		NewTopicsCmd(a.uc),
		NewStatsCmd(a.uc),
		NewSummarizeCmd(a.uc),
		NewLogCmd(a.uc),
		NewDiffCmd(a.uc),
		NewWatchCmd(a.resolver),
		NewToolsCmd(a.uc),
	)
}

func setHelpWithExternals(cmd *cobra.Command) {
	defaultHelp := cmd.HelpFunc()

	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		defaultHelp(c, args)
		printExternalCommands(c)
	})
}

func printExternalCommands(cmd *cobra.Command) {
	externals := listExternalCommands()
	if len(externals) == 0 {
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nExternal commands (recall-*):")
	for _, name := range externals {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
}

// targetFlags reads the persistent scope/store selection of a command.
func targetFlags(cmd *cobra.Command) (scope, store string) {
	scope, _ = cmd.Flags().GetString("scope")
	store, _ = cmd.Flags().GetString("store")
	return scope, store
}

func outputJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
