package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/4thel00z/recall/internal"
	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new memory store",
		Long:  `Initialize a new .recall directory with a store file, config, and history repository.`,
		RunE:  runInit,
	}

	cmd.Flags().Bool("global", false, "Initialize global scope (~/.recall)")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	isGlobal, _ := cmd.Flags().GetBool("global")

	resolver := internal.NewScopeResolver()

	var scope internal.Scope
	if isGlobal {
		scope = resolver.Global()
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		scope = internal.Scope{
			Type:       internal.ScopeProject,
			Path:       cwd,
			RecallPath: filepath.Join(cwd, ".recall"),
		}
	}

	if _, err := os.Stat(scope.RecallPath); err == nil {
		return fmt.Errorf("already initialized at %s", scope.RecallPath)
	}

	if err := os.MkdirAll(scope.RecallPath, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := internal.SaveConfig(scope, internal.DefaultConfig()); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	storePath, err := internal.StorePathFor(scope)
	if err != nil {
		return fmt.Errorf("resolve store: %w", err)
	}
	if err := internal.InitStore(storePath); err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	if err := internal.InitHistory(scope.RecallPath); err != nil {
		return fmt.Errorf("init history: %w", err)
	}
	history, err := internal.OpenHistory(scope.RecallPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	if _, err := history.Commit(cmd.Context(), "init"); err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized memory store at %s\n", scope.RecallPath)
	return nil
}
