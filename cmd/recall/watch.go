package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/4thel00z/recall/internal"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func NewWatchCmd(resolver *internal.ScopeResolver) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the store and report changes",
		Long:  `Watch the store file for changes and print an updated statistics snapshot after each one.`,
		RunE:  makeWatchRunner(resolver),
	}

	cmd.Flags().Duration("debounce", 500*time.Millisecond, "Debounce window for batching changes")
	return cmd
}

func makeWatchRunner(resolver *internal.ScopeResolver) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, storePath := targetFlags(cmd)
		debounce, _ := cmd.Flags().GetDuration("debounce")

		scope := resolver.ResolveTarget(scopeHint, storePath)
		target, err := internal.StorePathFor(scope)
		if err != nil {
			return fmt.Errorf("resolve store: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		// The store is replaced by rename, so watch its directory rather
		// than the file itself.
		if err := watcher.Add(filepath.Dir(target)); err != nil {
			return fmt.Errorf("add watch dir: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes...\n", target)

		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if shouldIgnoreEvent(event, target) {
					continue
				}
				if !pending {
					timer.Reset(debounce)
					pending = true
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
			case <-timer.C:
				pending = false
				printStatsSnapshot(cmd, target)
			}
		}
	}
}

func shouldIgnoreEvent(event fsnotify.Event, target string) bool {
	if filepath.Base(event.Name) != filepath.Base(target) {
		return true
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return true
	}

	return false
}

func printStatsSnapshot(cmd *cobra.Command, target string) {
	store, err := internal.OpenStoreFile(target)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "reload store: %v\n", err)
		return
	}

	stats := store.ComputeStatistics(internal.DefaultTopTags)
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %d memories in %d topics\n",
		time.Now().Format("15:04:05"), stats.TotalMemories, stats.TotalTopics)
}
