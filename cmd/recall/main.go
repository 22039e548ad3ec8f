package main

import (
	"context"
	"fmt"
	"os"

	"github.com/4thel00z/recall/internal"
	"github.com/charmbracelet/fang"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	ctx := context.Background()

	if tryExternalCommand(ctx) {
		return
	}

	app := newApp()
	rootCmd := NewRootCmd(version, app)
	if err := fang.Execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}

func tryExternalCommand(ctx context.Context) bool {
	if len(os.Args) < 2 {
		return false
	}

	cmd := os.Args[1]
	if cmd == "" || cmd[0] == '-' {
		return false
	}

	if _, err := findExternal(cmd); err != nil {
		return false
	}

	if err := executeExternal(ctx, cmd, os.Args[2:], version); err != nil {
		fmt.Fprintf(os.Stderr, "recall %s: %v\n", cmd, err)
		os.Exit(1)
	}

	return true
}

type app struct {
	resolver *internal.ScopeResolver
	uc       *internal.UseCases
}

func newApp() *app {
	resolver := internal.NewScopeResolver()

	storeFor := func(scope internal.Scope) (*internal.Store, error) {
		path, err := internal.StorePathFor(scope)
		if err != nil {
			return nil, err
		}
		return internal.OpenStoreFile(path)
	}
	historyFor := func(scope internal.Scope) (*internal.History, error) {
		if scope.Type == internal.ScopeExplicit {
			return nil, internal.ErrNoHistory
		}
		return internal.OpenHistory(scope.RecallPath)
	}

	uc := internal.NewUseCases(resolver, storeFor, historyFor)

	return &app{
		resolver: resolver,
		uc:       uc,
	}
}
