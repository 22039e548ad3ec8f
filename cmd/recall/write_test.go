package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/4thel00z/recall/internal"
)

// tempStore returns a store path in a throwaway directory. Commands target it
// via --store, which keeps scope resolution away from the host home dir.
func tempStore(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "store.yaml")
}

func TestWriteCmdStoresMemory(t *testing.T) {
	a := newApp()
	store := tempStore(t)

	out := runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--tag", "errand", "--store", store)
	if out != "Stored todo/buy milk\n" {
		t.Errorf("output = %q", out)
	}

	s, err := internal.OpenStoreFile(store)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	rec, err := s.Get("todo", "buy milk")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Content != "2 liters" {
		t.Errorf("content = %q", rec.Content)
	}
	if len(rec.Tags) != 1 || rec.Tags[0] != "errand" {
		t.Errorf("tags = %v", rec.Tags)
	}
}

func TestWriteCmdRejectsDuplicate(t *testing.T) {
	a := newApp()
	store := tempStore(t)

	runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--store", store)

	root := NewRootCmd("test", a)
	root.SetArgs([]string{"write", "todo", "Buy Milk", "other", "--store", store})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	if err == nil {
		t.Fatal("expected duplicate write to fail")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v", err)
	}
}

func TestWriteCmdRejectsBlankTopic(t *testing.T) {
	a := newApp()

	root := NewRootCmd("test", a)
	root.SetArgs([]string{"write", "   ", "title", "content", "--store", tempStore(t)})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	if err := root.Execute(); err == nil {
		t.Fatal("expected blank topic to fail")
	}
}

func TestWriteCmdJSONOutput(t *testing.T) {
	a := newApp()

	out := runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--json", "--store", tempStore(t))
	if !strings.Contains(out, `"topic": "todo"`) {
		t.Errorf("json output = %q", out)
	}
	if !strings.Contains(out, `"title": "buy milk"`) {
		t.Errorf("json output = %q", out)
	}
}
