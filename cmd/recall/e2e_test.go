package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupE2E drops the test into a fresh initialized project directory and
// returns the wired app.
func setupE2E(t *testing.T) *app {
	t.Helper()
	tmpDir := t.TempDir()

	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	a := newApp()

	root := NewRootCmd("test", a)
	root.SetArgs([]string{"init"})
	var out bytes.Buffer
	root.SetOut(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}

	return a
}

func runCmd(t *testing.T, a *app, args ...string) string {
	t.Helper()
	root := NewRootCmd("test", a)
	root.SetArgs(args)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestE2EFullWorkflow(t *testing.T) {
	a := setupE2E(t)

	for _, tc := range []struct {
		topic, title, content string
		tags                  []string
	}{
		{"todo", "buy milk", "2 liters, whole", []string{"errand"}},
		{"todo", "call mom", "birthday on friday", []string{"family", "urgent"}},
		{"work", "standup", "daily at 9:30", nil},
	} {
		args := []string{"write", tc.topic, tc.title, tc.content}
		for _, tag := range tc.tags {
			args = append(args, "--tag", tag)
		}
		out := runCmd(t, a, args...)
		if !strings.Contains(out, "Stored "+tc.topic+"/"+tc.title) {
			t.Errorf("write output = %q", out)
		}
	}

	out := runCmd(t, a, "read", "--topic", "todo")
	if !strings.Contains(out, "buy milk") || !strings.Contains(out, "call mom") {
		t.Errorf("read output missing entries: %q", out)
	}
	if strings.Contains(out, "standup") {
		t.Errorf("read leaked another topic: %q", out)
	}

	out = runCmd(t, a, "topics")
	if !strings.Contains(out, "todo (2)") || !strings.Contains(out, "work (1)") {
		t.Errorf("topics output = %q", out)
	}

	out = runCmd(t, a, "stats")
	if !strings.Contains(out, "Memories: 3") || !strings.Contains(out, "Topics:   2") {
		t.Errorf("stats output = %q", out)
	}

	out = runCmd(t, a, "update", "todo", "buy milk", "--content", "oat milk instead")
	if !strings.Contains(out, "Updated todo/buy milk") {
		t.Errorf("update output = %q", out)
	}

	out = runCmd(t, a, "read", "--topic", "todo", "--title", "buy milk")
	if !strings.Contains(out, "oat milk instead") {
		t.Errorf("update did not stick: %q", out)
	}

	out = runCmd(t, a, "del", "todo", "call mom")
	if !strings.Contains(out, "Deleted todo/call mom") {
		t.Errorf("del output = %q", out)
	}

	out = runCmd(t, a, "del", "todo")
	if !strings.Contains(out, "Deleted 1 memories from todo") {
		t.Errorf("purge output = %q", out)
	}

	out = runCmd(t, a, "topics")
	if strings.Contains(out, "todo") {
		t.Errorf("purged topic still listed: %q", out)
	}
}

func TestE2EHistoryRecordsMutations(t *testing.T) {
	a := setupE2E(t)

	runCmd(t, a, "write", "notes", "first", "hello")
	runCmd(t, a, "update", "notes", "first", "--content", "hello again")

	out := runCmd(t, a, "log", "--oneline")
	if !strings.Contains(out, "write: notes/first") {
		t.Errorf("log missing write commit: %q", out)
	}
	if !strings.Contains(out, "update: notes/first") {
		t.Errorf("log missing update commit: %q", out)
	}
}

func TestE2EDiffAgainstRef(t *testing.T) {
	a := setupE2E(t)

	runCmd(t, a, "write", "notes", "draft", "version one")
	runCmd(t, a, "update", "notes", "draft", "--content", "version two")

	out := runCmd(t, a, "diff", "HEAD~1")
	if !strings.Contains(out, "version one") || !strings.Contains(out, "version two") {
		t.Errorf("diff output = %q", out)
	}
}

func TestE2EExplicitStoreSkipsHistory(t *testing.T) {
	a := newApp()
	storePath := filepath.Join(t.TempDir(), "store.yaml")

	out := runCmd(t, a, "write", "scratch", "note", "content", "--store", storePath)
	if !strings.Contains(out, "Stored scratch/note") {
		t.Errorf("write output = %q", out)
	}

	if _, err := os.Stat(storePath); err != nil {
		t.Fatalf("store file not created: %v", err)
	}

	out = runCmd(t, a, "read", "--topic", "scratch", "--store", storePath)
	if !strings.Contains(out, "content") {
		t.Errorf("read output = %q", out)
	}
}
