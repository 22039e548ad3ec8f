package main

import (
	"strings"
	"testing"
)

func TestStatsCmdCountsAndTags(t *testing.T) {
	a := newApp()
	store := tempStore(t)
	runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--tag", "errand", "--store", store)
	runCmd(t, a, "write", "todo", "call mom", "friday", "--tag", "family", "--tag", "errand", "--store", store)
	runCmd(t, a, "write", "work", "standup", "9:30", "--store", store)

	out := runCmd(t, a, "stats", "--store", store)
	if !strings.Contains(out, "Memories: 3") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "Topics:   2") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "errand (2)") {
		t.Errorf("output missing top tag: %q", out)
	}
}

func TestStatsCmdEmptyStore(t *testing.T) {
	a := newApp()

	out := runCmd(t, a, "stats", "--store", tempStore(t))
	if !strings.Contains(out, "Memories: 0") {
		t.Errorf("output = %q", out)
	}
}

func TestStatsCmdJSON(t *testing.T) {
	a := newApp()
	store := tempStore(t)
	runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--store", store)

	out := runCmd(t, a, "stats", "--json", "--store", store)
	if !strings.Contains(out, `"total_memories": 1`) {
		t.Errorf("json output = %q", out)
	}
}
