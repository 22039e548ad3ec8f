package main

import (
	"strings"
	"testing"
)

func TestSummarizeCmdListsEntries(t *testing.T) {
	a := newApp()
	store := tempStore(t)
	runCmd(t, a, "write", "todo", "call mom", "friday", "--tag", "family", "--store", store)
	runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--store", store)

	out := runCmd(t, a, "summarize", "todo", "--store", store)
	if !strings.Contains(out, "todo: 2 entries") {
		t.Errorf("output = %q", out)
	}

	// entries come back in title order
	if strings.Index(out, "buy milk") > strings.Index(out, "call mom") {
		t.Errorf("entries out of order: %q", out)
	}
	if !strings.Contains(out, "tags: family") {
		t.Errorf("output missing tags: %q", out)
	}
}

func TestSummarizeCmdUnknownTopic(t *testing.T) {
	a := newApp()

	out := runCmd(t, a, "summarize", "absent", "--store", tempStore(t))
	if !strings.Contains(out, "absent: 0 entries") {
		t.Errorf("output = %q", out)
	}
}

func TestSummarizeCmdJSON(t *testing.T) {
	a := newApp()
	store := tempStore(t)
	runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--store", store)

	out := runCmd(t, a, "summarize", "todo", "--json", "--store", store)
	if !strings.Contains(out, `"total_entries": 1`) {
		t.Errorf("json output = %q", out)
	}
}
