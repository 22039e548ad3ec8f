package main

import (
	"strings"
	"testing"
)

func TestTopicsCmdListsAll(t *testing.T) {
	a := newApp()
	store := tempStore(t)
	runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--tag", "errand", "--store", store)
	runCmd(t, a, "write", "todo", "call mom", "friday", "--store", store)
	runCmd(t, a, "write", "work", "standup", "9:30", "--store", store)

	out := runCmd(t, a, "topics", "--store", store)
	if !strings.Contains(out, "todo (2)") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "work (1)") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "[errand]") {
		t.Errorf("output missing tags: %q", out)
	}
}

func TestTopicsCmdEmpty(t *testing.T) {
	a := newApp()

	out := runCmd(t, a, "topics", "--store", tempStore(t))
	if out != "No topics\n" {
		t.Errorf("output = %q", out)
	}
}

func TestTopicsCmdJSON(t *testing.T) {
	a := newApp()
	store := tempStore(t)
	runCmd(t, a, "write", "todo", "buy milk", "2 liters", "--store", store)

	out := runCmd(t, a, "topics", "--json", "--store", store)
	if !strings.Contains(out, `"total_topics": 1`) {
		t.Errorf("json output = %q", out)
	}
}
