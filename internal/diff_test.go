package internal

import (
	"strings"
	"testing"
)

func TestRenderDiffIdentical(t *testing.T) {
	if out := RenderDiff("same\n", "same\n"); out != "" {
		t.Errorf("expected empty diff, got %q", out)
	}
}

func TestRenderDiffChangedLine(t *testing.T) {
	out := RenderDiff("keep\nold\n", "keep\nnew\n")

	if !strings.Contains(out, "-old") {
		t.Errorf("missing removal in %q", out)
	}
	if !strings.Contains(out, "+new") {
		t.Errorf("missing addition in %q", out)
	}
	if !strings.Contains(out, " keep") {
		t.Errorf("missing context line in %q", out)
	}
}

func TestRenderDiffFromEmpty(t *testing.T) {
	out := RenderDiff("", "added\n")
	if !strings.Contains(out, "+added") {
		t.Errorf("missing addition in %q", out)
	}
}
