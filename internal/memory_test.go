package internal

import (
	"testing"
)

func TestNewTopicValid(t *testing.T) {
	valid := []string{
		"todo",
		"preferences",
		"work notes",
		"生活",
		"a",
	}

	for _, s := range valid {
		topic, err := NewTopic(s)
		if err != nil {
			t.Errorf("NewTopic(%q) returned error: %v", s, err)
			continue
		}
		if topic != s {
			t.Errorf("expected topic %q, got %q", s, topic)
		}
	}
}

func TestNewTopicInvalid(t *testing.T) {
	invalid := []string{
		"",
		" ",
		"\t",
		"\n  \n",
	}

	for _, s := range invalid {
		if _, err := NewTopic(s); err != ErrEmptyTopic {
			t.Errorf("NewTopic(%q) expected ErrEmptyTopic, got %v", s, err)
		}
	}
}

func TestNewTopicTrims(t *testing.T) {
	topic, err := NewTopic("  todo  ")
	if err != nil {
		t.Fatalf("NewTopic: %v", err)
	}
	if topic != "todo" {
		t.Errorf("expected trimmed topic, got %q", topic)
	}
}

func TestNewTitleInvalid(t *testing.T) {
	if _, err := NewTitle(""); err != ErrEmptyTitle {
		t.Errorf("NewTitle(\"\") expected ErrEmptyTitle, got %v", err)
	}
	if _, err := NewTitle("   "); err != ErrEmptyTitle {
		t.Errorf("NewTitle(blank) expected ErrEmptyTitle, got %v", err)
	}
}

func TestNormalizeTags(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, nil},
		{"blank entries", []string{"", "  "}, nil},
		{"dedup case-insensitive", []string{"Family", "family", "errand"}, []string{"Family", "errand"}},
		{"sorted", []string{"zeta", "alpha"}, []string{"alpha", "zeta"}},
		{"trimmed", []string{" errand "}, []string{"errand"}},
	}

	for _, tc := range cases {
		got := NormalizeTags(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
				break
			}
		}
	}
}

func TestNewMemoryRecord(t *testing.T) {
	rec, err := NewMemoryRecord("todo", "buy milk", "need 2% milk", []string{"errand", "errand"})
	if err != nil {
		t.Fatalf("NewMemoryRecord: %v", err)
	}

	if rec.ID == "" {
		t.Error("expected a generated ID")
	}
	if rec.Topic != "todo" || rec.Title != "buy milk" {
		t.Errorf("unexpected identity: %s/%s", rec.Topic, rec.Title)
	}
	if len(rec.Tags) != 1 || rec.Tags[0] != "errand" {
		t.Errorf("expected deduplicated tags, got %v", rec.Tags)
	}
	if rec.CreatedAt.IsZero() || !rec.CreatedAt.Equal(rec.UpdatedAt) {
		t.Errorf("expected matching creation timestamps, got %v / %v", rec.CreatedAt, rec.UpdatedAt)
	}

	if _, err := NewMemoryRecord("", "t", "c", nil); err != ErrEmptyTopic {
		t.Errorf("expected ErrEmptyTopic, got %v", err)
	}
	if _, err := NewMemoryRecord("todo", "", "c", nil); err != ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestHasTag(t *testing.T) {
	rec, _ := NewMemoryRecord("todo", "call mom", "wish her happy birthday", []string{"Family"})

	if !rec.HasTag("family") {
		t.Error("expected case-insensitive tag match")
	}
	if rec.HasTag("errand") {
		t.Error("unexpected tag match")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	rec, _ := NewMemoryRecord("todo", "call mom", "content", []string{"family"})
	clone := rec.Clone()

	clone.Content = "changed"
	clone.Tags[0] = "changed"

	if rec.Content == "changed" || rec.Tags[0] == "changed" {
		t.Error("clone shares state with original")
	}
}
