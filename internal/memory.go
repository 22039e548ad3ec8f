package internal

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("memory not found")
	ErrAlreadyExists = errors.New("memory already exists")
	ErrEmptyTopic    = errors.New("topic must not be empty")
	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrCorruptStore  = errors.New("memory store is corrupt")
	ErrNoHistory     = errors.New("no history available")
)

// MemoryRecord is one stored note. The pair (Topic, Title) identifies it;
// titles compare case-insensitively within a topic.
type MemoryRecord struct {
	ID        string    `yaml:"id" json:"id"`
	Topic     string    `yaml:"-" json:"topic"`
	Title     string    `yaml:"title" json:"title"`
	Content   string    `yaml:"content" json:"content"`
	Tags      []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`
}

func NewMemoryRecord(topic, title, content string, tags []string) (*MemoryRecord, error) {
	topic, err := NewTopic(topic)
	if err != nil {
		return nil, err
	}
	title, err = NewTitle(title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &MemoryRecord{
		ID:        uuid.NewString(),
		Topic:     topic,
		Title:     title,
		Content:   content,
		Tags:      NormalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func NewTopic(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTopic
	}
	return s, nil
}

func NewTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTitle
	}
	return s, nil
}

// NormalizeTags deduplicates case-insensitively, keeping the first spelling
// seen, and returns the tags sorted.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		lower := strings.ToLower(tag)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}

	sort.Strings(out)
	return out
}

// TitleEqual is the identity comparison for titles within a topic.
func TitleEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

func (m *MemoryRecord) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy safe to hand out to callers.
func (m *MemoryRecord) Clone() *MemoryRecord {
	out := *m
	if m.Tags != nil {
		out.Tags = append([]string(nil), m.Tags...)
	}
	return &out
}
