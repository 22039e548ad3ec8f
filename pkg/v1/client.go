package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/4thel00z/recall/internal"
)

// Client provides programmatic access to the memory store.
type Client struct {
	uc    *internal.UseCases
	scope string
	store string
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

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

	return &Client{
		uc:    internal.NewUseCases(resolver, storeFor, historyFor),
		scope: cfg.scope,
		store: cfg.storePath,
	}, nil
}

// Write stores a new memory. Writing an existing (topic, title) pair fails.
func (c *Client) Write(ctx context.Context, topic, title, content string, tags ...string) (*Memory, error) {
	out, err := c.uc.WriteMemory.Execute(ctx, internal.WriteMemoryInput{
		Topic: topic, Title: title, Content: content, Tags: tags,
		Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if err := c.commit(ctx, "write", topic, title); err != nil {
		return nil, err
	}

	mem := toMemory(out.Memory)
	return &mem, nil
}

// Read returns every memory matching the filter, ordered by topic and title.
func (c *Client) Read(ctx context.Context, filter Filter) ([]Memory, error) {
	out, err := c.uc.ReadMemories.Execute(ctx, internal.ReadMemoriesInput{
		Topic: filter.Topic, Title: filter.Title, Query: filter.Query, Tags: filter.Tags,
		Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	memories := make([]Memory, 0, len(out.Memories))
	for _, m := range out.Memories {
		memories = append(memories, toMemory(m))
	}
	return memories, nil
}

// Update mutates an existing memory and returns its new state.
func (c *Client) Update(ctx context.Context, topic, title string, update Update) (*Memory, error) {
	out, err := c.uc.UpdateMemory.Execute(ctx, internal.UpdateMemoryInput{
		Topic: topic, Title: title, NewContent: update.Content, NewTags: update.Tags,
		Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}

	if err := c.commit(ctx, "update", topic, title); err != nil {
		return nil, err
	}

	mem := toMemory(out.Memory)
	return &mem, nil
}

// Delete removes one memory.
func (c *Client) Delete(ctx context.Context, topic, title string) error {
	_, err := c.uc.DeleteMemory.Execute(ctx, internal.DeleteMemoryInput{
		Topic: topic, Title: title, Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return c.commit(ctx, "del", topic, title)
}

// DeleteTopic removes every memory under a topic and reports how many were
// removed. Purging an absent topic removes nothing and is not an error.
func (c *Client) DeleteTopic(ctx context.Context, topic string) (int, error) {
	out, err := c.uc.DeleteMemory.Execute(ctx, internal.DeleteMemoryInput{
		Topic: topic, Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return 0, fmt.Errorf("delete topic: %w", err)
	}

	if err := c.commit(ctx, "del", topic, ""); err != nil {
		return 0, err
	}
	return out.Removed, nil
}

// Topics lists every topic, most recently active first.
func (c *Client) Topics(ctx context.Context) ([]TopicInfo, error) {
	out, err := c.uc.ListTopics.Execute(ctx, internal.ListTopicsInput{
		Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return nil, fmt.Errorf("topics: %w", err)
	}

	topics := make([]TopicInfo, 0, len(out.Topics))
	for _, t := range out.Topics {
		topics = append(topics, TopicInfo{
			Topic: t.Topic, Count: t.Count, Tags: t.Tags, LatestActivity: t.LatestActivity,
		})
	}
	return topics, nil
}

// Statistics returns a store-wide snapshot.
func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	out, err := c.uc.GetStatistics.Execute(ctx, internal.GetStatisticsInput{
		Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}

	stats := &Statistics{
		TotalMemories: out.TotalMemories,
		TotalTopics:   out.TotalTopics,
	}
	for _, tag := range out.TopTags {
		stats.TopTags = append(stats.TopTags, TagCount{Tag: tag.Tag, Count: tag.Count})
	}
	return stats, nil
}

// Summarize returns every memory of a topic as structured data.
func (c *Client) Summarize(ctx context.Context, topic string) (*Summary, error) {
	out, err := c.uc.SummarizeTopic.Execute(ctx, internal.SummarizeTopicInput{
		Topic: topic, Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	summary := &Summary{Topic: out.Topic, TotalEntries: out.TotalEntries}
	for _, entry := range out.Entries {
		summary.Entries = append(summary.Entries, Memory{
			Topic:     out.Topic,
			Title:     entry.Title,
			Content:   entry.Content,
			Tags:      entry.Tags,
			CreatedAt: entry.CreatedAt,
			UpdatedAt: entry.UpdatedAt,
		})
	}
	return summary, nil
}

// Log returns the mutation history, newest first.
func (c *Client) Log(ctx context.Context, limit int) ([]Commit, error) {
	out, err := c.uc.Log.Execute(ctx, internal.LogInput{
		Limit: limit, Scope: c.scope, Store: c.store,
	})
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}

	commits := make([]Commit, 0, len(out.Commits))
	for _, commit := range out.Commits {
		commits = append(commits, Commit{
			Hash: commit.Hash, Message: commit.Message, Timestamp: commit.Timestamp,
		})
	}
	return commits, nil
}

func (c *Client) commit(ctx context.Context, verb, topic, title string) error {
	message := verb + ": " + topic
	if title != "" {
		message += "/" + title
	}

	_, err := c.uc.Commit.Execute(ctx, internal.CommitInput{
		Message: message, Scope: c.scope, Store: c.store,
	})
	if errors.Is(err, internal.ErrNoHistory) {
		return nil
	}
	return err
}

func toMemory(m internal.MemoryOutput) Memory {
	return Memory{
		ID:        m.ID,
		Topic:     m.Topic,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      m.Tags,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
