package internal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Use case input/output DTOs

type MemoryOutput struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toMemoryOutput(rec *MemoryRecord) MemoryOutput {
	return MemoryOutput{
		ID:        rec.ID,
		Topic:     rec.Topic,
		Title:     rec.Title,
		Content:   rec.Content,
		Tags:      rec.Tags,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

type WriteMemoryInput struct {
	Topic   string
	Title   string
	Content string
	Tags    []string
	Scope   string
	Store   string
}

type WriteMemoryOutput struct {
	Memory MemoryOutput `json:"memory"`
}

type ReadMemoriesInput struct {
	Topic string
	Title string
	Query string
	Tags  []string
	Scope string
	Store string
}

type ReadMemoriesOutput struct {
	Count    int            `json:"count"`
	Memories []MemoryOutput `json:"memories,omitempty"`
}

type UpdateMemoryInput struct {
	Topic      string
	Title      string
	NewContent *string  // nil leaves content unchanged
	NewTags    []string // nil leaves tags unchanged, empty clears them
	Scope      string
	Store      string
}

type UpdateMemoryOutput struct {
	Memory MemoryOutput `json:"memory"`
	Diff   string       `json:"diff,omitempty"`
}

type DeleteMemoryInput struct {
	Topic string
	Title string // empty purges the whole topic
	Scope string
	Store string
}

type DeleteMemoryOutput struct {
	Removed int `json:"removed"`
}

type ListTopicsInput struct {
	Scope string
	Store string
}

type ListTopicsOutput struct {
	TotalTopics int         `json:"total_topics"`
	Topics      []TopicInfo `json:"topics,omitempty"`
}

type GetStatisticsInput struct {
	Scope string
	Store string
}

type GetStatisticsOutput struct {
	Statistics
}

type SummarizeTopicInput struct {
	Topic string
	Scope string
	Store string
}

type SummarizeTopicOutput struct {
	TopicSummary
}

type CommitInput struct {
	Message string
	Scope   string
	Store   string
}

type CommitOutput struct {
	Hash      string    `json:"hash"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type LogInput struct {
	Limit int
	Scope string
	Store string
}

type LogOutput struct {
	Commits []CommitOutput `json:"commits,omitempty"`
}

type DiffInput struct {
	Ref   string
	Scope string
	Store string
}

type DiffOutput struct {
	Patch string `json:"patch"`
}

// Use cases

type WriteMemoryUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) (*Store, error)
}

func NewWriteMemoryUseCase(resolver *ScopeResolver, storeFor func(Scope) (*Store, error)) *WriteMemoryUseCase {
	return &WriteMemoryUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *WriteMemoryUseCase) Execute(ctx context.Context, input WriteMemoryInput) (*WriteMemoryOutput, error) {
	rec, err := NewMemoryRecord(input.Topic, input.Title, input.Content, input.Tags)
	if err != nil {
		return nil, err
	}

	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	store, err := uc.storeFor(scope)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := store.Insert(rec); err != nil {
		return nil, err
	}

	return &WriteMemoryOutput{Memory: toMemoryOutput(rec)}, nil
}

type ReadMemoriesUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) (*Store, error)
}

func NewReadMemoriesUseCase(resolver *ScopeResolver, storeFor func(Scope) (*Store, error)) *ReadMemoriesUseCase {
	return &ReadMemoriesUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *ReadMemoriesUseCase) Execute(ctx context.Context, input ReadMemoriesInput) (*ReadMemoriesOutput, error) {
	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	store, err := uc.storeFor(scope)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	records := store.Find(Filter{
		Topic: input.Topic,
		Title: input.Title,
		Query: input.Query,
		Tags:  input.Tags,
	})

	out := &ReadMemoriesOutput{Count: len(records)}
	for _, rec := range records {
		out.Memories = append(out.Memories, toMemoryOutput(rec))
	}
	return out, nil
}

type UpdateMemoryUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) (*Store, error)
}

func NewUpdateMemoryUseCase(resolver *ScopeResolver, storeFor func(Scope) (*Store, error)) *UpdateMemoryUseCase {
	return &UpdateMemoryUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *UpdateMemoryUseCase) Execute(ctx context.Context, input UpdateMemoryInput) (*UpdateMemoryOutput, error) {
	topic, err := NewTopic(input.Topic)
	if err != nil {
		return nil, err
	}
	title, err := NewTitle(input.Title)
	if err != nil {
		return nil, err
	}

	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	store, err := uc.storeFor(scope)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var diff string
	if input.NewContent != nil {
		if before, err := store.Get(topic, title); err == nil {
			diff = RenderDiff(before.Content, *input.NewContent)
		}
	}

	rec, err := store.Update(topic, title, input.NewContent, input.NewTags)
	if err != nil {
		return nil, err
	}

	return &UpdateMemoryOutput{Memory: toMemoryOutput(rec), Diff: diff}, nil
}

type DeleteMemoryUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) (*Store, error)
}

func NewDeleteMemoryUseCase(resolver *ScopeResolver, storeFor func(Scope) (*Store, error)) *DeleteMemoryUseCase {
	return &DeleteMemoryUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *DeleteMemoryUseCase) Execute(ctx context.Context, input DeleteMemoryInput) (*DeleteMemoryOutput, error) {
	topic, err := NewTopic(input.Topic)
	if err != nil {
		return nil, err
	}

	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	store, err := uc.storeFor(scope)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if strings.TrimSpace(input.Title) == "" {
		removed, err := store.DeleteTopic(topic)
		if err != nil {
			return nil, err
		}
		return &DeleteMemoryOutput{Removed: removed}, nil
	}

	title, err := NewTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if err := store.Delete(topic, title); err != nil {
		return nil, err
	}
	return &DeleteMemoryOutput{Removed: 1}, nil
}

type ListTopicsUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) (*Store, error)
}

func NewListTopicsUseCase(resolver *ScopeResolver, storeFor func(Scope) (*Store, error)) *ListTopicsUseCase {
	return &ListTopicsUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *ListTopicsUseCase) Execute(ctx context.Context, input ListTopicsInput) (*ListTopicsOutput, error) {
	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	store, err := uc.storeFor(scope)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	topics := store.TopicInfos()
	return &ListTopicsOutput{TotalTopics: len(topics), Topics: topics}, nil
}

type GetStatisticsUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) (*Store, error)
}

func NewGetStatisticsUseCase(resolver *ScopeResolver, storeFor func(Scope) (*Store, error)) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	store, err := uc.storeFor(scope)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cfg, err := LoadConfig(scope)
	if err != nil {
		return nil, err
	}

	return &GetStatisticsOutput{Statistics: store.ComputeStatistics(cfg.TopTags)}, nil
}

type SummarizeTopicUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) (*Store, error)
}

func NewSummarizeTopicUseCase(resolver *ScopeResolver, storeFor func(Scope) (*Store, error)) *SummarizeTopicUseCase {
	return &SummarizeTopicUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *SummarizeTopicUseCase) Execute(ctx context.Context, input SummarizeTopicInput) (*SummarizeTopicOutput, error) {
	topic, err := NewTopic(input.Topic)
	if err != nil {
		return nil, err
	}

	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	store, err := uc.storeFor(scope)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &SummarizeTopicOutput{TopicSummary: store.SummarizeTopic(topic)}, nil
}

type CommitUseCase struct {
	resolver   *ScopeResolver
	historyFor func(Scope) (*History, error)
}

func NewCommitUseCase(resolver *ScopeResolver, historyFor func(Scope) (*History, error)) *CommitUseCase {
	return &CommitUseCase{resolver: resolver, historyFor: historyFor}
}

// Execute records the current store state. It returns (nil, nil) when there
// is nothing to commit, and ErrNoHistory when the scope has no repository.
func (uc *CommitUseCase) Execute(ctx context.Context, input CommitInput) (*CommitOutput, error) {
	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	history, err := uc.historyFor(scope)
	if err != nil {
		return nil, err
	}

	commit, err := history.Commit(ctx, input.Message)
	if err != nil {
		return nil, err
	}
	if commit == nil {
		return nil, nil
	}

	return &CommitOutput{Hash: commit.Hash, Message: commit.Message, Timestamp: commit.Timestamp}, nil
}

type LogUseCase struct {
	resolver   *ScopeResolver
	historyFor func(Scope) (*History, error)
}

func NewLogUseCase(resolver *ScopeResolver, historyFor func(Scope) (*History, error)) *LogUseCase {
	return &LogUseCase{resolver: resolver, historyFor: historyFor}
}

func (uc *LogUseCase) Execute(ctx context.Context, input LogInput) (*LogOutput, error) {
	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	history, err := uc.historyFor(scope)
	if err != nil {
		return nil, err
	}

	commits, err := history.Log(ctx, input.Limit)
	if err != nil {
		return nil, err
	}

	out := &LogOutput{}
	for _, c := range commits {
		out.Commits = append(out.Commits, CommitOutput{Hash: c.Hash, Message: c.Message, Timestamp: c.Timestamp})
	}
	return out, nil
}

type DiffUseCase struct {
	resolver   *ScopeResolver
	historyFor func(Scope) (*History, error)
}

func NewDiffUseCase(resolver *ScopeResolver, historyFor func(Scope) (*History, error)) *DiffUseCase {
	return &DiffUseCase{resolver: resolver, historyFor: historyFor}
}

func (uc *DiffUseCase) Execute(ctx context.Context, input DiffInput) (*DiffOutput, error) {
	scope := uc.resolver.ResolveTarget(input.Scope, input.Store)
	history, err := uc.historyFor(scope)
	if err != nil {
		return nil, err
	}

	patch, err := history.Diff(ctx, input.Ref)
	if err != nil {
		return nil, err
	}
	return &DiffOutput{Patch: patch}, nil
}

// UseCases bundles every operation for wiring into commands, the public
// client, and the tool dispatcher.
type UseCases struct {
	WriteMemory    *WriteMemoryUseCase
	ReadMemories   *ReadMemoriesUseCase
	UpdateMemory   *UpdateMemoryUseCase
	DeleteMemory   *DeleteMemoryUseCase
	ListTopics     *ListTopicsUseCase
	GetStatistics  *GetStatisticsUseCase
	SummarizeTopic *SummarizeTopicUseCase
	Commit         *CommitUseCase
	Log            *LogUseCase
	Diff           *DiffUseCase
}

// NewUseCases wires the full operation surface from a resolver and the store
// and history factories.
func NewUseCases(resolver *ScopeResolver, storeFor func(Scope) (*Store, error), historyFor func(Scope) (*History, error)) *UseCases {
	return &UseCases{
		WriteMemory:    NewWriteMemoryUseCase(resolver, storeFor),
		ReadMemories:   NewReadMemoriesUseCase(resolver, storeFor),
		UpdateMemory:   NewUpdateMemoryUseCase(resolver, storeFor),
		DeleteMemory:   NewDeleteMemoryUseCase(resolver, storeFor),
		ListTopics:     NewListTopicsUseCase(resolver, storeFor),
		GetStatistics:  NewGetStatisticsUseCase(resolver, storeFor),
		SummarizeTopic: NewSummarizeTopicUseCase(resolver, storeFor),
		Commit:         NewCommitUseCase(resolver, historyFor),
		Log:            NewLogUseCase(resolver, historyFor),
		Diff:           NewDiffUseCase(resolver, historyFor),
	}
}
