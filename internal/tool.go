package internal

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool is one callable operation exposed to the conversational layer. The
// set is fixed and enumerated; dispatch is by name over typed argument
// structs, never reflection.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]any
	run         func(ctx context.Context, args json.RawMessage) (any, error)
}

// ToolResult is the envelope every dispatch returns. Store errors come back
// as status "error" with a message; the caller never sees a panic or a bare
// failure.
type ToolResult struct {
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
}

// Dispatcher holds the enumerated tool set.
type Dispatcher struct {
	tools map[string]*Tool
	order []string
}

func NewDispatcher(uc *UseCases) *Dispatcher {
	return NewTargetDispatcher(uc, "", "")
}

// NewTargetDispatcher binds every tool call to a fixed scope hint and store
// override, the same target selection the commands use.
func NewTargetDispatcher(uc *UseCases, scope, store string) *Dispatcher {
	d := &Dispatcher{tools: make(map[string]*Tool)}
	for _, tool := range memoryTools(uc, scope, store) {
		// the built-in set has distinct names; Register cannot fail here
		_ = d.Register(tool)
	}
	return d
}

func (d *Dispatcher) Register(tool *Tool) error {
	if _, exists := d.tools[tool.Name]; exists {
		return fmt.Errorf("tool %q already registered", tool.Name)
	}
	d.tools[tool.Name] = tool
	d.order = append(d.order, tool.Name)
	return nil
}

// Tools returns the tool set in registration order.
func (d *Dispatcher) Tools() []*Tool {
	out := make([]*Tool, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.tools[name])
	}
	return out
}

// Dispatch runs one tool call and always returns a well-formed ToolResult.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) ToolResult {
	tool, ok := d.tools[name]
	if !ok {
		return ToolResult{Status: "error", Error: fmt.Sprintf("unknown tool %q", name)}
	}

	out, err := tool.run(ctx, args)
	if err != nil {
		return ToolResult{Status: "error", Error: err.Error()}
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return ToolResult{Status: "error", Error: fmt.Sprintf("encode result: %v", err)}
	}
	return ToolResult{Status: "ok", Result: payload}
}

// Typed argument structs, one per tool.

type writeMemoryArgs struct {
	Topic   string   `json:"topic"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

type readMemoryArgs struct {
	Topic string   `json:"topic,omitempty"`
	Title string   `json:"title,omitempty"`
	Query string   `json:"query,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

type updateMemoryArgs struct {
	Topic      string   `json:"topic"`
	Title      string   `json:"title"`
	NewContent *string  `json:"new_content,omitempty"`
	NewTags    []string `json:"new_tags,omitempty"`
}

type deleteMemoryArgs struct {
	Topic string `json:"topic"`
	Title string `json:"title,omitempty"`
}

type summarizeTopicArgs struct {
	Topic string `json:"topic"`
}

func decodeArgs[T any](raw json.RawMessage) (T, error) {
	var args T
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("decode arguments: %w", err)
	}
	return args, nil
}

func memoryTools(uc *UseCases, scope, store string) []*Tool {
	return []*Tool{
		{
			Name:        "write_memory",
			Description: "Store a new memory with a topic, a short title, free-text content, and optional tags.",
			Schema: objectSchema(map[string]any{
				"topic":   stringSchema("Topic grouping the memory"),
				"title":   stringSchema("Short identifying title, unique within the topic"),
				"content": stringSchema("Detailed content of the memory"),
				"tags":    stringListSchema("Optional keyword tags"),
			}, []string{"topic", "title", "content"}),
			run: func(ctx context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[writeMemoryArgs](raw)
				if err != nil {
					return nil, err
				}
				return uc.WriteMemory.Execute(ctx, WriteMemoryInput{
					Topic: args.Topic, Title: args.Title, Content: args.Content, Tags: args.Tags,
					Scope: scope, Store: store,
				})
			},
		},
		{
			Name:        "read_memory",
			Description: "Query memories, filtered by topic, title, keyword query, or tags. All filters combine.",
			Schema: objectSchema(map[string]any{
				"topic": stringSchema("Exact topic to search in"),
				"title": stringSchema("Exact title to look up"),
				"query": stringSchema("Case-insensitive keyword search"),
				"tags":  stringListSchema("Match memories carrying any of these tags"),
			}, nil),
			run: func(ctx context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[readMemoryArgs](raw)
				if err != nil {
					return nil, err
				}
				return uc.ReadMemories.Execute(ctx, ReadMemoriesInput{
					Topic: args.Topic, Title: args.Title, Query: args.Query, Tags: args.Tags,
					Scope: scope, Store: store,
				})
			},
		},
		{
			Name:        "update_memory",
			Description: "Update the content or tags of an existing memory.",
			Schema: objectSchema(map[string]any{
				"topic":       stringSchema("Topic of the memory"),
				"title":       stringSchema("Title of the memory to update"),
				"new_content": stringSchema("Replacement content (optional)"),
				"new_tags":    stringListSchema("Replacement tag set (optional)"),
			}, []string{"topic", "title"}),
			run: func(ctx context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[updateMemoryArgs](raw)
				if err != nil {
					return nil, err
				}
				return uc.UpdateMemory.Execute(ctx, UpdateMemoryInput{
					Topic: args.Topic, Title: args.Title, NewContent: args.NewContent, NewTags: args.NewTags,
					Scope: scope, Store: store,
				})
			},
		},
		{
			Name:        "delete_memory",
			Description: "Delete one memory by topic and title, or every memory under a topic when no title is given.",
			Schema: objectSchema(map[string]any{
				"topic": stringSchema("Topic to delete from"),
				"title": stringSchema("Specific title to delete (optional, omit to purge the topic)"),
			}, []string{"topic"}),
			run: func(ctx context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[deleteMemoryArgs](raw)
				if err != nil {
					return nil, err
				}
				return uc.DeleteMemory.Execute(ctx, DeleteMemoryInput{Topic: args.Topic, Title: args.Title, Scope: scope, Store: store})
			},
		},
		{
			Name:        "list_topics",
			Description: "List every topic with its memory count, observed tags, and most recent activity.",
			Schema:      objectSchema(map[string]any{}, nil),
			run: func(ctx context.Context, raw json.RawMessage) (any, error) {
				return uc.ListTopics.Execute(ctx, ListTopicsInput{Scope: scope, Store: store})
			},
		},
		{
			Name:        "get_statistics",
			Description: "Get store-wide statistics: total memories, total topics, and the most frequent tags.",
			Schema:      objectSchema(map[string]any{}, nil),
			run: func(ctx context.Context, raw json.RawMessage) (any, error) {
				return uc.GetStatistics.Execute(ctx, GetStatisticsInput{Scope: scope, Store: store})
			},
		},
		{
			Name:        "summarize_topic",
			Description: "Return every memory of a topic as structured data for a downstream summarizer.",
			Schema: objectSchema(map[string]any{
				"topic": stringSchema("Topic to summarize"),
			}, []string{"topic"}),
			run: func(ctx context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[summarizeTopicArgs](raw)
				if err != nil {
					return nil, err
				}
				return uc.SummarizeTopic.Execute(ctx, SummarizeTopicInput{Topic: args.Topic, Scope: scope, Store: store})
			},
		},
	}
}

func objectSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringSchema(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func stringListSchema(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}
