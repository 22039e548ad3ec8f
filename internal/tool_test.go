package internal

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return NewDispatcher(setupUseCases(t))
}

func TestDispatcherToolSet(t *testing.T) {
	d := setupDispatcher(t)

	var names []string
	for _, tool := range d.Tools() {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description)
		assert.Equal(t, "object", tool.Schema["type"])
	}

	assert.Equal(t, []string{
		"write_memory",
		"read_memory",
		"update_memory",
		"delete_memory",
		"list_topics",
		"get_statistics",
		"summarize_topic",
	}, names)
}

func TestDispatchWriteThenRead(t *testing.T) {
	d := setupDispatcher(t)
	ctx := context.Background()

	res := d.Dispatch(ctx, "write_memory", json.RawMessage(
		`{"topic":"todo","title":"buy milk","content":"need 2% milk","tags":["errand"]}`,
	))
	require.Equal(t, "ok", res.Status, "error: %s", res.Error)

	res = d.Dispatch(ctx, "read_memory", json.RawMessage(`{"tags":["errand"]}`))
	require.Equal(t, "ok", res.Status)

	var out ReadMemoriesOutput
	require.NoError(t, json.Unmarshal(res.Result, &out))
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "buy milk", out.Memories[0].Title)
}

func TestDispatchUnknownTool(t *testing.T) {
	d := setupDispatcher(t)

	res := d.Dispatch(context.Background(), "erase_everything", nil)
	assert.Equal(t, "error", res.Status)
	assert.Contains(t, res.Error, "unknown tool")
}

func TestDispatchStoreErrorIsStructured(t *testing.T) {
	d := setupDispatcher(t)
	ctx := context.Background()

	args := json.RawMessage(`{"topic":"todo","title":"buy milk","content":"a"}`)
	require.Equal(t, "ok", d.Dispatch(ctx, "write_memory", args).Status)

	res := d.Dispatch(ctx, "write_memory", args)
	assert.Equal(t, "error", res.Status)
	assert.Contains(t, res.Error, "already exists")
}

func TestDispatchMalformedArguments(t *testing.T) {
	d := setupDispatcher(t)

	res := d.Dispatch(context.Background(), "write_memory", json.RawMessage(`{"topic":42}`))
	assert.Equal(t, "error", res.Status)
	assert.Contains(t, res.Error, "decode arguments")
}

func TestDispatchNoArgsTools(t *testing.T) {
	d := setupDispatcher(t)
	ctx := context.Background()

	res := d.Dispatch(ctx, "list_topics", nil)
	require.Equal(t, "ok", res.Status)

	res = d.Dispatch(ctx, "get_statistics", nil)
	require.Equal(t, "ok", res.Status)

	var stats GetStatisticsOutput
	require.NoError(t, json.Unmarshal(res.Result, &stats))
	assert.Equal(t, 0, stats.TotalMemories)
}

func TestRegisterDuplicate(t *testing.T) {
	d := setupDispatcher(t)

	err := d.Register(&Tool{Name: "write_memory"})
	assert.Error(t, err)
}
