package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHistory(t *testing.T) (*History, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, InitHistory(dir))

	history, err := OpenHistory(dir)
	require.NoError(t, err)
	return history, dir
}

func writeStoreFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultStoreFile), []byte(content), 0644))
}

func TestOpenHistoryMissing(t *testing.T) {
	_, err := OpenHistory(t.TempDir())
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestCommitAndLog(t *testing.T) {
	history, dir := setupHistory(t)
	ctx := context.Background()

	writeStoreFile(t, dir, "version: 1\ntopics: {}\n")
	first, err := history.Commit(ctx, "init: empty store")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.Hash)

	writeStoreFile(t, dir, "version: 1\ntopics:\n  todo:\n    - title: buy milk\n      content: a\n")
	second, err := history.Commit(ctx, "write: todo/buy milk")
	require.NoError(t, err)
	require.NotNil(t, second)

	commits, err := history.Log(ctx, 0)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "write: todo/buy milk", commits[0].Message)
	assert.Equal(t, "init: empty store", commits[1].Message)

	limited, err := history.Log(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCommitCleanWorktree(t *testing.T) {
	history, dir := setupHistory(t)
	ctx := context.Background()

	writeStoreFile(t, dir, "version: 1\ntopics: {}\n")
	_, err := history.Commit(ctx, "init")
	require.NoError(t, err)

	commit, err := history.Commit(ctx, "nothing changed")
	require.NoError(t, err)
	assert.Nil(t, commit, "clean worktree must not create a commit")
}

func TestDiffWorktreeVsHead(t *testing.T) {
	history, dir := setupHistory(t)
	ctx := context.Background()

	writeStoreFile(t, dir, "line one\nline two\n")
	_, err := history.Commit(ctx, "init")
	require.NoError(t, err)

	patch, err := history.Diff(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, patch, "clean worktree diffs empty")

	writeStoreFile(t, dir, "line one\nline changed\n")
	patch, err = history.Diff(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, patch, "-line two")
	assert.Contains(t, patch, "+line changed")
}

func TestDiffHeadVsRef(t *testing.T) {
	history, dir := setupHistory(t)
	ctx := context.Background()

	writeStoreFile(t, dir, "old content\n")
	_, err := history.Commit(ctx, "first")
	require.NoError(t, err)

	writeStoreFile(t, dir, "new content\n")
	_, err = history.Commit(ctx, "second")
	require.NoError(t, err)

	patch, err := history.Diff(ctx, "HEAD~1")
	require.NoError(t, err)
	assert.Contains(t, patch, "old content")
	assert.Contains(t, patch, "new content")
}
