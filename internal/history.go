package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	DefaultAuthor = "recall"
	DefaultEmail  = "recall@local"
)

type Commit struct {
	Hash      string
	Message   string
	Timestamp time.Time
}

// History records every store mutation as a git commit of the scope
// directory. It is optional: scopes without a repository run without it.
type History struct {
	repo     *git.Repository
	worktree *git.Worktree
	dir      string
}

func InitHistory(dir string) error {
	if _, err := git.PlainInit(dir, false); err != nil {
		return fmt.Errorf("init history: %w", err)
	}
	return nil
}

func OpenHistory(dir string) (*History, error) {
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, ErrNoHistory
	}
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	return &History{repo: repo, worktree: worktree, dir: dir}, nil
}

// Commit stages everything under the scope directory and commits it. A clean
// worktree yields (nil, nil); there is nothing to record.
func (h *History) Commit(ctx context.Context, message string) (*Commit, error) {
	status, err := h.worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}
	if status.IsClean() {
		return nil, nil
	}

	if err := h.worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return nil, fmt.Errorf("stage changes: %w", err)
	}

	hash, err := h.worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  DefaultAuthor,
			Email: DefaultEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	commit, err := h.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get commit: %w", err)
	}

	return toCommit(commit), nil
}

func (h *History) Log(ctx context.Context, limit int) ([]*Commit, error) {
	iter, err := h.repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}
	defer iter.Close()

	var commits []*Commit
	count := 0

	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && count >= limit {
			return io.EOF
		}
		commits = append(commits, toCommit(c))
		count++
		return nil
	})
	if err != nil && err != io.EOF {
		return nil, err
	}

	return commits, nil
}

// Diff renders changes of the scope directory: worktree against HEAD when ref
// is empty, HEAD against ref otherwise.
func (h *History) Diff(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return h.diffWorktreeVsHead()
	}
	return h.diffHeadVsRef(ref)
}

func (h *History) diffWorktreeVsHead() (string, error) {
	status, err := h.worktree.Status()
	if err != nil {
		return "", fmt.Errorf("get status: %w", err)
	}
	if status.IsClean() {
		return "", nil
	}

	headTree, err := h.headTree()
	if err != nil {
		return "", err
	}

	var out string
	for path, s := range status {
		oldContent := ""
		if f, err := headTree.File(path); err == nil {
			if c, err := f.Contents(); err == nil {
				oldContent = c
			}
		}

		newContent := ""
		if data, err := os.ReadFile(filepath.Join(h.dir, path)); err == nil {
			newContent = string(data)
		}

		if oldContent == newContent {
			continue
		}

		switch {
		case oldContent == "":
			out += fmt.Sprintf("--- /dev/null\n+++ b/%s\n", path)
		case newContent == "" && s.Worktree == git.Deleted:
			out += fmt.Sprintf("--- a/%s\n+++ /dev/null\n", path)
		default:
			out += fmt.Sprintf("--- a/%s\n+++ b/%s\n", path, path)
		}
		out += RenderDiff(oldContent, newContent)
	}

	return out, nil
}

func (h *History) diffHeadVsRef(ref string) (string, error) {
	headTree, err := h.headTree()
	if err != nil {
		return "", err
	}

	resolved, err := h.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("resolve ref: %w", err)
	}

	targetCommit, err := h.repo.CommitObject(*resolved)
	if err != nil {
		return "", fmt.Errorf("get target commit: %w", err)
	}

	targetTree, err := targetCommit.Tree()
	if err != nil {
		return "", fmt.Errorf("get target tree: %w", err)
	}

	changes, err := targetTree.Diff(headTree)
	if err != nil {
		return "", fmt.Errorf("diff trees: %w", err)
	}

	patch, err := changes.Patch()
	if err != nil {
		return "", fmt.Errorf("get patch: %w", err)
	}

	return patch.String(), nil
}

func (h *History) headTree() (*object.Tree, error) {
	head, err := h.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("get HEAD: %w", err)
	}

	headCommit, err := h.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("get HEAD commit: %w", err)
	}

	tree, err := headCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("get HEAD tree: %w", err)
	}
	return tree, nil
}

func toCommit(c *object.Commit) *Commit {
	return &Commit{
		Hash:      c.Hash.String(),
		Message:   c.Message,
		Timestamp: c.Author.When,
	}
}
