package internal

import (
	"os"
	"path/filepath"
)

type ScopeType string

const (
	ScopeGlobal   ScopeType = "global"
	ScopeProject  ScopeType = "project"
	ScopeExplicit ScopeType = "explicit"
)

const DefaultStoreFile = "store.yaml"

type Scope struct {
	Type       ScopeType
	Path       string // working directory root
	RecallPath string // .recall directory path
	StoreFile  string // explicit store file, set only for ScopeExplicit
}

func (s Scope) ConfigPath() string {
	return filepath.Join(s.RecallPath, "config.yaml")
}

// StorePathFor resolves the store file for a scope: an explicit override wins,
// otherwise the configured filename inside the scope's .recall directory.
func StorePathFor(scope Scope) (string, error) {
	if scope.StoreFile != "" {
		return scope.StoreFile, nil
	}

	cfg, err := LoadConfig(scope)
	if err != nil {
		return "", err
	}
	return filepath.Join(scope.RecallPath, cfg.StoreFileName()), nil
}

type ScopeResolver struct {
	homeDir string
}

func NewScopeResolver() *ScopeResolver {
	home, _ := os.UserHomeDir()
	return &ScopeResolver{homeDir: home}
}

func (r *ScopeResolver) Global() Scope {
	recallPath := filepath.Join(r.homeDir, ".recall")
	return Scope{
		Type:       ScopeGlobal,
		Path:       r.homeDir,
		RecallPath: recallPath,
	}
}

func (r *ScopeResolver) Project() (Scope, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return Scope{}, false
	}
	return r.findProjectScope(cwd)
}

func (r *ScopeResolver) findProjectScope(dir string) (Scope, bool) {
	for {
		recallPath := filepath.Join(dir, ".recall")
		info, err := os.Stat(recallPath)
		if err == nil && info.IsDir() {
			return Scope{Type: ScopeProject, Path: dir, RecallPath: recallPath}, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Scope{}, false
		}
		dir = parent
	}
}

func (r *ScopeResolver) Explicit(storePath string) Scope {
	dir := filepath.Dir(storePath)
	return Scope{
		Type:       ScopeExplicit,
		Path:       dir,
		RecallPath: dir,
		StoreFile:  storePath,
	}
}

func (r *ScopeResolver) Resolve(explicit string) Scope {
	if explicit == "global" {
		return r.Global()
	}
	if scope, ok := r.Project(); ok {
		return scope
	}
	return r.Global()
}

// ResolveTarget picks the scope for one operation: an explicit store path
// overrides scope resolution entirely.
func (r *ScopeResolver) ResolveTarget(scopeHint, storePath string) Scope {
	if storePath != "" {
		return r.Explicit(storePath)
	}
	return r.Resolve(scopeHint)
}

func (r *ScopeResolver) EnvVars(scope Scope, version string) map[string]string {
	bin, _ := os.Executable()
	storePath, _ := StorePathFor(scope)
	return map[string]string{
		"RECALL_SCOPE":      string(scope.Type),
		"RECALL_SCOPE_PATH": scope.RecallPath,
		"RECALL_ROOT":       scope.Path,
		"RECALL_STORE":      storePath,
		"RECALL_CONFIG":     scope.ConfigPath(),
		"RECALL_VERSION":    version,
		"RECALL_BIN":        bin,
	}
}
