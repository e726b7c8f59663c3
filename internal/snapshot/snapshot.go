// Package snapshot persists the last successful view-model per profile and
// screen so dashboards can paint immediately on the next launch.
//
// The cache is advisory: a fresh load is always issued regardless of a hit,
// and its result always supersedes the snapshot. Entries carry no version or
// TTL; they are treated as possibly stale by construction. Keying by
// profile and screen keeps one profile's data from bleeding into another's
// first paint.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cache stores one JSON blob per (profile, screen) pair under a directory.
type Cache struct {
	dir string
}

const defaultCacheDir = "~/.local/state/stride/snapshots"

// DefaultDir returns the default snapshot directory.
func DefaultDir() string {
	return defaultCacheDir
}

// Open prepares a cache rooted at dir, creating it as needed. An empty dir
// uses the default location.
func Open(dir string) (*Cache, error) {
	resolved, err := resolvePath(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &Cache{dir: resolved}, nil
}

// Read loads the snapshot for the given profile and screen into dest. It
// reports whether a snapshot existed; a missing entry is not an error.
func (c *Cache) Read(profileID, screen string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := os.ReadFile(c.path(profileID, screen))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt snapshot is treated as a miss; the fresh load repairs it.
		return false, nil
	}
	return true, nil
}

// Write persists the view-model for the given profile and screen,
// unconditionally overwriting the previous snapshot.
func (c *Cache) Write(profileID, screen string, v any) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(c.path(profileID, screen), raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (c *Cache) path(profileID, screen string) string {
	return filepath.Join(c.dir, sanitize(profileID)+"-"+sanitize(screen)+".json")
}

func sanitize(part string) string {
	part = strings.TrimSpace(part)
	if part == "" {
		return "default"
	}
	var b strings.Builder
	for _, r := range part {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultCacheDir)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
