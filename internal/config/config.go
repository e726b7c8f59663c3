package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sethvargo/go-envconfig"

	"github.com/evhart/stride/internal/profile"
)

// Config captures everything the client needs to start: where the coach API
// lives, which profiles exist, and where local state is kept.
type Config struct {
	APIBaseURL  string
	Date        string
	PageSize    int
	SnapshotDir string
	LogPath     string
	Profiles    []profile.Profile
}

// envOverrides are applied on top of the file; they win when set.
type envOverrides struct {
	APIBaseURL string `env:"STRIDE_API_URL"`
	Date       string `env:"STRIDE_DATE"`
}

const (
	defaultConfigPath  = "~/.config/stride/config.toml"
	defaultAPIBaseURL  = "http://127.0.0.1:8000"
	defaultDate        = "2016-04-09"
	defaultPageSize    = 5
	defaultSnapshotDir = "~/.local/state/stride/snapshots"
	defaultLogPath     = "~/.local/state/stride/stride.log"
)

// defaultProfiles mirrors the demo accounts the backend ships with, so a
// fresh install works against a local server without writing a config file.
func defaultProfiles() []profile.Profile {
	return []profile.Profile{
		{ID: "1503960366", Username: "arron"},
		{ID: "1644430081", Username: "leia"},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
// Environment variables override file values.
func Load(ctx context.Context, path string) (Config, error) {
	return load(ctx, path, envconfig.OsLookuper())
}

func load(ctx context.Context, path string, lookuper envconfig.Lookuper) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
	} else {
		defer func() { _ = file.Close() }()

		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}

		var raw struct {
			APIBaseURL  string `toml:"api_base_url"`
			Date        string `toml:"date"`
			PageSize    int    `toml:"page_size"`
			SnapshotDir string `toml:"snapshot_dir"`
			LogPath     string `toml:"log_path"`
			Profiles    []struct {
				ID       string `toml:"id"`
				Username string `toml:"username"`
			} `toml:"profiles"`
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}

		if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
			cfg.APIBaseURL = v
		}
		if v := strings.TrimSpace(raw.Date); v != "" {
			cfg.Date = v
		}
		if raw.PageSize > 0 {
			cfg.PageSize = raw.PageSize
		}
		if v := strings.TrimSpace(raw.SnapshotDir); v != "" {
			cfg.SnapshotDir = v
		}
		if v := strings.TrimSpace(raw.LogPath); v != "" {
			cfg.LogPath = v
		}
		if len(raw.Profiles) > 0 {
			cfg.Profiles = cfg.Profiles[:0]
			for _, p := range raw.Profiles {
				id := strings.TrimSpace(p.ID)
				if id == "" {
					return Config{}, fmt.Errorf("parse config: profile with empty id")
				}
				cfg.Profiles = append(cfg.Profiles, profile.Profile{
					ID:       id,
					Username: strings.TrimSpace(p.Username),
				})
			}
		}
	}

	var env envOverrides
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &env, Lookuper: lookuper}); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if v := strings.TrimSpace(env.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(env.Date); v != "" {
		cfg.Date = v
	}

	cfg.SnapshotDir = mustExpand(cfg.SnapshotDir)
	cfg.LogPath = mustExpand(cfg.LogPath)

	return cfg, nil
}

func defaults() Config {
	return Config{
		APIBaseURL:  defaultAPIBaseURL,
		Date:        defaultDate,
		PageSize:    defaultPageSize,
		SnapshotDir: defaultSnapshotDir,
		LogPath:     defaultLogPath,
		Profiles:    defaultProfiles(),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
