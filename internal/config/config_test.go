package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := load(context.Background(), filepath.Join(home, "does-not-exist.toml"), envconfig.MapLookuper(nil))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, defaultAPIBaseURL)
	}
	if cfg.Date != defaultDate {
		t.Fatalf("Date = %q, want %q", cfg.Date, defaultDate)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
	if len(cfg.Profiles) != 2 {
		t.Fatalf("len(Profiles) = %d, want 2", len(cfg.Profiles))
	}
	if !strings.HasPrefix(cfg.SnapshotDir, home) {
		t.Fatalf("SnapshotDir = %q, want it under HOME %q", cfg.SnapshotDir, home)
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base_url = "  http://10.0.0.5:9999  "
date = "2016-04-01"
page_size = 10

[[profiles]]
id = "  42  "
username = "  casey  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := load(context.Background(), path, envconfig.MapLookuper(nil))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://10.0.0.5:9999" {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, "http://10.0.0.5:9999")
	}
	if cfg.Date != "2016-04-01" {
		t.Fatalf("Date = %q, want %q", cfg.Date, "2016-04-01")
	}
	if cfg.PageSize != 10 {
		t.Fatalf("PageSize = %d, want 10", cfg.PageSize)
	}
	if len(cfg.Profiles) != 1 || cfg.Profiles[0].ID != "42" || cfg.Profiles[0].Username != "casey" {
		t.Fatalf("Profiles = %+v, want one trimmed profile", cfg.Profiles)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base_url = "   "
date = ""
page_size = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := load(context.Background(), path, envconfig.MapLookuper(nil))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, defaultAPIBaseURL)
	}
	if cfg.Date != defaultDate {
		t.Fatalf("Date = %q, want %q", cfg.Date, defaultDate)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base_url = "http://file:8000"
date = "2016-04-01"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	lookuper := envconfig.MapLookuper(map[string]string{
		"STRIDE_API_URL": "http://env:9000",
		"STRIDE_DATE":    "2016-04-12",
	})
	cfg, err := load(context.Background(), path, lookuper)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://env:9000" {
		t.Fatalf("APIBaseURL = %q, want env override", cfg.APIBaseURL)
	}
	if cfg.Date != "2016-04-12" {
		t.Fatalf("Date = %q, want env override", cfg.Date)
	}
}

func TestLoad_ProfileWithEmptyIDFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[[profiles]]
id = "  "
username = "ghost"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := load(context.Background(), path, envconfig.MapLookuper(nil))
	if err == nil {
		t.Fatalf("load returned nil error, want empty-id error")
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_base_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := load(context.Background(), path, envconfig.MapLookuper(nil))
	if err == nil {
		t.Fatalf("load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
