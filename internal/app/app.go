package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/evhart/stride/internal/coach"
	"github.com/evhart/stride/internal/config"
	"github.com/evhart/stride/internal/logging"
	"github.com/evhart/stride/internal/prefs"
	"github.com/evhart/stride/internal/profile"
	"github.com/evhart/stride/internal/series"
	"github.com/evhart/stride/internal/snapshot"
	"github.com/evhart/stride/internal/ui"
)

// Options configure the Stride application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/stride/prefs.toml
	LogLevel   string // empty defaults to info
}

// Run boots the Stride TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(ctx, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logging.Setup(cfg.LogPath, opts.LogLevel); err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := coach.NewClient(cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("init coach client: %w", err)
	}

	profiles, err := profile.NewStore(cfg.Profiles, userPrefs.Profile)
	if err != nil {
		return fmt.Errorf("init profiles: %w", err)
	}

	snapshots, err := snapshot.Open(cfg.SnapshotDir)
	if err != nil {
		// The cache is advisory; run without it rather than refuse to start.
		logrus.WithError(err).Warn("snapshot cache unavailable")
		snapshots = nil
	}

	cursor, err := series.ParseCursor(cfg.Date)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", cfg.Date, err)
	}

	logrus.WithFields(logrus.Fields{
		"api":     cfg.APIBaseURL,
		"date":    cfg.Date,
		"profile": profiles.Active().ID,
	}).Info("starting stride")

	return ui.Run(ctx, ui.Options{
		Gateway:   client,
		Profiles:  profiles,
		Snapshots: snapshots,
		Cursor:    cursor,
		PageSize:  cfg.PageSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
