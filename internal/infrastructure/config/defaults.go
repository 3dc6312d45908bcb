package config

// Default values shared by DefaultConfig and the validation bounds.
const (
	DefaultSleepMinWidth      = 200
	DefaultSleepMinHeight     = 150
	DefaultAdjacencyTolerance = 5.0
	DefaultResizeStep         = 0.05
	DefaultSplitRatio         = 0.5
	DefaultNewTileURL         = "about:blank"
	DefaultWorkspaceID        = "default"
	DefaultSnapshotIntervalMs = 5000

	minSplitRatio = 0.1
	maxSplitRatio = 0.9
	maxResizeStep = 0.8
)

// DefaultConfig returns the default configuration. Database.Path is left
// empty and resolved against the XDG data directory at load time.
func DefaultConfig() *Config {
	return &Config{
		Lifecycle: LifecycleConfig{
			SleepMinWidth:  DefaultSleepMinWidth,
			SleepMinHeight: DefaultSleepMinHeight,
		},
		Focus: FocusConfig{
			AdjacencyTolerance: DefaultAdjacencyTolerance,
			ResizeStep:         DefaultResizeStep,
		},
		Workspace: WorkspaceConfig{
			ID:                DefaultWorkspaceID,
			NewTileURL:        DefaultNewTileURL,
			DefaultSplitRatio: DefaultSplitRatio,
		},
		Session: SessionConfig{
			AutoRestore:        true,
			SnapshotIntervalMs: DefaultSnapshotIntervalMs,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Appearance: AppearanceConfig{
			FocusColor:    "#7aa2f7",
			BorderColor:   "#565f89",
			SleepingColor: "#414868",
			ErrorColor:    "#f7768e",
			AudioColor:    "#9ece6a",
		},
	}
}

// setDefaults registers every default with viper so that the keys exist for
// env overrides and for the generated default file.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("lifecycle.sleep_min_width", defaults.Lifecycle.SleepMinWidth)
	m.viper.SetDefault("lifecycle.sleep_min_height", defaults.Lifecycle.SleepMinHeight)

	m.viper.SetDefault("focus.adjacency_tolerance", defaults.Focus.AdjacencyTolerance)
	m.viper.SetDefault("focus.resize_step", defaults.Focus.ResizeStep)

	m.viper.SetDefault("workspace.id", defaults.Workspace.ID)
	m.viper.SetDefault("workspace.new_tile_url", defaults.Workspace.NewTileURL)
	m.viper.SetDefault("workspace.default_split_ratio", defaults.Workspace.DefaultSplitRatio)

	m.viper.SetDefault("session.auto_restore", defaults.Session.AutoRestore)
	m.viper.SetDefault("session.snapshot_interval_ms", defaults.Session.SnapshotIntervalMs)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file", defaults.Logging.EnableFile)
	m.viper.SetDefault("logging.file_path", defaults.Logging.FilePath)

	m.viper.SetDefault("appearance.focus_color", defaults.Appearance.FocusColor)
	m.viper.SetDefault("appearance.border_color", defaults.Appearance.BorderColor)
	m.viper.SetDefault("appearance.sleeping_color", defaults.Appearance.SleepingColor)
	m.viper.SetDefault("appearance.error_color", defaults.Appearance.ErrorColor)
	m.viper.SetDefault("appearance.audio_color", defaults.Appearance.AudioColor)
	m.viper.SetDefault("appearance.show_tile_ids", defaults.Appearance.ShowTileIDs)
}
