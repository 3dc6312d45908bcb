// Package config loads, validates and watches the tessera configuration.
package config

// Config represents the complete configuration for tessera.
type Config struct {
	// Lifecycle controls when tiles are put to sleep.
	Lifecycle LifecycleConfig `mapstructure:"lifecycle" yaml:"lifecycle" toml:"lifecycle" json:"lifecycle"`
	// Focus tunes directional navigation and keyboard resizing.
	Focus FocusConfig `mapstructure:"focus" yaml:"focus" toml:"focus" json:"focus"`
	// Workspace defines how new tiles are created.
	Workspace WorkspaceConfig `mapstructure:"workspace" yaml:"workspace" toml:"workspace" json:"workspace"`
	// Session controls layout persistence and restoration.
	Session    SessionConfig    `mapstructure:"session" yaml:"session" toml:"session" json:"session"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
}

// LifecycleConfig holds the sleep thresholds in pixels. A tile narrower or
// shorter than these goes to sleep unless it has focus.
type LifecycleConfig struct {
	SleepMinWidth  int `mapstructure:"sleep_min_width" yaml:"sleep_min_width" toml:"sleep_min_width" json:"sleep_min_width" jsonschema:"minimum=1"`
	SleepMinHeight int `mapstructure:"sleep_min_height" yaml:"sleep_min_height" toml:"sleep_min_height" json:"sleep_min_height" jsonschema:"minimum=1"`
}

// FocusConfig tunes adjacency search and resize steps.
type FocusConfig struct {
	// AdjacencyTolerance is the slack in pixels allowed between neighbouring edges.
	AdjacencyTolerance float64 `mapstructure:"adjacency_tolerance" yaml:"adjacency_tolerance" toml:"adjacency_tolerance" json:"adjacency_tolerance" jsonschema:"minimum=0"`
	// ResizeStep is the ratio change of one keyboard resize (0.05 = 5%).
	ResizeStep float64 `mapstructure:"resize_step" yaml:"resize_step" toml:"resize_step" json:"resize_step" jsonschema:"exclusiveMinimum=0,maximum=0.8"`
}

// WorkspaceConfig defines the workspace and new tiles.
type WorkspaceConfig struct {
	// ID names the persisted layout the workspace reads and writes.
	ID                string  `mapstructure:"id" yaml:"id" toml:"id" json:"id"`
	NewTileURL        string  `mapstructure:"new_tile_url" yaml:"new_tile_url" toml:"new_tile_url" json:"new_tile_url"`
	DefaultSplitRatio float64 `mapstructure:"default_split_ratio" yaml:"default_split_ratio" toml:"default_split_ratio" json:"default_split_ratio" jsonschema:"minimum=0.1,maximum=0.9"`
}

// SessionConfig controls layout persistence.
type SessionConfig struct {
	AutoRestore        bool `mapstructure:"auto_restore" yaml:"auto_restore" toml:"auto_restore" json:"auto_restore"`
	SnapshotIntervalMs int  `mapstructure:"snapshot_interval_ms" yaml:"snapshot_interval_ms" toml:"snapshot_interval_ms" json:"snapshot_interval_ms" jsonschema:"minimum=0"`
}

// DatabaseConfig holds the SQLite database location. Empty means the XDG
// data directory.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging output settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format     string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFile bool   `mapstructure:"enable_file" yaml:"enable_file" toml:"enable_file" json:"enable_file"`
	// FilePath defaults to tessera.log in the XDG state directory.
	FilePath string `mapstructure:"file_path" yaml:"file_path" toml:"file_path" json:"file_path"`
}

// AppearanceConfig is the TUI palette, as hex colors.
type AppearanceConfig struct {
	FocusColor    string `mapstructure:"focus_color" yaml:"focus_color" toml:"focus_color" json:"focus_color"`
	BorderColor   string `mapstructure:"border_color" yaml:"border_color" toml:"border_color" json:"border_color"`
	SleepingColor string `mapstructure:"sleeping_color" yaml:"sleeping_color" toml:"sleeping_color" json:"sleeping_color"`
	ErrorColor    string `mapstructure:"error_color" yaml:"error_color" toml:"error_color" json:"error_color"`
	AudioColor    string `mapstructure:"audio_color" yaml:"audio_color" toml:"audio_color" json:"audio_color"`
	ShowTileIDs   bool   `mapstructure:"show_tile_ids" yaml:"show_tile_ids" toml:"show_tile_ids" json:"show_tile_ids"`
}
