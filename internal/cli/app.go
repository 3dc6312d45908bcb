// Package cli wires the tessera commands: configuration, logging, layout
// persistence and the interactive tiling playground.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/tessera/internal/app/tiling"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/domain/build"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/repository"
	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tessera/internal/logging"
)

// Options adjusts how the App is built.
type Options struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// DatabasePath overrides database.path; sqlite.MemoryPath keeps nothing.
	DatabasePath string
	// Interactive keeps logs off stderr, which belongs to the TUI.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db      *sqlite.LazyDB
	Layouts repository.LayoutStateRepository

	// Use cases
	SnapshotUC *usecase.SnapshotLayoutUseCase
	RestoreUC  *usecase.RestoreLayoutUseCase
	ListUC     *usecase.ListLayoutsUseCase
	DeleteUC   *usecase.DeleteLayoutUseCase

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies. The database
// opens lazily on the first layout query.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(managerOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()
	if opts.DatabasePath != "" {
		cfg.Database.Path = opts.DatabasePath
	}

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: cfg.Logging.EnableFile, Path: cfg.Logging.FilePath, WriteToStderr: !opts.Interactive},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging unavailable")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	layouts := sqlite.NewLazyLayoutStateRepository(db)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("cli initialized")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		db:         db,
		Layouts:    layouts,
		SnapshotUC: usecase.NewSnapshotLayoutUseCase(layouts),
		RestoreUC:  usecase.NewRestoreLayoutUseCase(layouts),
		ListUC:     usecase.NewListLayoutsUseCase(layouts),
		DeleteUC:   usecase.NewDeleteLayoutUseCase(layouts),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

func managerOptions(opts Options) []config.Option {
	if opts.ConfigDir == "" {
		return nil
	}
	return []config.Option{config.WithConfigDir(opts.ConfigDir)}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WorkspaceID returns the configured workspace, or override when set.
func (a *App) WorkspaceID(override string) entity.WorkspaceID {
	if override != "" {
		return entity.WorkspaceID(override)
	}
	return entity.WorkspaceID(a.Config.Workspace.ID)
}

// TilingConfig maps the file configuration onto the engine configuration.
func TilingConfig(cfg *config.Config, container entity.Rect) tiling.Config {
	return tiling.Config{
		Container:          container,
		SleepMinWidth:      cfg.Lifecycle.SleepMinWidth,
		SleepMinHeight:     cfg.Lifecycle.SleepMinHeight,
		AdjacencyTolerance: cfg.Focus.AdjacencyTolerance,
		ResizeStep:         cfg.Focus.ResizeStep,
		DefaultSplitRatio:  cfg.Workspace.DefaultSplitRatio,
		NewTileURL:         cfg.Workspace.NewTileURL,
	}
}
