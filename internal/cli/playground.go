package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tessera/internal/app/tiling"
	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/cli/model"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/infrastructure/contentview"
	"github.com/bnema/tessera/internal/infrastructure/idgen"
	"github.com/bnema/tessera/internal/infrastructure/snapshot"
	"github.com/bnema/tessera/internal/logging"
)

// PlaygroundOptions configures a playground session.
type PlaygroundOptions struct {
	WorkspaceID string
	// URLs open one tile each, alternating split directions. When set, the
	// saved layout is not restored.
	URLs []string
	// Fresh ignores the saved layout.
	Fresh bool
	// Latency slows the headless provider down.
	Latency time.Duration
	// Overlay receives layout passes. Optional.
	Overlay port.OverlayPublisher
	// GenerateID overrides the tile id generator.
	GenerateID entity.IDGenerator
}

// Playground is an opened workspace backed by the headless provider and
// persisted through the snapshot service.
type Playground struct {
	Workspace *tiling.Workspace
	Provider  *contentview.Provider
	Snapshots *snapshot.Service
	Restored  bool
}

// OpenPlayground restores or opens a workspace and starts persisting it.
func (a *App) OpenPlayground(ctx context.Context, opts PlaygroundOptions) (*Playground, error) {
	log := logging.FromContext(ctx)
	wsID := a.WorkspaceID(opts.WorkspaceID)

	generate := opts.GenerateID
	if generate == nil {
		generate = idgen.Short()
	}
	provider := contentview.NewProvider(contentview.WithLatency(opts.Latency))
	ws := tiling.NewWorkspace(wsID, TilingConfig(a.Config, model.ContainerFor(80, 24)), tiling.Deps{
		Provider:   provider,
		Overlay:    opts.Overlay,
		GenerateID: generate,
	})

	restored := false
	if a.Config.Session.AutoRestore && !opts.Fresh && len(opts.URLs) == 0 {
		out, err := a.RestoreUC.Execute(ctx, wsID)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("could not load saved layout, starting fresh")
		case out.State != nil:
			if err := ws.Restore(ctx, out.State); err != nil {
				log.Warn().Err(err).Msg("saved layout rejected, starting fresh")
			} else {
				restored = true
			}
		}
	}

	if !restored {
		if err := openURLs(ctx, ws, opts.URLs); err != nil {
			return nil, err
		}
	}

	svc := snapshot.NewService(a.SnapshotUC, ws, a.Config.Session.SnapshotIntervalMs)
	svc.Start(ctx)
	svc.SetReady()
	ws.OnStateChange(svc.MarkDirty)
	if !restored {
		svc.MarkDirty()
	}

	return &Playground{Workspace: ws, Provider: provider, Snapshots: svc, Restored: restored}, nil
}

func openURLs(ctx context.Context, ws *tiling.Workspace, urls []string) error {
	first := ""
	if len(urls) > 0 {
		first = urls[0]
	}
	last, err := ws.Open(ctx, first)
	if err != nil {
		return fmt.Errorf("open workspace: %w", err)
	}
	for i, url := range urls[min(1, len(urls)):] {
		dir := entity.SplitVertical
		if i%2 == 1 {
			dir = entity.SplitHorizontal
		}
		if last, err = ws.Split(ctx, last, dir, url); err != nil {
			return fmt.Errorf("open %s: %w", url, err)
		}
	}
	return nil
}

// Close flushes pending snapshots and tears every view down.
func (p *Playground) Close(ctx context.Context) error {
	return errors.Join(p.Snapshots.Stop(ctx), p.Workspace.Shutdown(ctx))
}

// ApplyConfig pushes a reloaded configuration into the running workspace.
func (p *Playground) ApplyConfig(ctx context.Context, cfg *config.Config) {
	p.Workspace.ApplyConfig(ctx, TilingConfig(cfg, p.Workspace.Container()))
	logging.FromContext(ctx).Info().Msg("configuration reloaded")
}

// RunPlayground runs the interactive TUI until the user quits.
func (a *App) RunPlayground(opts PlaygroundOptions) error {
	ctx := logging.WithComponent(a.ctx, "playground")

	bridge := &model.Bridge{}
	opts.Overlay = bridge
	pg, err := a.OpenPlayground(ctx, opts)
	if err != nil {
		return err
	}
	pg.Workspace.Lifecycle().OnTransition(bridge.Transition)

	a.Manager.OnConfigChange(func(cfg *config.Config) { pg.ApplyConfig(ctx, cfg) })
	if err := a.Manager.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload disabled")
	}

	m := model.NewWorkspaceModel(ctx, a.Theme, model.WorkspaceModelConfig{
		Workspace:  pg.Workspace,
		NewTileURL: a.Config.Workspace.NewTileURL,
		SaveNow:    pg.Snapshots.SaveNow,
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	bridge.Attach(program)

	_, runErr := program.Run()
	bridge.Attach(nil)
	return errors.Join(runErr, pg.Close(ctx))
}
