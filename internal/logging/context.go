package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field keys shared by every tessera log line.
const (
	FieldComponent   = "component"
	FieldWorkspaceID = "workspace_id"
	FieldTileID      = "tile_id"
	FieldSplitID     = "split_id"
	FieldPhase       = "phase"
)

// FromContext extracts the logger from context.
// Without one it returns a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With creates a child logger with additional fields and returns a new context
func With(ctx context.Context, fields map[string]any) context.Context {
	childCtx := FromContext(ctx).With()
	for k, v := range fields {
		childCtx = childCtx.Interface(k, v)
	}
	return WithContext(ctx, childCtx.Logger())
}

func withStr(ctx context.Context, key, value string) context.Context {
	if value == "" {
		return ctx
	}
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags log lines with the emitting component.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, FieldComponent, component)
}

// WithWorkspaceID tags log lines with the workspace they belong to.
func WithWorkspaceID(ctx context.Context, workspaceID string) context.Context {
	return withStr(ctx, FieldWorkspaceID, workspaceID)
}

// WithTileID tags log lines with a tile.
func WithTileID(ctx context.Context, tileID string) context.Context {
	return withStr(ctx, FieldTileID, tileID)
}

// WithSplitID tags log lines with a split node.
func WithSplitID(ctx context.Context, splitID string) context.Context {
	return withStr(ctx, FieldSplitID, splitID)
}

// WithPhase tags log lines with the lifecycle transition in progress.
func WithPhase(ctx context.Context, phase string) context.Context {
	return withStr(ctx, FieldPhase, phase)
}
