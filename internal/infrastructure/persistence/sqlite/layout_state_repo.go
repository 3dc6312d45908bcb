package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/repository"
	"github.com/bnema/tessera/internal/logging"
)

const (
	upsertLayoutState = `
INSERT INTO layout_states (workspace_id, state_json, tile_count, focused_tile_id, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(workspace_id) DO UPDATE SET
    state_json = excluded.state_json,
    tile_count = excluded.tile_count,
    focused_tile_id = excluded.focused_tile_id,
    updated_at = excluded.updated_at`

	selectLayoutState = `
SELECT state_json, updated_at FROM layout_states WHERE workspace_id = ?`

	deleteLayoutState = `DELETE FROM layout_states WHERE workspace_id = ?`

	listLayoutStates = `
SELECT workspace_id, tile_count, focused_tile_id, updated_at
FROM layout_states
ORDER BY updated_at DESC, workspace_id`
)

type layoutStateRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutStateRepository creates a layout state repository on db.
func NewLayoutStateRepository(db *sql.DB) repository.LayoutStateRepository {
	return &layoutStateRepo{db: db, now: time.Now}
}

// SaveSnapshot saves or updates a workspace layout.
func (r *layoutStateRepo) SaveSnapshot(ctx context.Context, id entity.WorkspaceID, state *entity.SessionState) error {
	log := logging.FromContext(ctx)
	if state == nil {
		return errors.New("layout state cannot be nil")
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout state")
		return err
	}

	log.Debug().
		Str("workspace_id", string(id)).
		Int("tile_count", state.TileCount()).
		Msg("saving layout snapshot")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("snapshot rollback reported non-terminal error")
		}
	}()

	if _, err := tx.ExecContext(ctx, upsertLayoutState,
		string(id),
		string(stateJSON),
		state.TileCount(),
		string(state.FocusedTileID),
		r.now().UTC(),
	); err != nil {
		return fmt.Errorf("upsert layout state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot transaction: %w", err)
	}
	return nil
}

// GetSnapshot returns the stored layout of a workspace, or nil.
func (r *layoutStateRepo) GetSnapshot(ctx context.Context, id entity.WorkspaceID) (*entity.StoredLayout, error) {
	var (
		stateJSON string
		updatedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, selectLayoutState, string(id)).Scan(&stateJSON, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var state entity.SessionState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("workspace_id", string(id)).
			Msg("failed to unmarshal layout state")
		return nil, err
	}

	return &entity.StoredLayout{WorkspaceID: id, State: &state, UpdatedAt: updatedAt}, nil
}

// DeleteSnapshot removes a workspace layout.
func (r *layoutStateRepo) DeleteSnapshot(ctx context.Context, id entity.WorkspaceID) error {
	logging.FromContext(ctx).Debug().Str("workspace_id", string(id)).Msg("deleting layout snapshot")
	_, err := r.db.ExecContext(ctx, deleteLayoutState, string(id))
	return err
}

// ListSnapshots returns every stored layout, newest first.
func (r *layoutStateRepo) ListSnapshots(ctx context.Context) ([]entity.LayoutSummary, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutStates)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []entity.LayoutSummary
	for rows.Next() {
		var (
			s       entity.LayoutSummary
			id      string
			focused string
		)
		if err := rows.Scan(&id, &s.TileCount, &focused, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.WorkspaceID = entity.WorkspaceID(id)
		s.FocusedTileID = entity.TileID(focused)
		out = append(out, s)
	}
	return out, rows.Err()
}
