package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/repository"
	"github.com/bnema/tessera/internal/logging"
)

// SnapshotLayoutUseCase handles saving workspace layout snapshots.
type SnapshotLayoutUseCase struct {
	stateRepo repository.LayoutStateRepository
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
func NewSnapshotLayoutUseCase(stateRepo repository.LayoutStateRepository) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{stateRepo: stateRepo}
}

// SnapshotInput contains the parameters for saving a layout snapshot.
type SnapshotInput struct {
	WorkspaceID entity.WorkspaceID
	State       *entity.SessionState
}

// Execute validates the state and saves it.
func (uc *SnapshotLayoutUseCase) Execute(ctx context.Context, input SnapshotInput) error {
	log := logging.FromContext(ctx)

	if input.WorkspaceID == "" {
		return fmt.Errorf("workspace id required")
	}
	if err := input.State.Validate(); err != nil {
		return fmt.Errorf("refusing to save snapshot: %w", err)
	}

	log.Debug().
		Str("workspace_id", string(input.WorkspaceID)).
		Int("tile_count", input.State.TileCount()).
		Str("focused_tile_id", string(input.State.FocusedTileID)).
		Msg("saving layout snapshot")

	if err := uc.stateRepo.SaveSnapshot(ctx, input.WorkspaceID, input.State); err != nil {
		return fmt.Errorf("save layout snapshot: %w", err)
	}

	return nil
}
