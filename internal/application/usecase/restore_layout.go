package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/layout"
	"github.com/bnema/tessera/internal/domain/repository"
	"github.com/bnema/tessera/internal/logging"
)

// RestoreLayoutUseCase loads a saved layout for a workspace.
type RestoreLayoutUseCase struct {
	stateRepo repository.LayoutStateRepository
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(stateRepo repository.LayoutStateRepository) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{stateRepo: stateRepo}
}

// RestoreOutput holds the state to restore. State is nil when the caller
// should start a fresh single-tile workspace instead.
type RestoreOutput struct {
	State     *entity.SessionState
	Stored    *entity.StoredLayout
	Discarded bool // a snapshot existed but failed validation
}

// Execute loads and validates the snapshot of id. A missing or corrupt
// snapshot is not an error; repository failures are.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, id entity.WorkspaceID) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	if id == "" {
		return nil, fmt.Errorf("workspace id required")
	}

	stored, err := uc.stateRepo.GetSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load layout snapshot: %w", err)
	}
	if stored == nil || stored.State == nil {
		log.Debug().Str("workspace_id", string(id)).Msg("no layout snapshot, starting fresh")
		return &RestoreOutput{}, nil
	}

	if err := validateState(stored.State); err != nil {
		log.Warn().Err(err).Str("workspace_id", string(id)).Msg("discarding invalid layout snapshot")
		return &RestoreOutput{Stored: stored, Discarded: true}, nil
	}

	log.Info().
		Str("workspace_id", string(id)).
		Int("tile_count", stored.State.TileCount()).
		Time("updated_at", stored.UpdatedAt).
		Msg("restoring layout snapshot")

	return &RestoreOutput{State: stored.State, Stored: stored}, nil
}

func validateState(state *entity.SessionState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	return layout.Validate(state.Layout)
}
