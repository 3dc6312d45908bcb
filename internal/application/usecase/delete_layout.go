package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/repository"
	"github.com/bnema/tessera/internal/logging"
)

// ErrLayoutNotFound is returned when deleting a layout that was never saved.
var ErrLayoutNotFound = errors.New("layout not found")

// DeleteLayoutUseCase removes a stored workspace layout.
type DeleteLayoutUseCase struct {
	stateRepo repository.LayoutStateRepository
}

// NewDeleteLayoutUseCase creates a new DeleteLayoutUseCase.
func NewDeleteLayoutUseCase(stateRepo repository.LayoutStateRepository) *DeleteLayoutUseCase {
	return &DeleteLayoutUseCase{stateRepo: stateRepo}
}

// Execute deletes the layout of id.
func (uc *DeleteLayoutUseCase) Execute(ctx context.Context, id entity.WorkspaceID) error {
	stored, err := uc.stateRepo.GetSnapshot(ctx, id)
	if err != nil {
		return fmt.Errorf("load layout snapshot: %w", err)
	}
	if stored == nil {
		return fmt.Errorf("%w: %s", ErrLayoutNotFound, id)
	}

	if err := uc.stateRepo.DeleteSnapshot(ctx, id); err != nil {
		return fmt.Errorf("delete layout snapshot: %w", err)
	}

	logging.FromContext(ctx).Info().Str("workspace_id", string(id)).Msg("layout deleted")
	return nil
}
