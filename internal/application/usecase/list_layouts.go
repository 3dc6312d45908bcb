package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/repository"
)

// ListLayoutsUseCase lists stored workspace layouts.
type ListLayoutsUseCase struct {
	stateRepo repository.LayoutStateRepository
}

// NewListLayoutsUseCase creates a new ListLayoutsUseCase.
func NewListLayoutsUseCase(stateRepo repository.LayoutStateRepository) *ListLayoutsUseCase {
	return &ListLayoutsUseCase{stateRepo: stateRepo}
}

// ListLayoutsOutput contains the stored layouts, most recent first.
type ListLayoutsOutput struct {
	Layouts []entity.LayoutSummary
}

// Execute returns at most limit summaries. A non-positive limit means all.
func (uc *ListLayoutsUseCase) Execute(ctx context.Context, limit int) (*ListLayoutsOutput, error) {
	summaries, err := uc.stateRepo.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layout snapshots: %w", err)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return &ListLayoutsOutput{Layouts: summaries}, nil
}
