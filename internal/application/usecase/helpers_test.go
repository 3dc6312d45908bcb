package usecase_test

import (
	"context"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// twoTileState is a vertical split of t1 and t2 with t2 focused.
func twoTileState() *entity.SessionState {
	return &entity.SessionState{
		Layout: entity.NewSplit("s1", entity.SplitVertical, 0.5,
			entity.NewLeaf("t1", "t1"),
			entity.NewLeaf("t2", "t2"),
		),
		Tiles: []entity.TileRecord{
			{ID: "t1", URL: "https://one.example", Title: "One"},
			{ID: "t2", URL: "https://two.example", Title: "Two", IsMuted: true},
		},
		FocusedTileID: "t2",
	}
}
