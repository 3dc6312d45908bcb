package entity

// OverlayTile describes one tile for an external indicator layer.
type OverlayTile struct {
	TileID         TileID `json:"tileId"`
	WindowBounds   Rect   `json:"windowBounds"`
	IsFocused      bool   `json:"isFocused"`
	IsAudioPlaying bool   `json:"isAudioPlaying"`
	IsMuted        bool   `json:"isMuted"`
}

// OverlayState is emitted after every layout pass.
type OverlayState struct {
	Tiles         []OverlayTile `json:"tiles"`
	FocusedTileID TileID        `json:"focusedTileId"`
}
