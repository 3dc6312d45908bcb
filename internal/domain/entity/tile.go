package entity

// LifecycleState tells whether a tile's content view is materialized.
type LifecycleState int

const (
	// TileLive means the content view exists and receives bounds.
	TileLive LifecycleState = iota
	// TileSleeping means the view was torn down; only retained metadata remains.
	TileSleeping
)

// String returns a human-readable representation of the state.
func (s LifecycleState) String() string {
	switch s {
	case TileLive:
		return "live"
	case TileSleeping:
		return "sleeping"
	default:
		return "unknown"
	}
}

// Tile is one independent content pane hosted by a leaf.
// It is owned by the lifecycle controller, not by the layout tree.
type Tile struct {
	ID           TileID
	URL          string
	Title        string
	Muted        bool
	AudioPlaying bool
	State        LifecycleState
	Bounds       Rect  // last computed rectangle
	Err          error // last content-view creation failure, nil when healthy
}

// NewTile creates a tile in the Live state.
func NewTile(id TileID, url string) *Tile {
	return &Tile{ID: id, URL: url, State: TileLive}
}

// Record returns the persisted form of the tile.
func (t *Tile) Record() TileRecord {
	return TileRecord{ID: t.ID, URL: t.URL, Title: t.Title, IsMuted: t.Muted}
}

// TileRecord is the serialized shape of a tile.
type TileRecord struct {
	ID      TileID `json:"id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	IsMuted bool   `json:"isMuted"`
}

// RetainedContent is what survives a tile going to sleep.
type RetainedContent struct {
	URL      string
	Title    string
	Muted    bool
	Snapshot []byte // nil when capture failed; render a title-only placeholder
}

// HasSnapshot reports whether an image was captured before sleeping.
func (r *RetainedContent) HasSnapshot() bool {
	return r != nil && len(r.Snapshot) > 0
}
