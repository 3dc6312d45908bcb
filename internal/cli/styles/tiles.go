package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/domain/entity"
)

// TileView is what a rendered tile box shows.
type TileView struct {
	Tile    entity.Tile
	Focused bool
}

// RenderTile draws one tile as a bordered box exactly width x height cells.
func (t *Theme) RenderTile(v TileView, width, height int) string {
	style := t.tileStyle(v)
	innerW := max(width-style.GetHorizontalFrameSize(), 0)
	innerH := max(height-style.GetVerticalFrameSize(), 0)
	if innerW == 0 || innerH == 0 {
		return blank(width, height)
	}

	lines := t.tileLines(v, innerW)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return style.Width(innerW).Height(innerH).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

func (t *Theme) tileStyle(v TileView) lipgloss.Style {
	switch {
	case v.Focused:
		return t.TileFocused
	case v.Tile.Err != nil:
		return t.TileFailed
	case v.Tile.State == entity.TileSleeping:
		return t.TileSleeping
	default:
		return t.TileLive
	}
}

func (t *Theme) tileLines(v TileView, width int) []string {
	title := v.Tile.Title
	if title == "" {
		title = v.Tile.URL
	}
	lines := []string{t.Title.Render(truncate(title, width))}
	if v.Tile.Title != "" {
		lines = append(lines, t.Subtle.Render(truncate(v.Tile.URL, width)))
	}

	flags := []string{v.Tile.State.String()}
	if v.Tile.Muted {
		flags = append(flags, "muted")
	}
	if v.Tile.AudioPlaying {
		flags = append(flags, t.AudioStyle.Render("♪"))
	}
	lines = append(lines, t.Subtle.Render(truncate(strings.Join(flags, " · "), width)))

	if v.Tile.Err != nil {
		lines = append(lines, t.ErrorStyle.Render(truncate(v.Tile.Err.Error(), width)))
	}
	if t.ShowTileIDs {
		lines = append(lines, t.Subtle.Render(truncate(fmt.Sprintf("%s %dx%d", v.Tile.ID, v.Tile.Bounds.Width, v.Tile.Bounds.Height), width)))
	}
	return lines
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return strings.Repeat("…", width)
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// RenderLayout draws the tree into a width x height cell grid. Splits divide
// cells with the same ratio the engine applies to pixels.
func (t *Theme) RenderLayout(root *entity.LayoutNode, width, height int, tile func(entity.TileID) TileView) string {
	if root == nil || width <= 0 || height <= 0 {
		return blank(width, height)
	}
	if root.IsLeaf() {
		return t.RenderTile(tile(root.TileID), width, height)
	}

	if root.Direction == entity.SplitVertical {
		firstW := int(float64(width) * root.Ratio)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			t.RenderLayout(root.First, firstW, height, tile),
			t.RenderLayout(root.Second, width-firstW, height, tile),
		)
	}
	firstH := int(float64(height) * root.Ratio)
	return lipgloss.JoinVertical(lipgloss.Left,
		t.RenderLayout(root.First, width, firstH, tile),
		t.RenderLayout(root.Second, width, height-firstH, tile),
	)
}
