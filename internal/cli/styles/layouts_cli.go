package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tessera/internal/domain/entity"
)

// LayoutsCLIRenderer renders non-interactive output for the layout
// subcommands.
type LayoutsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

// NewLayoutsCLIRenderer creates a renderer.
func NewLayoutsCLIRenderer(theme *Theme) *LayoutsCLIRenderer {
	return &LayoutsCLIRenderer{theme: theme, now: time.Now}
}

// RenderList renders stored layout summaries, one per line.
func (r *LayoutsCLIRenderer) RenderList(items []entity.LayoutSummary, current entity.WorkspaceID) string {
	if len(items) == 0 {
		return r.theme.Subtle.Render("No saved layouts found.")
	}

	var b strings.Builder
	b.WriteString(r.theme.Title.Render("Layouts"))
	b.WriteString("\n\n")
	for _, s := range items {
		marker := " "
		id := r.theme.Normal.Render(string(s.WorkspaceID))
		if s.WorkspaceID == current {
			marker = r.theme.Highlight.Render("●")
			id = r.theme.Highlight.Render(string(s.WorkspaceID))
		}
		fmt.Fprintf(&b, "%s %s  %s  %s\n",
			marker,
			id,
			r.theme.BadgeMuted.Render(plural(s.TileCount, "tile")),
			r.theme.Subtle.Render(r.relativeTime(s.UpdatedAt)),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderTree renders a stored layout as an indented tree.
func (r *LayoutsCLIRenderer) RenderTree(stored *entity.StoredLayout) string {
	if stored == nil || stored.State == nil {
		return r.theme.Subtle.Render("No saved layout.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		r.theme.Title.Render(string(stored.WorkspaceID)),
		r.theme.Subtle.Render("saved "+r.relativeTime(stored.UpdatedAt)),
	)
	r.writeNode(&b, stored.State, stored.State.Layout, "", true)
	return strings.TrimRight(b.String(), "\n")
}

func (r *LayoutsCLIRenderer) writeNode(b *strings.Builder, state *entity.SessionState, n *entity.LayoutNode, prefix string, last bool) {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}

	if n.IsSplit() {
		fmt.Fprintf(b, "%s%s%s %s\n", prefix, branch,
			r.theme.Normal.Render(string(n.Direction)),
			r.theme.Subtle.Render(fmt.Sprintf("%.2f  %s", n.Ratio, n.ID)),
		)
		r.writeNode(b, state, n.First, prefix+next, false)
		r.writeNode(b, state, n.Second, prefix+next, true)
		return
	}

	label := string(n.TileID)
	if rec, ok := state.Record(n.TileID); ok {
		label = rec.URL
		if rec.Title != "" {
			label = rec.Title + "  " + r.theme.Subtle.Render(rec.URL)
		}
		if rec.IsMuted {
			label += "  " + r.theme.Subtle.Render("muted")
		}
	}
	style := r.theme.Normal
	if n.TileID == state.FocusedTileID {
		style = r.theme.Highlight
	}
	fmt.Fprintf(b, "%s%s%s %s\n", prefix, branch, style.Render(string(n.TileID)), label)
}

func (r *LayoutsCLIRenderer) relativeTime(t time.Time) string {
	diff := r.now().Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
