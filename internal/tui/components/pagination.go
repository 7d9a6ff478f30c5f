package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
	"github.com/mmcdole/marquee/internal/view"
)

// RenderPagination renders the page controls. Disabled directions are dimmed.
func RenderPagination(p view.Pagination, width int) string {
	prev := styles.DimStyle.Render("‹ Previous")
	if p.HasPrev {
		prev = styles.AccentStyle.Render("‹ Previous") + styles.DimStyle.Render(" (ctrl+p)")
	}

	next := styles.DimStyle.Render("Next ›")
	if p.HasMore {
		next = styles.DimStyle.Render("(ctrl+n) ") + styles.AccentStyle.Render("Next ›")
	}

	label := fmt.Sprintf("Page %d", p.Current)
	if p.TotalPages > 0 {
		label = fmt.Sprintf("Page %d of %d", p.Current, p.TotalPages)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		prev, "   ", styles.TitleStyle.Render(label), "   ", next)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}
