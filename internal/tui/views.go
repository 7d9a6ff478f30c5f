package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
	"github.com/mmcdole/marquee/internal/view"
)

// refresh recomposes the layout from the latest snapshot and rebuilds the
// scrollable body
func (m *Model) refresh() {
	m.layout = view.Compose(view.Input{
		State:  m.snapshot,
		Header: m.header,
		Ready:  m.Ready,
	})

	m.grid.SetMovies(m.layout.Items)
	m.carousel.SetMovies(m.layout.Carousel, m.layout.Badge)
	if m.focus != FocusSearch && m.grid.Len() == 0 && m.grid.Filter() == "" {
		m.focus = FocusSearch
		m.grid.SetFocused(false)
		m.filter.Blur()
		m.search.Focus()
	}

	m.viewport.SetContent(m.renderBody())
}

// updateLayout recalculates component sizes for the window
func (m *Model) updateLayout() {
	m.search.SetWidth(m.Width)
	m.grid.SetWidth(m.Width)
	m.carousel.SetWidth(m.Width)
	m.inspector.SetWidth(m.Width)
	m.filter.Width = max(m.Width-6, 10)
	m.help.Width = m.Width
	m.help.ShowAll = m.showHelp

	headerHeight := m.search.Height()
	footerHeight := lipgloss.Height(m.renderFooter())
	m.viewport.Width = m.Width
	m.viewport.Height = max(m.Height-headerHeight-footerHeight, 1)
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	m.search.SetLoading(m.layout.Branch == view.BranchLoading, m.spinner.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.search.View(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// renderBody renders the scrollable area for the current branch
func (m *Model) renderBody() string {
	if m.inspector.IsOpen() {
		m.gridTop = 0
		return m.inspector.View()
	}

	l := m.layout
	width := m.Width

	heading := styles.TitleStyle.Render(l.Heading)
	if l.Badge != "" && len(l.Carousel) == 0 {
		heading += "  " + styles.DimBadgeStyle.Render(l.Badge)
	}

	switch l.Branch {
	case view.BranchLoading:
		return joinSections(heading, components.RenderSkeletons(l.Skeletons, width))

	case view.BranchError:
		panel := styles.ErrorPanel.Render(
			styles.ErrorStyle.Bold(true).Render(l.Error) + "\n\n" +
				styles.DimStyle.Render(l.ErrorHint))
		return joinSections(heading, panel)

	case view.BranchResults:
		sections := []string{heading}
		if len(l.Carousel) > 0 {
			sections = append(sections, m.carousel.View())
		}
		if l.Summary != "" {
			summary := styles.SubtitleStyle.Render(l.Summary)
			if l.TotalLine != "" {
				summary += "\n" + styles.DimStyle.Render(l.TotalLine)
			}
			sections = append(sections, summary)
		}
		if m.focus == FocusFilter || m.grid.Filter() != "" {
			sections = append(sections, m.filter.View())
		}

		prelude := joinSections(sections...)
		m.gridTop = lipgloss.Height(prelude) + 1

		sections = append(sections, m.grid.View())
		if l.ShowPagination {
			sections = append(sections, components.RenderPagination(l.Pagination, width))
		}
		return joinSections(sections...)

	default:
		return renderEmpty(l, width)
	}
}

// renderEmpty renders the welcome and no-matches states
func renderEmpty(l view.Layout, width int) string {
	lines := []string{styles.TitleStyle.Render(l.EmptyTitle)}
	if l.EmptyBody != "" {
		lines = append(lines, styles.SubtitleStyle.Render(l.EmptyBody))
	}
	if l.EmptyHint != "" {
		lines = append(lines, "", styles.DimStyle.Render(l.EmptyHint))
	}
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// renderFooter renders the toast line above the key help
func (m Model) renderFooter() string {
	return m.toaster.View(m.Width) + "\n" + m.help.View(Keys)
}

func joinSections(sections ...string) string {
	return strings.Join(sections, "\n\n")
}
