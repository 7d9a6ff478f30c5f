package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Layout constants for grid cards
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Padding inside the border (Padding(0,1) = 1 left + 1 right)
	HorizontalPadding = 2

	// CardWidth is the outer width of a card including border and padding
	CardWidth = 26

	// CardLines is the number of content lines inside a card
	CardLines = 3

	// CardHeight is the outer height of a card
	CardHeight = CardLines + BorderHeight

	// CardGap is the blank space between adjacent cards
	CardGap = 1
)

// Grid lays result cards out in rows. Items are keyed by movie ID; the
// cursor follows the selected ID across updates when it is still present.
type Grid struct {
	movies   []domain.Movie
	matches  map[string][]int // highlight positions by movie ID while filtering
	filtered []domain.Movie
	filter   string

	cursor  int
	columns int
	width   int
	focused bool
}

// NewGrid creates an empty grid
func NewGrid() Grid {
	return Grid{columns: 1}
}

// SetMovies replaces the grid content. Any filter is re-applied to the new
// items.
func (g *Grid) SetMovies(movies []domain.Movie) {
	selected, hadSelection := g.Selected()
	g.movies = movies
	g.applyFilter()

	g.cursor = 0
	if hadSelection {
		if idx := slices.IndexFunc(g.items(), func(m domain.Movie) bool { return m.ID == selected.ID }); idx >= 0 {
			g.cursor = idx
		}
	}
}

// Movies returns the unfiltered content
func (g Grid) Movies() []domain.Movie {
	return g.movies
}

// SetFilter narrows the grid to titles fuzzily matching query. An empty
// query shows everything.
func (g *Grid) SetFilter(query string) {
	g.filter = strings.TrimSpace(query)
	g.applyFilter()
	g.cursor = 0
}

// ClearFilter shows all items again
func (g *Grid) ClearFilter() {
	g.SetFilter("")
}

// Filter returns the active filter query
func (g Grid) Filter() string {
	return g.filter
}

func (g *Grid) applyFilter() {
	if g.filter == "" {
		g.filtered = nil
		g.matches = nil
		return
	}
	results := service.FilterResults(g.filter, g.movies)
	g.filtered = make([]domain.Movie, len(results))
	g.matches = make(map[string][]int, len(results))
	for i, r := range results {
		g.filtered[i] = r.Movie
		g.matches[r.Movie.ID] = r.MatchedIndexes
	}
}

// items returns what is currently displayed
func (g Grid) items() []domain.Movie {
	if g.filter != "" {
		return g.filtered
	}
	return g.movies
}

// Len returns the number of displayed items
func (g Grid) Len() int {
	return len(g.items())
}

// SetWidth recalculates the column count
func (g *Grid) SetWidth(width int) {
	g.width = width
	g.columns = max(1, (width+CardGap)/(CardWidth+CardGap))
}

// Columns returns the number of cards per row
func (g Grid) Columns() int {
	return g.columns
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// IsFocused returns the focus state
func (g Grid) IsFocused() bool {
	return g.focused
}

// Cursor returns the current cursor position
func (g Grid) Cursor() int {
	return g.cursor
}

// CursorRow returns the row the cursor is on
func (g Grid) CursorRow() int {
	return g.cursor / g.columns
}

// Selected returns the movie under the cursor
func (g Grid) Selected() (domain.Movie, bool) {
	items := g.items()
	if len(items) == 0 || g.cursor >= len(items) {
		return domain.Movie{}, false
	}
	return items[g.cursor], true
}

// SetCursor moves the cursor, clamped to the displayed items
func (g *Grid) SetCursor(pos int) {
	n := g.Len()
	if n == 0 {
		g.cursor = 0
		return
	}
	g.cursor = min(max(pos, 0), n-1)
}

// MoveLeft moves the cursor one card left
func (g *Grid) MoveLeft() { g.SetCursor(g.cursor - 1) }

// MoveRight moves the cursor one card right
func (g *Grid) MoveRight() { g.SetCursor(g.cursor + 1) }

// MoveUp moves the cursor one row up
func (g *Grid) MoveUp() {
	if g.cursor-g.columns >= 0 {
		g.cursor -= g.columns
	}
}

// MoveDown moves the cursor one row down
func (g *Grid) MoveDown() {
	if g.cursor+g.columns < g.Len() {
		g.cursor += g.columns
	}
}

// Home jumps to the first card
func (g *Grid) Home() { g.SetCursor(0) }

// End jumps to the last card
func (g *Grid) End() { g.SetCursor(g.Len() - 1) }

// View renders the grid
func (g Grid) View() string {
	items := g.items()
	if len(items) == 0 {
		if g.filter != "" {
			return styles.DimStyle.Render("No titles match the filter.")
		}
		return ""
	}

	cards := make([]string, len(items))
	for i, m := range items {
		cards[i] = g.renderCard(m, g.focused && i == g.cursor)
	}
	return joinRows(cards, g.columns)
}

func (g Grid) renderCard(m domain.Movie, selected bool) string {
	inner := CardWidth - BorderWidth - HorizontalPadding

	title := styles.Truncate(m.Title, inner)
	title = highlight(title, g.matches[m.ID], selected)

	meta := m.Type.Label()
	if m.Year != "" {
		meta = m.Year + " · " + meta
	}

	poster := styles.DimStyle.Render("no poster")
	if m.HasPoster() {
		poster = styles.SuccessStyle.Render("▣ poster")
	}

	body := strings.Join([]string{
		title,
		styles.SubtitleStyle.Render(styles.Truncate(meta, inner)),
		poster,
	}, "\n")

	style := styles.GridCellStyle
	if selected {
		style = styles.GridCellSelectedStyle
	}
	return style.Width(CardWidth - BorderWidth).Height(CardLines).Render(body)
}

// highlight renders title with the matched byte positions emphasised
func highlight(title string, positions []int, selected bool) string {
	base := styles.TitleStyle
	if !selected {
		base = lipgloss.NewStyle().Foreground(styles.Text)
	}
	if len(positions) == 0 {
		return base.Render(title)
	}

	match := styles.MatchHighlightStyle
	if selected {
		match = styles.MatchHighlightSelectedStyle
	}

	var b strings.Builder
	for i, r := range title {
		if slices.Contains(positions, i) {
			b.WriteString(match.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// RenderSkeletons renders n placeholder cards for the loading state
func RenderSkeletons(n, width int) string {
	columns := max(1, (width+CardGap)/(CardWidth+CardGap))
	inner := CardWidth - BorderWidth - HorizontalPadding

	cards := make([]string, n)
	for i := range cards {
		body := strings.Join([]string{
			strings.Repeat("░", inner),
			strings.Repeat("░", inner/2),
			strings.Repeat("░", inner/3),
		}, "\n")
		cards[i] = styles.SkeletonCellStyle.Width(CardWidth - BorderWidth).Height(CardLines).Render(body)
	}
	return joinRows(cards, columns)
}

// joinRows lays cards out left to right, columns per row
func joinRows(cards []string, columns int) string {
	gap := strings.Repeat(" ", CardGap)
	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		row := make([]string, 0, (end-start)*2)
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, gap)
			}
			row = append(row, cards[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
