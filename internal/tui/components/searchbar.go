package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

const (
	appTitle   = "Marquee"
	appTagline = "Find something to watch."
)

// SearchBar is the header: title, tagline and the search input. It has an
// expanded and a compact form.
type SearchBar struct {
	input   textinput.Model
	width   int
	compact bool
	loading bool
	spinner string
}

// NewSearchBar creates a search bar with the input focused
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search for movies..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "> "
	ti.Focus()

	s := SearchBar{input: ti}
	s.ApplyTheme()
	return s
}

// ApplyTheme restyles the input after a palette change
func (s *SearchBar) ApplyTheme() {
	s.input.PromptStyle = styles.PromptStyle
	s.input.TextStyle = styles.InputTextStyle
	s.input.PlaceholderStyle = styles.PlaceholderStyle
}

// SetWidth updates the component width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = max(width-12, 10)
}

// SetCompact switches between the expanded and compact header
func (s *SearchBar) SetCompact(compact bool) {
	s.compact = compact
}

// Compact reports whether the header is compact
func (s SearchBar) Compact() bool {
	return s.compact
}

// SetLoading shows spinnerView next to the input while a search runs
func (s *SearchBar) SetLoading(loading bool, spinnerView string) {
	s.loading = loading
	s.spinner = spinnerView
}

// Focus focuses the input
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur blurs the input
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the raw input text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the input text
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// Update routes messages to the input
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// Height returns the rendered height in lines
func (s SearchBar) Height() int {
	return lipgloss.Height(s.View())
}

// View renders the header
func (s SearchBar) View() string {
	field := s.input.View()
	if s.loading && s.spinner != "" {
		field += " " + s.spinner
	}

	if s.compact {
		title := styles.AccentStyle.Bold(true).Render(appTitle)
		line := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", field)
		return styles.CompactHeaderStyle.Width(s.width).Render(line)
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(styles.TaglineStyle.Render(appTagline))
	b.WriteString("\n\n")
	b.WriteString(field)
	return styles.HeaderStyle.Width(s.width).Render(b.String())
}
