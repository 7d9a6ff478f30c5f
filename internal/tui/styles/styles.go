package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by Apply.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Palette is the set of colors a theme is built from
type Palette struct {
	Name    string
	Accent  lipgloss.Color
	Surface lipgloss.Color
	Raised  lipgloss.Color
	Dim     lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Info    lipgloss.Color
}

// Color palettes
var (
	DarkPalette = Palette{
		Name:    ThemeDark,
		Accent:  lipgloss.Color("#E5A00D"),
		Surface: lipgloss.Color("#1F2937"),
		Raised:  lipgloss.Color("#374151"),
		Dim:     lipgloss.Color("#6B7280"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Text:    lipgloss.Color("#F9FAFB"),
		Success: lipgloss.Color("#10B981"),
		Danger:  lipgloss.Color("#EF4444"),
		Info:    lipgloss.Color("#3B82F6"),
	}

	LightPalette = Palette{
		Name:    ThemeLight,
		Accent:  lipgloss.Color("#B45309"),
		Surface: lipgloss.Color("#F3F4F6"),
		Raised:  lipgloss.Color("#E5E7EB"),
		Dim:     lipgloss.Color("#9CA3AF"),
		Muted:   lipgloss.Color("#4B5563"),
		Text:    lipgloss.Color("#111827"),
		Success: lipgloss.Color("#047857"),
		Danger:  lipgloss.Color("#B91C1C"),
		Info:    lipgloss.Color("#1D4ED8"),
	}
)

// Active palette colors. Reassigned by Apply.
var (
	Accent  lipgloss.Color
	Surface lipgloss.Color
	Raised  lipgloss.Color
	Dim     lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Info    lipgloss.Color
)

// Text styles
var (
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DimStyle       lipgloss.Style
	AccentStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	HighlightStyle lipgloss.Style
)

// Header styles
var (
	HeaderStyle        lipgloss.Style
	CompactHeaderStyle lipgloss.Style
	TaglineStyle       lipgloss.Style
)

// Badge styles
var (
	BadgeStyle    lipgloss.Style
	DimBadgeStyle lipgloss.Style
)

// Grid cell styles
var (
	GridCellStyle         lipgloss.Style
	GridCellSelectedStyle lipgloss.Style
	SkeletonCellStyle     lipgloss.Style
)

// Panel styles
var (
	PanelStyle     lipgloss.Style
	InspectorStyle lipgloss.Style
	ErrorPanel     lipgloss.Style
)

// Input styles
var (
	PromptStyle      lipgloss.Style
	InputTextStyle   lipgloss.Style
	PlaceholderStyle lipgloss.Style
	FilterStyle      lipgloss.Style
)

// Match highlight styles for filtered results
var (
	MatchHighlightStyle         lipgloss.Style
	MatchHighlightSelectedStyle lipgloss.Style
)

// Toast styles
var (
	ToastInfoStyle        lipgloss.Style
	ToastDestructiveStyle lipgloss.Style
)

// Help styles
var (
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	SpinnerStyle  lipgloss.Style
)

var current = DarkPalette

func init() {
	Apply(ThemeDark)
}

// Current returns the active palette
func Current() Palette {
	return current
}

// PaletteFor returns the palette for a theme name, dark for anything unknown
func PaletteFor(name string) Palette {
	if strings.EqualFold(strings.TrimSpace(name), ThemeLight) {
		return LightPalette
	}
	return DarkPalette
}

// Toggle swaps between the light and dark palettes and returns the new theme name
func Toggle() string {
	if current.Name == ThemeDark {
		Apply(ThemeLight)
	} else {
		Apply(ThemeDark)
	}
	return current.Name
}

// Apply rebuilds every style from the named palette. Must be called from the
// update loop only; the styles are package state.
func Apply(name string) {
	p := PaletteFor(name)
	current = p

	Accent, Surface, Raised = p.Accent, p.Surface, p.Raised
	Dim, Muted, Text = p.Dim, p.Muted, p.Text
	Success, Danger, Info = p.Success, p.Danger, p.Info

	TitleStyle = lipgloss.NewStyle().Foreground(Text).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(Muted)
	DimStyle = lipgloss.NewStyle().Foreground(Dim)
	AccentStyle = lipgloss.NewStyle().Foreground(Accent)
	ErrorStyle = lipgloss.NewStyle().Foreground(Danger)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	HighlightStyle = lipgloss.NewStyle().
		Foreground(Surface).
		Background(Accent).
		Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Dim)
	CompactHeaderStyle = lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Accent)
	TaglineStyle = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(Surface).
		Background(Accent).
		Padding(0, 1)
	DimBadgeStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Background(Raised).
		Padding(0, 1)

	GridCellStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Dim).
		Padding(0, 1)
	GridCellSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 1)
	SkeletonCellStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Raised).
		Foreground(Raised).
		Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().Padding(1, 2)
	InspectorStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 1)
	ErrorPanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Danger).
		Foreground(Danger).
		Padding(1, 2)

	PromptStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	InputTextStyle = lipgloss.NewStyle().Foreground(Text)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(Dim)
	FilterStyle = lipgloss.NewStyle().Foreground(Accent)

	MatchHighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	MatchHighlightSelectedStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Background(Raised).
		Bold(true)

	ToastInfoStyle = lipgloss.NewStyle().
		Foreground(Text).
		Background(Info).
		Padding(0, 1)
	ToastDestructiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Danger).
		Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().Foreground(Accent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(Dim)
	SpinnerStyle = lipgloss.NewStyle().Foreground(Accent)
}

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		if width > len(runes) {
			return s
		}
		return string(runes[:width])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Pad pads a string to the given display width
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
