package components

import (
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Carousel features a handful of titles, one at a time
type Carousel struct {
	movies []domain.Movie
	index  int
	badge  string
	width  int
}

// NewCarousel creates an empty carousel
func NewCarousel() Carousel {
	return Carousel{}
}

// SetMovies replaces the featured titles, keeping the current slide when
// it still exists
func (c *Carousel) SetMovies(movies []domain.Movie, badge string) {
	c.movies = movies
	c.badge = badge
	if c.index >= len(movies) {
		c.index = 0
	}
}

// SetWidth updates the component width
func (c *Carousel) SetWidth(width int) {
	c.width = width
}

// Len returns the number of slides
func (c Carousel) Len() int {
	return len(c.movies)
}

// Index returns the current slide
func (c Carousel) Index() int {
	return c.index
}

// Current returns the featured movie
func (c Carousel) Current() (domain.Movie, bool) {
	if len(c.movies) == 0 {
		return domain.Movie{}, false
	}
	return c.movies[c.index], true
}

// Next advances to the next slide, wrapping around
func (c *Carousel) Next() {
	if len(c.movies) > 0 {
		c.index = (c.index + 1) % len(c.movies)
	}
}

// Prev goes back one slide, wrapping around
func (c *Carousel) Prev() {
	if len(c.movies) > 0 {
		c.index = (c.index - 1 + len(c.movies)) % len(c.movies)
	}
}

// View renders the featured slide with its position dots
func (c Carousel) View() string {
	m, ok := c.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	if c.badge != "" {
		b.WriteString(styles.BadgeStyle.Render(c.badge))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.TitleStyle.Render(m.Title))
	b.WriteString("\n")
	meta := m.Type.Label()
	if m.Year != "" {
		meta = m.Year + " · " + meta
	}
	b.WriteString(styles.SubtitleStyle.Render(meta))
	b.WriteString("\n\n")

	dots := make([]string, len(c.movies))
	for i := range c.movies {
		if i == c.index {
			dots[i] = styles.AccentStyle.Render("●")
		} else {
			dots[i] = styles.DimStyle.Render("○")
		}
	}
	b.WriteString(strings.Join(dots, " "))
	b.WriteString("  ")
	b.WriteString(styles.DimStyle.Render("[ / ] to browse"))

	width := max(c.width-BorderWidth, 20)
	return styles.InspectorStyle.Width(width).Render(b.String())
}
