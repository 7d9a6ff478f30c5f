package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Inspector displays the full metadata record of one title, rendered as
// markdown
type Inspector struct {
	movie    domain.Movie
	detail   *domain.MovieDetail
	loading  bool
	err      string
	width    int
	open     bool
	rendered string
}

// NewInspector creates a closed inspector
func NewInspector() Inspector {
	return Inspector{}
}

// Open shows the inspector for m while its detail loads
func (i *Inspector) Open(m domain.Movie) {
	i.movie = m
	i.detail = nil
	i.err = ""
	i.loading = true
	i.open = true
	i.rendered = ""
}

// Close hides the inspector
func (i *Inspector) Close() {
	i.open = false
	i.detail = nil
	i.rendered = ""
}

// IsOpen reports whether the inspector is visible
func (i Inspector) IsOpen() bool {
	return i.open
}

// MovieID returns the ID of the inspected title
func (i Inspector) MovieID() string {
	return i.movie.ID
}

// SetDetail shows a loaded record. Ignored when it is for another title.
func (i *Inspector) SetDetail(d *domain.MovieDetail) {
	if d == nil || d.ID != i.movie.ID {
		return
	}
	i.detail = d
	i.loading = false
	i.err = ""
	i.render()
}

// SetError shows a lookup failure for id
func (i *Inspector) SetError(id, msg string) {
	if id != i.movie.ID {
		return
	}
	i.loading = false
	i.err = msg
}

// SetWidth updates the wrap width
func (i *Inspector) SetWidth(width int) {
	if width == i.width {
		return
	}
	i.width = width
	i.render()
}

// ApplyTheme re-renders with the active palette
func (i *Inspector) ApplyTheme() {
	i.render()
}

func (i *Inspector) render() {
	if i.detail == nil {
		i.rendered = ""
		return
	}
	md := DetailMarkdown(*i.detail)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.Current().Name),
		glamour.WithWordWrap(max(i.width-4, 20)),
	)
	if err != nil {
		i.rendered = md
		return
	}
	out, err := r.Render(md)
	if err != nil {
		i.rendered = md
		return
	}
	i.rendered = strings.TrimRight(out, "\n")
}

// View renders the component
func (i Inspector) View() string {
	if !i.open {
		return ""
	}

	var body string
	switch {
	case i.loading:
		body = styles.TitleStyle.Render(i.movie.DisplayTitle()) + "\n\n" +
			styles.DimStyle.Render("Loading details...")
	case i.err != "":
		body = styles.TitleStyle.Render(i.movie.DisplayTitle()) + "\n\n" +
			styles.ErrorStyle.Render(i.err)
	default:
		body = i.rendered
	}
	body += "\n\n" + styles.DimStyle.Render("esc to close")
	return styles.InspectorStyle.Width(max(i.width-BorderWidth, 20)).Render(body)
}

// DetailMarkdown formats a detail record as markdown. Empty fields are
// left out.
func DetailMarkdown(d domain.MovieDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.DisplayTitle())

	var facts []string
	for _, f := range []string{d.Rated, d.Runtime, d.Type.Label()} {
		if f != "" {
			facts = append(facts, f)
		}
	}
	if genres := d.Genres(); len(genres) > 0 {
		facts = append(facts, strings.Join(genres, ", "))
	}
	fmt.Fprintf(&b, "*%s*\n\n", strings.Join(facts, " · "))

	if d.Plot != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Plot)
	}

	fields := []struct{ label, value string }{
		{"Released", d.Released},
		{"Director", d.Director},
		{"Writer", d.Writer},
		{"Cast", d.Actors},
		{"Language", d.Language},
		{"Country", d.Country},
		{"Awards", d.Awards},
		{"Box office", d.BoxOffice},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(&b, "- **%s:** %s\n", f.label, f.value)
		}
	}

	var ratings []string
	if d.IMDbRating != "" {
		r := "IMDb " + d.IMDbRating
		if d.IMDbVotes != "" {
			r += " (" + d.IMDbVotes + " votes)"
		}
		ratings = append(ratings, r)
	}
	for _, r := range d.Ratings {
		if r.Source == "Internet Movie Database" {
			continue
		}
		ratings = append(ratings, r.Source+" "+r.Value)
	}
	if d.Metascore != "" {
		ratings = append(ratings, "Metascore "+d.Metascore)
	}
	if len(ratings) > 0 {
		b.WriteString("\n## Ratings\n\n")
		for _, r := range ratings {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	return b.String()
}
