package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newSearchCmd(configPath *string) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles and print one page of results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			query := strings.Join(args, " ")
			if len([]rune(strings.TrimSpace(query))) < service.MinQueryLength {
				return fmt.Errorf("query must be at least %d characters", service.MinQueryLength)
			}

			ctrl := a.newController(domain.NoOpNotifier{})
			if err := ctrl.TriggerSearch(cmd.Context(), query, page); err != nil {
				return errors.New(domain.UserMessage(err))
			}

			s := ctrl.Snapshot().Search
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.TitleStyle.Render(fmt.Sprintf("Search Results for %q", s.Query)))
			fmt.Fprintln(out, styles.DimStyle.Render(fmt.Sprintf("Page %d of %d · %d total results", s.Page, s.TotalPages(), s.TotalResults)))
			fmt.Fprintln(out)
			printMovies(out, s.Results)
			if s.HasMorePages {
				fmt.Fprintln(out)
				fmt.Fprintln(out, styles.DimStyle.Render(fmt.Sprintf("More results: marquee search --page %d %s", s.Page+1, query)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "result page")
	return cmd
}

func newLatestCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print this year's releases for a random popular subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			ctrl := a.newController(domain.NoOpNotifier{})
			if err := ctrl.FetchLatestListing(cmd.Context()); err != nil {
				return errors.New(domain.UserMessage(err))
			}

			l := ctrl.Snapshot().Latest
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.TitleStyle.Render("Latest Movies")+"  "+styles.BadgeStyle.Render("Recently Released"))
			fmt.Fprintln(out, styles.DimStyle.Render(fmt.Sprintf("%q in %d", l.Subject, l.Year)))
			fmt.Fprintln(out)
			printMovies(out, l.Results)
			return nil
		},
	}
}

func newDetailCmd(configPath *string) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "detail <imdb-id>",
		Short: "Print the full record for a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			details := service.NewDetailService(a.client, a.logger)
			d, err := details.Lookup(cmd.Context(), args[0])
			if err != nil {
				return errors.New(domain.UserMessage(err))
			}

			md := components.DetailMarkdown(*d)
			out := cmd.OutOrStdout()
			if raw || !term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Fprint(out, md)
				return nil
			}
			return renderMarkdown(out, md, a.cfg.UI.Theme)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal styling")
	return cmd
}

// printMovies prints one aligned line per title
func printMovies(out io.Writer, movies []domain.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(out, styles.DimStyle.Render("No movies found"))
		return
	}

	titleWidth := 0
	for _, m := range movies {
		titleWidth = max(titleWidth, lipgloss.Width(m.Title))
	}
	titleWidth = min(titleWidth, 48)

	for _, m := range movies {
		fmt.Fprintf(out, "%s  %s  %s  %s\n",
			styles.AccentStyle.Render(styles.Pad(m.ID, 10)),
			styles.Pad(styles.Truncate(m.Title, titleWidth), titleWidth),
			styles.SubtitleStyle.Render(styles.Pad(m.Year, 9)),
			styles.DimStyle.Render(m.Type.Label()),
		)
	}
}

func renderMarkdown(out io.Writer, md, theme string) error {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = min(w, 100)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.PaletteFor(theme).Name),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	rendered, err := r.Render(md)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}
