package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/debounce"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/scroll"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
	"github.com/mmcdole/marquee/internal/view"
)

// Focus is the component receiving keystrokes
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
	FocusFilter
)

// Options tune timing and layout of the model
type Options struct {
	Quiet            time.Duration // search input quiet period
	ScrollQuiet      time.Duration // scroll burst quiet period
	Thresholds       scroll.Thresholds
	RowHeight        int // px represented by one terminal row
	ToastDuration    time.Duration
	CarouselInterval time.Duration
	Theme            string
	Clock            debounce.Clock
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		Quiet:            debounce.DefaultQuiet,
		ScrollQuiet:      scroll.DefaultQuiet,
		Thresholds:       scroll.DefaultThresholds,
		RowHeight:        20,
		ToastDuration:    4 * time.Second,
		CarouselInterval: 6 * time.Second,
		Theme:            styles.ThemeDark,
		Clock:            debounce.SystemClock{},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Quiet <= 0 {
		o.Quiet = d.Quiet
	}
	if o.ScrollQuiet <= 0 {
		o.ScrollQuiet = d.ScrollQuiet
	}
	if o.Thresholds == (scroll.Thresholds{}) {
		o.Thresholds = d.Thresholds
	}
	if o.RowHeight <= 0 {
		o.RowHeight = d.RowHeight
	}
	if o.ToastDuration <= 0 {
		o.ToastDuration = d.ToastDuration
	}
	if o.CarouselInterval <= 0 {
		o.CarouselInterval = d.CarouselInterval
	}
	if o.Theme == "" {
		o.Theme = d.Theme
	}
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	return o
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready  bool
	Width  int
	Height int

	// Services
	ctrl    *service.Controller
	details *service.DetailService
	logger  *slog.Logger
	opts    Options

	// Event plumbing
	ctx         context.Context
	cancel      context.CancelFunc
	bridge      *Bridge
	input       *debounce.Input
	watcher     *scroll.Watcher
	unsubscribe func()

	// UI Components
	search    components.SearchBar
	filter    textinput.Model
	grid      components.Grid
	carousel  components.Carousel
	inspector components.Inspector
	toaster   components.Toaster
	spinner   spinner.Model
	viewport  viewport.Model
	help      help.Model

	// Derived state
	snapshot service.Snapshot
	header   scroll.State
	layout   view.Layout

	focus       Focus
	showHelp    bool
	gridTop     int // first body line of the grid
	savedOffset int // body offset to restore when the inspector closes
}

// NewModel creates the application model. bridge must be the notifier the
// controller was built with so toasts reach the status bar.
func NewModel(
	ctrl *service.Controller,
	details *service.DetailService,
	bridge *Bridge,
	opts Options,
	logger *slog.Logger,
) Model {
	opts = opts.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	styles.Apply(opts.Theme)

	ctx, cancel := context.WithCancel(context.Background())

	fi := textinput.New()
	fi.Placeholder = "filter results..."
	fi.Prompt = "/ "
	fi.CharLimit = 60

	m := Model{
		ctrl:      ctrl,
		details:   details,
		logger:    logger.With("component", "tui"),
		opts:      opts,
		ctx:       ctx,
		cancel:    cancel,
		bridge:    bridge,
		search:    components.NewSearchBar(),
		filter:    fi,
		grid:      components.NewGrid(),
		carousel:  components.NewCarousel(),
		inspector: components.NewInspector(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport:  viewport.New(0, 0),
		help:      help.New(),
	}
	m.input = debounce.NewInput(opts.Clock, opts.Quiet, func(s debounce.Settled) {
		bridge.Send(querySettledMsg{Settled: s})
	})
	m.watcher = scroll.NewWatcher(opts.Clock, opts.ScrollQuiet, opts.Thresholds, func(s scroll.State) {
		bridge.Send(headerChangedMsg{State: s})
	})
	m.unsubscribe = ctrl.Subscribe(bridge.Signal)

	m.applyTheme()
	m.snapshot = ctrl.Snapshot()
	m.refresh()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.bridge.Wait(),
		FetchLatestCmd(m.ctx, m.ctrl),
		m.spinner.Tick,
		CarouselTickCmd(m.opts.CarouselInterval),
		textinput.Blink,
	)
}

// Close stops every timer, cancels in-flight requests and releases the
// bridge. Safe to call more than once.
func (m Model) Close() {
	m.cancel()
	m.input.Close()
	m.watcher.Close()
	m.unsubscribe()
	m.bridge.Close()
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if _, ok := msg.(bridgedMsg); ok {
		cmds = append(cmds, m.bridge.Wait())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		before := m.viewport.YOffset
		m.viewport, cmd = m.viewport.Update(msg)
		if m.viewport.YOffset != before {
			m.observeScroll()
		}
		return m, cmd

	case stateChangedMsg:
		m.snapshot = m.ctrl.Snapshot()
		m.refresh()

	case querySettledMsg:
		if cmd := m.handleSettled(msg.Settled); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case headerChangedMsg:
		m.header = msg.State
		m.search.SetCompact(msg.State == scroll.Compact)
		m.updateLayout()
		m.refresh()

	case toastMsg:
		cmds = append(cmds, m.showToast(msg.Toast))

	case toastExpiredMsg:
		m.toaster.Expire(msg.Seq)

	case searchDoneMsg:
		if msg.Err != nil {
			m.logger.Debug("search returned", "query", msg.Query, "page", msg.Page, "error", msg.Err)
		}

	case latestLoadedMsg:
		if msg.Err != nil {
			m.logger.Debug("latest listing returned", "error", msg.Err)
		}

	case detailLoadedMsg:
		if msg.Err != nil {
			m.inspector.SetError(msg.ID, domain.UserMessage(msg.Err))
		} else {
			m.inspector.SetDetail(msg.Detail)
		}
		m.refresh()

	case carouselTickMsg:
		if len(m.layout.Carousel) > 1 && !m.inspector.IsOpen() {
			m.carousel.Next()
			m.refresh()
		}
		cmds = append(cmds, CarouselTickCmd(m.opts.CarouselInterval))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		// Cursor blink and other input internals
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
		m.filter, cmd = m.filter.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleSettled routes a debounced input value to the controller. Clearing
// is immediate; searches run as commands.
func (m *Model) handleSettled(s debounce.Settled) tea.Cmd {
	m.logger.Debug("query settled", "kind", s.Kind.String(), "value", s.Value)
	switch s.Kind {
	case debounce.Cleared:
		m.ctrl.ClearSearch()
		m.viewport.GotoTop()
		m.observeScroll()
		return nil
	case debounce.Query:
		return SearchCmd(m.ctx, m.ctrl, s.Value)
	default:
		return nil
	}
}

// changePage moves the active search by delta pages and scrolls the
// results back into view
func (m *Model) changePage(delta int) tea.Cmd {
	s := m.snapshot.Search
	if s == nil || s.Loading {
		return nil
	}
	if delta > 0 && !s.HasMorePages {
		return nil
	}
	target := s.Page + delta
	if target < 1 {
		return nil
	}

	m.grid.Home()
	m.viewport.GotoTop()
	m.observeScroll()
	return ChangePageCmd(m.ctx, m.ctrl, target)
}

func (m *Model) showToast(t domain.Toast) tea.Cmd {
	seq := m.toaster.Show(t)
	return ToastExpiryCmd(m.opts.ToastDuration, seq)
}

func (m *Model) toggleTheme() tea.Cmd {
	name := styles.Toggle()
	m.applyTheme()
	m.inspector.ApplyTheme()
	m.refresh()
	return m.showToast(domain.Toast{Title: "Theme", Description: name + " mode", Severity: domain.SeverityInfo})
}

// applyTheme restyles components that copy styles at construction
func (m *Model) applyTheme() {
	m.search.ApplyTheme()
	m.filter.PromptStyle = styles.PromptStyle
	m.filter.TextStyle = styles.FilterStyle
	m.filter.PlaceholderStyle = styles.PlaceholderStyle
	m.spinner.Style = styles.SpinnerStyle
	m.help.Styles.ShortKey = styles.HelpKeyStyle
	m.help.Styles.ShortDesc = styles.HelpDescStyle
	m.help.Styles.FullKey = styles.HelpKeyStyle
	m.help.Styles.FullDesc = styles.HelpDescStyle
}

func (m *Model) openInspector() tea.Cmd {
	movie, ok := m.grid.Selected()
	if !ok {
		return nil
	}
	m.savedOffset = m.viewport.YOffset
	m.inspector.Open(movie)

	var cmd tea.Cmd
	if d, ok := m.details.Cached(movie.ID); ok {
		m.inspector.SetDetail(d)
	} else {
		cmd = LookupDetailCmd(m.ctx, m.details, movie.ID)
	}
	m.refresh()
	m.viewport.GotoTop()
	return cmd
}

func (m *Model) closeInspector() {
	m.inspector.Close()
	m.refresh()
	m.viewport.SetYOffset(m.savedOffset)
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.grid.SetFocused(f != FocusSearch)

	var cmd tea.Cmd
	switch f {
	case FocusSearch:
		m.filter.Blur()
		cmd = m.search.Focus()
	case FocusFilter:
		m.search.Blur()
		cmd = m.filter.Focus()
	default:
		m.search.Blur()
		m.filter.Blur()
	}
	m.refresh()
	return cmd
}

// observeScroll reports the body offset to the header hysteresis
func (m *Model) observeScroll() {
	m.watcher.Observe(m.viewport.YOffset * m.opts.RowHeight)
}

// scrollBy moves the body by n lines
func (m *Model) scrollBy(n int) {
	m.viewport.SetYOffset(m.viewport.YOffset + n)
	m.observeScroll()
}

// ensureCursorVisible scrolls the body so the selected card is on screen
func (m *Model) ensureCursorVisible() {
	top := m.gridTop + m.grid.CursorRow()*components.CardHeight
	bottom := top + components.CardHeight

	offset := m.viewport.YOffset
	switch {
	case top < offset:
		offset = top
	case bottom > offset+m.viewport.Height:
		offset = bottom - m.viewport.Height
	default:
		return
	}
	m.viewport.SetYOffset(offset)
	m.observeScroll()
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, Keys.ToggleTheme):
		cmd := m.toggleTheme()
		return m, cmd

	case key.Matches(msg, Keys.NextPage):
		cmd := m.changePage(1)
		return m, cmd

	case key.Matches(msg, Keys.PrevPage):
		cmd := m.changePage(-1)
		return m, cmd

	case key.Matches(msg, Keys.Refresh):
		return m, FetchLatestCmd(m.ctx, m.ctrl)

	case key.Matches(msg, Keys.PageUp):
		m.scrollBy(-m.viewport.Height)
		return m, nil

	case key.Matches(msg, Keys.PageDown):
		m.scrollBy(m.viewport.Height)
		return m, nil
	}

	if m.inspector.IsOpen() {
		if key.Matches(msg, Keys.Escape) {
			m.closeInspector()
		}
		return m, nil
	}

	switch m.focus {
	case FocusFilter:
		return m.handleFilterKey(msg)
	case FocusResults:
		return m.handleResultsKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Focus), msg.Type == tea.KeyDown:
		if m.grid.Len() > 0 {
			cmd := m.setFocus(FocusResults)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.input.Push("")
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		m.input.Flush()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.input.Push(v)
	}
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		if m.grid.Filter() != "" {
			m.filter.SetValue("")
			m.grid.ClearFilter()
			m.refresh()
			return m, nil
		}
		cmd := m.setFocus(FocusSearch)
		return m, cmd

	case key.Matches(msg, Keys.Focus):
		cmd := m.setFocus(FocusSearch)
		return m, cmd

	case key.Matches(msg, Keys.Up):
		if m.grid.CursorRow() == 0 {
			cmd := m.setFocus(FocusSearch)
			return m, cmd
		}
		m.grid.MoveUp()
	case key.Matches(msg, Keys.Down):
		m.grid.MoveDown()
	case key.Matches(msg, Keys.Left):
		m.grid.MoveLeft()
	case key.Matches(msg, Keys.Right):
		m.grid.MoveRight()
	case key.Matches(msg, Keys.Home):
		m.grid.Home()
	case key.Matches(msg, Keys.End):
		m.grid.End()

	case key.Matches(msg, Keys.Enter):
		cmd := m.openInspector()
		return m, cmd

	case key.Matches(msg, Keys.Filter):
		cmd := m.setFocus(FocusFilter)
		return m, cmd

	case key.Matches(msg, Keys.NextSlide):
		m.carousel.Next()
	case key.Matches(msg, Keys.PrevSlide):
		m.carousel.Prev()

	case key.Matches(msg, Keys.Help):
		m.showHelp = !m.showHelp
		m.updateLayout()

	default:
		return m, nil
	}

	m.refresh()
	m.ensureCursorVisible()
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		m.filter.SetValue("")
		m.grid.ClearFilter()
		cmd := m.setFocus(FocusResults)
		return m, cmd

	case key.Matches(msg, Keys.Enter):
		cmd := m.setFocus(FocusResults)
		return m, cmd
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.grid.SetFilter(m.filter.Value())
	m.refresh()
	return m, cmd
}

// CurrentFocus returns the component receiving keystrokes
func (m Model) CurrentFocus() Focus {
	return m.focus
}

// Layout returns the composed layout of the last refresh
func (m Model) Layout() view.Layout {
	return m.layout
}
