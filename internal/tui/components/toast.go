package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Toaster shows one transient notification at a time. Each Show returns a
// sequence number so a delayed expiry only dismisses the toast it was
// scheduled for.
type Toaster struct {
	current *domain.Toast
	seq     int
}

// Show replaces the visible toast and returns its sequence number
func (t *Toaster) Show(toast domain.Toast) int {
	t.seq++
	t.current = &toast
	return t.seq
}

// Expire dismisses the toast if seq is still the visible one
func (t *Toaster) Expire(seq int) {
	if seq == t.seq {
		t.current = nil
	}
}

// Dismiss hides whatever is visible
func (t *Toaster) Dismiss() {
	t.current = nil
}

// Current returns the visible toast
func (t Toaster) Current() (domain.Toast, bool) {
	if t.current == nil {
		return domain.Toast{}, false
	}
	return *t.current, true
}

// View renders the toast right-aligned within width
func (t Toaster) View(width int) string {
	if t.current == nil {
		return ""
	}
	style := styles.ToastInfoStyle
	if t.current.Severity == domain.SeverityDestructive {
		style = styles.ToastDestructiveStyle
	}
	text := t.current.Title
	if t.current.Description != "" {
		text += ": " + t.current.Description
	}
	text = styles.Truncate(text, max(width-4, 10))
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, style.Render(text))
}
