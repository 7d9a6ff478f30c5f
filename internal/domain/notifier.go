package domain

// Severity controls how a toast is styled
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityDestructive
)

// Toast is a transient user-facing notification
type Toast struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier delivers toasts to whatever surface displays them
type Notifier interface {
	Notify(t Toast)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(Toast)

func (f NotifierFunc) Notify(t Toast) { f(t) }

// NoOpNotifier discards toasts (for non-interactive use and tests)
type NoOpNotifier struct{}

func (NoOpNotifier) Notify(Toast) {}
