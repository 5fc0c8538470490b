package logger

import (
	"sync"

	"github.com/redlog-dev/redlog/core"
	"github.com/redlog-dev/redlog/theme"
)

// Registry holds the process-wide logging configuration: the minimum
// level and the active theme. Both may be changed at any time from any
// goroutine; loggers read them on every emission, so changes take
// effect immediately for loggers created before or after the call.
// Level and theme are two independent pieces of state, not one atomic
// record.
type Registry struct {
	mu    sync.RWMutex
	level core.Level
	theme theme.Theme
}

// NewRegistry creates a registry with the InfoLevel minimum and the
// theme chosen by the terminal color probe.
func NewRegistry() *Registry {
	return &Registry{
		level: core.InfoLevel,
		theme: theme.Default(),
	}
}

// SetLevel replaces the minimum level
func (r *Registry) SetLevel(l core.Level) {
	r.mu.Lock()
	r.level = l
	r.mu.Unlock()
}

// Level returns the current minimum level
func (r *Registry) Level() core.Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.level
}

// SetTheme replaces the active theme
func (r *Registry) SetTheme(t theme.Theme) {
	r.mu.Lock()
	r.theme = t
	r.mu.Unlock()
}

// Theme returns the active theme
func (r *Registry) Theme() theme.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

// defaultRegistry is the process-wide registry used by GetLogger. The
// color probe runs once here, when the package initializes.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// SetLevel sets the minimum level on the process-wide registry
func SetLevel(l core.Level) {
	defaultRegistry.SetLevel(l)
}

// GetLevel returns the minimum level of the process-wide registry
func GetLevel() core.Level {
	return defaultRegistry.Level()
}

// SetTheme sets the active theme on the process-wide registry
func SetTheme(t theme.Theme) {
	defaultRegistry.SetTheme(t)
}

// GetTheme returns the active theme of the process-wide registry
func GetTheme() theme.Theme {
	return defaultRegistry.Theme()
}
