package logger

import (
	"errors"
	"strings"
	"testing"

	"github.com/redlog-dev/redlog/core"
	"github.com/redlog-dev/redlog/formatter"
	"github.com/redlog-dev/redlog/sink"
	"github.com/redlog-dev/redlog/theme"
)

// newTestLogger builds a logger with an isolated registry and a buffer
// sink so tests do not touch process-wide state.
func newTestLogger(name string) (*Logger, *Registry, *sink.BufferSink) {
	reg := &Registry{}
	reg.SetLevel(InfoLevel)
	reg.SetTheme(theme.Plain())

	buf := sink.NewBufferSink()
	log := NewBuilder(name).
		WithRegistry(reg).
		WithSink(buf).
		Build()
	return log, reg, buf
}

func TestLogger_LevelGate(t *testing.T) {
	log, _, buf := newTestLogger("app")

	if err := log.Debug("debug message"); err != nil {
		t.Fatalf("Debug() error = %v", err)
	}
	if buf.Count() != 0 {
		t.Error("Debug message was logged when level is Info")
	}

	if err := log.Info("info message"); err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if buf.Count() != 1 {
		t.Fatalf("Expected exactly one write, got %d", buf.Count())
	}
	if !strings.Contains(buf.String(), "info message") {
		t.Errorf("Expected 'info message' in output, got: %s", buf.String())
	}
}

func TestLogger_LevelChangeIsImmediate(t *testing.T) {
	log, reg, buf := newTestLogger("app")

	reg.SetLevel(CriticalLevel)
	_ = log.Error("suppressed")
	if buf.Count() != 0 {
		t.Error("Error logged while minimum is Critical")
	}

	reg.SetLevel(DebugLevel)
	_ = log.Debug("now visible")
	if buf.Count() != 1 {
		t.Error("Debug suppressed after lowering the minimum")
	}
}

func TestLogger_WithName(t *testing.T) {
	log, _, buf := newTestLogger("app")
	db := log.WithName("db")

	if db.Name() != "app.db" {
		t.Errorf("Name() = %q, want %q", db.Name(), "app.db")
	}
	if got := db.NamePath(); len(got) != 2 || got[0] != "app" || got[1] != "db" {
		t.Errorf("NamePath() = %v", got)
	}
	// The parent is untouched.
	if log.Name() != "app" || len(log.NamePath()) != 1 {
		t.Errorf("Parent mutated: name=%q path=%v", log.Name(), log.NamePath())
	}

	_ = db.Info("hello")
	if !strings.Contains(buf.String(), "[app.db]") {
		t.Errorf("Expected '[app.db]' in output, got: %s", buf.String())
	}
}

func TestLogger_WithFieldImmutability(t *testing.T) {
	log, _, buf := newTestLogger("app")
	child := log.WithField("request_id", "r-1")

	_ = log.Info("parent emit")
	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("Parent emission carries the child's field: %s", buf.String())
	}

	buf.Reset()
	_ = child.Info("child emit")
	if !strings.Contains(buf.String(), "request_id=r-1") {
		t.Errorf("Child emission missing its field: %s", buf.String())
	}
	if len(log.Fields()) != 0 {
		t.Error("Parent field set grew")
	}
}

func TestLogger_DerivationChainsShareNothing(t *testing.T) {
	log, _, _ := newTestLogger("app")

	a := log.WithField("k", "a")
	b := a.WithField("k2", "b")

	if len(a.Fields()) != 1 {
		t.Errorf("First derivation sees %d fields, want 1", len(a.Fields()))
	}
	if len(b.Fields()) != 2 {
		t.Errorf("Second derivation sees %d fields, want 2", len(b.Fields()))
	}

	// Deriving two children from the same parent must not alias.
	c := a.WithField("c", 1)
	d := a.WithField("d", 2)
	if c.Fields()[1].Key != "c" || d.Fields()[1].Key != "d" {
		t.Error("Sibling derivations share a backing array")
	}
}

func TestLogger_CallSiteFieldsShadow(t *testing.T) {
	log, _, buf := newTestLogger("app")
	scoped := log.WithField("host", "a")

	_ = scoped.Info("request", String("host", "b"))

	line := buf.String()
	if strings.Count(line, "host=") != 1 {
		t.Errorf("Expected exactly one host field, got: %s", line)
	}
	if !strings.Contains(line, "host=b") {
		t.Errorf("Call-site field did not shadow accumulated one: %s", line)
	}
}

func TestLogger_Scenario(t *testing.T) {
	log, _, buf := newTestLogger("app")

	err := log.WithName("db").WithField("retry", 3).Error("conn failed")
	if err != nil {
		t.Fatalf("Error() error = %v", err)
	}

	if buf.Count() != 1 {
		t.Fatalf("Expected exactly one write, got %d", buf.Count())
	}
	line := buf.String()
	for _, want := range []string{"err", "app.db", "conn failed", "retry=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in output, got: %s", want, line)
		}
	}
}

func TestLogger_CriticalMinimumSuppressesInfo(t *testing.T) {
	log, reg, buf := newTestLogger("app")
	reg.SetLevel(CriticalLevel)

	_ = log.WithName("db").WithField("retry", 3).Info("ignored")
	if buf.Count() != 0 {
		t.Errorf("Expected zero writes, got %d", buf.Count())
	}
}

func TestLogger_ShortAliases(t *testing.T) {
	log, reg, buf := newTestLogger("app")
	reg.SetLevel(DebugLevel)

	_ = log.Crt("c")
	_ = log.Err("e")
	_ = log.Warn("w")
	_ = log.Inf("i")
	_ = log.Dbg("d")

	lines := buf.Lines()
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	badges := []string{"[crt]", "[err]", "[wrn]", "[inf]", "[dbg]"}
	for i, badge := range badges {
		if !strings.Contains(lines[i], badge) {
			t.Errorf("Line %d missing badge %q: %s", i, badge, lines[i])
		}
	}
}

func TestLogger_Formatf(t *testing.T) {
	log, _, buf := newTestLogger("app")

	if err := log.Infof("user %s has %d points", "alice", 42); err != nil {
		t.Fatalf("Infof() error = %v", err)
	}
	if !strings.Contains(buf.String(), "user alice has 42 points") {
		t.Errorf("Formatted message missing: %s", buf.String())
	}
}

func TestLogger_FormatfFilteredDoesNotFormat(t *testing.T) {
	log, _, buf := newTestLogger("app")

	// A mismatch below the minimum level must not even be detected,
	// because filtering short-circuits before formatting.
	if err := log.Debugf("broken %d", "not a number"); err != nil {
		t.Errorf("Filtered Debugf() error = %v", err)
	}
	if buf.Count() != 0 {
		t.Error("Filtered Debugf produced output")
	}
}

func TestLogger_FormatMismatch(t *testing.T) {
	log, _, buf := newTestLogger("app")

	err := log.Errorf("count %d", "oops")
	if !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("Expected ErrFormatMismatch, got %v", err)
	}
	// The line is still written, with fmt's inline diagnostics.
	if buf.Count() != 1 || !strings.Contains(buf.String(), "%!") {
		t.Errorf("Mismatch line missing: %s", buf.String())
	}
}

func TestLogger_FormatMismatchLenient(t *testing.T) {
	reg := &Registry{}
	reg.SetLevel(InfoLevel)
	reg.SetTheme(theme.Plain())
	buf := sink.NewBufferSink()

	log := NewBuilder("app").
		WithRegistry(reg).
		WithSink(buf).
		WithLenientFormat().
		Build()

	if err := log.Errorf("count %d", "oops"); err != nil {
		t.Errorf("Lenient Errorf() error = %v", err)
	}
	if buf.Count() != 1 || !strings.Contains(buf.String(), "%!") {
		t.Errorf("Degraded line missing inline marker: %s", buf.String())
	}
}

func TestLogger_InvalidFieldSurfacesAtEmit(t *testing.T) {
	log, _, buf := newTestLogger("app")

	broken := log.WithField("payload", struct{ X int }{1})
	err := broken.Info("never rendered")
	if !errors.Is(err, core.ErrInvalidValue) {
		t.Fatalf("Expected ErrInvalidValue, got %v", err)
	}
	if buf.Count() != 0 {
		t.Error("Emission happened despite invalid field")
	}

	// The parent is unaffected.
	if err := log.Info("fine"); err != nil {
		t.Errorf("Parent emit error = %v", err)
	}
}

func TestLogger_SinkErrorPropagates(t *testing.T) {
	reg := &Registry{}
	reg.SetLevel(InfoLevel)
	reg.SetTheme(theme.Plain())

	broken := errors.New("pipe closed")
	log := NewBuilder("app").
		WithRegistry(reg).
		WithSink(failingSink{err: broken}).
		Build()

	if err := log.Info("hello"); !errors.Is(err, broken) {
		t.Errorf("Expected sink error, got %v", err)
	}
}

type failingSink struct{ err error }

func (f failingSink) Write([]byte) error { return f.err }
func (f failingSink) Close() error       { return f.err }

func TestLogger_BuilderFields(t *testing.T) {
	reg := &Registry{}
	reg.SetLevel(InfoLevel)
	reg.SetTheme(theme.Plain())
	buf := sink.NewBufferSink()

	log := NewBuilder("svc").
		WithRegistry(reg).
		WithSink(buf).
		WithFormatter(formatter.NewTextFormatter(formatter.Config{})).
		WithFields(String("version", "1.2.0")).
		Build()

	_ = log.Info("boot")
	if !strings.Contains(buf.String(), "version=1.2.0") {
		t.Errorf("Builder field missing: %s", buf.String())
	}
}

func TestGetLogger_EqualValued(t *testing.T) {
	a := GetLogger("svc")
	b := GetLogger("svc")
	if a == b {
		t.Error("GetLogger returned the same instance")
	}
	if a.Name() != b.Name() {
		t.Error("GetLogger returned different names for the same argument")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":    DebugLevel,
		"DBG":      DebugLevel,
		"info":     InfoLevel,
		"warn":     WarnLevel,
		"warning":  WarnLevel,
		"err":      ErrorLevel,
		"CRITICAL": CriticalLevel,
		"crt":      CriticalLevel,
		"bogus":    InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
