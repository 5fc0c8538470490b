package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/redlog-dev/redlog/core"
	"github.com/redlog-dev/redlog/theme"
)

func testEntry() *core.Entry {
	return &core.Entry{
		Time:    time.Date(2026, 8, 29, 13, 5, 7, 0, time.UTC),
		Level:   core.ErrorLevel,
		Name:    "app.db",
		Message: "conn failed",
		Fields:  []core.Field{core.Int("retry", 3)},
	}
}

func TestTextFormatter_ColumnOrder(t *testing.T) {
	f := NewTextFormatter(Config{})

	out, err := f.Format(testEntry(), theme.Plain())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	line := string(out)
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("Line missing terminator: %q", line)
	}

	// Fixed column order: timestamp, badge, name, message, fields.
	positions := []string{"13:05:07", "[err]", "[app.db]", "conn failed", "retry=3"}
	last := -1
	for _, part := range positions {
		idx := strings.Index(line, part)
		if idx < 0 {
			t.Fatalf("Expected %q in output, got: %q", part, line)
		}
		if idx <= last {
			t.Errorf("%q out of order in: %q", part, line)
		}
		last = idx
	}
}

func TestTextFormatter_PlainNeverEscapes(t *testing.T) {
	f := NewTextFormatter(Config{})

	out, err := f.Format(testEntry(), theme.Plain())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(string(out), "\x1b") {
		t.Errorf("Plain theme emitted escape sequences: %q", out)
	}
}

func TestTextFormatter_ColorizedEscapes(t *testing.T) {
	f := NewTextFormatter(Config{})

	out, err := f.Format(testEntry(), theme.Colorized())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	line := string(out)
	if !strings.Contains(line, theme.Red.Escape()+"[err]"+theme.Reset) {
		t.Errorf("Error badge not colorized red: %q", line)
	}
	if !strings.Contains(line, theme.Cyan.Escape()+"[app.db]"+theme.Reset) {
		t.Errorf("Name not colorized cyan: %q", line)
	}
}

func TestTextFormatter_ValueRendering(t *testing.T) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Name:    "app",
		Message: "values",
		Fields: []core.Field{
			core.String("plain", "abc"),
			core.String("spaced", "a b"),
			core.Bool("ok", true),
			core.Float64("n", 3.14),
			core.Null("gone"),
		},
	}

	out, err := f.Format(entry, theme.Plain())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	line := string(out)
	for _, want := range []string{`plain=abc`, `spaced="a b"`, `ok=true`, `n=3.14`, `gone=null`} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in output, got: %q", want, line)
		}
	}
	if strings.Contains(line, "3.14e") || strings.Contains(line, "3.14E") {
		t.Errorf("Float rendered in scientific notation: %q", line)
	}
}

func TestTextFormatter_Shadowing(t *testing.T) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Name:    "app",
		Message: "shadow",
		Fields: []core.Field{
			core.String("host", "a"),
			core.String("host", "b"),
		},
	}

	out, err := f.Format(entry, theme.Plain())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	line := string(out)
	if strings.Count(line, "host=") != 1 {
		t.Errorf("Expected exactly one host field, got: %q", line)
	}
	if !strings.Contains(line, "host=b") {
		t.Errorf("Expected last-write-wins host=b, got: %q", line)
	}
}

func TestTextFormatter_EmptyName(t *testing.T) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "anonymous",
	}

	out, err := f.Format(entry, theme.Plain())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), "anonymous") {
		t.Errorf("Expected message in output, got: %q", out)
	}
}

func TestTextFormatter_CustomTimestampFormat(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: "2006-01-02"})

	out, err := f.Format(testEntry(), theme.Plain())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "2026-08-29 ") {
		t.Errorf("Expected date prefix, got: %q", out)
	}
}
