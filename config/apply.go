package config

import (
	"os"

	"github.com/redlog-dev/redlog/formatter"
	"github.com/redlog-dev/redlog/logger"
	"github.com/redlog-dev/redlog/sink"
	"github.com/redlog-dev/redlog/theme"
)

// Apply validates cfg, configures the given registry's level and theme,
// and returns a root logger named name built per cfg's output and
// format. A nil registry means the process-wide one.
func Apply(cfg Config, reg *logger.Registry, name string) (*logger.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = logger.DefaultRegistry()
	}

	reg.SetLevel(logger.ParseLevel(cfg.Level))

	switch cfg.Theme {
	case "plain":
		reg.SetTheme(theme.Plain())
	case "colorized":
		reg.SetTheme(theme.Colorized())
	default:
		reg.SetTheme(theme.Default())
	}

	var out sink.Sink
	switch cfg.Output {
	case "stderr":
		out = sink.NewConsoleSink(os.Stderr)
	case "stdout":
		out = sink.NewConsoleSink(os.Stdout)
	default:
		out = sink.NewFileSink(cfg.Output)
	}

	var f formatter.Formatter
	fc := formatter.Config{TimestampFormat: cfg.TimestampFormat}
	if cfg.Format == "json" {
		f = formatter.NewJSONFormatter(fc)
	} else {
		f = formatter.NewTextFormatter(fc)
	}

	log := logger.NewBuilder(name).
		WithRegistry(reg).
		WithSink(out).
		WithFormatter(f).
		Build()
	return log, nil
}
