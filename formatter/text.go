package formatter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/redlog-dev/redlog/core"
	"github.com/redlog-dev/redlog/theme"
)

// TextFormatter renders entries as aligned, optionally colorized text.
//
// Column order is fixed: timestamp, level badge, logger name, message,
// then key=value fields in shadow-resolved order.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = "15:04:05"
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level badges to avoid per-call string building
var levelBadges = [...]string{
	core.DebugLevel:    "[dbg]",
	core.InfoLevel:     "[inf]",
	core.WarnLevel:     "[wrn]",
	core.ErrorLevel:    "[err]",
	core.CriticalLevel: "[crt]",
}

// Format renders an entry as a text line
func (f *TextFormatter) Format(entry *core.Entry, th theme.Theme) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatEntry(entry, th, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatEntry renders an entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, th theme.Theme, buf *bytes.Buffer) {
	// Timestamp - AppendFormat avoids a string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')

	// Level badge, colorized per level
	badge := "[unk]"
	if int(entry.Level) >= 0 && int(entry.Level) < len(levelBadges) {
		badge = levelBadges[entry.Level]
	}
	writeColored(buf, badge, th.LevelColor(entry.Level))
	buf.WriteByte(' ')

	// Name column with fixed width padding
	if entry.Name != "" {
		c := th.Name
		colorStart(buf, c)
		buf.WriteByte('[')
		buf.WriteString(entry.Name)
		buf.WriteByte(']')
		colorEnd(buf, c)
		pad(buf, th.NameWidth-len(entry.Name)-2)
	} else {
		pad(buf, th.NameWidth)
	}

	// Message
	writeColored(buf, entry.Message, th.Message)

	// Fields in shadow-resolved order
	fields := core.Resolve(entry.Fields)
	if len(fields) > 0 {
		if th.MessageWidth > 0 {
			pad(buf, th.MessageWidth-len(entry.Message))
		} else {
			buf.WriteByte(' ')
		}
		for i, fld := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}
			writeColored(buf, fld.Key, th.FieldKey)
			buf.WriteByte('=')
			colorStart(buf, th.FieldValue)
			writeFieldValue(buf, fld)
			colorEnd(buf, th.FieldValue)
		}
	}

	buf.WriteByte('\n')
}

// writeFieldValue renders a field value in its text form. String values
// containing whitespace are quoted.
func writeFieldValue(buf *bytes.Buffer, f core.Field) {
	switch f.Type {
	case core.StringType:
		if strings.ContainsAny(f.Str, " \t") {
			buf.Write(strconv.AppendQuote(buf.AvailableBuffer(), f.Str))
		} else {
			buf.WriteString(f.Str)
		}
	case core.Int64Type:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), f.Int64, 10))
	case core.Float64Type:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), f.Float64, 'f', -1, 64))
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), f.Int64 == 1))
	case core.NullType:
		buf.WriteString("null")
	default:
		buf.WriteString(f.StringValue())
	}
}

const spaces = "                "

// pad writes at least one space, up to n
func pad(buf *bytes.Buffer, n int) {
	if n < 1 {
		n = 1
	}
	for n > len(spaces) {
		buf.WriteString(spaces)
		n -= len(spaces)
	}
	buf.WriteString(spaces[:n])
}

func writeColored(buf *bytes.Buffer, s string, c theme.Color) {
	if c == theme.NoColor {
		buf.WriteString(s)
		return
	}
	buf.WriteString(c.Escape())
	buf.WriteString(s)
	buf.WriteString(theme.Reset)
}

func colorStart(buf *bytes.Buffer, c theme.Color) {
	if c != theme.NoColor {
		buf.WriteString(c.Escape())
	}
}

func colorEnd(buf *bytes.Buffer, c theme.Color) {
	if c != theme.NoColor {
		buf.WriteString(theme.Reset)
	}
}
