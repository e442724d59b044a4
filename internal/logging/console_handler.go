package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

const consoleTimeLayout = "15:04:05"

// consoleHandler writes records for a person reading stderr next to command
// output:
//
//	15:04:05 WRN store: banned words unavailable key=wordmask.banned_words
//	         hint: run `wordmask clear` to overwrite the value
//	         impact: starting with an empty banned word list
//
// error_hint and impact attributes move to their own indented lines.
type consoleHandler struct {
	out       *syncWriter
	level     slog.Leveler
	addSource bool

	component string
	group     string
	fields    string
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(p)
	return err
}

func newConsoleHandler(w io.Writer, lvl slog.Leveler, addSource bool) slog.Handler {
	return &consoleHandler{out: &syncWriter{w: w}, level: lvl, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	line := consoleLine{component: h.component}
	line.fields.WriteString(h.fields)
	record.Attrs(func(attr slog.Attr) bool {
		line.add(h.group, attr)
		return true
	})

	var b strings.Builder
	b.WriteString(ts.Local().Format(consoleTimeLayout))
	b.WriteByte(' ')
	b.WriteString(shortLevel(record.Level))
	b.WriteByte(' ')
	if line.component != "" {
		b.WriteString(line.component)
		b.WriteString(": ")
	}
	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "(no message)"
	}
	b.WriteString(msg)
	if h.addSource && record.PC != 0 {
		if src, _ := runtime.CallersFrames([]uintptr{record.PC}).Next(); src.File != "" {
			fmt.Fprintf(&b, " (%s:%d)", filepath.Base(src.File), src.Line)
		}
	}
	b.WriteString(line.fields.String())
	b.WriteByte('\n')

	indent := strings.Repeat(" ", len(consoleTimeLayout)+1)
	if line.hint != "" {
		b.WriteString(indent + "hint: " + line.hint + "\n")
	}
	if line.impact != "" {
		b.WriteString(indent + "impact: " + line.impact + "\n")
	}

	return h.out.write([]byte(b.String()))
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	line := consoleLine{component: h.component}
	line.fields.WriteString(h.fields)
	for _, attr := range attrs {
		line.add(h.group, attr)
	}
	clone.component = line.component
	clone.fields = line.fields.String()
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

// consoleLine accumulates the attributes of one record.
type consoleLine struct {
	component string
	hint      string
	impact    string
	fields    strings.Builder
}

func (l *consoleLine) add(group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			group += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			l.add(group, member)
		}
		return
	}
	if group == "" {
		switch attr.Key {
		case FieldComponent:
			if l.component == "" {
				l.component = attr.Value.String()
			}
			return
		case FieldErrorHint:
			l.hint = attr.Value.String()
			return
		case FieldImpact:
			l.impact = attr.Value.String()
			return
		}
	}
	l.fields.WriteByte(' ')
	l.fields.WriteString(group + attr.Key)
	l.fields.WriteByte('=')
	l.fields.WriteString(consoleValue(attr.Value))
}

func consoleValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func shortLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERR"
	case level >= slog.LevelWarn:
		return "WRN"
	case level >= slog.LevelInfo:
		return "INF"
	default:
		return "DBG"
	}
}
