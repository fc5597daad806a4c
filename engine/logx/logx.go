// Package logx installs the process-wide slog handler: one line per record,
// "LEVEL message key=value ...", with the level coloured when the output is
// a terminal.
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Handler is a slog.Handler writing compact single-line records.
type Handler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewHandler writes to w. Colour follows termenv's detection for w; pass a
// termenv.Output built with termenv.WithProfile to force a profile.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	out, ok := w.(*termenv.Output)
	if !ok {
		out = termenv.NewOutput(w)
	}
	return &Handler{mu: &sync.Mutex{}, out: out, level: level}
}

// Setup makes a Handler on w the default logger and returns it.
func Setup(level slog.Level, w io.Writer) *slog.Logger {
	l := slog.New(NewHandler(w, level))
	slog.SetDefault(l)
	return l
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

var levelColors = map[slog.Level]termenv.ANSIColor{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSIGreen,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

func (h *Handler) levelString(l slog.Level) string {
	name := fmt.Sprintf("%-5s", l.String())
	c, ok := levelColors[l]
	if !ok {
		return name
	}
	return h.out.String(name).Foreground(h.out.Color(strconv.Itoa(int(c)))).Bold().String()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b bytes.Buffer
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(time.TimeOnly))
		b.WriteByte(' ')
	}
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	prefix := groupPrefix(h.groups)
	for _, a := range h.attrs {
		appendAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(b.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	prefix := groupPrefix(h.groups)
	h2.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], prefixed(prefix, attrs)...)
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &h2
}

func groupPrefix(groups []string) string {
	var p string
	for _, g := range groups {
		p += g + "."
	}
	return p
}

func prefixed(prefix string, attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}
	return out
}

func appendAttr(b *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	s := a.Value.String()
	if needsQuote(s) {
		s = strconv.Quote(s)
	}
	b.WriteString(s)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r > '~' {
			return true
		}
	}
	return false
}
