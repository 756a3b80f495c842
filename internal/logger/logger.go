// Package logger provides the coloured, severity-headed log output used by
// the server and the CLI. It is a log/slog handler, so callers log through a
// plain *slog.Logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Severities understood by the handler. Log sits between info and warning.
const (
	LevelDebug   = slog.LevelDebug
	LevelInfo    = slog.LevelInfo
	LevelLog     = slog.Level(2)
	LevelWarning = slog.LevelWarn
	LevelError   = slog.LevelError
)

// TimeLayout is the timestamp written at the start of every line.
const TimeLayout = "1/2/2006, 3:04:05 PM"

// ColorSpan selects which part of a line is coloured.
type ColorSpan string

const (
	SpanHead    ColorSpan = "head"
	SpanMessage ColorSpan = "message"
	SpanAll     ColorSpan = "all"
	SpanNone    ColorSpan = "none"
)

// ColorMode controls whether escape sequences are written at all.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Options configures a Handler.
type Options struct {
	Level slog.Leveler
	Color ColorMode
	Span  ColorSpan
	// Now is used for timestamps; defaults to time.Now.
	Now func() time.Time
}

// Handler writes one line per record:
//
//	[<time>] <SGR> HEAD: <reset> message key=value ...
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	color  bool
	span   ColorSpan
	now    func() time.Time
	attrs  string
	prefix string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a Handler writing to w.
func NewHandler(w io.Writer, opts *Options) *Handler {
	if opts == nil {
		opts = &Options{}
	}
	h := &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		level: opts.Level,
		span:  opts.Span,
		now:   opts.Now,
	}
	if h.level == nil {
		h.level = LevelLog
	}
	if h.span == "" {
		h.span = SpanHead
	}
	if h.now == nil {
		h.now = time.Now
	}
	switch opts.Color {
	case ColorAlways:
		h.color = true
	case ColorNever:
		h.color = false
	default:
		h.color = isTerminal(w)
	}
	return h
}

// New returns a *slog.Logger backed by a Handler.
func New(w io.Writer, opts *Options) *slog.Logger {
	return slog.New(NewHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, &Options{Level: slog.Level(1 << 10), Color: ColorNever})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether records at level are written.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes r.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	sev := severityFor(r.Level)

	ts := r.Time
	if ts.IsZero() {
		ts = h.now()
	}
	stamp := "[" + ts.Format(TimeLayout) + "]"
	head := " " + sev.head + ": "

	var body strings.Builder
	body.WriteString(r.Message)
	body.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&body, h.prefix, a)
		return true
	})

	color, reset := "", ""
	if h.color && h.span != SpanNone {
		color = sev.sgr
		reset = sgrReset
	}

	var line string
	switch h.span {
	case SpanMessage:
		line = fmt.Sprintf("%s %s%s %s%s\n", stamp, color, head, body.String(), reset)
	case SpanAll:
		line = fmt.Sprintf("%s%s %s %s%s\n", color, stamp, head, body.String(), reset)
	default:
		line = fmt.Sprintf("%s %s%s%s %s\n", stamp, color, head, reset, body.String())
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line)
	return err
}

// WithAttrs returns a handler that appends attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	h2.attrs = b.String()
	return &h2
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, p, ga)
		}
		return
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\n\"=") {
		val = fmt.Sprintf("%q", val)
	}
	b.WriteString(" ")
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteString("=")
	b.WriteString(val)
}

// ParseLevel maps a configured severity name to its level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "log", "":
		return LevelLog, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
