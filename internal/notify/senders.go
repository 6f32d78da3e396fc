package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	bodyStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Toast keeps the most recent message for the TUI to render.
// The last call wins; nothing is queued.
type Toast struct {
	mu   sync.RWMutex
	last *Message
	seq  uint64
}

func NewToast() *Toast {
	return &Toast{}
}

func (t *Toast) Name() string { return "toast" }

func (t *Toast) Send(_ context.Context, msg *Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = msg
	t.seq++

	return nil
}

// Last returns the latest message and its sequence number, or nil when
// nothing was sent or the toast was dismissed.
func (t *Toast) Last() (*Message, uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.last, t.seq
}

// Dismiss clears the toast if seq is still the latest message.
func (t *Toast) Dismiss(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seq == seq {
		t.last = nil
	}
}

// Writer prints each message as one styled line.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Name() string { return "writer" }

func (w *Writer) Send(_ context.Context, msg *Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := fmt.Fprintln(w.w, Render(msg))

	return err
}

// Render formats a message the way both the TUI and the shell show it.
func Render(msg *Message) string {
	if msg == nil {
		return ""
	}

	title := successTitleStyle.Render("✓ " + msg.Title)
	if msg.IsError() {
		title = errorTitleStyle.Render("✗ " + msg.Title)
	}

	if msg.Body == "" {
		return title
	}

	return title + "  " + bodyStyle.Render(msg.Body)
}

// Log records messages through slog.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}

	return &Log{logger: logger}
}

func (l *Log) Name() string { return "log" }

func (l *Log) Send(ctx context.Context, msg *Message) error {
	attrs := make([]any, 0, 4+2*len(msg.Extra))
	attrs = append(attrs, "title", msg.Title, "body", msg.Body)

	for k, v := range msg.Extra {
		attrs = append(attrs, k, v)
	}

	level := slog.LevelInfo
	if msg.IsError() {
		level = slog.LevelWarn
	}

	l.logger.Log(ctx, level, "notification", attrs...)

	return nil
}

// Nop discards every message.
type Nop struct{}

func (Nop) Name() string { return "nop" }

func (Nop) Send(context.Context, *Message) error { return nil }
