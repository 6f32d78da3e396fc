package cli

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/fitbook/internal/booking"
	"github.com/inovacc/fitbook/internal/catalog"
	"github.com/inovacc/fitbook/internal/notify"
	"github.com/inovacc/fitbook/internal/profile"
)

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 3 * time.Second

// Deps carries the services the screens need. Dispatcher should be
// synchronous so the toast is populated before Update returns.
type Deps struct {
	Catalog         *catalog.Catalog
	Booker          booking.Booker
	Dispatcher      *notify.Dispatcher
	Toast           *notify.Toast
	Profile         *profile.Service
	HighlightWindow time.Duration
	Logger          *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}

	return d.Logger
}

// notifier avoids handing a typed nil to the machine.
func (d Deps) notifier() booking.Notifier {
	if d.Dispatcher == nil {
		return nil
	}

	return d.Dispatcher
}

func (d Deps) dispatch(msg *notify.Message) {
	if d.Dispatcher != nil {
		d.Dispatcher.Dispatch(context.Background(), msg)
	}
}

type toastExpiredMsg struct {
	seq uint64
}

type highlightExpiredMsg struct {
	classID string
}

// expireToast schedules dismissal of whatever the toast currently shows.
func expireToast(t *notify.Toast) tea.Cmd {
	if t == nil {
		return nil
	}

	msg, seq := t.Last()
	if msg == nil {
		return nil
	}

	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func expireHighlight(id string, window time.Duration) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return highlightExpiredMsg{classID: id}
	})
}

func toastView(t *notify.Toast) string {
	if t == nil {
		return ""
	}

	msg, _ := t.Last()

	return notify.Render(msg)
}
