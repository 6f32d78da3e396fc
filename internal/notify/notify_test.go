package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	name string
	got  []*Message
	err  error
}

func (r *recordingSender) Name() string { return r.name }

func (r *recordingSender) Send(_ context.Context, msg *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, msg)

	return r.err
}

type panicSender struct{}

func (panicSender) Name() string                         { return "panic" }
func (panicSender) Send(context.Context, *Message) error { panic("boom") }

func TestNewMessage(t *testing.T) {
	msg := Success("Booked", "Your quick booking succeeded.")
	assert.Equal(t, SeveritySuccess, msg.Severity)
	assert.False(t, msg.IsError())
	assert.False(t, msg.Timestamp.IsZero())

	msg = Error("Booking failed", "Please try again.").WithExtra("class_id", "c1")
	assert.True(t, msg.IsError())
	assert.Equal(t, "c1", msg.Extra["class_id"])
}

func TestDispatcher_FansOut(t *testing.T) {
	d := NewDispatcher(false, nil)
	a := &recordingSender{name: "a"}
	b := &recordingSender{name: "b", err: errors.New("offline")}

	d.Register(a)
	d.Register(b)
	require.True(t, d.HasSenders())

	msg := Success("Booked", "")
	d.Dispatch(context.Background(), msg)

	assert.Equal(t, []*Message{msg}, a.got)
	assert.Equal(t, []*Message{msg}, b.got)
}

func TestDispatcher_RecoversFromPanics(t *testing.T) {
	d := NewDispatcher(false, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	after := &recordingSender{name: "after"}

	d.Register(panicSender{})
	d.Register(after)

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), Error("Booking failed", ""))
	})
	assert.Len(t, after.got, 1)
}

func TestDispatcher_Unregister(t *testing.T) {
	d := NewDispatcher(false, nil)
	d.Register(&recordingSender{name: "a"})
	d.Register(Nop{})

	d.Unregister("a")

	senders := d.Senders()
	require.Len(t, senders, 1)
	assert.Equal(t, "nop", senders[0].Name())

	d.Unregister("nop")
	assert.False(t, d.HasSenders())
	d.Dispatch(context.Background(), Success("ignored", ""))
}

func TestToast_LastCallWins(t *testing.T) {
	toast := NewToast()

	msg, _ := toast.Last()
	assert.Nil(t, msg)

	first := Success("Booked", "")
	second := Error("Booking failed", "")

	require.NoError(t, toast.Send(context.Background(), first))
	_, firstSeq := toast.Last()
	require.NoError(t, toast.Send(context.Background(), second))

	msg, seq := toast.Last()
	assert.Same(t, second, msg)

	toast.Dismiss(firstSeq)
	msg, _ = toast.Last()
	assert.Same(t, second, msg, "stale dismiss must not hide a newer toast")

	toast.Dismiss(seq)
	msg, _ = toast.Last()
	assert.Nil(t, msg)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Send(context.Background(), Error("Booking failed", "Please try again.")))

	out := buf.String()
	assert.Contains(t, out, "Booking failed")
	assert.Contains(t, out, "Please try again.")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	l := NewLog(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, l.Send(context.Background(), Error("Save failed", "Unable to save.").WithExtra("key", "profile_name_v1")))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "title=\"Save failed\"")
	assert.Contains(t, out, "key=profile_name_v1")
}

func TestRender(t *testing.T) {
	assert.Empty(t, Render(nil))
	assert.Contains(t, Render(Success("Booked", "")), "Booked")
}
