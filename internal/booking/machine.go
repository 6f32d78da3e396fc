package booking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/fitbook/internal/model"
	"github.com/inovacc/fitbook/internal/notify"
)

// DefaultHighlightWindow is how long a successful card stays highlighted.
const DefaultHighlightWindow = time.Second

// Notification texts shown after an attempt settles.
const (
	SuccessTitle = "Booked"
	SuccessBody  = "Your quick booking succeeded."
	FailureTitle = "Booking failed"
	FailureBody  = "Please try again."
)

// Notifier receives fire-and-forget messages.
type Notifier interface {
	Dispatch(ctx context.Context, msg *notify.Message)
}

// Attempt identifies one in-flight quick-book.
type Attempt struct {
	ID      string
	ClassID string
	Started time.Time
}

// State is the booking view of a single class.
type State struct {
	Booked        bool
	Pending       bool
	JustSucceeded bool
}

// Machine owns the mutable class list and drives the optimistic booking
// transitions: Idle(false) -> Pending -> Idle(true) or rollback to Idle(false).
type Machine struct {
	mu        sync.Mutex
	records   []model.ClassRecord
	index     map[string]int
	pending   map[string]Attempt
	highlight string

	booker          Booker
	notifier        Notifier
	logger          *slog.Logger
	highlightWindow time.Duration
	manualHighlight bool
	afterFunc       func(time.Duration, func())
	now             func() time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithHighlightWindow sets how long JustSucceeded lasts.
func WithHighlightWindow(d time.Duration) Option {
	return func(m *Machine) {
		m.highlightWindow = d
	}
}

// WithManualHighlight leaves clearing the highlight to the caller, which
// must call ClearHighlight itself (the TUI does this from its own tick).
func WithManualHighlight() Option {
	return func(m *Machine) {
		m.manualHighlight = true
	}
}

// WithAfterFunc replaces time.AfterFunc for scheduling highlight expiry.
func WithAfterFunc(fn func(time.Duration, func())) Option {
	return func(m *Machine) {
		if fn != nil {
			m.afterFunc = fn
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMachine copies records into a new machine. A nil notifier drops
// notifications.
func NewMachine(records []model.ClassRecord, booker Booker, notifier Notifier, opts ...Option) *Machine {
	m := &Machine{
		records:         make([]model.ClassRecord, len(records)),
		index:           make(map[string]int, len(records)),
		pending:         make(map[string]Attempt),
		booker:          booker,
		notifier:        notifier,
		logger:          slog.Default(),
		highlightWindow: DefaultHighlightWindow,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		now: time.Now,
	}

	copy(m.records, records)

	for i, r := range m.records {
		m.index[r.ID] = i
	}

	if m.booker == nil {
		m.booker = NewSimulator()
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Begin applies the optimistic write for id and returns the attempt to await.
// Booked classes and classes with a pending attempt are rejected.
func (m *Machine) Begin(id string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return Attempt{}, &RejectedError{ClassID: id, Err: ErrUnknownClass}
	}

	if _, inFlight := m.pending[id]; inFlight {
		return Attempt{}, &RejectedError{ClassID: id, Err: ErrInFlight}
	}

	if m.records[i].Booked {
		return Attempt{}, &RejectedError{ClassID: id, Err: ErrAlreadyBooked}
	}

	a := Attempt{
		ID:      uuid.NewString(),
		ClassID: id,
		Started: m.now(),
	}

	m.records[i].Booked = true
	m.pending[id] = a

	m.logger.Debug("booking pending", "class_id", id, "attempt_id", a.ID)

	return a, nil
}

// Await runs the booking call for a begun attempt.
func (m *Machine) Await(ctx context.Context, a Attempt) Outcome {
	return m.booker.Attempt(ctx)
}

// Settle commits or rolls back the attempt and emits exactly one
// notification. It returns false if the attempt is not the pending one for
// its class, in which case nothing changes.
func (m *Machine) Settle(ctx context.Context, a Attempt, out Outcome) bool {
	m.mu.Lock()

	current, ok := m.pending[a.ClassID]
	if !ok || current.ID != a.ID {
		m.mu.Unlock()

		return false
	}

	delete(m.pending, a.ClassID)

	i := m.index[a.ClassID]
	elapsed := m.now().Sub(a.Started)

	var msg *notify.Message

	scheduleClear := false

	if out.Success {
		m.records[i].Booked = true

		if m.highlightWindow > 0 || m.manualHighlight {
			m.highlight = a.ClassID
			scheduleClear = !m.manualHighlight
		}

		msg = notify.Success(SuccessTitle, SuccessBody)

		m.logger.Info("booking confirmed", "class_id", a.ClassID, "attempt_id", a.ID, "elapsed", elapsed)
	} else {
		m.records[i].Booked = false
		msg = notify.Error(FailureTitle, FailureBody)

		m.logger.Warn("booking rolled back", "class_id", a.ClassID, "attempt_id", a.ID, "elapsed", elapsed)
	}

	window := m.highlightWindow
	m.mu.Unlock()

	if scheduleClear {
		id := a.ClassID
		m.afterFunc(window, func() { m.ClearHighlight(id) })
	}

	if m.notifier != nil {
		m.notifier.Dispatch(ctx, msg.WithExtra("class_id", a.ClassID).WithExtra("attempt_id", a.ID))
	}

	return true
}

// QuickBook runs the whole sequence for id: optimistic write, booking call,
// then commit or rollback. Simulated failures are not retried.
func (m *Machine) QuickBook(ctx context.Context, id string) (Outcome, error) {
	a, err := m.Begin(id)
	if err != nil {
		return Outcome{}, err
	}

	out := m.Await(ctx, a)
	m.Settle(ctx, a, out)

	return out, nil
}

// ClearHighlight ends JustSucceeded for id. A newer highlight on another
// class is left alone.
func (m *Machine) ClearHighlight(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.highlight == id {
		m.highlight = ""
	}
}

// Highlighted returns the class id in the success slot, if any.
func (m *Machine) Highlighted() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.highlight, m.highlight != ""
}

// State reports the booking state of id.
func (m *Machine) State(id string) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return State{}, false
	}

	_, pending := m.pending[id]

	return State{
		Booked:        m.records[i].Booked,
		Pending:       pending,
		JustSucceeded: m.highlight == id,
	}, true
}

// Pending reports whether id has an attempt in flight.
func (m *Machine) Pending(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.pending[id]

	return ok
}

// Snapshot returns a copy of the records in catalog order.
func (m *Machine) Snapshot() []model.ClassRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.ClassRecord, len(m.records))
	copy(out, m.records)

	return out
}
