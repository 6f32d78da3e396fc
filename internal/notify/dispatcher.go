package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// sendTimeout bounds a single sender call.
const sendTimeout = 5 * time.Second

// Dispatcher routes messages to registered senders.
type Dispatcher struct {
	senders []Sender
	mu      sync.RWMutex
	async   bool
	logger  *slog.Logger
}

// NewDispatcher creates a new notification dispatcher.
// If async is true, messages are sent in goroutines.
func NewDispatcher(async bool, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		senders: make([]Sender, 0),
		async:   async,
		logger:  logger,
	}
}

// Register adds a sender to the dispatcher.
func (d *Dispatcher) Register(sender Sender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.senders = append(d.senders, sender)
}

// Unregister removes a sender from the dispatcher by name.
func (d *Dispatcher) Unregister(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	filtered := make([]Sender, 0, len(d.senders))
	for _, s := range d.senders {
		if s.Name() != name {
			filtered = append(filtered, s)
		}
	}
	d.senders = filtered
}

// Dispatch sends a message to all registered senders.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *Message) {
	d.mu.RLock()
	senders := make([]Sender, len(d.senders))
	copy(senders, d.senders)
	d.mu.RUnlock()

	if len(senders) == 0 || msg == nil {
		return
	}

	if d.async {
		for _, sender := range senders {
			go d.sendWithRecover(ctx, sender, msg)
		}
	} else {
		for _, sender := range senders {
			d.sendWithRecover(ctx, sender, msg)
		}
	}
}

// sendWithRecover sends a message and recovers from panics.
func (d *Dispatcher) sendWithRecover(ctx context.Context, sender Sender, msg *Message) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notify: panic in sender", "sender", sender.Name(), "panic", r)
		}
	}()

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	if err := sender.Send(sendCtx, msg); err != nil {
		d.logger.Warn("notify: error sending", "sender", sender.Name(), "error", err)
	}
}

// HasSenders returns true if any senders are registered.
func (d *Dispatcher) HasSenders() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.senders) > 0
}

// Senders returns a copy of the registered senders.
func (d *Dispatcher) Senders() []Sender {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]Sender, len(d.senders))
	copy(result, d.senders)
	return result
}
