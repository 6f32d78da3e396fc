// Package notify provides the transient message surface for fitbook.
//
// Callers fire a [Message] at a [Dispatcher] and never wait for an
// acknowledgement. Which [Sender] implementations are registered is decided
// once at startup: the TUI registers a [Toast], shell commands a [Writer],
// and everything logs through [Log].
package notify

import (
	"context"
	"time"
)

// Severity classifies a message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Message is a single transient notification.
type Message struct {
	// Severity selects success or error styling
	Severity Severity

	// Title is the short headline ("Booked")
	Title string

	// Body is the explanatory line
	Body string

	// Timestamp is when the message was created
	Timestamp time.Time

	// Extra carries correlation data for log senders (class id, attempt id)
	Extra map[string]string
}

// Sender is the interface for notification senders.
type Sender interface {
	// Send delivers the message. Returns an error if it could not be shown.
	Send(ctx context.Context, msg *Message) error

	// Name returns the sender's name for logging purposes.
	Name() string
}

// NewMessage creates a message and sets the timestamp.
func NewMessage(severity Severity, title, body string) *Message {
	return &Message{
		Severity:  severity,
		Title:     title,
		Body:      body,
		Timestamp: time.Now(),
		Extra:     make(map[string]string),
	}
}

// Success is shorthand for NewMessage(SeveritySuccess, ...).
func Success(title, body string) *Message {
	return NewMessage(SeveritySuccess, title, body)
}

// Error is shorthand for NewMessage(SeverityError, ...).
func Error(title, body string) *Message {
	return NewMessage(SeverityError, title, body)
}

// WithExtra adds correlation data to the message.
func (m *Message) WithExtra(key, value string) *Message {
	if m.Extra == nil {
		m.Extra = make(map[string]string)
	}

	m.Extra[key] = value

	return m
}

// IsError reports whether the message has error severity.
func (m *Message) IsError() bool {
	return m.Severity == SeverityError
}
