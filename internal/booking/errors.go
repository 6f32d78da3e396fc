package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownClass is returned for an id that is not in the catalog.
	ErrUnknownClass = errors.New("unknown class")

	// ErrAlreadyBooked is returned when quick-booking a booked class.
	ErrAlreadyBooked = errors.New("class already booked")

	// ErrInFlight is returned when a booking for the class is still pending.
	ErrInFlight = errors.New("booking already in progress")
)

// RejectedError reports why a quick-book request never started.
type RejectedError struct {
	ClassID string
	Err     error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("quick book %s: %v", e.ClassID, e.Err)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}
