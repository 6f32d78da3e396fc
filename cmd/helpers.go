package cmd

import (
	"fmt"
	"time"

	"github.com/inovacc/fitbook/internal/booking"
	"github.com/inovacc/fitbook/internal/model"
	"github.com/spf13/pflag"
)

// parseDelay parses a Go duration and rejects negative values.
func parseDelay(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q: %w", s, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("invalid delay %q: must not be negative", s)
	}

	return d, nil
}


// levelFlag is a --level value validated at parse time.
type levelFlag struct {
	level *model.Level
}

var _ pflag.Value = (*levelFlag)(nil)

func (f *levelFlag) String() string {
	if f.level == nil {
		return ""
	}

	return f.level.String()
}

func (f *levelFlag) Set(s string) error {
	l, err := model.ParseLevel(s)
	if err != nil {
		return err
	}

	f.level = &l

	return nil
}

func (f *levelFlag) Type() string { return "level" }

// outcomeFlag forces a booking result: "", "success" or "failure".
type outcomeFlag string

var _ pflag.Value = (*outcomeFlag)(nil)

func (f *outcomeFlag) String() string { return string(*f) }

func (f *outcomeFlag) Set(s string) error {
	switch s {
	case "success", "failure":
		*f = outcomeFlag(s)

		return nil
	}

	return fmt.Errorf("want success or failure, got %q", s)
}

func (f *outcomeFlag) Type() string { return "outcome" }

// booker returns the forced booker, or nil when no outcome was chosen.
func (f outcomeFlag) booker(delay time.Duration) booking.Booker {
	if f == "" {
		return nil
	}

	return booking.Fixed{Success: f == "success", Delay: delay}
}
