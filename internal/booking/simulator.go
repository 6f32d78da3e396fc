package booking

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	// DefaultDelay is the latency of one simulated booking call.
	DefaultDelay = 700 * time.Millisecond

	// DefaultFailureRate gives the nominal 85% success rate.
	DefaultFailureRate = 0.15
)

// Outcome is the result of one booking attempt.
type Outcome struct {
	Success bool
}

// Booker performs a booking attempt. Implementations never fail; a failed
// booking is a modeled outcome.
type Booker interface {
	Attempt(ctx context.Context) Outcome
}

// RandomSource yields uniform values in [0,1).
type RandomSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Simulator models the booking network call.
type Simulator struct {
	delay     time.Duration
	threshold float64
	rnd       RandomSource
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithDelay sets the simulated latency. Negative values become zero.
func WithDelay(d time.Duration) SimulatorOption {
	return func(s *Simulator) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithFailureRate sets the probability of a failed attempt.
func WithFailureRate(rate float64) SimulatorOption {
	return func(s *Simulator) {
		s.threshold = min(max(rate, 0), 1)
	}
}

// WithRandomSource replaces the random draw, mainly for tests.
func WithRandomSource(r RandomSource) SimulatorOption {
	return func(s *Simulator) {
		if r != nil {
			s.rnd = r
		}
	}
}

func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		delay:     DefaultDelay,
		threshold: DefaultFailureRate,
		rnd:       globalRand{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Delay returns the configured latency.
func (s *Simulator) Delay() time.Duration {
	return s.delay
}

// Attempt waits for the delay, then succeeds when a draw lands at or above
// the failure threshold. A cancelled context resolves as a failure.
func (s *Simulator) Attempt(ctx context.Context) Outcome {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Outcome{Success: false}
		case <-timer.C:
		}
	} else if ctx.Err() != nil {
		return Outcome{Success: false}
	}

	return Outcome{Success: s.rnd.Float64() >= s.threshold}
}

// Fixed is a Booker with a predetermined outcome, used by the booking flow
// demo to force either branch.
type Fixed struct {
	Success bool
	Delay   time.Duration
}

func (f Fixed) Attempt(ctx context.Context) Outcome {
	if f.Delay > 0 {
		timer := time.NewTimer(f.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Outcome{Success: false}
		case <-timer.C:
		}
	}

	return Outcome{Success: f.Success}
}
