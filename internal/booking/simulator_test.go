package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func TestSimulator_Threshold(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		want bool
	}{
		{name: "zero draw fails", draw: 0, want: false},
		{name: "just below threshold fails", draw: 0.1499, want: false},
		{name: "threshold succeeds", draw: 0.15, want: true},
		{name: "high draw succeeds", draw: 0.99, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSimulator(WithDelay(0), WithRandomSource(constRand(tt.draw)))
			assert.Equal(t, tt.want, s.Attempt(context.Background()).Success)
		})
	}
}

func TestSimulator_Defaults(t *testing.T) {
	s := NewSimulator()
	assert.Equal(t, DefaultDelay, s.Delay())
	assert.Equal(t, DefaultFailureRate, s.threshold)

	s = NewSimulator(WithDelay(-time.Second), WithFailureRate(2))
	assert.Equal(t, time.Duration(0), s.Delay())
	assert.Equal(t, 1.0, s.threshold)
}

func TestSimulator_WaitsForDelay(t *testing.T) {
	s := NewSimulator(WithDelay(25*time.Millisecond), WithRandomSource(constRand(0.5)))

	start := time.Now()
	out := s.Attempt(context.Background())

	assert.True(t, out.Success)
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}

func TestSimulator_CancelledContextFails(t *testing.T) {
	s := NewSimulator(WithDelay(time.Hour), WithRandomSource(constRand(0.99)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, s.Attempt(ctx).Success)

	s = NewSimulator(WithDelay(0), WithRandomSource(constRand(0.99)))
	assert.False(t, s.Attempt(ctx).Success)
}

func TestSimulator_SuccessRate(t *testing.T) {
	const attempts = 10000

	s := NewSimulator(WithDelay(0))
	successes := 0

	for range attempts {
		if s.Attempt(context.Background()).Success {
			successes++
		}
	}

	rate := float64(successes) / attempts
	assert.InDelta(t, 0.85, rate, 0.02, "observed success rate %.4f", rate)
}

func TestFixed(t *testing.T) {
	assert.True(t, Fixed{Success: true}.Attempt(context.Background()).Success)
	assert.False(t, Fixed{Success: false}.Attempt(context.Background()).Success)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, Fixed{Success: true, Delay: time.Hour}.Attempt(ctx).Success)
}
