package internal

import (
	"time"

	"go.uber.org/atomic"
)

// EaseInOut is a quadratic ease-in-ease-out curve on [0, 1].
// Inputs outside the range are clamped.
func EaseInOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Pulse is a continuous time-driven oscillator between Min and Max.
// Each half-cycle eases in and out, then reverses, repeating until the
// owner stops it. The clock is injected so components and tests control
// time explicitly rather than inheriting a framework ticker.
type Pulse struct {
	Min       float64
	Max       float64
	HalfCycle time.Duration

	now     func() time.Time
	start   time.Time
	stopped *atomic.Bool
}

// NewPulse creates a Pulse oscillating in [min, max] with the given
// half-cycle. A nil clock defaults to time.Now.
func NewPulse(min, max float64, halfCycle time.Duration, clock func() time.Time) *Pulse {
	if clock == nil {
		clock = time.Now
	}
	return &Pulse{
		Min:       min,
		Max:       max,
		HalfCycle: halfCycle,
		now:       clock,
		start:     clock(),
		stopped:   atomic.NewBool(false),
	}
}

// Value returns the current oscillation value. After Stop it returns the
// resting minimum.
func (p *Pulse) Value() float64 {
	if p.stopped.Load() {
		return p.Min
	}

	elapsed := p.now().Sub(p.start)
	if elapsed < 0 {
		elapsed = 0
	}

	cycle := 2 * p.HalfCycle
	phase := elapsed % cycle

	var t float64
	if phase < p.HalfCycle {
		t = float64(phase) / float64(p.HalfCycle)
	} else {
		t = float64(cycle-phase) / float64(p.HalfCycle)
	}

	return Lerp(p.Min, p.Max, EaseInOut(t))
}

// Stop releases the oscillator. The owner must call this on teardown;
// Value is then pinned to Min so any late frame renders at rest.
func (p *Pulse) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pulse) Stopped() bool {
	return p.stopped.Load()
}
