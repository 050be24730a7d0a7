package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEaseInOutEndpoints(t *testing.T) {
	require.Equal(t, 0.0, EaseInOut(0))
	require.Equal(t, 0.5, EaseInOut(0.5))
	require.Equal(t, 1.0, EaseInOut(1))
}

func TestEaseInOutClampsOutOfRange(t *testing.T) {
	require.Equal(t, 0.0, EaseInOut(-0.5))
	require.Equal(t, 1.0, EaseInOut(1.5))
}

func TestEaseInOutIsMonotonic(t *testing.T) {
	prev := EaseInOut(0)
	for i := 1; i <= 100; i++ {
		v := EaseInOut(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev, "curve must not reverse at step %d", i)
		prev = v
	}
}

func TestEaseInOutSlowStartFastMiddle(t *testing.T) {
	// Quadratic easing spends less distance near the endpoints than a
	// straight line would.
	require.Less(t, EaseInOut(0.25), 0.25)
	require.Greater(t, EaseInOut(0.75), 0.75)
}

func TestLerp(t *testing.T) {
	require.Equal(t, 1.0, Lerp(1, 3, 0))
	require.Equal(t, 2.0, Lerp(1, 3, 0.5))
	require.Equal(t, 3.0, Lerp(1, 3, 1))
	require.InDelta(t, -360.0, Lerp(0, -540, 2.0/3.0), 1e-9)
}

type manualClock struct {
	t time.Time
}

func (m *manualClock) now() time.Time {
	return m.t
}

func TestPulseOscillatesBetweenBounds(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	p := NewPulse(1.0, 1.3, 1500*time.Millisecond, clock.now)

	// Rest at the minimum when the cycle begins
	require.Equal(t, 1.0, p.Value())

	// Peak at the end of the first half-cycle
	clock.t = clock.t.Add(1500 * time.Millisecond)
	require.InDelta(t, 1.3, p.Value(), 1e-9)

	// Back to the minimum after a full cycle
	clock.t = clock.t.Add(1500 * time.Millisecond)
	require.InDelta(t, 1.0, p.Value(), 1e-9)
}

func TestPulseStaysWithinBounds(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	p := NewPulse(1.0, 1.3, 1500*time.Millisecond, clock.now)

	for i := 0; i < 200; i++ {
		clock.t = clock.t.Add(37 * time.Millisecond)
		v := p.Value()
		require.GreaterOrEqual(t, v, 1.0)
		require.LessOrEqual(t, v, 1.3)
	}
}

func TestPulsePingPongsSymmetrically(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	p := NewPulse(1.0, 1.3, 1500*time.Millisecond, clock.now)

	// The value at t into the rise equals the value at t before the end
	// of the fall.
	clock.t = time.Unix(0, 0).Add(500 * time.Millisecond)
	rising := p.Value()

	clock.t = time.Unix(0, 0).Add(2500 * time.Millisecond)
	falling := p.Value()

	require.InDelta(t, rising, falling, 1e-9)
}

func TestPulseStopPinsToMinimum(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	p := NewPulse(1.0, 1.3, 1500*time.Millisecond, clock.now)

	clock.t = clock.t.Add(750 * time.Millisecond)
	require.Greater(t, p.Value(), 1.0)

	p.Stop()
	require.True(t, p.Stopped())
	require.Equal(t, 1.0, p.Value())

	// Still pinned as time advances
	clock.t = clock.t.Add(time.Hour)
	require.Equal(t, 1.0, p.Value())
}

func TestPulseNilClockDefaultsToWallTime(t *testing.T) {
	p := NewPulse(1.0, 1.3, 1500*time.Millisecond, nil)
	v := p.Value()
	require.GreaterOrEqual(t, v, 1.0)
	require.LessOrEqual(t, v, 1.3)
}
