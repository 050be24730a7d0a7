package carosello

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/BrandonKowalski/carosello/pkg/carosello/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// fakeClock drives controller time deterministically.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (f *fakeClock) now() time.Time {
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func newTestController(t *testing.T, settings CarouselSettings) (*carouselController, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	return newCarouselController(NewItemStore(), settings, clock.now), clock
}

func TestDefaultCarouselSettingsCentersSelection(t *testing.T) {
	store := NewItemStore()
	settings := DefaultCarouselSettings(store)

	require.Equal(t, 2, settings.InitialSelectedIndex)
	require.Equal(t, constants.VirtualButtonStart, settings.ConfirmButton)
}

func TestControllerStartsAtRest(t *testing.T) {
	c, clock := newTestController(t, DefaultCarouselSettings(NewItemStore()))

	require.Equal(t, 2, c.selection.Index())
	for i := 0; i < c.store.Len(); i++ {
		got := c.displayedTransform(i, clock.now())
		require.Equal(t, TransformFor(i, 2), got, "item %d must rest on its target", i)
	}
}

func TestSelectionChangeAnimatesTowardTarget(t *testing.T) {
	c, clock := newTestController(t, DefaultCarouselSettings(NewItemStore()))

	start := TransformFor(0, 2)
	c.selection.Select(3)
	target := TransformFor(0, 3)

	// At the instant of the change nothing has moved yet
	got := c.displayedTransform(0, clock.now())
	require.InDelta(t, start.Scale, got.Scale, 1e-9)
	require.InDelta(t, start.OffsetX, got.OffsetX, 1e-9)

	// Mid-flight the transform is strictly between start and target
	clock.advance(carouselTransitionTime / 2)
	got = c.displayedTransform(0, clock.now())
	require.Greater(t, got.Scale, target.Scale)
	require.Less(t, got.Scale, start.Scale)
	require.Less(t, got.OffsetX, start.OffsetX)
	require.Greater(t, got.OffsetX, target.OffsetX)

	// After the transition time the item sits on its new target
	clock.advance(carouselTransitionTime)
	require.Equal(t, target, c.displayedTransform(0, clock.now()))
}

func TestRetargetMidFlightStartsFromDisplayed(t *testing.T) {
	c, clock := newTestController(t, DefaultCarouselSettings(NewItemStore()))

	c.selection.Select(3)
	clock.advance(carouselTransitionTime / 2)
	midFlight := c.displayedTransform(0, clock.now())

	// Reversing direction mid-flight must not snap back to the old rest
	// position; the new animation starts where the item currently is.
	c.selection.Select(2)
	got := c.displayedTransform(0, clock.now())
	require.InDelta(t, midFlight.Scale, got.Scale, 1e-9)
	require.InDelta(t, midFlight.OffsetX, got.OffsetX, 1e-9)

	clock.advance(2 * carouselTransitionTime)
	require.Equal(t, TransformFor(0, 2), c.displayedTransform(0, clock.now()))
}

func TestHandleButtonMovesSelection(t *testing.T) {
	c, clock := newTestController(t, DefaultCarouselSettings(NewItemStore()))
	running := true
	cancelled := false
	result := CarouselResult{}

	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonRight, Pressed: true}, &running, &result, &cancelled)
	require.Equal(t, 3, c.selection.Index())
	require.True(t, running)

	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonLeft, Pressed: true}, &running, &result, &cancelled)
	require.Equal(t, 2, c.selection.Index())
}

func TestHandleButtonDebouncesRapidPresses(t *testing.T) {
	c, clock := newTestController(t, DefaultCarouselSettings(NewItemStore()))
	running := true
	cancelled := false
	result := CarouselResult{}

	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonRight, Pressed: true}, &running, &result, &cancelled)
	require.Equal(t, 3, c.selection.Index())

	// Second press inside the debounce window is dropped
	clock.advance(constants.DefaultInputDelay / 2)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonRight, Pressed: true}, &running, &result, &cancelled)
	require.Equal(t, 3, c.selection.Index())

	clock.advance(constants.DefaultInputDelay)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonRight, Pressed: true}, &running, &result, &cancelled)
	require.Equal(t, 4, c.selection.Index())
}

func TestHandleButtonStopsAtBounds(t *testing.T) {
	settings := DefaultCarouselSettings(NewItemStore())
	settings.InitialSelectedIndex = 0
	c, clock := newTestController(t, settings)
	running := true
	cancelled := false
	result := CarouselResult{}

	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonLeft, Pressed: true}, &running, &result, &cancelled)
	require.Equal(t, 0, c.selection.Index())

	c.selection.Select(4)
	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonRight, Pressed: true}, &running, &result, &cancelled)
	require.Equal(t, 4, c.selection.Index())
}

func TestHandleButtonSelectAndConfirm(t *testing.T) {
	c, clock := newTestController(t, DefaultCarouselSettings(NewItemStore()))
	running := true
	cancelled := false
	result := CarouselResult{}

	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonA, Pressed: true}, &running, &result, &cancelled)
	require.False(t, running)
	require.False(t, cancelled)
	require.Equal(t, CarouselActionSelected, result.Action)

	c, clock = newTestController(t, DefaultCarouselSettings(NewItemStore()))
	running = true
	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonStart, Pressed: true}, &running, &result, &cancelled)
	require.False(t, running)
	require.Equal(t, CarouselActionConfirmed, result.Action)
}

func TestHandleButtonBackCancels(t *testing.T) {
	c, clock := newTestController(t, DefaultCarouselSettings(NewItemStore()))
	running := true
	cancelled := false
	result := CarouselResult{}

	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonB, Pressed: true}, &running, &result, &cancelled)
	require.False(t, running)
	require.True(t, cancelled)
}

func TestHandleButtonBackDisabled(t *testing.T) {
	settings := DefaultCarouselSettings(NewItemStore())
	settings.DisableBackButton = true
	c, clock := newTestController(t, settings)
	running := true
	cancelled := false
	result := CarouselResult{}

	clock.advance(time.Second)
	c.handleButton(&internal.Event{Button: constants.VirtualButtonB, Pressed: true}, &running, &result, &cancelled)
	require.True(t, running)
	require.False(t, cancelled)
}

func TestHandleTapOnChevronsRespectsBounds(t *testing.T) {
	settings := DefaultCarouselSettings(NewItemStore())
	settings.InitialSelectedIndex = 0
	c, _ := newTestController(t, settings)

	c.prevRect = sdl.Rect{X: 0, Y: 300, W: 64, H: 64}
	c.nextRect = sdl.Rect{X: 1200, Y: 300, W: 64, H: 64}

	// At the first item the previous chevron is hidden; a tap there
	// must not move the selection.
	c.handleTap(10, 310)
	require.Equal(t, 0, c.selection.Index())

	c.handleTap(1210, 310)
	require.Equal(t, 1, c.selection.Index())

	c.handleTap(10, 310)
	require.Equal(t, 0, c.selection.Index())
}

func TestHandleTapOnItemSelectsIt(t *testing.T) {
	c, _ := newTestController(t, DefaultCarouselSettings(NewItemStore()))

	for i := range c.itemRects {
		c.itemRects[i] = sdl.Rect{X: int32(i) * 200, Y: 200, W: 160, H: 160}
	}

	c.handleTap(850, 280) // inside item 4's tile
	require.Equal(t, 4, c.selection.Index())

	c.handleTap(50, 280) // inside item 0's tile
	require.Equal(t, 0, c.selection.Index())

	// Miss: outside every hit area
	c.handleTap(50, 700)
	require.Equal(t, 0, c.selection.Index())
}

func TestDrawOrderPaintsSelectedLast(t *testing.T) {
	c, _ := newTestController(t, DefaultCarouselSettings(NewItemStore()))

	// Nearest first for hit testing; render walks it in reverse so the
	// selected item paints on top.
	order := c.drawOrder()
	require.Equal(t, c.selection.Index(), order[0])
	require.Len(t, order, c.store.Len())

	seen := make(map[int]bool)
	for _, i := range order {
		require.False(t, seen[i], "index %d listed twice", i)
		seen[i] = true
	}
}
