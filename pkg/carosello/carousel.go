package carosello

import (
	"errors"
	"time"

	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/BrandonKowalski/carosello/pkg/carosello/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Carousel geometry and timing, in logical units at the baseline layout
// width. The component hardcodes these; it is a fixed-layout widget, not
// a general-purpose carousel.
const (
	carouselItemBaseSize    = 160 // Side of an item tile at scale 1.0
	carouselCornerRadius    = 24  // Tile corner radius at scale 1.0
	carouselHighlightInset  = 6   // Ring thickness around the selected tile
	chevronBaseSize         = 64  // Chevron draw size at pulse 1.0
	chevronMargin           = 28  // Distance from the screen edge
	chevronTextureSize      = 128 // Rasterization size; downscaled at draw time
	carouselTransitionTime  = 250 * time.Millisecond
	chevronPulseHalfCycle   = 1500 * time.Millisecond
	chevronPulseMin         = 1.0
	chevronPulseMax         = 1.3
)

// CarouselSettings configures the Carousel component.
type CarouselSettings struct {
	InitialSelectedIndex int                     // Clamped into range; see DefaultCarouselSettings
	DisableBackButton    bool                    // Ignore B / prevent cancelling
	FooterHelpItems      []FooterHelpItem        // Button legend along the bottom edge
	ConfirmButton        constants.VirtualButton // Default: VirtualButtonStart
}

// DefaultCarouselSettings returns settings with the selection starting
// on the store's center item.
func DefaultCarouselSettings(store *ItemStore) CarouselSettings {
	return CarouselSettings{
		InitialSelectedIndex: store.Len() / 2,
		ConfirmButton:        constants.VirtualButtonStart,
	}
}

// itemMotion is the animated interpolation of one item's transform.
// Retargeting mid-flight starts from the currently displayed transform,
// so rapid selection changes stay smooth.
type itemMotion struct {
	from      Transform
	to        Transform
	start     time.Time
	animating bool
}

type carouselController struct {
	store     *ItemStore
	selection *SelectionState
	settings  CarouselSettings

	now     func() time.Time
	motions []itemMotion
	pulse   *internal.Pulse

	directionalInput internal.DirectionalInput
	lastInputTime    time.Time
	inputDelay       time.Duration

	// Hit areas, rebuilt every rendered frame
	itemRects []sdl.Rect
	prevRect  sdl.Rect
	nextRect  sdl.Rect

	textures     *internal.TextureCache
	chevronLeft  *sdl.Texture
	chevronRight *sdl.Texture
}

// newCarouselController wires the state container, mapper targets, and
// the pulse driver. It performs no SDL calls; textures are acquired
// separately so the selection logic stays testable headless.
func newCarouselController(store *ItemStore, settings CarouselSettings, clock func() time.Time) *carouselController {
	if clock == nil {
		clock = time.Now
	}
	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonStart
	}

	c := &carouselController{
		store:            store,
		settings:         settings,
		now:              clock,
		motions:          make([]itemMotion, store.Len()),
		itemRects:        make([]sdl.Rect, store.Len()),
		pulse:            internal.NewPulse(chevronPulseMin, chevronPulseMax, chevronPulseHalfCycle, clock),
		directionalInput: internal.NewDirectionalInputWithTiming(300*time.Millisecond, 150*time.Millisecond),
		lastInputTime:    clock(),
		inputDelay:       constants.DefaultInputDelay,
	}

	c.selection = NewSelectionState(store.Len(), settings.InitialSelectedIndex, c.retarget)

	// Items start at rest on their mapper targets
	for i := range c.motions {
		tr := TransformFor(i, c.selection.Index())
		c.motions[i] = itemMotion{from: tr, to: tr}
	}

	return c
}

// retarget is the selection change callback: every item animates from
// whatever transform it currently displays to its new mapper target.
func (c *carouselController) retarget(_, newIndex int) {
	at := c.now()
	for i := range c.motions {
		current := c.displayedTransform(i, at)
		c.motions[i] = itemMotion{
			from:      current,
			to:        TransformFor(i, newIndex),
			start:     at,
			animating: true,
		}
	}
}

// displayedTransform evaluates item i's transform at the given instant,
// interpolating with ease-in-out while a transition is in flight.
func (c *carouselController) displayedTransform(i int, at time.Time) Transform {
	m := &c.motions[i]
	if !m.animating {
		return m.to
	}

	elapsed := at.Sub(m.start)
	if elapsed >= carouselTransitionTime {
		m.animating = false
		return m.to
	}

	t := internal.EaseInOut(float64(elapsed) / float64(carouselTransitionTime))
	return Transform{
		Scale:   internal.Lerp(m.from.Scale, m.to.Scale, t),
		OffsetX: internal.Lerp(m.from.OffsetX, m.to.OffsetX, t),
	}
}

// acquire rasterizes the chevron textures and sets up the label cache.
// Paired with cleanup; both run inside Carousel so every exit path
// releases what was acquired.
func (c *carouselController) acquire(renderer *sdl.Renderer) error {
	left, err := internal.RenderSVGTexture(renderer, internal.ChevronLeftSVG, chevronTextureSize)
	if err != nil {
		return NewInfrastructureError("load_icon", err)
	}
	right, err := internal.RenderSVGTexture(renderer, internal.ChevronRightSVG, chevronTextureSize)
	if err != nil {
		left.Destroy()
		return NewInfrastructureError("load_icon", err)
	}

	c.chevronLeft = left
	c.chevronRight = right
	c.textures = internal.NewTextureCache()
	return nil
}

func (c *carouselController) cleanup() {
	c.pulse.Stop()

	if c.textures != nil {
		c.textures.Destroy()
		c.textures = nil
	}
	if c.chevronLeft != nil {
		c.chevronLeft.Destroy()
		c.chevronLeft = nil
	}
	if c.chevronRight != nil {
		c.chevronRight.Destroy()
		c.chevronRight = nil
	}
}

// Carousel presents the item carousel and blocks until the user selects
// or confirms an item, or cancels. Returns ErrCancelled on cancel.
func Carousel(title string, settings CarouselSettings, store *ItemStore) (*CarouselResult, error) {
	if store == nil || store.Len() == 0 {
		return nil, NewInfrastructureError("carousel", errors.New("item store is empty"))
	}

	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	c := newCarouselController(store, settings, time.Now)
	if err := c.acquire(renderer); err != nil {
		return nil, err
	}
	defer c.cleanup()

	running := true
	cancelled := false
	result := CarouselResult{
		Items:  store.Items(),
		Action: CarouselActionSelected,
	}

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
				cancelled = true

			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
					c.handleTap(e.X, e.Y)
				}

			case *sdl.TouchFingerEvent:
				if e.Type == sdl.FINGERDOWN {
					c.handleTap(
						int32(e.X*float32(window.GetWidth())),
						int32(e.Y*float32(window.GetHeight())),
					)
				}

			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
				inputEvent := processor.ProcessSDLEvent(event)
				if inputEvent == nil {
					continue
				}

				if inputEvent.Pressed {
					c.handleButton(inputEvent, &running, &result, &cancelled)
				} else {
					c.directionalInput.SetHeld(inputEvent.Button, false)
				}
			}
		}

		c.handleDirectionalRepeats()

		if window.Background != nil {
			window.RenderBackground()
		} else {
			bg := internal.GetTheme().BackgroundColor
			renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
			renderer.Clear()
		}

		c.render(renderer, title)
		window.Present()
	}

	if cancelled {
		return nil, ErrCancelled
	}

	result.Selected = c.selection.Index()
	return &result, nil
}

func (c *carouselController) handleButton(inputEvent *internal.Event, running *bool, result *CarouselResult, cancelled *bool) {
	if c.now().Sub(c.lastInputTime) < c.inputDelay {
		return
	}
	c.lastInputTime = c.now()

	switch inputEvent.Button {
	case constants.VirtualButtonLeft:
		c.directionalInput.SetHeld(inputEvent.Button, true)
		c.selection.SelectPrevious()

	case constants.VirtualButtonRight:
		c.directionalInput.SetHeld(inputEvent.Button, true)
		c.selection.SelectNext()

	case constants.VirtualButtonA:
		*running = false
		result.Action = CarouselActionSelected

	case constants.VirtualButtonB:
		if !c.settings.DisableBackButton {
			*running = false
			*cancelled = true
		}

	default:
		if inputEvent.Button == c.settings.ConfirmButton {
			*running = false
			result.Action = CarouselActionConfirmed
		}
	}
}

func (c *carouselController) handleDirectionalRepeats() {
	switch c.directionalInput.Update() {
	case internal.DirectionLeft:
		c.selection.SelectPrevious()
	case internal.DirectionRight:
		c.selection.SelectNext()
	}
}

// handleTap dispatches a pointer press: chevrons first, then item tiles
// nearest the selection first so overlapping edges resolve to the tile
// drawn on top.
func (c *carouselController) handleTap(x, y int32) {
	if c.selection.CanSelectPrevious() && pointInRect(x, y, c.prevRect) {
		c.selection.SelectPrevious()
		return
	}
	if c.selection.CanSelectNext() && pointInRect(x, y, c.nextRect) {
		c.selection.SelectNext()
		return
	}

	for _, i := range c.drawOrder() {
		if pointInRect(x, y, c.itemRects[i]) {
			c.selection.Select(i)
			return
		}
	}
}

// drawOrder returns item indices sorted farthest-from-selection first,
// so closer items render on top. Iterated in reverse for hit testing.
func (c *carouselController) drawOrder() []int {
	selected := c.selection.Index()
	order := make([]int, 0, c.store.Len())

	// Walk inward from both ends toward the selection
	left, right := 0, c.store.Len()-1
	for left < selected || right > selected {
		if selected-left >= right-selected {
			order = append(order, left)
			left++
		} else {
			order = append(order, right)
			right--
		}
	}
	order = append(order, selected)

	// Hit testing wants nearest first
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

func (c *carouselController) render(renderer *sdl.Renderer, title string) {
	window := internal.GetWindow()
	theme := internal.GetTheme()
	scaleFactor := internal.GetScaleFactor()
	at := c.now()

	screenPad := internal.UniformPadding(int32(float32(20) * scaleFactor))

	if title != "" && internal.Fonts.ExtraLargeFont != nil {
		internal.RenderText(renderer, internal.Fonts.ExtraLargeFont, title, screenPad.Left, screenPad.Top, theme.TextColor)
	}

	itemSize := int32(float32(carouselItemBaseSize) * scaleFactor)
	anchorX := (window.GetWidth() - itemSize) / 2
	centerY := window.GetHeight() / 2
	selected := c.selection.Index()

	// Farthest items first so nearer tiles overlap them
	order := c.drawOrder()
	for n := len(order) - 1; n >= 0; n-- {
		i := order[n]
		item := c.store.At(i)
		tr := c.displayedTransform(i, at)

		w := int32(float64(itemSize) * tr.Scale)
		if w < 1 {
			w = 1
		}
		centerX := anchorX + itemSize/2 + int32(tr.OffsetX*float64(scaleFactor))

		rect := sdl.Rect{
			X: centerX - w/2,
			Y: centerY - w/2,
			W: w,
			H: w,
		}
		radius := int32(float64(carouselCornerRadius) * float64(scaleFactor) * tr.Scale)

		if i == selected {
			inset := int32(float32(carouselHighlightInset) * scaleFactor)
			ring := sdl.Rect{X: rect.X - inset, Y: rect.Y - inset, W: rect.W + 2*inset, H: rect.H + 2*inset}
			internal.DrawRoundedRect(renderer, &ring, radius+inset, theme.HighlightColor)
		}

		internal.DrawRoundedRect(renderer, &rect, radius, item.Color)
		c.renderItemLabel(renderer, item, rect, tr.Scale)

		c.itemRects[i] = rect
	}

	c.renderChevrons(renderer, window, theme, scaleFactor, centerY)

	if internal.Fonts.SmallFont != nil {
		renderFooter(renderer, internal.Fonts.SmallFont, c.settings.FooterHelpItems, screenPad.Bottom)
	}
}

// renderItemLabel draws the item's label centered in its tile, scaled
// with the tile. Label textures are rendered once and cached; scaling
// happens in the copy so mid-animation frames don't re-rasterize text.
func (c *carouselController) renderItemLabel(renderer *sdl.Renderer, item Item, rect sdl.Rect, scale float64) {
	font := internal.Fonts.MediumFont
	if font == nil || c.textures == nil {
		return
	}

	texture := c.textures.Get(item.Label)
	if texture == nil {
		surface, err := font.RenderUTF8Blended(item.Label, internal.GetTheme().HighlightedTextColor)
		if err != nil {
			return
		}
		texture, err = renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return
		}
		c.textures.Set(item.Label, texture)
	}

	_, _, texW, texH, err := texture.Query()
	if err != nil {
		return
	}

	w := int32(float64(texW) * scale)
	h := int32(float64(texH) * scale)
	if w > rect.W {
		h = h * rect.W / w
		w = rect.W
	}

	renderer.Copy(texture, nil, &sdl.Rect{
		X: rect.X + (rect.W-w)/2,
		Y: rect.Y + (rect.H-h)/2,
		W: w,
		H: h,
	})
}

// renderChevrons draws the pulsing navigation affordances. Each chevron
// exists only while navigation in its direction is possible; both share
// one pulse driver so they breathe in phase.
func (c *carouselController) renderChevrons(renderer *sdl.Renderer, window *internal.Window, theme internal.Theme, scaleFactor float32, centerY int32) {
	pulse := c.pulse.Value()
	size := int32(float64(chevronBaseSize) * float64(scaleFactor) * pulse)
	margin := int32(float32(chevronMargin) * scaleFactor)
	base := int32(float32(chevronBaseSize) * scaleFactor)

	tint := theme.AccentColor

	if c.selection.CanSelectPrevious() {
		// Pulse scales about the chevron's center
		dest := sdl.Rect{
			X: margin + (base-size)/2,
			Y: centerY - size/2,
			W: size,
			H: size,
		}
		c.chevronLeft.SetColorMod(tint.R, tint.G, tint.B)
		renderer.Copy(c.chevronLeft, nil, &dest)
		c.prevRect = sdl.Rect{X: margin, Y: centerY - base/2, W: base, H: base}
	} else {
		c.prevRect = sdl.Rect{}
	}

	if c.selection.CanSelectNext() {
		rightEdge := window.GetWidth() - margin - base
		dest := sdl.Rect{
			X: rightEdge + (base-size)/2,
			Y: centerY - size/2,
			W: size,
			H: size,
		}
		c.chevronRight.SetColorMod(tint.R, tint.G, tint.B)
		renderer.Copy(c.chevronRight, nil, &dest)
		c.nextRect = sdl.Rect{X: rightEdge, Y: centerY - base/2, W: base, H: base}
	} else {
		c.nextRect = sdl.Rect{}
	}
}

func pointInRect(x, y int32, rect sdl.Rect) bool {
	return rect.W > 0 && rect.H > 0 &&
		x >= rect.X && x < rect.X+rect.W &&
		y >= rect.Y && y < rect.Y+rect.H
}
