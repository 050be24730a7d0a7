package carosello

import (
	"time"

	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/BrandonKowalski/carosello/pkg/carosello/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// MessageOption is one selectable choice in a confirmation message.
type MessageOption struct {
	DisplayName string
	Value       interface{}
}

// MessageSettings configures the ConfirmationMessage component.
type MessageSettings struct {
	ConfirmButton     constants.VirtualButton // Default: VirtualButtonA
	BackButton        constants.VirtualButton // Default: VirtualButtonB
	DisableBackButton bool
	InitialSelection  int
	FooterHelpItems   []FooterHelpItem
}

// MessageResult is the choice the user confirmed.
type MessageResult struct {
	SelectedIndex int
	SelectedValue interface{}
}

type messageController struct {
	message       string
	options       []MessageOption
	selection     *SelectionState
	settings      MessageSettings
	lastInputTime time.Time
	confirmed     bool
	cancelled     bool
}

// ConfirmationMessage displays a message with horizontally selectable
// options. Left/right move the selection (clamped at the ends, matching
// the carousel's navigation), the confirm button accepts, the back
// button cancels with ErrCancelled.
func ConfirmationMessage(message string, options []MessageOption, settings MessageSettings) (*MessageResult, error) {
	if len(options) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonA
	}
	if settings.BackButton == constants.VirtualButtonUnassigned {
		settings.BackButton = constants.VirtualButtonB
	}

	controller := &messageController{
		message:       message,
		options:       options,
		selection:     NewSelectionState(len(options), settings.InitialSelection, nil),
		settings:      settings,
		lastInputTime: time.Now(),
	}

	for controller.handleEvents() {
		controller.render(renderer, window)
		window.Present()
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}

	index := controller.selection.Index()
	return &MessageResult{
		SelectedIndex: index,
		SelectedValue: controller.options[index].Value,
	}, nil
}

func (c *messageController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || !inputEvent.Pressed {
				continue
			}

			if time.Since(c.lastInputTime) < constants.DefaultInputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			switch inputEvent.Button {
			case constants.VirtualButtonLeft:
				c.selection.SelectPrevious()
			case constants.VirtualButtonRight:
				c.selection.SelectNext()
			case c.settings.ConfirmButton, constants.VirtualButtonStart:
				c.confirmed = true
				return false
			case c.settings.BackButton:
				if !c.settings.DisableBackButton {
					c.cancelled = true
					return false
				}
			}
		}
	}
	return true
}

func (c *messageController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	if window.Background != nil {
		window.RenderBackground()
	} else {
		renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
		renderer.Clear()
	}

	messageFont := internal.Fonts.SmallFont
	optionFont := internal.Fonts.MediumFont
	if messageFont == nil || optionFont == nil {
		return
	}

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	maxMessageWidth := int32(float64(windowWidth) * 0.75)
	lines := internal.WrapText(messageFont, c.message, maxMessageWidth)

	lineHeight := int32(messageFont.Height())
	lineSpacing := lineHeight / 5
	messageHeight := int32(len(lines))*lineHeight + int32(len(lines)-1)*lineSpacing
	spacing := int32(30)
	optionHeight := int32(optionFont.Height())

	y := (windowHeight - messageHeight - spacing - optionHeight) / 2
	for _, line := range lines {
		internal.RenderTextAligned(renderer, messageFont, line, 0, y, windowWidth, theme.TextColor, constants.TextAlignCenter)
		y += lineHeight + lineSpacing
	}

	c.renderOptions(renderer, windowWidth/2, y+spacing, optionFont)

	renderFooter(renderer, internal.Fonts.SmallFont, c.settings.FooterHelpItems, 20)
}

// renderOptions draws "<  One  |  Two  >" with the selection highlighted.
// The arrows mirror the carousel chevrons: each shows only while
// navigation in its direction is possible.
func (c *messageController) renderOptions(renderer *sdl.Renderer, centerX, y int32, font *ttf.Font) {
	theme := internal.GetTheme()

	arrowColor := theme.AccentColor
	selectedColor := theme.TextColor
	unselectedColor := theme.HintColor

	leftArrow := "<  "
	rightArrow := "  >"
	separator := "  |  "

	leftArrowWidth := internal.TextWidth(font, leftArrow)
	rightArrowWidth := internal.TextWidth(font, rightArrow)
	separatorWidth := internal.TextWidth(font, separator)

	totalWidth := leftArrowWidth + rightArrowWidth
	for i, opt := range c.options {
		totalWidth += internal.TextWidth(font, opt.DisplayName)
		if i < len(c.options)-1 {
			totalWidth += separatorWidth
		}
	}

	x := centerX - totalWidth/2

	if c.selection.CanSelectPrevious() {
		internal.RenderText(renderer, font, leftArrow, x, y, arrowColor)
	}
	x += leftArrowWidth

	for i, opt := range c.options {
		color := unselectedColor
		if i == c.selection.Index() {
			color = selectedColor
		}
		w, _ := internal.RenderText(renderer, font, opt.DisplayName, x, y, color)
		x += w

		if i < len(c.options)-1 {
			internal.RenderText(renderer, font, separator, x, y, unselectedColor)
			x += separatorWidth
		}
	}

	if c.selection.CanSelectNext() {
		internal.RenderText(renderer, font, rightArrow, x, y, arrowColor)
	}
}
