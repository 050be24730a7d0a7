package internal

import (
	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// Event is a processed input event carrying the virtual button and its
// pressed state. Raw SDL keyboard, controller, and joystick events are
// normalized into this form so components handle input uniformly.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// flipFaceButtons selects direct face button mapping (A=A, B=B) instead
// of the default Nintendo-style swap. Read from the SDL event loop,
// written from the public API, hence atomic.
var flipFaceButtons = atomic.NewBool(false)

// SetFlipFaceButtons enables or disables direct face button mapping.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons.Store(flip)
}

// InputProcessor maps raw SDL input events to virtual button events.
type InputProcessor struct {
	controllers []*sdl.GameController
}

var inputProcessor *InputProcessor

// InitInputProcessor opens all attached game controllers and prepares
// the default key mapping. Called from Init.
func InitInputProcessor() {
	p := &InputProcessor{}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			GetInternalLogger().Warn("Failed to open game controller", "index", i)
			continue
		}
		GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
		p.controllers = append(p.controllers, controller)
	}

	inputProcessor = p
}

// GetInputProcessor returns the active input processor.
func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

// CloseAllControllers releases every opened game controller.
func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for _, controller := range inputProcessor.controllers {
		controller.Close()
	}
	inputProcessor.controllers = nil
}

// ProcessSDLEvent converts a raw SDL event into a virtual button Event.
// Returns nil for events that don't map to a virtual button, and for
// keyboard auto-repeats (components drive their own repeat timing via
// DirectionalInput).
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat > 0 {
			return nil
		}
		button := keycodeToVirtualButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button := controllerButtonToVirtualButton(e.Button)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}
	}

	return nil
}

func keycodeToVirtualButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_z:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_x:
		return constants.VirtualButtonB
	case sdl.K_a:
		return constants.VirtualButtonX
	case sdl.K_s:
		return constants.VirtualButtonY
	case sdl.K_SPACE:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_m:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

func controllerButtonToVirtualButton(button uint8) constants.VirtualButton {
	switch button {
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return constants.VirtualButtonUp
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return constants.VirtualButtonDown
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return constants.VirtualButtonLeft
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return constants.VirtualButtonRight
	case uint8(sdl.CONTROLLER_BUTTON_A):
		// SDL reports positional labels; handheld CFWs expect the
		// Nintendo-style swap unless the flip preference is set
		if flipFaceButtons.Load() {
			return constants.VirtualButtonA
		}
		return constants.VirtualButtonB
	case uint8(sdl.CONTROLLER_BUTTON_B):
		if flipFaceButtons.Load() {
			return constants.VirtualButtonB
		}
		return constants.VirtualButtonA
	case uint8(sdl.CONTROLLER_BUTTON_X):
		if flipFaceButtons.Load() {
			return constants.VirtualButtonX
		}
		return constants.VirtualButtonY
	case uint8(sdl.CONTROLLER_BUTTON_Y):
		if flipFaceButtons.Load() {
			return constants.VirtualButtonY
		}
		return constants.VirtualButtonX
	case uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):
		return constants.VirtualButtonL1
	case uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER):
		return constants.VirtualButtonR1
	case uint8(sdl.CONTROLLER_BUTTON_START):
		return constants.VirtualButtonStart
	case uint8(sdl.CONTROLLER_BUTTON_BACK):
		return constants.VirtualButtonSelect
	case uint8(sdl.CONTROLLER_BUTTON_GUIDE):
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
