package internal

import (
	"os"

	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window, fonts, and input processing.
// The carousel is a landscape surface: the host display is asked to lock
// to landscape before the window exists. The hint is fire-and-forget; on
// platforms without orientation control it is a no-op.
func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) {
	sdl.SetHint(sdl.HINT_ORIENTATIONS, "LandscapeLeft LandscapeRight")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts(DefaultFontSizes)

	if !constants.IsDevMode() && !pbc.IsZero() {
		window.initPowerButtonHandling(pbc)
	}
}

// SDLCleanup releases everything Init acquired, in reverse order.
func SDLCleanup() {
	window.closeWindow()
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
