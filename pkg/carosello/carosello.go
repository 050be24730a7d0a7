// Package carosello provides a small UI toolkit for building graphical
// applications on embedded Linux devices, particularly handheld gaming
// consoles running custom firmware like Cannoli.
//
// Its centerpiece is the Carousel component: a horizontally arranged,
// selectable item carousel with animated scale/position transitions and
// pulsing navigation chevrons. The package also handles SDL
// initialization, input processing, theming, and logging.
package carosello

import (
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/BrandonKowalski/carosello/pkg/carosello/internal"
	"github.com/BrandonKowalski/carosello/pkg/carosello/platform/cannoli"
)

// Options configures toolkit initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color (0 keeps the theme default)
	ThemeFilePath        string                 // Optional TOML theme override file
	PowerButton          PowerButtonOptions     // Power button handling (zero value disables it)
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	FlipFaceButtons      bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
}

// PowerButtonOptions wires the device power button to suspend/shutdown.
type PowerButtonOptions struct {
	DevicePath      string // evdev device, e.g. /dev/input/event1
	SuspendScript   string // Run on short press
	ShutdownCommand string // Run on long press
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other carosello functions.
// Before the window is created, the host display is asked to lock to
// landscape orientation (left or right).
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	// Set face button flip preference before input events are processed
	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	theme := cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf")

	themeFilePath := options.ThemeFilePath
	if v := os.Getenv(constants.ThemeFileEnvVar); v != "" {
		themeFilePath = v
	}
	if themeFilePath != "" {
		loaded, err := internal.LoadThemeFile(themeFilePath, theme)
		if err != nil {
			internal.GetInternalLogger().Warn("Theme override not applied", "error", err)
		} else {
			theme = loaded
		}
	}

	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	pbc := internal.PowerButtonConfig{}
	if options.PowerButton.DevicePath != "" {
		pbc = internal.PowerButtonConfig{
			ButtonCode:      116, // KEY_POWER
			DevicePath:      options.PowerButton.DevicePath,
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   options.PowerButton.SuspendScript,
			ShutdownCommand: options.PowerButton.ShutdownCommand,
		}
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc)
}

// Close releases all SDL resources and shuts down the toolkit.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetFlipFaceButtons enables or disables direct face button mapping.
// When true, uses A=A, B=B, X=X, Y=Y instead of the default Nintendo-style swap.
// Call before Init() to take effect.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
