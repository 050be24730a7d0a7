package internal

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the UI toolkit.
// Colors are typically loaded from CFW theme files or a TOML override.
type Theme struct {
	HighlightColor       sdl.Color // Selected item border, footer button background
	AccentColor          sdl.Color // Pills, navigation chevrons
	ButtonLabelColor     sdl.Color // Button label text (inside pills)
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted items
	HintColor            sdl.Color // Help text
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the toolkit.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// themeFile is the on-disk TOML representation of a theme override.
// Colors are 0xRRGGBB values; zero-valued fields keep the base theme's color.
type themeFile struct {
	HighlightColor       uint32 `toml:"highlight_color"`
	AccentColor          uint32 `toml:"accent_color"`
	ButtonLabelColor     uint32 `toml:"button_label_color"`
	TextColor            uint32 `toml:"text_color"`
	HighlightedTextColor uint32 `toml:"highlighted_text_color"`
	HintColor            uint32 `toml:"hint_color"`
	BackgroundColor      uint32 `toml:"background_color"`
	FontPath             string `toml:"font_path"`
	BackgroundImagePath  string `toml:"background_image_path"`
}

// LoadThemeFile applies a TOML theme override on top of a base theme.
// Fields absent from the file retain the base theme's values.
func LoadThemeFile(path string, base Theme) (Theme, error) {
	var tf themeFile
	meta, err := toml.DecodeFile(path, &tf)
	if err != nil {
		return base, fmt.Errorf("theme file %s: %w", path, err)
	}

	theme := base
	if meta.IsDefined("highlight_color") {
		theme.HighlightColor = HexToColor(tf.HighlightColor)
	}
	if meta.IsDefined("accent_color") {
		theme.AccentColor = HexToColor(tf.AccentColor)
	}
	if meta.IsDefined("button_label_color") {
		theme.ButtonLabelColor = HexToColor(tf.ButtonLabelColor)
	}
	if meta.IsDefined("text_color") {
		theme.TextColor = HexToColor(tf.TextColor)
	}
	if meta.IsDefined("highlighted_text_color") {
		theme.HighlightedTextColor = HexToColor(tf.HighlightedTextColor)
	}
	if meta.IsDefined("hint_color") {
		theme.HintColor = HexToColor(tf.HintColor)
	}
	if meta.IsDefined("background_color") {
		theme.BackgroundColor = HexToColor(tf.BackgroundColor)
	}
	if tf.FontPath != "" {
		theme.FontPath = tf.FontPath
	}
	if tf.BackgroundImagePath != "" {
		theme.BackgroundImagePath = tf.BackgroundImagePath
	}

	return theme, nil
}
