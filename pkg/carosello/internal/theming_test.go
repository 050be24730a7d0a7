package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThemeFileOverridesOnlyDefinedFields(t *testing.T) {
	base := Theme{
		AccentColor:     sdl.Color{R: 0x00, G: 0x7A, B: 0xFF, A: 255},
		TextColor:       sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 255},
		BackgroundColor: sdl.Color{R: 0x00, G: 0x00, B: 0x00, A: 255},
		FontPath:        "/mnt/SDCARD/System/fonts/Cannoli.ttf",
	}

	path := writeThemeFile(t, `
accent_color = 0xF44336
font_path = "/usr/share/fonts/custom.ttf"
`)

	theme, err := LoadThemeFile(path, base)
	require.NoError(t, err)

	require.Equal(t, sdl.Color{R: 0xF4, G: 0x43, B: 0x36, A: 255}, theme.AccentColor)
	require.Equal(t, "/usr/share/fonts/custom.ttf", theme.FontPath)

	// Undefined fields keep the base theme
	require.Equal(t, base.TextColor, theme.TextColor)
	require.Equal(t, base.BackgroundColor, theme.BackgroundColor)
}

func TestLoadThemeFileZeroColorIsHonoredWhenDefined(t *testing.T) {
	base := Theme{BackgroundColor: sdl.Color{R: 0x10, G: 0x10, B: 0x10, A: 255}}

	// An explicit black must override, even though 0 is the zero value
	path := writeThemeFile(t, "background_color = 0x000000\n")

	theme, err := LoadThemeFile(path, base)
	require.NoError(t, err)
	require.Equal(t, sdl.Color{R: 0, G: 0, B: 0, A: 255}, theme.BackgroundColor)
}

func TestLoadThemeFileMissingFileReturnsBase(t *testing.T) {
	base := Theme{FontPath: "/fonts/base.ttf"}

	theme, err := LoadThemeFile("/nonexistent/theme.toml", base)
	require.Error(t, err)
	require.Equal(t, base, theme)
}

func TestLoadThemeFileMalformedToml(t *testing.T) {
	path := writeThemeFile(t, "accent_color = [not toml")

	_, err := LoadThemeFile(path, Theme{})
	require.Error(t, err)
}
