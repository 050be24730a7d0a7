package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the toolkit's fonts at the standard UI sizes.
type FontSet struct {
	SmallFont      *ttf.Font
	MediumFont     *ttf.Font
	LargeFont      *ttf.Font
	ExtraLargeFont *ttf.Font
}

// FontSizes configures the point sizes for the standard font set.
type FontSizes struct {
	Small      int
	Medium     int
	Large      int
	ExtraLarge int
}

// DefaultFontSizes are tuned for the baseline 1280px layout width.
var DefaultFontSizes = FontSizes{
	Small:      24,
	Medium:     32,
	Large:      40,
	ExtraLarge: 48,
}

// Fonts is the active font set, populated during Init.
var Fonts FontSet

func initFonts(sizes FontSizes) {
	fontPath := GetTheme().FontPath
	if fontPath == "" {
		GetInternalLogger().Error("No font path configured in theme")
		return
	}

	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(fontPath, size)
		if err != nil {
			GetInternalLogger().Error("Failed to open font", "path", fontPath, "size", size, "error", err)
			return nil
		}
		return font
	}

	Fonts = FontSet{
		SmallFont:      open(sizes.Small),
		MediumFont:     open(sizes.Medium),
		LargeFont:      open(sizes.Large),
		ExtraLargeFont: open(sizes.ExtraLarge),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont, Fonts.ExtraLargeFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
