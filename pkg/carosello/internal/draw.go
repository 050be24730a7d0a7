package internal

import (
	"math"
	"strings"

	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// baselineWidth is the logical width the default layout metrics were tuned for.
const baselineWidth = 1280

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// GetScaleFactor returns the UI scale factor relative to the baseline layout
// width. Layout constants are multiplied by this so components keep their
// proportions across different display resolutions.
func GetScaleFactor() float32 {
	win := GetWindow()
	if win == nil {
		return 1.0
	}
	return float32(win.GetWidth()) / float32(baselineWidth)
}

// DrawRoundedRect fills a rectangle with rounded corners.
// The radius is clamped to half the shorter side.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	maxRadius := Min32(rect.W, rect.H) / 2
	if radius > maxRadius {
		radius = maxRadius
	}
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	// Center band
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	// Top and bottom bands with circular corner spans
	for dy := int32(0); dy < radius; dy++ {
		// Horizontal inset of the corner arc at this row
		inset := radius - int32(math.Sqrt(float64(radius*radius-(radius-dy-1)*(radius-dy-1))))

		renderer.FillRect(&sdl.Rect{
			X: rect.X + inset,
			Y: rect.Y + dy,
			W: rect.W - 2*inset,
			H: 1,
		})
		renderer.FillRect(&sdl.Rect{
			X: rect.X + inset,
			Y: rect.Y + rect.H - dy - 1,
			W: rect.W - 2*inset,
			H: 1,
		})
	}
}

// TextWidth measures the rendered width of text in the given font.
func TextWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// RenderText draws a single line of text at (x, y) and returns its size.
// The texture is created and destroyed per call; cache at the call site
// (see TextureCache) when the same string is drawn every frame.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// RenderTextAligned draws a single line of text aligned within [x, x+width).
func RenderTextAligned(renderer *sdl.Renderer, font *ttf.Font, text string, x, y, width int32, color sdl.Color, align constants.TextAlign) {
	textW := TextWidth(font, text)

	var drawX int32
	switch align {
	case constants.TextAlignLeft:
		drawX = x
	case constants.TextAlignCenter:
		drawX = x + (width-textW)/2
	case constants.TextAlignRight:
		drawX = x + width - textW
	}

	RenderText(renderer, font, text, drawX, y, color)
}

// WrapText splits text into lines that fit within maxWidth, breaking on
// word boundaries. Explicit newlines are preserved.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range strings.Fields(paragraph) {
			test := current
			if test != "" {
				test += " "
			}
			test += word

			if TextWidth(font, test) > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
			} else {
				current = test
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}

	return lines
}
