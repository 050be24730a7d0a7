package carosello

import (
	"github.com/BrandonKowalski/carosello/pkg/carosello/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem is a button legend entry shown in the footer,
// e.g. {ButtonName: "A", HelpText: "Select"}.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// renderFooter draws the button legend along the bottom edge: a pill per
// button name followed by its help text, the whole row centered.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomMargin int32) {
	if len(items) == 0 || font == nil {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	scaleFactor := internal.GetScaleFactor()

	pillPaddingX := int32(float32(14) * scaleFactor)
	pillPaddingY := int32(float32(4) * scaleFactor)
	labelGap := int32(float32(10) * scaleFactor)
	itemGap := int32(float32(30) * scaleFactor)

	fontHeight := int32(font.Height())
	pillHeight := fontHeight + 2*pillPaddingY

	// Measure the full row first so it can be centered.
	totalWidth := int32(0)
	for i, item := range items {
		pillWidth := internal.TextWidth(font, item.ButtonName) + 2*pillPaddingX
		totalWidth += pillWidth + labelGap + internal.TextWidth(font, item.HelpText)
		if i < len(items)-1 {
			totalWidth += itemGap
		}
	}

	x := (window.GetWidth() - totalWidth) / 2
	y := window.GetHeight() - bottomMargin - pillHeight

	for _, item := range items {
		pillWidth := internal.TextWidth(font, item.ButtonName) + 2*pillPaddingX

		pillRect := &sdl.Rect{X: x, Y: y, W: pillWidth, H: pillHeight}
		internal.DrawRoundedRect(renderer, pillRect, pillHeight/2, theme.AccentColor)
		internal.RenderText(renderer, font, item.ButtonName, x+pillPaddingX, y+pillPaddingY, theme.ButtonLabelColor)
		x += pillWidth + labelGap

		w, _ := internal.RenderText(renderer, font, item.HelpText, x, y+pillPaddingY, theme.TextColor)
		x += w + itemGap
	}
}
