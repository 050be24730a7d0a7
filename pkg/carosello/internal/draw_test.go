package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	require.Equal(t, sdl.Color{R: 0xF4, G: 0x43, B: 0x36, A: 255}, HexToColor(0xF44336))
	require.Equal(t, sdl.Color{R: 0, G: 0, B: 0, A: 255}, HexToColor(0x000000))
	require.Equal(t, sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 255}, HexToColor(0xFFFFFF))
}

func TestMin32(t *testing.T) {
	require.Equal(t, int32(3), Min32(3, 7))
	require.Equal(t, int32(3), Min32(7, 3))
	require.Equal(t, int32(-2), Min32(-2, 0))
}

func TestGetScaleFactorWithoutWindow(t *testing.T) {
	// Before SDL init there is no window; drawing helpers fall back to
	// the unscaled baseline.
	require.Equal(t, float32(1.0), GetScaleFactor())
}
