package constants

// PaletteHex is the default carousel item palette as 0xRRGGBB values.
// Item colors are assigned deterministically: palette[id % len(palette)].
// The ordering mirrors the Material primary swatches so items stay visually
// distinct on the small handheld screens carosello targets.
var PaletteHex = []uint32{
	0xF44336, // red
	0x4CAF50, // green
	0x2196F3, // blue
	0xFF9800, // orange
	0x9C27B0, // purple
	0x009688, // teal
	0xFFEB3B, // yellow
	0xE91E63, // pink
}
