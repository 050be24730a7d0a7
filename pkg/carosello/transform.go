package carosello

import "math"

// Visual mapper constants. Distances are in carousel positions,
// offsets in logical pixels at the baseline layout width.
const (
	MaxScale    = 1.0   // Scale of the selected item
	MinScale    = 0.3   // Floor for far-away items
	ScaleStep   = 0.2   // Scale lost per position of distance
	ItemSpacing = 180.0 // Horizontal distance between adjacent item anchors
)

// Transform is the visual placement of one item relative to the
// centered anchor: a uniform scale and a signed horizontal offset.
type Transform struct {
	Scale   float64
	OffsetX float64
}

// TransformFor maps (item position, selected position) to the item's
// target transform. Pure and stateless; the controller re-evaluates it
// for every item whenever the selection changes.
func TransformFor(index, selected int) Transform {
	return Transform{
		Scale:   ScaleFor(index, selected),
		OffsetX: OffsetXFor(index, selected),
	}
}

// ScaleFor computes an item's scale from its distance to the selection:
// 1.0 at the selection, shrinking by ScaleStep per position, floored at
// MinScale.
func ScaleFor(index, selected int) float64 {
	distance := math.Abs(float64(index - selected))
	scale := MaxScale - distance*ScaleStep
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}

// OffsetXFor computes an item's signed displacement from the centered
// anchor (containerWidth/2 - itemWidth/2).
func OffsetXFor(index, selected int) float64 {
	return float64(index-selected) * ItemSpacing
}
