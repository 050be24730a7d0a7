package carosello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleForSelectedItem(t *testing.T) {
	for i := 0; i < 5; i++ {
		require.Equal(t, 1.0, ScaleFor(i, i), "selected item must render at full scale")
	}
}

func TestScaleForStepsDownWithDistance(t *testing.T) {
	require.Equal(t, 0.8, ScaleFor(1, 2))
	require.Equal(t, 0.8, ScaleFor(3, 2))
	require.Equal(t, 0.6, ScaleFor(0, 2))
	require.Equal(t, 0.6, ScaleFor(4, 2))
}

func TestScaleForClampsAtMinimum(t *testing.T) {
	// Distance 4 would be 0.2 unclamped
	require.Equal(t, MinScale, ScaleFor(0, 4))
	require.Equal(t, MinScale, ScaleFor(10, 0))
}

func TestScaleForIsSymmetricAndMonotonic(t *testing.T) {
	selected := 2
	prev := ScaleFor(selected, selected)
	for d := 1; d <= 6; d++ {
		left := ScaleFor(selected-d, selected)
		right := ScaleFor(selected+d, selected)
		require.Equal(t, left, right, "scale must depend only on distance")
		require.LessOrEqual(t, left, prev, "scale must not increase with distance")
		require.GreaterOrEqual(t, left, MinScale)
		require.LessOrEqual(t, left, MaxScale)
		prev = left
	}
}

func TestOffsetXForSpacing(t *testing.T) {
	require.Equal(t, 0.0, OffsetXFor(2, 2))
	require.Equal(t, -ItemSpacing, OffsetXFor(1, 2))
	require.Equal(t, ItemSpacing, OffsetXFor(3, 2))
	require.Equal(t, -2*ItemSpacing, OffsetXFor(0, 2))
	require.Equal(t, 2*ItemSpacing, OffsetXFor(4, 2))
}

func TestTransformForEndItems(t *testing.T) {
	// With the center item selected, the first and last items sit two
	// slots out at 60% scale.
	first := TransformFor(0, 2)
	require.Equal(t, Transform{Scale: 0.6, OffsetX: -360}, first)

	last := TransformFor(4, 2)
	require.Equal(t, Transform{Scale: 0.6, OffsetX: 360}, last)
}
