package carosello

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/BrandonKowalski/carosello/pkg/carosello/internal"
)

func TestNewItemStoreSeedsDefaultItems(t *testing.T) {
	store := NewItemStore()
	require.Equal(t, DefaultItemCount, store.Len())

	for i := 0; i < store.Len(); i++ {
		item := store.At(i)
		require.Equal(t, i, item.ID)
		require.Equal(t, fmt.Sprintf("Item %d", i), item.Label)
	}
}

func TestItemColorsCyclePalette(t *testing.T) {
	store := NewItemStore()

	for i := 0; i < store.Len(); i++ {
		want := internal.HexToColor(constants.PaletteHex[i%len(constants.PaletteHex)])
		require.Equal(t, want, store.At(i).Color)
	}
}

func TestItemsReturnsDisplayOrder(t *testing.T) {
	store := NewItemStore()
	items := store.Items()

	require.Len(t, items, store.Len())
	for i, item := range items {
		require.Equal(t, store.At(i), item)
	}
}
