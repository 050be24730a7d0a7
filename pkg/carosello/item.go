package carosello

import (
	"github.com/BrandonKowalski/carosello/pkg/carosello/constants"
	"github.com/BrandonKowalski/carosello/pkg/carosello/internal"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultItemCount is the number of items a new store is seeded with.
const DefaultItemCount = 5

var itemLabelMessage = &i18n.Message{
	ID:    "carosello.item_label",
	Other: "Item {{.ID}}",
}

// Item is a single carousel entry. Identity is the ID; the label and
// color derive deterministically from it.
type Item struct {
	ID    int         // 0-based, assigned by the store's counter
	Label string      // Localized display label ("Item N")
	Color sdl.Color   // palette[ID % len(palette)]
	Meta  interface{} // Application-specific data attached to the item
}

// ItemStore is an ordered sequence of items; order is display order.
// Items are appended only during construction, so the store is
// effectively immutable afterwards and always non-empty.
type ItemStore struct {
	items  []Item
	nextID int
}

// NewItemStore creates a store seeded with DefaultItemCount sequential items.
func NewItemStore() *ItemStore {
	store := &ItemStore{}
	for i := 0; i < DefaultItemCount; i++ {
		store.appendItem()
	}
	return store
}

func (s *ItemStore) appendItem() {
	id := s.nextID
	s.nextID++

	s.items = append(s.items, Item{
		ID:    id,
		Label: internal.Localize(itemLabelMessage, map[string]interface{}{"ID": id}),
		Color: internal.HexToColor(constants.PaletteHex[id%len(constants.PaletteHex)]),
	})
}

// Len returns the number of items in the store.
func (s *ItemStore) Len() int {
	return len(s.items)
}

// At returns the item at position index. The caller is responsible for
// bounds; selection state guarantees its index is always valid.
func (s *ItemStore) At(index int) Item {
	return s.items[index]
}

// Items returns the items in display order.
func (s *ItemStore) Items() []Item {
	return s.items
}
