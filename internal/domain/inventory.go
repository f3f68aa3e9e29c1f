package domain

// InventoryEntry is a single (item, quantity) pair in a player's inventory.
// An absent entry and a zero-quantity entry are equivalent: readers must
// treat both as "the player holds none of this item".
type InventoryEntry struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}
