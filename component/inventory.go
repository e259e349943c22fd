package component

// InventoryComponent is a simple ordered item list.
// Collectibles, chests and doors interact with the player's inventory.
type InventoryComponent struct {
	Items []string
}

// Has reports whether the inventory contains the named item
func (inv *InventoryComponent) Has(item string) bool {
	for _, it := range inv.Items {
		if it == item {
			return true
		}
	}
	return false
}

// Add appends an item
func (inv *InventoryComponent) Add(item string) {
	inv.Items = append(inv.Items, item)
}

// Remove deletes the first occurrence of item, reporting whether it was found
func (inv *InventoryComponent) Remove(item string) bool {
	for i, it := range inv.Items {
		if it == item {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}
