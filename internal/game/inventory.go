package game

import "strings"

// Item is a carryable object. Weapon power and armor are zero for plain
// loot.
type Item struct {
	Name        string `json:"name"`
	Value       int    `json:"value,omitempty"`
	WeaponPower int    `json:"weapon_power,omitempty"`
	Armor       int    `json:"armor,omitempty"`
}

// Inventory is an ordered collection of items. Order is insertion order
// so drop-all scatters items predictably. Name lookups are
// case-insensitive; player input arrives lowercased.
type Inventory struct {
	items []*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends an item.
func (inv *Inventory) Add(item *Item) {
	inv.items = append(inv.items, item)
}

// Remove removes and returns the first item matching name, or nil.
func (inv *Inventory) Remove(name string) *Item {
	for i, item := range inv.items {
		if strings.EqualFold(item.Name, name) {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return item
		}
	}
	return nil
}

// Find returns the first item matching name, or nil.
func (inv *Inventory) Find(name string) *Item {
	for _, item := range inv.items {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}

// RemoveAll empties the inventory and returns everything that was in it.
func (inv *Inventory) RemoveAll() []*Item {
	items := inv.items
	inv.items = nil
	return items
}

// Items returns the items in insertion order. The slice is shared; do
// not mutate it.
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// Len returns the number of items held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}
