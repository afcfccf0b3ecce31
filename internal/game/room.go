package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-errors"
)

// Room is one location in the world. Exits map a direction to a
// destination room id. Definitions are supplied by the (external)
// content generator and loaded through the storage layer.
type Room struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits"`
	Items       []*Item           `json:"items,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	for dir, dest := range r.Exits {
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: destination is required", dir))
		}
	}

	return el.Err()
}

// ExitDirections returns the exit directions in sorted order.
func (r *Room) ExitDirections() []string {
	dirs := make([]string, 0, len(r.Exits))
	for dir := range r.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// AddItem places an item on the room floor.
func (r *Room) AddItem(item *Item) {
	r.Items = append(r.Items, item)
}

// RemoveItem removes and returns the first floor item matching name,
// case-insensitively, or nil.
func (r *Room) RemoveItem(name string) *Item {
	for i, item := range r.Items {
		if strings.EqualFold(item.Name, name) {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return item
		}
	}
	return nil
}
