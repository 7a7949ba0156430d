package layout

import (
	"fmt"
	"sync"
)

// Layout is the base item registry shared by every layout flavor. It owns
// the list of registered items and assigns each a dense allocation id:
// after any sequence of additions and removals the live ids are exactly
// [0, ItemsCount()).
//
// All public entry points on a layout are guarded by a single instance
// lock. The lock is never held across a call back into an item, so an
// item's geometry setter may safely trigger a nested layout pass.
type Layout struct {
	mu    sync.Mutex
	items []Item
}

// AddItem registers an item and returns its allocation id, which is the
// item count before the call. A nil item fails with ErrInvalidItem.
func (l *Layout) AddItem(item Item) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addItemLocked(item)
}

func (l *Layout) addItemLocked(item Item) (int, error) {
	if item == nil {
		return -1, fmt.Errorf("%w: nil item", ErrInvalidItem)
	}
	l.items = append(l.items, item)
	return len(l.items) - 1, nil
}

// RemoveItem unregisters an item located by reference equality and returns
// the allocation id it held. Every id greater than the removed one is
// decremented by one so ids stay dense. An unregistered item is not an
// error: RemoveItem returns -1 and performs no mutation.
func (l *Layout) RemoveItem(item Item) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removeItemLocked(item)
}

func (l *Layout) removeItemLocked(item Item) int {
	for id, it := range l.items {
		if it == item {
			l.items = append(l.items[:id], l.items[id+1:]...)
			return id
		}
	}
	return -1
}

// ItemsCount returns the number of registered items.
func (l *Layout) ItemsCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Item returns the item holding the given allocation id.
func (l *Layout) Item(id int) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id < 0 || id >= len(l.items) {
		return nil, fmt.Errorf("%w: item %d of %d", ErrOutOfRange, id, len(l.items))
	}
	return l.items[id], nil
}

// push delivers computed geometry to the snapshotted items. Called after
// the instance lock is released; each item is touched at most once per
// pass, and items whose rendering area already matches are skipped.
func push(placements []Placement, items []Item) {
	for i, p := range placements {
		if items[i].RenderingArea() == p.Box {
			continue
		}
		items[i].AssignGeometry(p.Box)
	}
	releaseItemSlice(items)
}
