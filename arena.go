package layout

import (
	"sync"
	"sync/atomic"
)

// ItemID is a stable opaque handle issued by an Arena. Handles survive
// arbitrary register/release sequences; they are never reused within one
// arena.
type ItemID uint64

// Arena is the handle registry the owning widget tree uses to hand items
// to layouts without transferring ownership. The arena stores references
// only: releasing a handle forgets the item, it never destroys the object
// behind it.
//
// An Arena is safe for concurrent use; the zero value is ready.
type Arena struct {
	items  sync.Map // map[ItemID]Item
	nextID atomic.Uint64
	count  atomic.Int64
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Register stores an item and issues its handle. A nil item fails with
// ErrInvalidItem.
func (a *Arena) Register(item Item) (ItemID, error) {
	if item == nil {
		return 0, ErrInvalidItem
	}
	id := ItemID(a.nextID.Add(1))
	a.items.Store(id, item)
	a.count.Add(1)
	return id, nil
}

// Resolve returns the item behind a handle, or nil for a released or
// unknown handle.
func (a *Arena) Resolve(id ItemID) Item {
	if v, ok := a.items.Load(id); ok {
		return v.(Item)
	}
	return nil
}

// Release forgets a handle. The item itself is untouched; releasing an
// unknown handle is a no-op.
func (a *Arena) Release(id ItemID) {
	if _, ok := a.items.LoadAndDelete(id); ok {
		a.count.Add(-1)
	}
}

// Len returns the number of live handles.
func (a *Arena) Len() int {
	return int(a.count.Load())
}

// Walk visits every live handle until fn returns false. Iteration order is
// unspecified.
func (a *Arena) Walk(fn func(ItemID, Item) bool) {
	a.items.Range(func(k, v any) bool {
		return fn(k.(ItemID), v.(Item))
	})
}

// Find returns the handle and item of the first item matching the
// predicate, or (0, nil) when none matches.
func (a *Arena) Find(pred func(Item) bool) (ItemID, Item) {
	var foundID ItemID
	var found Item
	a.Walk(func(id ItemID, item Item) bool {
		if pred(item) {
			foundID, found = id, item
			return false
		}
		return true
	})
	return foundID, found
}
