package layout

import "sync"

// Geometry pushes snapshot the item list under the instance lock and walk
// the copy after releasing it. Pooling those short-lived slices keeps a
// busy resize loop from allocating on every pass.
//
// Usage:
//
//	items := acquireItemSlice(len(l.items))
//	copy(items, l.items)
//	... unlock, push geometry ...
//	releaseItemSlice(items)

var itemSlicePool = sync.Pool{
	New: func() any {
		return make([]Item, 0, 16)
	},
}

// acquireItemSlice gets an item slice from the pool with len == n.
// Caller must call releaseItemSlice when done.
func acquireItemSlice(n int) []Item {
	slice := itemSlicePool.Get().([]Item)
	if cap(slice) < n {
		itemSlicePool.Put(slice[:0])
		return make([]Item, n, n*2)
	}
	return slice[:n]
}

// releaseItemSlice returns a slice to the pool. The slice must not be used
// after the call.
func releaseItemSlice(slice []Item) {
	if slice == nil {
		return
	}
	for i := range slice {
		slice[i] = nil
	}
	// Cap what we pool so one huge layout doesn't pin memory.
	if cap(slice) <= 256 {
		itemSlicePool.Put(slice[:0])
	}
}
