package layout

import (
	"fmt"
	"slices"
)

// Direction selects the axis a LinearLayout arranges items along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// InsertPolicy selects how AddItemWithPolicy picks the logical index for a
// new item.
type InsertPolicy int

const (
	// InsertAtBottom appends after the last item (the default).
	InsertAtBottom InsertPolicy = iota

	// InsertAtTop inserts before the first item.
	InsertAtTop

	// InsertAlphabetically ranks the item's label against the existing
	// ones; equal labels insert after their equals, so repeated inserts
	// of the same label are stable.
	InsertAlphabetically
)

// LinearLayout arranges items along one axis in a user-controlled logical
// order. The logical order is independent from allocation-id order: ids are
// assigned by registration, logical indices by insertion position, and the
// two may diverge freely.
type LinearLayout struct {
	Layout

	direction Direction
	margin    float32
	unit      float32

	// order[logicalIndex] = allocation id. A permutation of [0, count):
	// exactly one id occupies each logical slot.
	order []int
}

// NewLinear creates a linear layout. The direction is fixed for the
// lifetime of the layout; margin is the fixed spacing between logically
// consecutive items, clamped to be non-negative.
func NewLinear(direction Direction, margin float32) *LinearLayout {
	return &LinearLayout{
		direction: direction,
		margin:    max(margin, 0),
		unit:      DefaultUnit,
	}
}

// Direction returns the layout axis.
func (l *LinearLayout) Direction() Direction { return l.direction }

// Margin returns the inter-item spacing.
func (l *LinearLayout) Margin() float32 { return l.margin }

// AddItem registers an item at the logical end and returns its allocation
// id.
func (l *LinearLayout) AddItem(item Item) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.insertItemLocked(item, len(l.items))
}

// InsertItem registers an item at the given logical index and returns its
// allocation id (not the logical index). The index is normalized into
// [0, ItemsCount()-1]: negative values insert first, overflowing values
// insert last.
func (l *LinearLayout) InsertItem(item Item, index int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.insertItemLocked(item, index)
}

// AddItemWithPolicy registers an item at the logical index resolved from
// the policy. Alphabetical ranking uses the Labeled capability; items
// without a label rank before every labeled one.
func (l *LinearLayout) AddItemWithPolicy(item Item, policy InsertPolicy) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var index int
	switch policy {
	case InsertAtTop:
		index = 0
	case InsertAtBottom:
		index = len(l.items)
	case InsertAlphabetically:
		if item == nil {
			return -1, fmt.Errorf("%w: nil item", ErrInvalidItem)
		}
		index = l.alphabeticalRankLocked(labelOf(item))
	default:
		return -1, fmt.Errorf("%w: policy %d", ErrInvalidPolicy, policy)
	}
	return l.insertItemLocked(item, index)
}

// alphabeticalRankLocked returns the logical index after the last existing
// item whose label compares <= text, scanning items in logical order.
func (l *LinearLayout) alphabeticalRankLocked(text string) int {
	rank := 0
	for i, id := range l.order {
		if labelOf(l.items[id]) <= text {
			rank = i + 1
		}
	}
	return rank
}

func (l *LinearLayout) insertItemLocked(item Item, index int) (int, error) {
	id, err := l.addItemLocked(item)
	if err != nil {
		return id, err
	}

	// Normalize against the count that already includes the new item, then
	// open the logical slot. Inserting into the order table shifts every
	// entry at or past the slot up by one.
	normalized := min(max(0, index), len(l.items)-1)
	l.order = slices.Insert(l.order, normalized, id)
	return id, nil
}

// RemoveItem unregisters an item and keeps the logical order table
// consistent with the id compaction performed by the base registry: every
// table value greater than the removed id is decremented, and the entry
// holding the removed id itself is deleted. Returns the pre-removal id, or
// -1 when the item was not registered.
//
// A table with no entry for the removed id indicates registry corruption;
// the removal still completes, and the inconsistency is logged.
func (l *LinearLayout) RemoveItem(item Item) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	rmID := l.removeItemLocked(item)
	if rmID < 0 {
		return rmID
	}

	logicalOfRm := -1
	for i := range l.order {
		if l.order[i] > rmID {
			l.order[i]--
		} else if l.order[i] == rmID {
			logicalOfRm = i
		}
	}

	if logicalOfRm < 0 {
		Logger().Warn("linear layout order table has no entry for removed item",
			"id", rmID,
			"items", len(l.items))
		return rmID
	}

	l.order = slices.Delete(l.order, logicalOfRm, logicalOfRm+1)
	return rmID
}

// LogicalOrder returns the allocation ids in logical order.
func (l *LinearLayout) LogicalOrder() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.order)
}

// AvailableSize returns the area left for items once the inter-item
// margins are accounted for. Margins are subtracted along the layout axis
// only.
func (l *LinearLayout) AvailableSize(total Box) Size {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.availableSizeLocked(total)
}

func (l *LinearLayout) availableSizeLocked(total Box) Size {
	size := total.Size()
	if len(l.items) < 2 {
		return size
	}
	spacing := float32(len(l.items)-1) * l.margin
	switch l.direction {
	case Horizontal:
		size.W -= spacing
	case Vertical:
		size.H -= spacing
	}
	return size
}

// DefaultItemBox returns the box an item would receive if every one of
// count items had no minimum and equal stretch: the area is split evenly
// along the layout axis and passed through on the cross axis. The
// direction enumeration is closed, but an out-of-range value is still
// guarded and fails with ErrInvalidDirection.
func (l *LinearLayout) DefaultItemBox(area Size, count int) (Size, error) {
	count = max(count, 1)
	slots := make([]Slot, count)
	for i := range slots {
		slots[i].Stretch = 1
	}

	switch l.direction {
	case Horizontal:
		return Size{W: DistributeUnit(area.W, slots, l.unit)[0], H: area.H}, nil
	case Vertical:
		return Size{W: area.W, H: DistributeUnit(area.H, slots, l.unit)[0]}, nil
	}
	return Size{}, fmt.Errorf("%w: direction %d", ErrInvalidDirection, l.direction)
}

// Recompute computes a box for every registered item against the given
// area and returns the placements in logical order. The layout state is
// not touched; callers deliver the geometry themselves, or use Apply.
func (l *LinearLayout) Recompute(area Box) ([]Placement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	placements, _, err := l.recomputeLocked(area, false)
	return placements, err
}

// Apply recomputes geometry for the given area and pushes each box to its
// item. The instance lock is released before any AssignGeometry call.
func (l *LinearLayout) Apply(area Box) error {
	l.mu.Lock()
	placements, items, err := l.recomputeLocked(area, true)
	l.mu.Unlock()
	if err != nil {
		return err
	}
	push(placements, items)
	return nil
}

func (l *LinearLayout) recomputeLocked(area Box, snapshot bool) ([]Placement, []Item, error) {
	n := len(l.items)
	if n == 0 {
		return nil, nil, nil
	}

	// One slot per item, in logical order. The floor along the axis is the
	// item's minimum size, raised to its size hint when the hint is valid;
	// stretch is uniform so extra space splits evenly.
	slots := make([]Slot, n)
	for i, id := range l.order {
		item := l.items[id]
		minSize := item.MinimumSize()
		hint := item.SizeHint()

		var floor float32
		switch l.direction {
		case Horizontal:
			floor = minSize.W
			if hint.Valid() {
				floor = max(floor, hint.W)
			}
		case Vertical:
			floor = minSize.H
			if hint.Valid() {
				floor = max(floor, hint.H)
			}
		default:
			return nil, nil, fmt.Errorf("%w: direction %d", ErrInvalidDirection, l.direction)
		}
		slots[i] = Slot{Min: floor, Stretch: 1}
	}

	avail := l.availableSizeLocked(area)
	var sizes []float32
	if l.direction == Horizontal {
		sizes = DistributeUnit(avail.W, slots, l.unit)
	} else {
		sizes = DistributeUnit(avail.H, slots, l.unit)
	}

	placements := make([]Placement, n)
	var items []Item
	if snapshot {
		items = acquireItemSlice(n)
	}

	var cursor float32
	for i, id := range l.order {
		var box Box
		if l.direction == Horizontal {
			box = Box{X: area.X + cursor, Y: area.Y, W: sizes[i], H: area.H}
		} else {
			box = Box{X: area.X, Y: area.Y + cursor, W: area.W, H: sizes[i]}
		}
		cursor += sizes[i] + l.margin

		placements[i] = Placement{ID: id, Box: box}
		if snapshot {
			items[i] = l.items[id]
		}
	}
	return placements, items, nil
}
