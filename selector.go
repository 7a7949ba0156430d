package layout

import "fmt"

// SelectorLayout stacks all registered items on the same area and shows
// exactly one of them: each recompute hands the active item the full
// available box and leaves the others untouched. The first registered item
// becomes active automatically.
type SelectorLayout struct {
	Layout

	// active is the allocation id of the shown item, -1 while empty.
	active int
}

// NewSelector creates an empty selector layout.
func NewSelector() *SelectorLayout {
	return &SelectorLayout{active: -1}
}

// AddItem registers an item and returns its allocation id. The item
// becomes active when it is the first one.
func (s *SelectorLayout) AddItem(item Item) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.addItemLocked(item)
	if err != nil {
		return id, err
	}
	if s.active < 0 {
		s.active = id
	}
	return id, nil
}

// RemoveItem unregisters an item and returns the allocation id it held, or
// -1 when the item was not registered. Removing the active item hands
// activity to the item now holding its id, clamped to the last item when
// the removed one was last.
func (s *SelectorLayout) RemoveItem(item Item) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rmID := s.removeItemLocked(item)
	if rmID < 0 {
		return rmID
	}
	switch {
	case s.active == rmID:
		s.active = min(s.active, len(s.items)-1)
	case s.active > rmID:
		s.active--
	}
	return rmID
}

// SetActiveItem makes the item holding the given allocation id the shown
// one.
func (s *SelectorLayout) SetActiveItem(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.items) {
		return fmt.Errorf("%w: item %d of %d", ErrOutOfRange, id, len(s.items))
	}
	s.active = id
	return nil
}

// SetActiveItemByLabel makes the first item carrying the given label the
// shown one. Fails with ErrInvalidItem when no registered item carries it.
func (s *SelectorLayout) SetActiveItemByLabel(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, item := range s.items {
		if l, ok := item.(Labeled); ok && l.Label() == label {
			s.active = id
			return nil
		}
	}
	return fmt.Errorf("%w: no item labeled %q", ErrInvalidItem, label)
}

// ActiveItem returns the allocation id of the shown item, -1 while the
// layout is empty.
func (s *SelectorLayout) ActiveItem() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Recompute returns the single placement of the active item: the full
// available area.
func (s *SelectorLayout) Recompute(area Box) ([]Placement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active < 0 {
		return nil, nil
	}
	return []Placement{{ID: s.active, Box: area}}, nil
}

// Apply recomputes geometry and pushes the full area to the active item.
// The instance lock is released before the AssignGeometry call.
func (s *SelectorLayout) Apply(area Box) error {
	s.mu.Lock()
	if s.active < 0 {
		s.mu.Unlock()
		return nil
	}
	placements := []Placement{{ID: s.active, Box: area}}
	items := acquireItemSlice(1)
	items[0] = s.items[s.active]
	s.mu.Unlock()

	push(placements, items)
	return nil
}
