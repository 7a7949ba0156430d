package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubItem is the test double for an externally owned widget. It records
// every geometry assignment so tests can check push counts.
type stubItem struct {
	name     string
	hint     Size
	min      Size
	area     Box
	assigned int
}

func (s *stubItem) SizeHint() Size     { return s.hint }
func (s *stubItem) MinimumSize() Size  { return s.min }
func (s *stubItem) RenderingArea() Box { return s.area }

func (s *stubItem) AssignGeometry(b Box) {
	s.area = b
	s.assigned++
}
func (s *stubItem) Label() string { return s.name }

func TestAddItemAssignsDenseIDs(t *testing.T) {
	var l Layout

	for want := 0; want < 3; want++ {
		id, err := l.AddItem(&stubItem{})
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
	assert.Equal(t, 3, l.ItemsCount())
}

func TestAddItemNil(t *testing.T) {
	var l Layout

	id, err := l.AddItem(nil)

	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.Equal(t, -1, id)
	assert.Equal(t, 0, l.ItemsCount())
}

func TestRemoveItemUnknown(t *testing.T) {
	var l Layout
	_, err := l.AddItem(&stubItem{name: "kept"})
	require.NoError(t, err)

	id := l.RemoveItem(&stubItem{name: "stranger"})

	assert.Equal(t, -1, id)
	assert.Equal(t, 1, l.ItemsCount())
}

func TestRemoveItemRelabels(t *testing.T) {
	var l Layout
	a, b, c := &stubItem{name: "a"}, &stubItem{name: "b"}, &stubItem{name: "c"}
	for _, it := range []*stubItem{a, b, c} {
		_, err := l.AddItem(it)
		require.NoError(t, err)
	}

	// Removing the middle item shifts the last one down to its id.
	assert.Equal(t, 1, l.RemoveItem(b))
	assert.Equal(t, 2, l.ItemsCount())

	got, err := l.Item(1)
	require.NoError(t, err)
	assert.Same(t, c, got)

	// The former id 2 no longer exists.
	_, err = l.Item(2)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// And the shifted item removes under its new id.
	assert.Equal(t, 1, l.RemoveItem(c))
	assert.Equal(t, 0, l.RemoveItem(a))
	assert.Equal(t, 0, l.ItemsCount())
}

func TestDensityInvariant(t *testing.T) {
	var l Layout
	items := make([]*stubItem, 8)
	for i := range items {
		items[i] = &stubItem{}
		_, err := l.AddItem(items[i])
		require.NoError(t, err)
	}

	// Remove in an arbitrary interleaving; after every operation the live
	// ids must be exactly [0, count).
	for _, victim := range []int{3, 0, 5, 7, 1} {
		l.RemoveItem(items[victim])

		count := l.ItemsCount()
		for id := 0; id < count; id++ {
			got, err := l.Item(id)
			require.NoError(t, err, "id %d missing with %d items", id, count)
			require.NotNil(t, got)
		}
		_, err := l.Item(count)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}
