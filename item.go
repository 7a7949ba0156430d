package layout

// Item is the capability a widget exposes to the layout engine. The engine
// holds a non-owning reference: it never creates or destroys the object
// behind the interface, and removing an item from a layout leaves the item
// itself untouched.
//
// SizeHint may return an invalid size (see Size.Valid) to mean the item has
// no preferred size. RenderingArea returns the current geometry, which is
// the zero Box until the first AssignGeometry call.
type Item interface {
	SizeHint() Size
	MinimumSize() Size
	RenderingArea() Box
	AssignGeometry(Box)
}

// Labeled is an optional capability for items carrying a display label.
// LinearLayout uses it to resolve alphabetical insertion, SelectorLayout to
// activate an item by name. Items without a label sort before every labeled
// one.
type Labeled interface {
	Label() string
}

func labelOf(item Item) string {
	if l, ok := item.(Labeled); ok {
		return l.Label()
	}
	return ""
}
