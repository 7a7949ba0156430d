package layout

// Size is a width/height pair in layout units.
type Size struct {
	W float32
	H float32
}

// Valid reports whether the size carries usable dimensions. Items return an
// invalid size from SizeHint to mean "no preference".
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Box is an axis-aligned rectangle: origin at the top-left corner, extents
// in layout units.
type Box struct {
	X float32
	Y float32
	W float32
	H float32
}

// Size returns the extents of the box.
func (b Box) Size() Size {
	return Size{W: b.W, H: b.H}
}

// Placement pairs an allocation id with the box computed for it during a
// recompute pass.
type Placement struct {
	ID  int
	Box Box
}
