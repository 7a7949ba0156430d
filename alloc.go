package layout

import "math"

// Slot describes one stripe competing for space in a fair allocation: a
// linear layout item, or a grid row or column.
type Slot struct {
	// Min is the space the slot receives unconditionally.
	Min float32

	// Stretch is the relative weight used to split space beyond the
	// minimums. A slot with stretch 0 receives no extra space unless every
	// slot has stretch 0.
	Stretch float32
}

// DefaultUnit is the rounding granularity of Distribute: one layout unit
// (a pixel for screen-space layouts).
const DefaultUnit float32 = 1

// Distribute splits total across the slots with the default unit.
// See DistributeUnit.
func Distribute(total float32, slots []Slot) []float32 {
	return DistributeUnit(total, slots, DefaultUnit)
}

// DistributeUnit returns one size per slot. The sizes sum to exactly total
// when total covers the slot minimums; otherwise every slot receives its
// minimum and the container overflows.
//
// Space beyond the minimums is split proportionally to stretch weight. When
// every weight is 0, or there is a single slot, the extra space is split
// evenly instead. Each share is truncated to a multiple of unit; leftover
// whole units go to the earliest slots in input order, and any sub-unit
// residue goes to the first slot so the sum stays exact. No slot ends up
// below its minimum.
func DistributeUnit(total float32, slots []Slot, unit float32) []float32 {
	n := len(slots)
	if n == 0 {
		return nil
	}
	if unit <= 0 {
		unit = DefaultUnit
	}

	sizes := make([]float32, n)
	var sumMin float32
	for i, s := range slots {
		sizes[i] = s.Min
		sumMin += s.Min
	}

	remainder := total - sumMin
	if remainder <= 0 {
		// Overflow permitted: the minimums stand and the caller's
		// container simply overflows.
		return sizes
	}

	var totalStretch float32
	for _, s := range slots {
		if s.Stretch > 0 {
			totalStretch += s.Stretch
		}
	}

	extras := make([]float32, n)
	if totalStretch == 0 || n == 1 {
		even := remainder / float32(n)
		for i := range extras {
			extras[i] = even
		}
	} else {
		for i, s := range slots {
			if s.Stretch > 0 {
				extras[i] = remainder * s.Stretch / totalStretch
			}
		}
	}

	// Truncate each share to the unit, then hand the leftover back out one
	// unit at a time starting from the first slot.
	var assigned float32
	for i := range extras {
		extras[i] = float32(math.Floor(float64(extras[i]/unit))) * unit
		assigned += extras[i]
	}
	leftover := remainder - assigned
	for i := 0; leftover >= unit; i = (i + 1) % n {
		extras[i] += unit
		leftover -= unit
	}
	if leftover > 0 {
		// Sub-unit residue from a total that is not unit-aligned.
		extras[0] += leftover
	}

	for i := range sizes {
		sizes[i] += extras[i]
	}
	return sizes
}
