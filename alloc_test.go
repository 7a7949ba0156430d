package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(sizes []float32) float32 {
	var total float32
	for _, s := range sizes {
		total += s
	}
	return total
}

func TestDistributeExactSum(t *testing.T) {
	tests := []struct {
		name  string
		total float32
		slots []Slot
	}{
		{
			name:  "uniform stretch",
			total: 300,
			slots: []Slot{{Stretch: 1}, {Stretch: 1}, {Stretch: 1}},
		},
		{
			name:  "weighted stretch",
			total: 400,
			slots: []Slot{{Stretch: 1}, {Stretch: 2}, {Stretch: 1}},
		},
		{
			name:  "minimums and stretch",
			total: 100,
			slots: []Slot{{Min: 60, Stretch: 1}, {Stretch: 1}},
		},
		{
			name:  "all zero stretch",
			total: 100,
			slots: []Slot{{}, {}, {}, {}},
		},
		{
			name:  "single slot",
			total: 42,
			slots: []Slot{{}},
		},
		{
			name:  "indivisible total",
			total: 10,
			slots: []Slot{{Stretch: 1}, {Stretch: 1}, {Stretch: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes := Distribute(tt.total, tt.slots)
			require.Len(t, sizes, len(tt.slots))
			assert.InDelta(t, tt.total, sum(sizes), 1e-3)
			for i, s := range sizes {
				assert.GreaterOrEqual(t, s, tt.slots[i].Min, "slot %d below its minimum", i)
			}
		})
	}
}

func TestDistributeOverflow(t *testing.T) {
	slots := []Slot{{Min: 80, Stretch: 1}, {Min: 50, Stretch: 2}}

	sizes := Distribute(100, slots)

	require.Len(t, sizes, 2)
	assert.Equal(t, float32(80), sizes[0])
	assert.Equal(t, float32(50), sizes[1])
}

func TestDistributeStretchProportionality(t *testing.T) {
	// Twice the stretch earns twice the extra space, within one unit.
	slots := []Slot{{Stretch: 2}, {Stretch: 1}}

	for _, total := range []float32{300, 100, 7} {
		sizes := Distribute(total, slots)
		require.Len(t, sizes, 2)
		assert.InDelta(t, total, sum(sizes), 1e-3)
		assert.InDelta(t, 2*sizes[1], sizes[0], float64(DefaultUnit),
			"total %v: %v not twice %v", total, sizes[0], sizes[1])
	}
}

func TestDistributeZeroStretchGetsNoExtra(t *testing.T) {
	slots := []Slot{{Min: 10}, {Stretch: 1}}

	sizes := Distribute(100, slots)

	assert.Equal(t, float32(10), sizes[0])
	assert.Equal(t, float32(90), sizes[1])
}

func TestDistributeEvenSplitWhenAllStretchZero(t *testing.T) {
	sizes := Distribute(100, []Slot{{}, {}, {}, {}})

	assert.Equal(t, []float32{25, 25, 25, 25}, sizes)
}

func TestDistributeRoundingRemainder(t *testing.T) {
	// 10 across three equal slots: leftover units go to the earliest slots.
	sizes := Distribute(10, []Slot{{Stretch: 1}, {Stretch: 1}, {Stretch: 1}})

	assert.Equal(t, []float32{4, 3, 3}, sizes)
}

func TestDistributeSubUnitResidue(t *testing.T) {
	// A total that is not unit-aligned: the residue lands on the first
	// slot so the sum stays exact.
	sizes := Distribute(10.5, []Slot{{Stretch: 1}, {Stretch: 1}})

	assert.Equal(t, []float32{5.5, 5}, sizes)
}

func TestDistributeCustomUnit(t *testing.T) {
	// Unit 10: shares truncate to tens, the leftover unit goes first.
	sizes := DistributeUnit(50, []Slot{{Stretch: 1}, {Stretch: 1}, {Stretch: 1}}, 10)

	assert.Equal(t, []float32{20, 20, 10}, sizes)
	assert.InDelta(t, 50, sum(sizes), 1e-3)
}

func TestDistributeEmpty(t *testing.T) {
	assert.Nil(t, Distribute(100, nil))
}
