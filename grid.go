package layout

import (
	"fmt"
	"slices"
)

// LineInfo carries the constraints of one grid line (a row or a column):
// the space it receives unconditionally and its weight when splitting the
// space beyond the minimums.
type LineInfo struct {
	Min     float32
	Stretch float32
}

// cell is an item's placement on the grid, in cell coordinates. Spans are
// at least 1 and never extend past the grid boundary.
type cell struct {
	x, y int
	w, h int
}

// GridLayout arranges items on a 2-D cell grid. Each row and column
// carries an independent minimum size and stretch weight; items may span
// several consecutive lines and receive the union of the space allocated
// to them, so items sharing a column stay axis-aligned regardless of what
// the other rows hold.
type GridLayout struct {
	Layout

	columns int
	rows    int

	columnsInfo []LineInfo
	rowsInfo    []LineInfo

	unit float32

	// locations[id] is the cell placement of the item holding that
	// allocation id. Kept dense alongside the base registry.
	locations []cell
}

// NewGrid creates a grid layout with the given dimensions. Every line
// starts with minimum 0 and stretch 0.
func NewGrid(columns, rows int) *GridLayout {
	g := &GridLayout{unit: DefaultUnit}
	g.SetGrid(columns, rows)
	return g
}

// SetGrid reconfigures the grid dimensions and reinitializes every line to
// {minimum 0, stretch 0}. All previously configured per-line settings are
// discarded; registered items keep their cells, clamped on the next
// recompute if they now fall outside the grid.
func (g *GridLayout) SetGrid(columns, rows int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.columns = max(columns, 0)
	g.rows = max(rows, 0)
	g.columnsInfo = make([]LineInfo, g.columns)
	g.rowsInfo = make([]LineInfo, g.rows)
}

// ColumnCount returns the number of columns.
func (g *GridLayout) ColumnCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.columns
}

// RowCount returns the number of rows.
func (g *GridLayout) RowCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rows
}

// SetColumnHorizontalStretch sets the stretch weight of one column.
func (g *GridLayout) SetColumnHorizontalStretch(column int, stretch float32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if column < 0 || column >= g.columns {
		return fmt.Errorf("%w: column %d in %d column grid", ErrOutOfRange, column, g.columns)
	}
	g.columnsInfo[column].Stretch = stretch
	return nil
}

// SetRowVerticalStretch sets the stretch weight of one row.
func (g *GridLayout) SetRowVerticalStretch(row int, stretch float32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if row < 0 || row >= g.rows {
		return fmt.Errorf("%w: row %d in %d row grid", ErrOutOfRange, row, g.rows)
	}
	g.rowsInfo[row].Stretch = stretch
	return nil
}

// SetColumnMinimumWidth sets the minimum width of one column.
func (g *GridLayout) SetColumnMinimumWidth(column int, width float32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if column < 0 || column >= g.columns {
		return fmt.Errorf("%w: column %d in %d column grid", ErrOutOfRange, column, g.columns)
	}
	g.columnsInfo[column].Min = width
	return nil
}

// SetRowMinimumHeight sets the minimum height of one row.
func (g *GridLayout) SetRowMinimumHeight(row int, height float32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if row < 0 || row >= g.rows {
		return fmt.Errorf("%w: row %d in %d row grid", ErrOutOfRange, row, g.rows)
	}
	g.rowsInfo[row].Min = height
	return nil
}

// SetColumnsMinimumWidth sets the minimum width of every column.
func (g *GridLayout) SetColumnsMinimumWidth(width float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for column := range g.columnsInfo {
		g.columnsInfo[column].Min = width
	}
}

// SetRowsMinimumHeight sets the minimum height of every row.
func (g *GridLayout) SetRowsMinimumHeight(height float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for row := range g.rowsInfo {
		g.rowsInfo[row].Min = height
	}
}

// AddItem registers an item at the given cell and returns its allocation
// id. The origin is clamped into the grid and the span clamped so the item
// never extends past the boundary; on an unconfigured (0x0) grid the item
// lands on cell 0,0 with span 1x1.
func (g *GridLayout) AddItem(item Item, x, y, w, h int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := g.addItemLocked(item)
	if err != nil {
		return id, err
	}
	g.locations = append(g.locations, g.clampCellLocked(x, y, w, h))
	return id, nil
}

func (g *GridLayout) clampCellLocked(x, y, w, h int) cell {
	if g.columns == 0 || g.rows == 0 {
		return cell{x: 0, y: 0, w: 1, h: 1}
	}
	c := cell{
		x: min(max(x, 0), g.columns-1),
		y: min(max(y, 0), g.rows-1),
		w: max(w, 1),
		h: max(h, 1),
	}
	c.w = min(c.w, g.columns-c.x)
	c.h = min(c.h, g.rows-c.y)
	return c
}

// RemoveItem unregisters an item and compacts the cell table alongside the
// allocation ids. Returns the pre-removal id, or -1 when the item was not
// registered.
func (g *GridLayout) RemoveItem(item Item) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	rmID := g.removeItemLocked(item)
	if rmID < 0 {
		return rmID
	}
	g.locations = slices.Delete(g.locations, rmID, rmID+1)
	return rmID
}

// ItemCell returns the effective cell placement of the item holding the
// given allocation id.
func (g *GridLayout) ItemCell(id int) (column, row, colSpan, rowSpan int, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id < 0 || id >= len(g.locations) {
		return 0, 0, 0, 0, fmt.Errorf("%w: item %d of %d", ErrOutOfRange, id, len(g.locations))
	}
	c := g.locations[id]
	return c.x, c.y, c.w, c.h, nil
}

// Recompute runs the fair allocator once per axis over the line
// constraints and derives each item's box from the lines its span covers.
// Placements are returned in allocation-id order; callers deliver the
// geometry themselves, or use Apply.
func (g *GridLayout) Recompute(area Box) ([]Placement, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	placements, _, err := g.recomputeLocked(area, false)
	return placements, err
}

// Apply recomputes geometry for the given area and pushes each box to its
// item. The instance lock is released before any AssignGeometry call.
func (g *GridLayout) Apply(area Box) error {
	g.mu.Lock()
	placements, items, err := g.recomputeLocked(area, true)
	g.mu.Unlock()
	if err != nil {
		return err
	}
	push(placements, items)
	return nil
}

func (g *GridLayout) recomputeLocked(area Box, snapshot bool) ([]Placement, []Item, error) {
	n := len(g.items)
	if n == 0 {
		return nil, nil, nil
	}

	placements := make([]Placement, n)
	var items []Item
	if snapshot {
		items = acquireItemSlice(n)
	}

	if g.columns == 0 || g.rows == 0 {
		// Unconfigured grid: there are no lines to allocate, so every
		// item degenerates to an empty box at the origin.
		for id := range g.items {
			placements[id] = Placement{ID: id, Box: Box{X: area.X, Y: area.Y}}
			if snapshot {
				items[id] = g.items[id]
			}
		}
		return placements, items, nil
	}

	widths := DistributeUnit(area.W, lineSlots(g.columnsInfo), g.unit)
	heights := DistributeUnit(area.H, lineSlots(g.rowsInfo), g.unit)

	// Prefix sums: colOff[i] is the offset of column i's left edge, with a
	// final entry at the grid's right edge so spans read as a difference.
	colOff := make([]float32, len(widths)+1)
	for i, w := range widths {
		colOff[i+1] = colOff[i] + w
	}
	rowOff := make([]float32, len(heights)+1)
	for i, h := range heights {
		rowOff[i+1] = rowOff[i] + h
	}

	for id := range g.items {
		// Items added before a shrinking SetGrid may reference stale
		// lines; re-clamp so the span stays inside the grid.
		c := g.clampCellLocked(g.locations[id].x, g.locations[id].y, g.locations[id].w, g.locations[id].h)
		placements[id] = Placement{
			ID: id,
			Box: Box{
				X: area.X + colOff[c.x],
				Y: area.Y + rowOff[c.y],
				W: colOff[c.x+c.w] - colOff[c.x],
				H: rowOff[c.y+c.h] - rowOff[c.y],
			},
		}
		if snapshot {
			items[id] = g.items[id]
		}
	}
	return placements, items, nil
}

func lineSlots(lines []LineInfo) []Slot {
	slots := make([]Slot, len(lines))
	for i, li := range lines {
		slots[i] = Slot{Min: li.Min, Stretch: li.Stretch}
	}
	return slots
}
