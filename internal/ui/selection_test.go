package ui

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCell is an in-memory grid cell.
type fakeCell struct {
	selected    bool
	highlighted bool
}

func (c *fakeCell) SetSelected(on bool)    { c.selected = on }
func (c *fakeCell) IsSelected() bool       { return c.selected }
func (c *fakeCell) SetHighlighted(on bool) { c.highlighted = on }
func (c *fakeCell) IsHighlighted() bool    { return c.highlighted }

// fakeGrid is an in-memory grid: row 0 is the header, data row r holds
// the identity ids[r-1]. Coordinates map 1:1 to cells (x=col, y=row).
type fakeGrid struct {
	ids     []string
	cols    int
	cells   [][]*fakeCell
	journal *[]string
}

func newFakeGrid(cols int, ids ...string) *fakeGrid {
	g := &fakeGrid{ids: ids, cols: cols, journal: &[]string{}}
	g.rebuild()
	return g
}

func (g *fakeGrid) rebuild() {
	g.cells = make([][]*fakeCell, len(g.ids)+1)
	for i := range g.cells {
		g.cells[i] = make([]*fakeCell, g.cols)
		for j := range g.cells[i] {
			g.cells[i][j] = &fakeCell{}
		}
	}
}

func (g *fakeGrid) RowCount() int { return len(g.cells) }
func (g *fakeGrid) ColCount() int { return g.cols }

func (g *fakeGrid) CellAt(row, col int) (Cell, bool) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.cols {
		return nil, false
	}
	return g.cells[row][col], true
}

func (g *fakeGrid) CellForCoordinate(x, y int) (int, int, bool) {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= g.cols {
		return 0, 0, false
	}
	return y, x, true
}

func (g *fakeGrid) RefreshFromModel() {
	*g.journal = append(*g.journal, "refresh")
	g.rebuild()
}

// selectedRows returns the data rows with at least one selected cell.
func (g *fakeGrid) selectedRows() []int {
	var rr []int
	for row := 1; row < len(g.cells); row++ {
		for _, c := range g.cells[row] {
			if c.selected {
				rr = append(rr, row)
				break
			}
		}
	}
	return rr
}

// fakeDelegate records notifications and sorts the grid's identity slice.
type fakeDelegate struct {
	g           *fakeGrid
	sorts       []int
	selections  []int
	pressStarts []int
	pressEnds   []int
	idCalls     int
	sortFn      func(col int)
}

func newFakeDelegate(g *fakeGrid) *fakeDelegate {
	d := &fakeDelegate{g: g}
	d.sortFn = func(int) { sort.Strings(g.ids) }
	return d
}

func (d *fakeDelegate) SortBy(col int) {
	*d.g.journal = append(*d.g.journal, "sortBy")
	d.sorts = append(d.sorts, col)
	if d.sortFn != nil {
		d.sortFn(col)
	}
}

func (d *fakeDelegate) DidSelectRow(row int) {
	*d.g.journal = append(*d.g.journal, "didSelectRow")
	d.selections = append(d.selections, row)
}

func (d *fakeDelegate) LongPressStart(row int) {
	*d.g.journal = append(*d.g.journal, "longPressStart")
	d.pressStarts = append(d.pressStarts, row)
}

func (d *fakeDelegate) LongPressEnd(row int) {
	*d.g.journal = append(*d.g.journal, "longPressEnd")
	d.pressEnds = append(d.pressEnds, row)
}

func (d *fakeDelegate) IdentityForRow(row int) (string, bool) {
	d.idCalls++
	if row < 1 || row > len(d.g.ids) {
		return "", false
	}
	return d.g.ids[row-1], true
}

func (d *fakeDelegate) IdentitiesEqual(a, b string) bool {
	return a == b
}

func newController(g *fakeGrid) (*SelectionController[string], *fakeDelegate) {
	c := NewSelectionController[string](g)
	d := newFakeDelegate(g)
	c.SetDelegate(d)
	return c, d
}

func TestActivationSelectsDataRow(t *testing.T) {
	g := newFakeGrid(3, "b", "a", "c")
	c, d := newController(g)

	c.HandleActivation(1, 2)

	assert.Equal(t, []int{2}, g.selectedRows())
	assert.Equal(t, []int{2}, d.selections)

	// Every cell of the row is selected.
	for col := 0; col < 3; col++ {
		cell, ok := g.CellAt(2, col)
		require.True(t, ok)
		assert.True(t, cell.IsSelected())
	}
}

func TestActivationReplacesSelection(t *testing.T) {
	g := newFakeGrid(2, "b", "a", "c")
	c, _ := newController(g)

	c.SelectRow(1)
	c.SelectRow(3)

	assert.Equal(t, []int{3}, g.selectedRows())
}

func TestActivationOutsideGridIsNoop(t *testing.T) {
	g := newFakeGrid(2, "a")
	c, d := newController(g)

	c.HandleActivation(9, 9)
	c.HandleActivation(-1, 0)

	assert.Empty(t, g.selectedRows())
	assert.Empty(t, d.selections)
	assert.Empty(t, d.sorts)
}

func TestActivationWithoutDelegateIsNoop(t *testing.T) {
	g := newFakeGrid(2, "a")
	c := NewSelectionController[string](g)

	c.HandleActivation(0, 1)
	c.HandlePress(PressStart, 0, 1)
	c.HandlePress(PressEnd, 0, 1)

	assert.Empty(t, g.selectedRows())
}

func TestHeaderTapSortsAndReselects(t *testing.T) {
	g := newFakeGrid(1, "b", "a", "c")
	c, d := newController(g)

	// Select the row with identity "a", currently at index 2.
	c.HandleActivation(0, 2)
	require.Equal(t, []int{2}, g.selectedRows())

	// Tap header column 0: sorts ascending to [a b c].
	c.HandleActivation(0, 0)

	assert.Equal(t, []int{0}, d.sorts)
	assert.Equal(t, []string{"a", "b", "c"}, g.ids)

	row, ok := c.CurrentSelectedRow()
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, []int{1}, g.selectedRows())
}

func TestHeaderTapRefreshesBeforeReselect(t *testing.T) {
	g := newFakeGrid(1, "b", "a")
	c, _ := newController(g)

	c.HandleActivation(0, 1)
	*g.journal = nil

	c.HandleActivation(0, 0)

	require.GreaterOrEqual(t, len(*g.journal), 2)
	assert.Equal(t, []string{"sortBy", "refresh"}, (*g.journal)[:2])
}

func TestHeaderTapWithoutSelectionSkipsReselect(t *testing.T) {
	g := newFakeGrid(2, "b", "a")
	c, d := newController(g)

	c.HandleActivation(1, 0)

	assert.Equal(t, []int{1}, d.sorts)
	assert.Zero(t, d.idCalls)
	assert.Empty(t, g.selectedRows())
}

func TestHeaderTapEmptyGrid(t *testing.T) {
	g := newFakeGrid(2)
	c, d := newController(g)

	c.HandleActivation(0, 0)

	assert.Equal(t, []int{0}, d.sorts)
	_, ok := c.CurrentSelectedRow()
	assert.False(t, ok)
}

func TestSortColumnOncePerTap(t *testing.T) {
	g := newFakeGrid(1, "a", "b")
	c, d := newController(g)

	c.HandleActivation(0, 0)
	c.HandleActivation(0, 0)

	assert.Equal(t, []int{0, 0}, d.sorts)
}

func TestReselectIdentityGone(t *testing.T) {
	g := newFakeGrid(1, "b", "a")
	c, d := newController(g)

	c.SelectRow(2) // identity "a"
	d.sortFn = func(int) {
		g.ids = []string{"b", "z"} // "a" no longer present
	}

	c.HandleActivation(0, 0)

	assert.Empty(t, g.selectedRows())
	_, ok := c.CurrentSelectedRow()
	assert.False(t, ok)
}

func TestReselectFirstMatchWins(t *testing.T) {
	g := newFakeGrid(1, "x", "dup", "dup")
	c, _ := newController(g)

	assert.True(t, c.Reselect("dup"))
	assert.Equal(t, []int{2}, g.selectedRows())
}

func TestReselectNoDataRows(t *testing.T) {
	g := newFakeGrid(1)
	c, _ := newController(g)

	assert.False(t, c.Reselect("a"))
	assert.Empty(t, g.selectedRows())
}

func TestDeselectAll(t *testing.T) {
	g := newFakeGrid(2, "a", "b")
	c, _ := newController(g)

	c.SelectRow(1)
	c.DeselectAll()

	assert.Empty(t, g.selectedRows())
	_, ok := c.CurrentSelectedRow()
	assert.False(t, ok)
}

func TestSelectRowIdempotent(t *testing.T) {
	g := newFakeGrid(2, "a", "b")
	c, _ := newController(g)

	c.SelectRow(2)
	c.SelectRow(2)

	assert.Equal(t, []int{2}, g.selectedRows())
}

func TestSelectRowBoundsChecked(t *testing.T) {
	g := newFakeGrid(2, "a")
	c, _ := newController(g)

	c.SelectRow(1)
	c.SelectRow(5) // stale index: clears, selects nothing

	assert.Empty(t, g.selectedRows())

	c.SelectRow(0) // header is not selectable
	assert.Empty(t, g.selectedRows())
}

func TestSetHighlightIndependentOfSelection(t *testing.T) {
	g := newFakeGrid(2, "a", "b")
	c, _ := newController(g)

	c.SelectRow(1)
	c.SetHighlight(2, true)

	assert.Equal(t, []int{1}, g.selectedRows())
	cell, _ := g.CellAt(2, 0)
	assert.True(t, cell.IsHighlighted())
	assert.False(t, cell.IsSelected())

	c.SetHighlight(2, false)
	assert.False(t, cell.IsHighlighted())

	// Out of range is a no-op, not a crash.
	c.SetHighlight(9, true)
}

func TestLongPressSelectsAtEnd(t *testing.T) {
	g := newFakeGrid(2, "a", "b", "c")
	c, d := newController(g)

	c.HandlePress(PressStart, 0, 3)

	// Highlight only: no selection, no DidSelectRow yet.
	cell, _ := g.CellAt(3, 0)
	assert.True(t, cell.IsHighlighted())
	assert.Empty(t, g.selectedRows())
	assert.Equal(t, []int{3}, d.pressStarts)
	assert.Empty(t, d.selections)

	c.HandlePress(PressEnd, 0, 3)

	assert.Equal(t, []int{3}, g.selectedRows())
	assert.False(t, cell.IsHighlighted())
	assert.Equal(t, []int{3}, d.selections)
	assert.Equal(t, []int{3}, d.pressEnds)

	// DidSelectRow fires before LongPressEnd.
	j := *g.journal
	require.GreaterOrEqual(t, len(j), 2)
	assert.Equal(t, []string{"longPressStart", "didSelectRow", "longPressEnd"}, j)
}

func TestLongPressHighlightFollowsPointer(t *testing.T) {
	g := newFakeGrid(1, "a", "b", "c")
	c, d := newController(g)

	c.HandlePress(PressStart, 0, 1)
	c.HandlePress(PressChanged, 0, 2)

	c1, _ := g.CellAt(1, 0)
	c2, _ := g.CellAt(2, 0)
	assert.False(t, c1.IsHighlighted())
	assert.True(t, c2.IsHighlighted())

	c.HandlePress(PressEnd, 0, 2)
	assert.Equal(t, []int{2}, g.selectedRows())
	assert.Equal(t, []int{2}, d.selections)
}

func TestLongPressClearsPriorSelection(t *testing.T) {
	g := newFakeGrid(1, "a", "b")
	c, _ := newController(g)

	c.SelectRow(1)
	c.HandlePress(PressStart, 0, 2)

	assert.Empty(t, g.selectedRows())
}

func TestLongPressOnHeaderIgnored(t *testing.T) {
	g := newFakeGrid(1, "a")
	c, d := newController(g)

	c.HandlePress(PressStart, 0, 0)
	c.HandlePress(PressEnd, 0, 0)

	assert.Empty(t, d.pressStarts)
	assert.Empty(t, d.selections)
	assert.Empty(t, g.selectedRows())
}

func TestLongPressCancelLeavesHighlight(t *testing.T) {
	g := newFakeGrid(1, "a", "b")
	c, d := newController(g)

	c.HandlePress(PressStart, 0, 1)
	c.HandlePress(PressCancel, 0, 0)

	// Acceptable drift: highlight stays until the next gesture.
	cell, _ := g.CellAt(1, 0)
	assert.True(t, cell.IsHighlighted())
	assert.Empty(t, d.selections)

	// A later end without a press in flight is a no-op.
	c.HandlePress(PressEnd, 0, 1)
	assert.Empty(t, d.selections)
}

func TestCurrentSelectedRowQueriesGrid(t *testing.T) {
	g := newFakeGrid(2, "a", "b")
	c, _ := newController(g)

	_, ok := c.CurrentSelectedRow()
	assert.False(t, ok)

	// Selection flipped behind the controller's back still reads true.
	g.cells[2][0].selected = true
	row, ok := c.CurrentSelectedRow()
	require.True(t, ok)
	assert.Equal(t, 2, row)
}
