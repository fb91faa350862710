package ui

import "log/slog"

const (
	// headerRow is the fixed header position in the grid.
	headerRow = 0

	// noRow marks the absence of a tracked row.
	noRow = -1
)

// Cell is a single selectable grid cell.
type Cell interface {
	SetSelected(bool)
	IsSelected() bool
	SetHighlighted(bool)
	IsHighlighted() bool
}

// Grid is the row/column cell surface the selection controller drives.
// Row 0 is the header, rows 1..RowCount()-1 are data rows.
type Grid interface {
	// RowCount returns the total row count, header included.
	RowCount() int

	// ColCount returns the number of cells per row.
	ColCount() int

	// CellAt returns the cell at the given position, bounds-checked.
	CellAt(row, col int) (Cell, bool)

	// CellForCoordinate resolves a screen coordinate to a cell position.
	CellForCoordinate(x, y int) (row, col int, ok bool)

	// RefreshFromModel rebuilds the grid from the underlying data model.
	RefreshFromModel()
}

// SelectionDelegate supplies sort execution, row identity and selection
// notifications. Identity values are opaque to the controller: they are
// only ever compared through IdentitiesEqual.
type SelectionDelegate[ID any] interface {
	// SortBy reorders the underlying data by the given column. Must be
	// synchronous: the controller refreshes the grid right after.
	SortBy(col int)

	// DidSelectRow notifies a row was selected. Must not mutate selection.
	DidSelectRow(row int)

	// LongPressStart notifies a long press began on a row.
	LongPressStart(row int)

	// LongPressEnd notifies a long press completed on a row.
	LongPressEnd(row int)

	// IdentityForRow returns the identity of the given data row. The value
	// must be a pure function of the row's content, not its position.
	IdentityForRow(row int) (ID, bool)

	// IdentitiesEqual reports whether two identities denote the same row
	// content. Must be an equivalence relation.
	IdentitiesEqual(a, b ID) bool
}

// SelectionController tracks the single selected row of a grid and
// re-locates it by identity after the underlying data is reordered.
// Without a delegate every gesture is a no-op.
type SelectionController[ID any] struct {
	grid     Grid
	delegate SelectionDelegate[ID]
	pressRow int
}

// NewSelectionController returns a controller for the given grid.
func NewSelectionController[ID any](grid Grid) *SelectionController[ID] {
	return &SelectionController[ID]{
		grid:     grid,
		pressRow: noRow,
	}
}

// SetDelegate wires the collaborator. A nil delegate disables gesture
// handling.
func (c *SelectionController[ID]) SetDelegate(d SelectionDelegate[ID]) {
	c.delegate = d
}

// HandleActivation handles a single activation (tap) at the given screen
// coordinate. A header cell triggers a sort of that column with the
// selection carried across the reorder; a data cell selects its row.
func (c *SelectionController[ID]) HandleActivation(x, y int) {
	if c.delegate == nil {
		return
	}

	row, col, ok := c.grid.CellForCoordinate(x, y)
	if !ok {
		return
	}

	if row == headerRow {
		c.SortColumn(col)
		return
	}

	c.SelectRow(row)
	c.delegate.DidSelectRow(row)
}

// SortColumn sorts the data by the given column, preserving the selected
// row across the reorder: the selection's identity is captured before the
// sort and re-resolved by content afterwards.
func (c *SelectionController[ID]) SortColumn(col int) {
	if c.delegate == nil {
		return
	}

	var captured ID
	var haveID bool
	if row, ok := c.CurrentSelectedRow(); ok {
		captured, haveID = c.delegate.IdentityForRow(row)
	}

	c.delegate.SortBy(col)
	c.grid.RefreshFromModel()

	if !haveID {
		return
	}
	if !c.Reselect(captured) {
		slog.Debug("selected row gone after sort", "col", col)
	}
}

// Reselect scans data rows in ascending order for the first row whose
// identity matches id, selects it and returns true. When no row matches
// the selection is cleared and false returned.
func (c *SelectionController[ID]) Reselect(id ID) bool {
	if c.delegate != nil {
		for row := 1; row < c.grid.RowCount(); row++ {
			rid, ok := c.delegate.IdentityForRow(row)
			if ok && c.delegate.IdentitiesEqual(rid, id) {
				c.SelectRow(row)
				return true
			}
		}
	}

	c.DeselectAll()
	return false
}

// HandlePress advances the long-press state machine. A press highlights
// the row under the pointer without selecting it; the highlight follows
// the pointer across data rows; releasing converts the highlight into the
// selection and fires DidSelectRow then LongPressEnd, once each.
func (c *SelectionController[ID]) HandlePress(phase PressPhase, x, y int) {
	if c.delegate == nil {
		return
	}

	switch phase {
	case PressStart:
		row, _, ok := c.grid.CellForCoordinate(x, y)
		if !ok || row == headerRow {
			c.pressRow = noRow
			return
		}
		c.DeselectAll()
		c.SetHighlight(row, true)
		c.pressRow = row
		c.delegate.LongPressStart(row)

	case PressChanged:
		if c.pressRow == noRow {
			return
		}
		row, _, ok := c.grid.CellForCoordinate(x, y)
		if !ok || row == headerRow || row == c.pressRow {
			return
		}
		c.SetHighlight(c.pressRow, false)
		c.SetHighlight(row, true)
		c.pressRow = row

	case PressEnd:
		if c.pressRow == noRow {
			return
		}
		row := c.pressRow
		c.pressRow = noRow
		c.SetHighlight(row, false)
		c.SelectRow(row)
		c.delegate.DidSelectRow(row)
		c.delegate.LongPressEnd(row)

	case PressCancel:
		// The input system abandoned the press. Whatever highlight is on
		// screen stays until the next gesture resets it.
		c.pressRow = noRow
	}
}

// SelectRow clears all selection, then marks every cell of row selected.
// An out-of-range or header row leaves the grid deselected.
func (c *SelectionController[ID]) SelectRow(row int) {
	c.DeselectAll()

	if row <= headerRow || row >= c.grid.RowCount() {
		return
	}
	for col := 0; col < c.grid.ColCount(); col++ {
		if cell, ok := c.grid.CellAt(row, col); ok {
			cell.SetSelected(true)
		}
	}
}

// DeselectAll clears selection state on every cell of every row.
func (c *SelectionController[ID]) DeselectAll() {
	for row := 1; row < c.grid.RowCount(); row++ {
		for col := 0; col < c.grid.ColCount(); col++ {
			if cell, ok := c.grid.CellAt(row, col); ok {
				cell.SetSelected(false)
			}
		}
	}
}

// CurrentSelectedRow returns the first data row whose column-0 cell
// reports selected. The grid is the source of truth: the controller keeps
// no cached index.
func (c *SelectionController[ID]) CurrentSelectedRow() (int, bool) {
	for row := 1; row < c.grid.RowCount(); row++ {
		if cell, ok := c.grid.CellAt(row, 0); ok && cell.IsSelected() {
			return row, true
		}
	}
	return noRow, false
}

// SetHighlight sets the transient highlight flag on every cell of row.
// Highlight is independent of selection.
func (c *SelectionController[ID]) SetHighlight(row int, on bool) {
	if row <= headerRow || row >= c.grid.RowCount() {
		return
	}
	for col := 0; col < c.grid.ColCount(); col++ {
		if cell, ok := c.grid.CellAt(row, col); ok {
			cell.SetHighlighted(on)
		}
	}
}
