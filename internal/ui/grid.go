package ui

import (
	"fmt"
	"path/filepath"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/mattn/go-runewidth"

	"github.com/tgv/tgv/internal/model"
	"github.com/tgv/tgv/internal/model1"
)

const (
	sortAscIndicator  = " ▲"
	sortDescIndicator = " ▼"
)

// GridStyles carries the colors the grid paints cells with.
type GridStyles struct {
	HeaderFg    tcell.Color
	BodyFg      tcell.Color
	SelectFg    tcell.Color
	SelectBg    tcell.Color
	HighlightBg tcell.Color
}

// DefaultGridStyles returns the stock color scheme.
func DefaultGridStyles() GridStyles {
	return GridStyles{
		HeaderFg:    tcell.ColorYellow,
		BodyFg:      tcell.ColorWhite,
		SelectFg:    tcell.ColorBlack,
		SelectBg:    tcell.ColorAqua,
		HighlightBg: tcell.ColorDarkSlateGray,
	}
}

// cellFlags tracks the selection and highlight state of one cell.
type cellFlags struct {
	selected    bool
	highlighted bool
}

// TableGrid renders a table model as a tview table and implements the
// Grid surface the selection controller drives. Cell flags are rebuilt
// (cleared) on every refresh: a reorder invalidates row indices, so any
// prior selection must be re-resolved by identity.
type TableGrid struct {
	*tview.Table

	model  model.TableModel
	styles GridStyles
	flags  [][]cellFlags
	rowFg  []tcell.Color
	widths []int
	cols   int
}

// NewTableGrid creates a grid over the given table model.
func NewTableGrid(m model.TableModel) *TableGrid {
	g := &TableGrid{
		Table:  tview.NewTable(),
		model:  m,
		styles: DefaultGridStyles(),
	}

	g.SetBorder(true)
	g.SetBorderAttributes(tcell.AttrBold)
	g.SetBorderPadding(0, 0, 1, 1)
	g.SetBackgroundColor(tcell.ColorDefault)
	g.SetBorderColor(tcell.ColorWhite)
	g.SetFixed(1, 0)
	// Selection is managed cell by cell, not by tview.
	g.SetSelectable(false, false)

	return g
}

// SetStyles overrides the grid color scheme.
func (g *TableGrid) SetStyles(s GridStyles) {
	g.styles = s
}

// RowCount returns the total row count, header included.
func (g *TableGrid) RowCount() int {
	return len(g.flags)
}

// ColCount returns the number of cells per row.
func (g *TableGrid) ColCount() int {
	return g.cols
}

// CellAt returns a handle on the cell at the given position.
func (g *TableGrid) CellAt(row, col int) (Cell, bool) {
	if row < 0 || row >= len(g.flags) || col < 0 || col >= g.cols {
		return nil, false
	}
	return &gridCell{grid: g, row: row, col: col}, true
}

// CellForCoordinate resolves a screen coordinate to a cell position by
// replaying the table layout: fixed header row, scroll offsets, content
// column widths stretched by the uniform cell expansion.
func (g *TableGrid) CellForCoordinate(x, y int) (int, int, bool) {
	rx, ry, rw, rh := g.GetInnerRect()
	if x < rx || x >= rx+rw || y < ry || y >= ry+rh {
		return 0, 0, false
	}

	rowOff, colOff := g.GetOffset()
	row := y - ry
	if row > headerRow {
		row += rowOff
	}
	if row < 0 || row >= len(g.flags) {
		return 0, 0, false
	}

	col, colX := -1, rx
	for i, w := range g.layoutWidths(rw, colOff) {
		colX += w + 1
		if x < colX {
			col = colOff + i
			break
		}
	}
	if col < 0 || col >= g.cols {
		return 0, 0, false
	}
	return row, col, true
}

// layoutWidths reproduces the drawn column widths: the widest content per
// visible column plus one separator each, with leftover inner width
// spread across the columns the way equal expansion weights are.
func (g *TableGrid) layoutWidths(avail, colOff int) []int {
	if colOff < 0 || colOff >= len(g.widths) {
		return nil
	}
	ww := make([]int, len(g.widths)-colOff)
	copy(ww, g.widths[colOff:])

	var tableWidth int
	for _, w := range ww {
		tableWidth += w + 1
	}

	toDistribute, weights := avail-tableWidth, len(ww)
	for i := range ww {
		if toDistribute <= 0 {
			break
		}
		ext := toDistribute / weights
		ww[i] += ext
		toDistribute -= ext
		weights--
	}
	return ww
}

// RefreshFromModel rebuilds the grid from the model, dropping all cell
// flags.
func (g *TableGrid) RefreshFromModel() {
	data := g.model.Peek()

	g.Clear()
	header := data.Header()
	if len(header) == 0 {
		g.flags, g.rowFg, g.widths, g.cols = nil, nil, nil, 0
		g.showMessage("No data", tcell.ColorGray)
		return
	}

	g.cols = len(header)
	g.widths = make([]int, g.cols)
	g.flags = make([][]cellFlags, data.RowCount()+1)
	for i := range g.flags {
		g.flags[i] = make([]cellFlags, g.cols)
	}

	// Row foreground comes from the renderer's colorer. The colorer hands
	// back colors from the model-side tcell fork, repainted here into the
	// view-side one.
	g.rowFg = make([]tcell.Color, data.RowCount()+1)
	colorer := g.model.Colorer()
	for i := range g.rowFg {
		g.rowFg[i] = g.styles.BodyFg
	}

	g.buildHeader(header)
	for i, row := range data.Rows() {
		if colorer != nil {
			g.rowFg[i+1] = tcell.Color(colorer(header, row))
		}
		g.buildRow(row, header, i+1)
	}
	g.updateTitle(data)
}

// ShowError displays an error message instead of data.
func (g *TableGrid) ShowError(msg string) {
	g.Clear()
	g.flags, g.rowFg, g.widths, g.cols = nil, nil, nil, 0
	g.showMessage(msg, tcell.ColorRed)
}

func (g *TableGrid) showMessage(msg string, color tcell.Color) {
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(color)
	cell.SetAlign(tview.AlignCenter)
	cell.SetSelectable(false)
	g.SetCell(0, 0, cell)
}

func (g *TableGrid) buildHeader(header model1.Header) {
	sortCol, asc := g.model.SortState()

	for col, h := range header {
		name := h.Name
		if col == sortCol {
			if asc {
				name += sortAscIndicator
			} else {
				name += sortDescIndicator
			}
		}

		g.trackWidth(col, name)

		cell := tview.NewTableCell(name)
		cell.SetTextColor(g.styles.HeaderFg)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(h.Align)
		cell.SetExpansion(1)
		cell.SetSelectable(false)
		if col == sortCol {
			cell.SetAttributes(tcell.AttrBold)
		}

		g.SetCell(headerRow, col, cell)
	}
}

func (g *TableGrid) buildRow(row model1.Row, header model1.Header, rowIdx int) {
	for col, field := range row.Fields {
		if col >= len(header) {
			break
		}

		g.trackWidth(col, field)

		cell := tview.NewTableCell(field)
		cell.SetTextColor(g.rowFg[rowIdx])
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(header[col].Align)
		cell.SetExpansion(1)

		// Row id rides on the first column.
		if col == 0 {
			cell.SetReference(row.ID)
		}

		g.SetCell(rowIdx, col, cell)
	}
}

func (g *TableGrid) trackWidth(col int, text string) {
	if w := runewidth.StringWidth(text); w > g.widths[col] {
		g.widths[col] = w
	}
}

func (g *TableGrid) updateTitle(data *model1.TableData) {
	name := filepath.Base(data.Source())
	g.SetTitle(fmt.Sprintf(" %s[%d] ", name, data.RowCount()))
}

// restyle projects a cell's flags onto its tview styling.
func (g *TableGrid) restyle(row, col int) {
	cell := g.GetCell(row, col)
	if cell == nil {
		return
	}

	fg := g.styles.BodyFg
	if row < len(g.rowFg) {
		fg = g.rowFg[row]
	}

	f := g.flags[row][col]
	switch {
	case f.selected:
		cell.SetTextColor(g.styles.SelectFg)
		cell.SetBackgroundColor(g.styles.SelectBg)
	case f.highlighted:
		cell.SetTextColor(fg)
		cell.SetBackgroundColor(g.styles.HighlightBg)
	default:
		cell.SetTextColor(fg)
		cell.SetBackgroundColor(tcell.ColorDefault)
	}

	if f.highlighted {
		cell.SetAttributes(tcell.AttrBold)
	} else {
		cell.SetAttributes(tcell.AttrNone)
	}
}

// gridCell is a positional handle on one grid cell.
type gridCell struct {
	grid *TableGrid
	row  int
	col  int
}

func (c *gridCell) SetSelected(on bool) {
	c.grid.flags[c.row][c.col].selected = on
	c.grid.restyle(c.row, c.col)
}

func (c *gridCell) IsSelected() bool {
	return c.grid.flags[c.row][c.col].selected
}

func (c *gridCell) SetHighlighted(on bool) {
	c.grid.flags[c.row][c.col].highlighted = on
	c.grid.restyle(c.row, c.col)
}

func (c *gridCell) IsHighlighted() bool {
	return c.grid.flags[c.row][c.col].highlighted
}
