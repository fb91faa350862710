package ui

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	menuIndexFmt = " [yellow::b]<%d>[white::-] %s "
	menuPlainFmt = " [yellow::b]<%s>[white::-] %s "
	maxRows      = 2
)

// Menu presents key binding hints.
type Menu struct {
	*tview.Table
}

// NewMenu returns a new menu.
func NewMenu() *Menu {
	m := &Menu{
		Table: tview.NewTable(),
	}
	m.SetBackgroundColor(tcell.ColorDefault)
	m.SetBorderPadding(0, 0, 1, 1)

	return m
}

// HydrateMenu populate menu ui from hints.
func (m *Menu) HydrateMenu(hh MenuHints) {
	m.Clear()
	sort.Sort(hh)

	table := make([]MenuHints, maxRows)
	colCount := (len(hh) / maxRows) + 1
	for row := 0; row < maxRows; row++ {
		table[row] = make(MenuHints, colCount)
	}

	var row, col int
	for _, h := range hh {
		if !h.Visible {
			continue
		}
		table[row][col] = h
		row++
		if row >= maxRows {
			row, col = 0, col+1
		}
	}

	for r := range table {
		for c := range table[r] {
			cell := tview.NewTableCell(formatMenu(table[r][c]))
			cell.SetBackgroundColor(tcell.ColorDefault)
			m.SetCell(r, c, cell)
		}
	}
}

func formatMenu(h MenuHint) string {
	if h.Mnemonic == "" || h.Description == "" {
		return ""
	}

	if i, err := strconv.Atoi(h.Mnemonic); err == nil {
		return fmt.Sprintf(menuIndexFmt, i, h.Description)
	}
	return fmt.Sprintf(menuPlainFmt, h.Mnemonic, h.Description)
}
