// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgv

package view

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// HelpBind represents a single keybinding.
type HelpBind struct {
	Key  string
	Desc string
}

// Help displays a full-screen help view with keybindings.
type Help struct {
	*tview.Table
	closeFn func()
}

// NewHelp creates a new help view.
func NewHelp() *Help {
	h := &Help{
		Table: tview.NewTable(),
	}
	h.build()
	return h
}

// SetCloseFn sets the callback when help is closed.
func (h *Help) SetCloseFn(fn func()) {
	h.closeFn = fn
}

// build constructs the help UI.
func (h *Help) build() {
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetBorderColor(tcell.ColorYellow)
	h.SetBackgroundColor(tcell.ColorDefault)
	h.SetSelectable(false, false)

	h.populateHelp()

	h.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		switch evt.Key() {
		case tcell.KeyEsc, tcell.KeyEnter:
			if h.closeFn != nil {
				h.closeFn()
			}
			return nil
		}
		if evt.Rune() == '?' || evt.Rune() == 'q' {
			if h.closeFn != nil {
				h.closeFn()
			}
			return nil
		}
		return evt
	})
}

// populateHelp fills the help table with keybindings in a columnar
// layout.
func (h *Help) populateHelp() {
	col1 := []HelpBind{
		{"<click>", "Select row"},
		{"<hold>", "Highlight, release to select"},
		{"<click hdr>", "Sort by column"},
		{"<j>", "Down"},
		{"<k>", "Up"},
	}

	col2 := []HelpBind{
		{"<s>", "Sort next column"},
		{"<C-r>", "Reload file"},
		{"<?>", "Help"},
		{"<esc>", "Close help"},
		{"<q>", "Quit"},
	}

	columns := [][]HelpBind{col1, col2}
	headers := []string{"MOUSE", "KEYS"}

	maxRows := 0
	for _, col := range columns {
		if len(col) > maxRows {
			maxRows = len(col)
		}
	}

	// Each logical column = 2 table columns (key + desc) + 1 spacer
	colWidth := 3
	for colIdx, col := range columns {
		baseCol := colIdx * colWidth

		header := tview.NewTableCell(headers[colIdx]).
			SetTextColor(tcell.ColorAqua).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false)
		h.SetCell(0, baseCol, header)

		for rowIdx, bind := range col {
			row := rowIdx + 1

			keyCell := tview.NewTableCell(bind.Key).
				SetTextColor(tcell.ColorYellow).
				SetSelectable(false)
			h.SetCell(row, baseCol, keyCell)

			descCell := tview.NewTableCell(bind.Desc).
				SetTextColor(tcell.ColorWhite).
				SetSelectable(false).
				SetExpansion(1)
			h.SetCell(row, baseCol+1, descCell)
		}

		if colIdx < len(columns)-1 {
			for row := 0; row <= maxRows; row++ {
				spacer := tview.NewTableCell("").
					SetSelectable(false).
					SetExpansion(1)
				h.SetCell(row, baseCol+2, spacer)
			}
		}
	}

	footer := tview.NewTableCell("<esc> to close").
		SetTextColor(tcell.ColorGray).
		SetSelectable(false)
	h.SetCell(maxRows+2, 0, footer)
}
