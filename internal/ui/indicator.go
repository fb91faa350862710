package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// Indicator is the one-line status bar: source file, row count, active
// sort and current selection.
type Indicator struct {
	*tview.TextView

	source  string
	rows    int
	sortCol string
	sortAsc bool
	message string
}

// NewIndicator creates a new status indicator.
func NewIndicator() *Indicator {
	i := &Indicator{
		TextView: tview.NewTextView(),
	}
	i.SetDynamicColors(true)
	i.SetTextAlign(tview.AlignLeft)
	i.SetBackgroundColor(tcell.ColorDefault)
	i.SetBorderPadding(0, 0, 1, 1)

	return i
}

// SetSource sets the displayed source name and row count.
func (i *Indicator) SetSource(name string, rows int) {
	i.source, i.rows = name, rows
	i.refresh()
}

// SetSort sets the displayed sort state. An empty column name clears it.
func (i *Indicator) SetSort(col string, asc bool) {
	i.sortCol, i.sortAsc = col, asc
	i.refresh()
}

// SetMessage sets a transient trailing message.
func (i *Indicator) SetMessage(msg string) {
	i.message = msg
	i.refresh()
}

func (i *Indicator) refresh() {
	i.Clear()

	out := fmt.Sprintf("[aqua::b]%s[white::-] [%d rows]", i.source, i.rows)
	if i.sortCol != "" {
		dir := "▲"
		if !i.sortAsc {
			dir = "▼"
		}
		out += fmt.Sprintf(" sort:[yellow::b]%s %s[white::-]", i.sortCol, dir)
	}
	if i.message != "" {
		out += " " + i.message
	}

	fmt.Fprint(i.TextView, out)
}
