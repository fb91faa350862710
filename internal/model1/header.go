package model1

import "fmt"

// Attrs represents column attributes.
type Attrs struct {
	Align   int  // tview alignment
	Numeric bool // Right-aligned, sorted numerically
	Wide    bool // Hidden in narrow view
	Hide    bool // Always hidden
}

// HeaderColumn represents a table header column.
type HeaderColumn struct {
	Name string
	Attrs
}

func (h HeaderColumn) String() string {
	return fmt.Sprintf("%s [%d::%t]", h.Name, h.Align, h.Numeric)
}

func (h HeaderColumn) Clone() HeaderColumn {
	return h
}

// Header represents a table header (slice of columns).
type Header []HeaderColumn

func (h Header) Clone() Header {
	he := make(Header, 0, len(h))
	for _, c := range h {
		he = append(he, c.Clone())
	}
	return he
}

func (h Header) IndexOf(colName string, includeWide bool) (int, bool) {
	for i, c := range h {
		if c.Wide && !includeWide {
			continue
		}
		if c.Name == colName {
			return i, true
		}
	}
	return -1, false
}

func (h Header) IsNumericCol(col int) bool {
	if col < 0 || col >= len(h) {
		return false
	}
	return h[col].Numeric
}
