package model1

import "github.com/gdamore/tcell/v2"

// ColorerFunc colors a rendered row.
type ColorerFunc func(h Header, row Row) tcell.Color

// Renderer converts raw records into rows for tabular display.
type Renderer interface {
	// Header returns the table header for the given column names.
	Header(cols []string) Header

	// Render converts one record into a row.
	Render(record []string, row *Row) error

	// ColorerFunc returns the row colorer.
	ColorerFunc() ColorerFunc
}
