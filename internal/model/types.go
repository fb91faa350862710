package model

import (
	"context"

	"github.com/tgv/tgv/internal/model1"
)

// TableModel defines the interface for a table data model backed by a
// document source.
type TableModel interface {
	// Header returns the table header.
	Header() model1.Header

	// RowCount returns the number of data rows.
	RowCount() int

	// RowAt returns the data row at the given index.
	RowAt(i int) (model1.Row, bool)

	// Peek returns a snapshot of the current table data.
	Peek() *model1.TableData

	// SortBy sorts the data by the given column. Sorting by the current
	// column again flips the direction.
	SortBy(col int)

	// Colorer returns the renderer's row colorer, nil before first load.
	Colorer() model1.ColorerFunc

	// SortState reports the active sort column and direction.
	SortState() (col int, asc bool)

	// Refresh reloads data from the source immediately.
	Refresh(ctx context.Context) error

	// Watch reloads data whenever the source changes, until ctx is done.
	Watch(ctx context.Context) error

	// AddListener registers a table listener.
	AddListener(TableListener)

	// RemoveListener unregisters a table listener.
	RemoveListener(TableListener)
}

// TableListener represents a table model listener.
type TableListener interface {
	// TableDataChanged notifies the model data changed.
	TableDataChanged(*model1.TableData)

	// TableLoadFailed notifies the load failed.
	TableLoadFailed(error)
}
