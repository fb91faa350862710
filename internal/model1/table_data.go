package model1

import "sync"

// TableData tracks a header and rows for tabular display.
type TableData struct {
	header Header
	rows   Rows
	source string
	errMsg string
	mx     sync.RWMutex
}

// NewTableData returns a new table.
func NewTableData() *TableData {
	return &TableData{}
}

// Header returns the table header.
func (t *TableData) Header() Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.header
}

// SetHeader sets the table header.
func (t *TableData) SetHeader(h Header) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.header = h
}

// Rows returns the current row set.
func (t *TableData) Rows() Rows {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rows
}

// SetRows replaces the row set.
func (t *TableData) SetRows(rr Rows) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.rows = rr
}

// RowAt returns the row at the given index, bounds-checked.
func (t *TableData) RowAt(i int) (Row, bool) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	if i < 0 || i >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[i], true
}

// Source returns the data source description.
func (t *TableData) Source() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.source
}

// SetSource sets the data source description.
func (t *TableData) SetSource(src string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.source = src
}

// RowCount returns the number of data rows.
func (t *TableData) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.rows)
}

// Clone returns a deep copy of the table data.
func (t *TableData) Clone() *TableData {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return &TableData{
		header: t.header.Clone(),
		rows:   t.rows.Clone(),
		source: t.source,
		errMsg: t.errMsg,
	}
}

// SetError sets an error message to display instead of data.
func (t *TableData) SetError(msg string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.errMsg = msg
}

// Error returns the error message, if any.
func (t *TableData) Error() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.errMsg
}

// HasError returns true if there's an error message.
func (t *TableData) HasError() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.errMsg != ""
}
