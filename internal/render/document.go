package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/derailed/tview"
	"github.com/gdamore/tcell/v2"

	"github.com/tgv/tgv/internal/model1"
)

const (
	// MissingValue is displayed for absent fields.
	MissingValue = "<none>"

	// numericSampleSize caps how many records are probed per column when
	// detecting numeric columns.
	numericSampleSize = 50
)

// Document renders parsed file records into table rows.
type Document struct {
	numeric []bool
}

// NewDocument returns a document renderer. The sample records are probed
// to mark numeric columns for right alignment and numeric sorting.
func NewDocument(cols []string, sample [][]string) *Document {
	return &Document{
		numeric: detectNumeric(len(cols), sample),
	}
}

// Header returns the table header for the given column names.
func (d *Document) Header(cols []string) model1.Header {
	h := make(model1.Header, 0, len(cols))
	for i, name := range cols {
		col := model1.HeaderColumn{Name: strings.ToUpper(name)}
		if i < len(d.numeric) && d.numeric[i] {
			col.Numeric = true
			col.Align = tview.AlignRight
		}
		h = append(h, col)
	}
	return h
}

// Render converts one record into a row.
func (d *Document) Render(record []string, row *Row) error {
	if record == nil {
		return fmt.Errorf("cannot render nil record")
	}
	fields := make([]string, len(record))
	for i, v := range record {
		if v == "" {
			v = MissingValue
		}
		fields[i] = v
	}
	*row = model1.NewRow(fields)
	return nil
}

// ColorerFunc returns the row colorer. Rows with missing fields render
// dimmed.
func (d *Document) ColorerFunc() model1.ColorerFunc {
	return func(_ model1.Header, row model1.Row) tcell.Color {
		for _, f := range row.Fields {
			if f == MissingValue {
				return tcell.ColorGray
			}
		}
		return tcell.ColorWhite
	}
}

// Row aliases the model row to keep the Renderer signature local.
type Row = model1.Row

// detectNumeric marks the columns whose sampled values all parse as
// numbers. Empty values do not disqualify a column.
func detectNumeric(cols int, sample [][]string) []bool {
	numeric := make([]bool, cols)
	seen := make([]bool, cols)
	for i := range numeric {
		numeric[i] = true
	}

	for n, rec := range sample {
		if n >= numericSampleSize {
			break
		}
		for i, v := range rec {
			if i >= cols || v == "" {
				continue
			}
			seen[i] = true
			if !isNumber(v) {
				numeric[i] = false
			}
		}
	}

	for i := range numeric {
		if !seen[i] {
			numeric[i] = false
		}
	}
	return numeric
}

func isNumber(s string) bool {
	s = strings.ReplaceAll(s, ",", "")
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
