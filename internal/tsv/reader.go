// Package tsv reads delimited tabular files (TSV by default) into a
// header plus records, tolerating ragged rows and CRLF line endings.
package tsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
)

// DefaultDelimiter separates fields when none is configured.
const DefaultDelimiter = '\t'

// Table holds a parsed document: one header line plus data records.
type Table struct {
	Columns []string
	Records [][]string
}

// ColCount returns the number of columns, as defined by the header.
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// RecordCount returns the number of data records.
func (t *Table) RecordCount() int {
	return len(t.Records)
}

// Widths returns the display width of the widest value per column,
// header included.
func (t *Table) Widths() []int {
	ww := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		ww[i] = runewidth.StringWidth(c)
	}
	for _, rec := range t.Records {
		for i, v := range rec {
			if i >= len(ww) {
				break
			}
			if w := runewidth.StringWidth(v); w > ww[i] {
				ww[i] = w
			}
		}
	}
	return ww
}

// ReadFile parses the file at path using the given delimiter.
func ReadFile(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	return Read(f, delimiter)
}

// Read parses delimited data from r. The first record is the header; a
// document with no records at all is an error, a header-only document is
// not.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1 // ragged rows are padded below
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty document: no header record")
		}
		return nil, fmt.Errorf("read header record: %w", err)
	}

	t := Table{Columns: header}
	for {
		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read record %d: %w", len(t.Records)+2, err)
		}
		t.Records = append(t.Records, pad(rec, len(header)))
	}

	return &t, nil
}

// pad normalizes a record to the header width: short records gain empty
// fields, long ones are truncated.
func pad(rec []string, width int) []string {
	if len(rec) == width {
		return rec
	}
	if len(rec) > width {
		return rec[:width]
	}
	out := make([]string, width)
	copy(out, rec)
	return out
}
