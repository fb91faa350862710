package model1

import "strings"

// idSep joins fields into a row id. Unit separator keeps ids unambiguous
// for fields that contain tabs or spaces.
const idSep = "\x1f"

// Fields represents a collection of row fields.
type Fields []string

func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	copy(out, f)
	return out
}

// Equal returns true if both field sets carry the same values.
func (f Fields) Equal(other Fields) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// Row represents a single data row.
type Row struct {
	ID     string
	Fields Fields
}

// NewRow builds a row from raw fields. The id is a pure function of the
// field values so it survives any reordering of the row set.
func NewRow(fields []string) Row {
	return Row{
		ID:     strings.Join(fields, idSep),
		Fields: Fields(fields).Clone(),
	}
}

func (r Row) Clone() Row {
	return Row{
		ID:     r.ID,
		Fields: r.Fields.Clone(),
	}
}

func (r Row) Len() int {
	return len(r.Fields)
}

// Field returns the field at the given column or "" when out of range.
func (r Row) Field(col int) string {
	if col < 0 || col >= len(r.Fields) {
		return ""
	}
	return r.Fields[col]
}

// Rows represents a collection of rows.
type Rows []Row

func (r Rows) Clone() Rows {
	out := make(Rows, len(r))
	for i, row := range r {
		out[i] = row.Clone()
	}
	return out
}
