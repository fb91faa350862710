package model1

import "sort"

// RowSorter sorts rows by a given column using natural ordering.
type RowSorter struct {
	Rows    Rows
	Index   int
	Numeric bool
	Asc     bool
}

func (s RowSorter) Len() int {
	return len(s.Rows)
}

func (s RowSorter) Swap(i, j int) {
	s.Rows[i], s.Rows[j] = s.Rows[j], s.Rows[i]
}

func (s RowSorter) Less(i, j int) bool {
	v1, v2 := s.Rows[i].Field(s.Index), s.Rows[j].Field(s.Index)
	id1, id2 := s.Rows[i].ID, s.Rows[j].ID
	less := Less(s.Numeric, id1, id2, v1, v2)
	if s.Asc {
		return less
	}
	return !less
}

// Sort sorts the rows in place.
func (s RowSorter) Sort() {
	sort.Sort(s)
}
