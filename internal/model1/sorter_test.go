package model1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tgv/tgv/internal/model1"
)

func rows(ff ...[]string) model1.Rows {
	rr := make(model1.Rows, 0, len(ff))
	for _, f := range ff {
		rr = append(rr, model1.NewRow(f))
	}
	return rr
}

func column(rr model1.Rows, col int) []string {
	out := make([]string, 0, len(rr))
	for _, r := range rr {
		out = append(out, r.Field(col))
	}
	return out
}

func TestRowSorter(t *testing.T) {
	uu := map[string]struct {
		rows    model1.Rows
		col     int
		numeric bool
		asc     bool
		e       []string
	}{
		"asc": {
			rows: rows([]string{"b"}, []string{"a"}, []string{"c"}),
			asc:  true,
			e:    []string{"a", "b", "c"},
		},
		"desc": {
			rows: rows([]string{"b"}, []string{"a"}, []string{"c"}),
			e:    []string{"c", "b", "a"},
		},
		"natural": {
			rows: rows([]string{"item10"}, []string{"item2"}, []string{"item1"}),
			asc:  true,
			e:    []string{"item1", "item2", "item10"},
		},
		"numeric": {
			rows:    rows([]string{"10"}, []string{"2"}, []string{"1,000"}),
			numeric: true,
			asc:     true,
			e:       []string{"2", "10", "1,000"},
		},
		"second-col": {
			rows: rows([]string{"x", "30"}, []string{"y", "10"}, []string{"z", "20"}),
			col:  1,
			asc:  true,
			e:    []string{"y", "z", "x"},
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			model1.RowSorter{
				Rows:    u.rows,
				Index:   u.col,
				Numeric: u.numeric,
				Asc:     u.asc,
			}.Sort()
			if u.col == 1 {
				assert.Equal(t, u.e, column(u.rows, 0))
				return
			}
			assert.Equal(t, u.e, column(u.rows, u.col))
		})
	}
}

func TestRowSorterTiebreakStable(t *testing.T) {
	rr := rows([]string{"same", "1"}, []string{"same", "2"})
	model1.RowSorter{Rows: rr, Index: 0, Asc: true}.Sort()

	// Equal sort keys fall back to row id ordering.
	assert.Equal(t, []string{"1", "2"}, column(rr, 1))
}

func TestRowIdentityStableAcrossReorder(t *testing.T) {
	r1 := model1.NewRow([]string{"a", "1"})
	r2 := model1.NewRow([]string{"a", "1"})

	assert.Equal(t, r1.ID, r2.ID)
	assert.True(t, r1.Fields.Equal(r2.Fields))

	r3 := model1.NewRow([]string{"a", "2"})
	assert.NotEqual(t, r1.ID, r3.ID)
}

func TestHeaderIndexOf(t *testing.T) {
	h := model1.Header{
		{Name: "NAME"},
		{Name: "SIZE", Attrs: model1.Attrs{Numeric: true}},
		{Name: "NOTES", Attrs: model1.Attrs{Wide: true}},
	}

	i, ok := h.IndexOf("SIZE", false)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.True(t, h.IsNumericCol(1))
	assert.False(t, h.IsNumericCol(5))

	_, ok = h.IndexOf("NOTES", false)
	assert.False(t, ok)
	_, ok = h.IndexOf("NOTES", true)
	assert.True(t, ok)
}
