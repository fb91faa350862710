package render_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgv/tgv/internal/model1"
	"github.com/tgv/tgv/internal/render"
)

func TestDocumentHeader(t *testing.T) {
	cols := []string{"name", "size"}
	sample := [][]string{
		{"alpha", "10"},
		{"beta", "2,000"},
	}

	d := render.NewDocument(cols, sample)
	h := d.Header(cols)

	require.Len(t, h, 2)
	assert.Equal(t, "NAME", h[0].Name)
	assert.False(t, h[0].Numeric)
	assert.Equal(t, "SIZE", h[1].Name)
	assert.True(t, h[1].Numeric)
}

func TestDocumentHeaderEmptyColumnNotNumeric(t *testing.T) {
	cols := []string{"blank"}
	d := render.NewDocument(cols, [][]string{{""}, {""}})

	h := d.Header(cols)
	require.Len(t, h, 1)
	assert.False(t, h[0].Numeric)
}

func TestDocumentRender(t *testing.T) {
	d := render.NewDocument([]string{"a", "b"}, nil)

	var row model1.Row
	require.NoError(t, d.Render([]string{"x", ""}, &row))

	assert.Equal(t, model1.Fields{"x", render.MissingValue}, row.Fields)
	assert.NotEmpty(t, row.ID)

	assert.Error(t, d.Render(nil, &row))
}

func TestDocumentColorer(t *testing.T) {
	d := render.NewDocument([]string{"a"}, nil)
	colorer := d.ColorerFunc()

	var full, sparse model1.Row
	require.NoError(t, d.Render([]string{"x"}, &full))
	require.NoError(t, d.Render([]string{""}, &sparse))

	assert.Equal(t, tcell.ColorWhite, colorer(nil, full))
	assert.Equal(t, tcell.ColorGray, colorer(nil, sparse))
}
