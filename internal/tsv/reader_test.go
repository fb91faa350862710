package tsv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgv/tgv/internal/tsv"
)

func TestRead(t *testing.T) {
	in := "NAME\tSIZE\tKIND\nalpha\t10\tdir\nbeta\t2\tfile\n"

	tbl, err := tsv.Read(strings.NewReader(in), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"NAME", "SIZE", "KIND"}, tbl.Columns)
	assert.Equal(t, 2, tbl.RecordCount())
	assert.Equal(t, []string{"alpha", "10", "dir"}, tbl.Records[0])
}

func TestReadCSVDelimiter(t *testing.T) {
	in := "a,b\n1,2\n"

	tbl, err := tsv.Read(strings.NewReader(in), ',')
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}}, tbl.Records)
}

func TestReadCRLF(t *testing.T) {
	in := "a\tb\r\n1\t2\r\n"

	tbl, err := tsv.Read(strings.NewReader(in), 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}}, tbl.Records)
}

func TestReadRaggedRows(t *testing.T) {
	in := "a\tb\tc\n1\n1\t2\t3\t4\n"

	tbl, err := tsv.Read(strings.NewReader(in), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "", ""}, tbl.Records[0])
	assert.Equal(t, []string{"1", "2", "3"}, tbl.Records[1])
}

func TestReadHeaderOnly(t *testing.T) {
	tbl, err := tsv.Read(strings.NewReader("a\tb\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.RecordCount())
}

func TestReadEmpty(t *testing.T) {
	_, err := tsv.Read(strings.NewReader(""), 0)
	assert.Error(t, err)
}

func TestWidths(t *testing.T) {
	in := "id\tname\n1\tlonger-value\n"

	tbl, err := tsv.Read(strings.NewReader(in), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 12}, tbl.Widths())
}
