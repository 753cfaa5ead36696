package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Trimmed-down World Bank export: four metadata lines (two of them
// blank), a quoted entity name with an embedded comma, year columns
// outside the loaded range, gaps, and a row without an entity name.
const sampleCSV = `"Data Source","World Development Indicators",

"Last Updated Date","2023-12-18",

"Country Name","Country Code","Indicator Name","Indicator Code","1989","1990","1991","2022","2023"
"Aruba","ABW","Indicator","XX.1","9.9","10","11","12","99"
"Congo, Dem. Rep.","COD","Indicator","XX.1","","20","","22","99"
"","XXX","Indicator","XX.1","1","2","3","4","5"
"Zimbabwe","ZWE","Indicator","XX.1","8","30","31","not-a-number","99"
`

func TestReadSample(t *testing.T) {
	ds, err := Read("test", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// The row without an entity name is excluded.
	assert.Equal(t, []string{"Aruba", "Congo, Dem. Rep.", "Zimbabwe"},
		ds.ByEntity.RowKeys())

	// The column axis is always the full configured range.
	assert.Len(t, ds.ByEntity.ColKeys(), EndYear-StartYear+1)

	v, ok, err := ds.ByEntity.Value("Aruba", "1990")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	v, ok, err = ds.ByEntity.Value("Congo, Dem. Rep.", "2022")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 22.0, v)

	// Blank and unparsable cells stay absent.
	_, ok, err = ds.ByEntity.Value("Congo, Dem. Rep.", "1991")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = ds.ByEntity.Value("Zimbabwe", "2022")
	require.NoError(t, err)
	assert.False(t, ok)

	// Columns outside 1990-2022 are discarded entirely.
	_, _, err = ds.ByEntity.Value("Aruba", "1989")
	require.ErrorIs(t, err, ErrEntityNotFound)
	_, _, err = ds.ByEntity.Value("Aruba", "2023")
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestReadViewsAreTransposes(t *testing.T) {
	ds, err := Read("test", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.True(t, ds.ByYear.Equal(ds.ByEntity.Transpose()))
	// Round-trip: re-deriving the entity view from the year view
	// reproduces it exactly.
	assert.True(t, ds.ByYear.Transpose().Equal(ds.ByEntity))
}

func TestReadMissingEntityColumn(t *testing.T) {
	csv := `meta,
meta,
meta,
meta,
"Country Code","1990","1991"
"ABW","10","11"
`
	_, err := Read("test", strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Country Name")
}

func TestReadDuplicateEntity(t *testing.T) {
	csv := `meta,
meta,
meta,
meta,
"Country Name","1990"
"Aruba","10"
"Aruba","11"
`
	_, err := Read("test", strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestReadTruncatedMetadata(t *testing.T) {
	_, err := Read("test", strings.NewReader("only one line\n"))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	// 1. Setup
	path := filepath.Join(t.TempDir(), "indicator.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	// 2. Run
	ds, err := Load("test", path)

	// 3. Assertions
	require.NoError(t, err)
	assert.Equal(t, 3, ds.ByEntity.NumRows())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("test", filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
