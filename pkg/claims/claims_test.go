package claims

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tbl, err := Load(filepath.Join("testdata", "claims.csv"))
	require.NoError(t, err)

	assert.Equal(t, 10, tbl.NumRows())
	assert.Equal(t, []string{"1", "2", "3", "4", "4", "2", "1", "5", "3", "4"}, tbl.Column(ColStayCode))
	// Code columns must stay categorical, never parsed as numbers.
	assert.Equal(t, "194", tbl.Column(ColDRG)[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "no_such_file.csv"))
	assert.Error(t, err)
}

func TestLoadSchemaMismatch(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing_column.csv"))
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{ColStayCode}, schemaErr.Missing)
}

func TestSummarize(t *testing.T) {
	tbl, err := Load(filepath.Join("testdata", "claims.csv"))
	require.NoError(t, err)

	s := tbl.Summarize()
	assert.Equal(t, 10, s.Rows)
	assert.Equal(t, map[string]int{"1": 5, "2": 5}, s.BySex)
	assert.Equal(t, map[string]int{"1": 4, "2": 3, "3": 3}, s.ByAgeCat)
	assert.Equal(t, 4, s.DistinctDRG)
}
