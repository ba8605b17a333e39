// Package claims loads the CMS BSA Inpatient Claims PUF extract and derives
// the long-stay label used throughout the pipeline.
package claims

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names as they appear in the inpatient claims extract.
const (
	ColBeneID       = "BENE_ID"
	ColSex          = "BENE_SEX_IDENT_CD"
	ColAgeCat       = "BENE_AGE_CAT_CD"
	ColDRG          = "IP_CLM_BASE_DRG_CD"
	ColProcedure    = "IP_CLM_ICD9_PRCDR_CD"
	ColStayCode     = "IP_CLM_DAYS_CD"
	ColQuintAmount  = "IP_DRG_QUINT_PMT_AVG_AMT"
	ColQuintPayment = "IP_DRG_QUINT_PMT_CD"
)

// FeatureColumns are the predictors fed to every model variant.
var FeatureColumns = []string{ColSex, ColAgeCat, ColDRG}

var requiredColumns = []string{
	ColBeneID, ColSex, ColAgeCat, ColDRG,
	ColProcedure, ColStayCode, ColQuintAmount, ColQuintPayment,
}

// SchemaError reports columns missing from the input file.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("claims: input file is missing columns %v", e.Missing)
}

// Table is an in-memory copy of the claims extract. All columns are kept as
// strings; every predictor is categorical and the code columns must not be
// reinterpreted as numbers.
type Table struct {
	df dataframe.DataFrame
}

// Load reads a claims CSV from disk and validates its schema.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("claims: open %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("claims: read %s: %w", path, df.Err)
	}

	present := map[string]bool{}
	for _, name := range df.Names() {
		present[name] = true
	}
	var missing []string
	for _, name := range requiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return &Table{df: df}, nil
}

// NumRows returns the number of claims in the table.
func (t *Table) NumRows() int {
	return t.df.Nrow()
}

// Column returns the raw values of one named column.
func (t *Table) Column(name string) []string {
	return t.df.Col(name).Records()
}

// Summary holds the descriptive counts reported before any model is fit.
type Summary struct {
	Rows        int
	BySex       map[string]int
	ByAgeCat    map[string]int
	DistinctDRG int
}

// Summarize counts claims by sex and age category and tallies the number of
// distinct base DRG codes.
func (t *Table) Summarize() Summary {
	s := Summary{
		Rows:     t.NumRows(),
		BySex:    map[string]int{},
		ByAgeCat: map[string]int{},
	}
	for _, v := range t.Column(ColSex) {
		s.BySex[v]++
	}
	for _, v := range t.Column(ColAgeCat) {
		s.ByAgeCat[v]++
	}
	drg := map[string]bool{}
	for _, v := range t.Column(ColDRG) {
		drg[v] = true
	}
	s.DistinctDRG = len(drg)
	return s
}

// SortedKeys returns the keys of a count map in ascending order, for stable
// report output.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
