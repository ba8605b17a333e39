package model

import (
	"strconv"
	"strings"

	"github.com/KendraBlalock/Predict-LOS/pkg/encode"
)

// Dedup returns a dataset with one row per distinct (label, features)
// combination, in first-occurrence order. The distance-, margin- and
// odds-based variants train on this table so that duplicated claims do not
// weight neighbour voting or the fitted boundary toward overrepresented
// combinations.
func Dedup(ds *encode.Dataset) *encode.Dataset {
	out := &encode.Dataset{
		Cols:   ds.Cols,
		Levels: ds.Levels,
	}
	seen := map[string]bool{}
	var key strings.Builder
	for r, row := range ds.Rows {
		key.Reset()
		key.WriteString(strconv.Itoa(ds.Labels[r]))
		for _, l := range row {
			key.WriteByte('|')
			key.WriteString(strconv.Itoa(l))
		}
		k := key.String()
		if seen[k] {
			continue
		}
		seen[k] = true
		out.Rows = append(out.Rows, row)
		out.Labels = append(out.Labels, ds.Labels[r])
	}
	return out
}
