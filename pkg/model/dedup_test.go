package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KendraBlalock/Predict-LOS/pkg/encode"
)

func TestDedup(t *testing.T) {
	ds := &encode.Dataset{
		Cols:   []string{"sex", "age"},
		Levels: [][]string{{"1", "2"}, {"1", "2", "3"}},
		Rows:   [][]int{{0, 1}, {0, 1}, {1, 2}, {0, 1}, {1, 2}},
		Labels: []int{0, 0, 1, 1, 1},
	}

	out := Dedup(ds)

	// {0,1}/0 repeats, {1,2}/1 repeats, and {0,1} appears under both
	// labels; label is part of the row identity.
	assert.Equal(t, [][]int{{0, 1}, {1, 2}, {0, 1}}, out.Rows)
	assert.Equal(t, []int{0, 1, 1}, out.Labels)
	assert.Equal(t, ds.Cols, out.Cols)
	assert.Equal(t, ds.Levels, out.Levels)
}

func TestDedupNoDuplicates(t *testing.T) {
	ds := &encode.Dataset{
		Cols:   []string{"f"},
		Levels: [][]string{{"a", "b"}},
		Rows:   [][]int{{0}, {1}},
		Labels: []int{0, 1},
	}
	out := Dedup(ds)
	assert.Equal(t, ds.Rows, out.Rows)
	assert.Equal(t, ds.Labels, out.Labels)
}

func TestDedupEmpty(t *testing.T) {
	out := Dedup(&encode.Dataset{Cols: []string{"f"}, Levels: [][]string{{"a"}}})
	assert.Equal(t, 0, out.Len())
}
