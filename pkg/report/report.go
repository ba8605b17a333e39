// Package report renders the human-readable pipeline output: summary
// counts, confusion matrices, and the naive Bayes diagnostic plot.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/KendraBlalock/Predict-LOS/pkg/claims"
	"github.com/KendraBlalock/Predict-LOS/pkg/evaluate"
	"github.com/KendraBlalock/Predict-LOS/pkg/model"
)

// Summary prints claim counts by sex and age category and the distinct DRG
// tally.
func Summary(w io.Writer, s claims.Summary) {
	fmt.Fprintf(w, "Claims loaded: %d (distinct base DRG codes: %d)\n\n", s.Rows, s.DistinctDRG)

	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Sex code", "Claims"})
	for _, k := range claims.SortedKeys(s.BySex) {
		t.Append([]string{k, strconv.Itoa(s.BySex[k])})
	}
	t.Render()
	fmt.Fprintln(w)

	t = tablewriter.NewWriter(w)
	t.SetHeader([]string{"Age category", "Claims"})
	for _, k := range claims.SortedKeys(s.ByAgeCat) {
		t.Append([]string{k, strconv.Itoa(s.ByAgeCat[k])})
	}
	t.Render()
	fmt.Fprintln(w)
}

// Dropped reports rows excluded for an undefined length-of-stay code.
func Dropped(w io.Writer, undefined []claims.UndefinedLabel) {
	if len(undefined) == 0 {
		return
	}
	fmt.Fprintf(w, "Dropped %d row(s) with undefined length-of-stay codes:\n", len(undefined))
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Row", "Stay code"})
	for _, u := range undefined {
		t.Append([]string{strconv.Itoa(u.Row), u.Value})
	}
	t.Render()
	fmt.Fprintln(w)
}

// Confusion prints one titled confusion matrix and its misclassification
// rate.
func Confusion(w io.Writer, title string, m *evaluate.ConfusionMatrix) {
	fmt.Fprintln(w, title)
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"", "Predicted short", "Predicted long"})
	t.Append([]string{"True short", strconv.Itoa(m.Counts[0][0]), strconv.Itoa(m.Counts[0][1])})
	t.Append([]string{"True long", strconv.Itoa(m.Counts[1][0]), strconv.Itoa(m.Counts[1][1])})
	t.Render()
	fmt.Fprintf(w, "Misclassification rate: %.4f\n\n", m.MisclassificationRate())
}

// NaiveBayesDiagnostic saves one grouped bar chart per predictor column
// showing the fitted class-conditional level probabilities.
func NaiveBayesDiagnostic(nb *model.NaiveBayes, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: create %s: %w", dir, err)
	}
	for c, col := range nb.Columns() {
		table, levels := nb.ConditionalTable(c)
		if table == nil {
			return fmt.Errorf("report: naive bayes has no fitted table for %s", col)
		}

		short := make(plotter.Values, len(table))
		long := make(plotter.Values, len(table))
		for l := range table {
			short[l] = table[l][0]
			long[l] = table[l][1]
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("P(%s | class)", col)
		p.Y.Label.Text = "conditional probability"

		barWidth := vg.Points(6)
		shortBars, err := plotter.NewBarChart(short, barWidth)
		if err != nil {
			return fmt.Errorf("report: %s: %w", col, err)
		}
		shortBars.Offset = -barWidth / 2
		shortBars.Color = plotutil.Color(0)
		longBars, err := plotter.NewBarChart(long, barWidth)
		if err != nil {
			return fmt.Errorf("report: %s: %w", col, err)
		}
		longBars.Offset = barWidth / 2
		longBars.Color = plotutil.Color(1)

		p.Add(shortBars, longBars)
		p.Legend.Add("short stay", shortBars)
		p.Legend.Add("long stay", longBars)
		p.Legend.Top = true
		p.NominalX(levels...)

		// High-cardinality columns (the DRG codes) need a wider canvas to
		// keep the level ticks legible.
		width := vg.Length(4+len(levels)/8) * vg.Inch
		name := filepath.Join(dir, "nb_"+strings.ToLower(col)+".png")
		if err := p.Save(width, 4*vg.Inch, name); err != nil {
			return fmt.Errorf("report: save %s: %w", name, err)
		}
	}
	return nil
}
