package main

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WriteChart draws a grouped bar chart of latency per operation, one bar per
// structure/config, and saves it to path. The extension picks the format.
func WriteChart(path string, results []BenchResult) error {
	if len(results) == 0 {
		return errors.New("chart: no results")
	}

	var ops, labels []string
	opIdx := map[string]int{}
	series := map[string]plotter.Values{}
	for _, r := range results {
		if _, ok := opIdx[r.Operation]; !ok {
			opIdx[r.Operation] = len(ops)
			ops = append(ops, r.Operation)
		}
		if _, ok := series[r.Label()]; !ok {
			labels = append(labels, r.Label())
			series[r.Label()] = nil
		}
	}
	for _, r := range results {
		vals := series[r.Label()]
		if vals == nil {
			vals = make(plotter.Values, len(ops))
			series[r.Label()] = vals
		}
		vals[opIdx[r.Operation]] = float64(r.LatencyNs)
	}

	p := plot.New()
	p.Title.Text = "Latency per operation"
	p.Y.Label.Text = "ns/op"

	w := vg.Points(10)
	for i, label := range labels {
		bars, err := plotter.NewBarChart(series[label], w)
		if err != nil {
			return errors.Wrapf(err, "chart: %s", label)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(len(labels)-1)/2) * w
		p.Add(bars)
		p.Legend.Add(label, bars)
	}
	p.Legend.Top = true
	p.NominalX(ops...)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "chart: save %s", path)
	}
	return nil
}
