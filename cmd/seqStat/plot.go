package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/liserjrqlxue/seqStat/pkg/util"
)

var bases = []byte("ACGT")

// PlotComposition draw A/C/G/T counts as bar chart, format by file extension
func PlotComposition(stats *util.Stats, path string) error {
	var (
		values = make(plotter.Values, len(bases))
		names  = make([]string, len(bases))
	)
	for i, c := range bases {
		names[i] = string(c)
		values[i] = float64(stats.ATCG[names[i]])
	}

	p := plot.New()
	p.Title.Text = "Base composition"
	p.Y.Label.Text = "Count"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(names...)

	return p.Save(4*vg.Inch, 3*vg.Inch, path)
}
