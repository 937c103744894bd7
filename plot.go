package daqfloat

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart dimensions.
const (
	PlotWidth  = 8 * vg.Inch
	PlotHeight = 5 * vg.Inch
)

// Plot draws the measured voltage as points and the reference curve as a
// line against time. The image format follows the extension of path (png,
// svg, pdf, ...).
func Plot(samples []Sample, path, title string) (err error) {
	defer Error.WrapP(&err)

	if len(samples) == 0 {
		return ErrNoSamples.New("nothing to plot")
	}

	measured := make(plotter.XYs, len(samples))
	reference := make(plotter.XYs, len(samples))

	for i, s := range samples {
		measured[i].X = s.Time
		measured[i].Y = s.Voltage
		reference[i].X = s.Time
		reference[i].Y = s.Reference
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t [s]"
	p.Y.Label.Text = "U [V]"
	p.Add(plotter.NewGrid())

	points, err := plotter.NewScatter(measured)
	if err != nil {
		return err
	}
	points.Color = plotutil.Color(0)
	points.Shape = plotutil.Shape(0)

	line, err := plotter.NewLine(reference)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(1)

	p.Add(points, line)
	p.Legend.Add("measured", points)
	p.Legend.Add("reference", line)
	p.Legend.Top = true

	return p.Save(PlotWidth, PlotHeight, path)
}
