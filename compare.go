package daqfloat

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes how far the measured voltage strays from the reference
// curve. Residuals are measured minus reference.
type Summary struct {
	Count int

	MeanResidual   float64
	StdDevResidual float64
	RMSE           float64

	MaxAbsDeviation float64
	MaxAbsIndex     int
	MaxAbsTime      float64
}

// Compare computes the residual statistics of samples.
func Compare(samples []Sample) (s Summary, err error) {
	defer Error.WrapP(&err)

	n := len(samples)
	if n == 0 {
		return s, ErrNoSamples.New("nothing to compare")
	}

	measured := make([]float64, n)
	reference := make([]float64, n)

	for i, sample := range samples {
		measured[i] = sample.Voltage
		reference[i] = sample.Reference
	}

	residuals := make([]float64, n)
	floats.SubTo(residuals, measured, reference)

	s.Count = n
	s.MeanResidual = stat.Mean(residuals, nil)

	// The unbiased estimator is undefined for a single sample.
	if n > 1 {
		s.StdDevResidual = stat.StdDev(residuals, nil)
	}

	s.RMSE = floats.Norm(residuals, 2) / math.Sqrt(float64(n))

	abs := make([]float64, n)
	for i, r := range residuals {
		abs[i] = math.Abs(r)
	}

	s.MaxAbsIndex = floats.MaxIdx(abs)
	s.MaxAbsDeviation = abs[s.MaxAbsIndex]
	s.MaxAbsTime = samples[s.MaxAbsIndex].Time

	return s, nil
}

// WriteSummary writes s as an aligned two column table.
func WriteSummary(w io.Writer, s Summary) (err error) {
	defer Error.WrapP(&err)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := []struct {
		name  string
		value string
	}{
		{"samples", fmt.Sprint(s.Count)},
		{"mean residual", FormatFloat(s.MeanResidual)},
		{"stddev residual", FormatFloat(s.StdDevResidual)},
		{"rmse", FormatFloat(s.RMSE)},
		{"max deviation", FormatFloat(s.MaxAbsDeviation)},
		{"max deviation index", fmt.Sprint(s.MaxAbsIndex)},
		{"max deviation time", FormatFloat(s.MaxAbsTime)},
	}

	for _, row := range rows {
		_, err = fmt.Fprintf(tw, "%s\t%s\n", row.name, row.value)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
