package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spline/spline/csaps"
	"github.com/cwbudde/algo-spline/spline/ndarray"
	"github.com/cwbudde/algo-spline/spline/ppform"
	"github.com/cwbudde/algo-spline/stats/residual"
)

// run fits the job and writes the evaluation table and fit statistics to out.
func run(j *job, out io.Writer, log *logrus.Logger) error {
	if err := j.validate(); err != nil {
		return err
	}
	p, err := j.smoothValue()
	if err != nil {
		return err
	}

	samples, err := ndarray.FromRows(j.Samples)
	if err != nil {
		return fmt.Errorf("samples: %w", err)
	}
	log.WithFields(logrus.Fields{
		"sites":    len(j.Sites),
		"channels": len(j.Samples),
		"weighted": j.Weights != nil,
	}).Debug("fitting")

	s, err := csaps.Fit(j.Sites, samples, csaps.WithWeights(j.Weights), csaps.WithSmooth(p))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"smooth": s.Smooth(),
		"order":  s.Order(),
		"pieces": s.Pieces(),
	}).Info("fitted")

	from, to := j.Eval.From, j.Eval.To
	if from == to {
		from, to = s.Domain()
	}
	xi := []float64{from}
	if j.Eval.Points > 1 {
		xi = floats.Span(make([]float64, j.Eval.Points), from, to)
	}
	yi, err := s.Evaluate(xi, ppform.WithNu(j.Eval.Nu), ppform.WithExtrapolate(!j.Eval.Clip))
	if err != nil {
		return err
	}

	st, err := residuals(s, j)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rms":     st.RMS,
		"max_abs": st.MaxAbs,
	}).Debug("residuals")

	return printTable(out, xi, yi.Data(), len(j.Samples), j.Eval.Nu, s.Smooth(), len(j.Sites), st)
}

// residuals compares every channel with the fit at the sites.
func residuals(s *csaps.Spline, j *job) (residual.Stats, error) {
	fitted, err := s.Evaluate(j.Sites)
	if err != nil {
		return residual.Stats{}, err
	}
	m := len(j.Sites)
	acc := residual.NewAccumulator()
	for c, row := range j.Samples {
		if err := acc.Update(row, fitted.Data()[c*m:(c+1)*m], j.Weights); err != nil {
			return residual.Stats{}, err
		}
	}
	return acc.Result(), nil
}

func printTable(out io.Writer, xi, values []float64, channels, nu int, smooth float64, sites int, st residual.Stats) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "x"
	rule := "-"
	for c := 0; c < channels; c++ {
		name := fmt.Sprintf("y%d", c)
		if nu > 0 {
			name = fmt.Sprintf("d%dy%d", nu, c)
		}
		header += "\t" + name
		rule += "\t" + "--"
	}
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	q := len(xi)
	for i, x := range xi {
		line := fmt.Sprintf("%.6g", x)
		for c := 0; c < channels; c++ {
			line += fmt.Sprintf("\t%.6f", values[c*q+i])
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	// Residuals are accumulated channel after channel.
	_, err := fmt.Fprintf(out, "\nsmooth=%.9f  rms=%.6g  max=%.6g (channel %d, site %d)  sse=%.6g  wsse=%.6g  sign-changes=%d\n",
		smooth, st.RMS, st.MaxAbs, st.MaxAbsPos/sites, st.MaxAbsPos%sites, st.SSE, st.WeightedSSE, st.SignChanges)
	return err
}
