package main

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spline/spline/csaps"
)

const jobYAML = `
sites: [1, 2, 4, 6]
samples:
  - [2, 4, 5, 7]
  - [1, 2, 4, 6]
weights: [0.5, 1, 0.7, 1.2]
eval:
  points: 6
`

func writeJob(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func quietLogger() *logrus.Logger {
	return newLogger(io.Discard, true)
}

func TestLoadJobFromYAML(t *testing.T) {
	j, err := loadJob(writeJob(t, jobYAML))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 4, 6}, j.Sites)
	require.Len(t, j.Samples, 2)
	require.Equal(t, []float64{0.5, 1, 0.7, 1.2}, j.Weights)
	require.Equal(t, 6, j.Eval.Points)
	require.False(t, j.Eval.Clip)

	p, err := j.smoothValue()
	require.NoError(t, err)
	require.True(t, math.IsNaN(p), "empty smooth selects the automatic parameter")
}

func TestLoadJobEnvOverrides(t *testing.T) {
	t.Setenv("SPLINEFIT_SMOOTH", "0")
	t.Setenv("SPLINEFIT_EVAL_NU", "1")
	t.Setenv("SPLINEFIT_SITES", "0,1,2,3")

	j, err := loadJob(writeJob(t, jobYAML))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, j.Sites)
	require.Equal(t, 1, j.Eval.Nu)

	p, err := j.smoothValue()
	require.NoError(t, err)
	require.Equal(t, 0.0, p)
}

func TestLoadJobDefaults(t *testing.T) {
	j, err := loadJob(writeJob(t, "sites: [0, 1]\nsamples: [[1, 2]]\n"))
	require.NoError(t, err)
	require.Equal(t, 25, j.Eval.Points)
}

func TestLoadJobMissingFile(t *testing.T) {
	_, err := loadJob(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSmoothValue(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
		auto bool
		err  bool
	}{
		{in: "", auto: true},
		{in: "auto", auto: true},
		{in: " AUTO ", auto: true},
		{in: "0.25", want: 0.25},
		{in: "1", want: 1},
		{in: "smooth", err: true},
	} {
		p, err := (&job{Smooth: tc.in}).smoothValue()
		if tc.err {
			require.ErrorIs(t, err, errJob, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		if tc.auto {
			require.True(t, math.IsNaN(p), tc.in)
		} else {
			require.Equal(t, tc.want, p)
		}
	}
}

func TestRunPrintsTable(t *testing.T) {
	j, err := loadJob(writeJob(t, jobYAML))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(j, &out, quietLogger()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header, rule, 6 rows, blank, summary
	require.Len(t, lines, 10)
	require.Equal(t, []string{"x", "y0", "y1"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"1", "2.395721", "1.000000"}, strings.Fields(lines[2]))
	require.Contains(t, lines[9], "smooth=0.735670937")
}

func TestRunDerivativeHeader(t *testing.T) {
	j, err := loadJob(writeJob(t, jobYAML))
	require.NoError(t, err)
	j.Eval.Nu = 2
	j.Eval.Points = 1

	var out bytes.Buffer
	require.NoError(t, run(j, &out, quietLogger()))
	require.Equal(t, []string{"x", "d2y0", "d2y1"}, strings.Fields(strings.SplitN(out.String(), "\n", 2)[0]))
}

func TestRunRejectsBadJobs(t *testing.T) {
	var out bytes.Buffer

	err := run(&job{Sites: []float64{1, 2}, Eval: evalSpec{Points: 3}}, &out, quietLogger())
	require.ErrorIs(t, err, errJob)

	err = run(&job{
		Sites:   []float64{1, 2, 3},
		Samples: [][]float64{{1, 2, 3}},
		Smooth:  "2",
		Eval:    evalSpec{Points: 3},
	}, &out, quietLogger())
	require.ErrorIs(t, err, csaps.ErrSmooth)

	err = run(&job{
		Sites:   []float64{1, 3, 2},
		Samples: [][]float64{{1, 2, 3}},
		Eval:    evalSpec{Points: 3},
	}, &out, quietLogger())
	require.ErrorIs(t, err, csaps.ErrNotIncreasing)
}

func TestRunSampleJob(t *testing.T) {
	j, err := loadJob(filepath.Join("testdata", "job.yaml"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(j, &out, quietLogger()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2+21+2)
	require.Equal(t, "0", strings.Fields(lines[2])[0])
	require.Equal(t, "5", strings.Fields(lines[22])[0])
	require.True(t, strings.HasPrefix(lines[24], "smooth="))
}
