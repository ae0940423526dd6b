package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// job describes one fit. Smooth is kept as text so that an explicit 0 can be
// told apart from "choose automatically".
type job struct {
	Sites   []float64   `yaml:"sites" env:"SPLINEFIT_SITES" env-separator:","`
	Samples [][]float64 `yaml:"samples"`
	Weights []float64   `yaml:"weights" env:"SPLINEFIT_WEIGHTS" env-separator:","`
	Smooth  string      `yaml:"smooth" env:"SPLINEFIT_SMOOTH"`
	Eval    evalSpec    `yaml:"eval" env-prefix:"SPLINEFIT_EVAL_"`
}

type evalSpec struct {
	From   float64 `yaml:"from" env:"FROM"`
	To     float64 `yaml:"to" env:"TO"`
	Points int     `yaml:"points" env:"POINTS" env-default:"25"`
	Nu     int     `yaml:"nu" env:"NU"`
	Clip   bool    `yaml:"clip" env:"CLIP"` // NaN outside the sites instead of extrapolating
}

var errJob = errors.New("splinefit: invalid job")

// loadJob reads the job from a YAML file and applies environment overrides.
// An empty path reads the environment only.
func loadJob(path string) (*job, error) {
	var j job
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&j)
	} else {
		err = cleanenv.ReadConfig(path, &j)
	}
	if err != nil {
		return nil, fmt.Errorf("read job: %w", err)
	}
	return &j, nil
}

// smoothValue returns the requested smoothing parameter, NaN for automatic.
func (j *job) smoothValue() (float64, error) {
	s := strings.TrimSpace(j.Smooth)
	if s == "" || strings.EqualFold(s, "auto") {
		return math.NaN(), nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: smooth %q: %v", errJob, j.Smooth, err)
	}
	return p, nil
}

func (j *job) validate() error {
	if len(j.Samples) == 0 {
		return fmt.Errorf("%w: no samples", errJob)
	}
	if j.Eval.Points < 1 {
		return fmt.Errorf("%w: eval.points must be positive, got %d", errJob, j.Eval.Points)
	}
	if j.Eval.Nu < 0 {
		return fmt.Errorf("%w: eval.nu must not be negative, got %d", errJob, j.Eval.Nu)
	}
	return nil
}
