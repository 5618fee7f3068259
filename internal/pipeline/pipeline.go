// Package pipeline applies scripted sequences of region operations.
//
// A Job names a mask, describes how to build it and lists the steps to run on it.
// Jobs are plain data so they can be decoded from YAML.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/bitregion/internal/region"
)

var (
	ErrUnknownOp = errors.New("unknown op")
	ErrBadArgs   = errors.New("bad op arguments")
	ErrBadSource = errors.New("bad job source")
)

// Step is one operation with integer arguments.
// Fractions are given in per-mille (250 = 0.25).
type Step struct {
	Op   string `yaml:"op"`
	Args []int  `yaml:"args,omitempty"`
}

// Source describes the initial mask of a job: text rows and/or rectangles.
type Source struct {
	Lines []string `yaml:"lines,omitempty"`
	On    string   `yaml:"on,omitempty"` // rune marking on cells in Lines (default "#")
	Rects [][4]int `yaml:"rects,omitempty"`
}

// Job is a named mask and the steps applied to it.
type Job struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Source Source `yaml:"source"`
	Steps  []Step `yaml:"steps"`
}

// Result is the outcome of one job.
type Result struct {
	Name   string
	Region *region.Region
	Counts []int // on-cell count after each step
}

// Build creates the initial region of a job.
// Width and height may be omitted when Lines are given.
func Build(job Job) (*region.Region, error) {
	src := job.Source
	on := '#'
	if src.On != "" {
		runes := []rune(src.On)
		if len(runes) != 1 {
			return nil, fmt.Errorf("job %q: on %q is not one character: %w", job.Name, src.On, ErrBadSource)
		}
		on = runes[0]
	}

	var r *region.Region
	var err error
	switch {
	case len(src.Lines) > 0:
		r, err = region.ParseLines(src.Lines, on)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", job.Name, err)
		}
		if (job.Width != 0 && job.Width != r.Width()) || (job.Height != 0 && job.Height != r.Height()) {
			return nil, fmt.Errorf("job %q: lines are %dx%d, job says %dx%d: %w",
				job.Name, r.Width(), r.Height(), job.Width, job.Height, ErrBadSource)
		}
	default:
		r, err = region.New(job.Width, job.Height)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", job.Name, err)
		}
	}

	for _, rc := range src.Rects {
		r.InsertRectangle(rc[0], rc[1], rc[2], rc[3])
	}
	return r, nil
}

// Run builds the job's region and applies its steps.
func Run(job Job, rng *rand.Rand) (Result, error) {
	r, err := Build(job)
	if err != nil {
		return Result{}, err
	}
	counts, err := Apply(r, job.Steps, rng)
	if err != nil {
		return Result{}, fmt.Errorf("job %q: %w", job.Name, err)
	}
	slog.Debug("job done", "job", job.Name, "steps", len(job.Steps), "cells", r.Count())
	return Result{Name: job.Name, Region: r, Counts: counts}, nil
}

// Apply runs steps on r in order and returns the on-cell count after each one.
func Apply(r *region.Region, steps []Step, rng *rand.Rand) ([]int, error) {
	counts := make([]int, 0, len(steps))
	for i, st := range steps {
		o, ok := ops[st.Op]
		if !ok {
			return counts, fmt.Errorf("step %d: %q: %w", i, st.Op, ErrUnknownOp)
		}
		if len(st.Args) < o.minArgs || len(st.Args) > o.maxArgs {
			return counts, fmt.Errorf("step %d: %s takes %d..%d args, got %d: %w",
				i, st.Op, o.minArgs, o.maxArgs, len(st.Args), ErrBadArgs)
		}
		if err := o.apply(r, st.Args, rng); err != nil {
			return counts, fmt.Errorf("step %d: %s: %w", i, st.Op, err)
		}
		counts = append(counts, r.Count())
	}
	return counts, nil
}
