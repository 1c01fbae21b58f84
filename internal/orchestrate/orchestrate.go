// Package orchestrate configures every flavor of the catalog in order and
// stops at the first failure.
package orchestrate

import (
	"context"
	"fmt"

	"github.com/qiniu/x/log"

	"github.com/cm4all/flavorconf/internal/builddir"
	"github.com/cm4all/flavorconf/internal/env"
	"github.com/cm4all/flavorconf/internal/flavor"
	"github.com/cm4all/flavorconf/internal/layout"
	"github.com/cm4all/flavorconf/internal/output"
	"github.com/cm4all/flavorconf/pkgs/buildsys"
	"github.com/cm4all/flavorconf/pkgs/buildsys/meson"
)

// State is the lifecycle of a run: Idle, then Processing once per flavor,
// then Completed or Aborted.
type State int

const (
	Idle State = iota
	Processing
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Processing:
		return "processing"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Resetter empties a build directory before the generator runs.
type Resetter interface {
	Reset(path string) builddir.Outcome
}

// FlavorError is returned when a flavor aborts the run.
type FlavorError struct {
	Flavor string
	Err    error
}

func (e *FlavorError) Error() string {
	return fmt.Sprintf("flavor %s: %v", e.Flavor, e.Err)
}

func (e *FlavorError) Unwrap() error { return e.Err }

// Step is everything computed for one flavor.
type Step struct {
	Flavor   string
	BuildDir string
	Prefix   string
	Args     []string
	Env      env.Snapshot
	Reset    builddir.Outcome
	Err      error
}

// Report describes a finished run. Steps holds one entry per flavor that was
// started, including the one that failed.
type Report struct {
	Steps []Step
	State State
}

// Orchestrator drives the generator once per selected flavor.
type Orchestrator struct {
	Catalog   *flavor.Catalog
	Only      []string // empty means every flavor
	Layout    layout.Layout
	Generator string
	Global    []string
	Base      env.Snapshot

	Runner   buildsys.Runner
	Resetter Resetter         // nil uses builddir.Resetter{}
	Progress *output.Progress // nil prints nothing

	// StrictReset aborts the run when a stale build directory cannot be
	// removed. Otherwise the failure is logged and the generator runs anyway.
	StrictReset bool
	// DryRun computes and prints the command lines without touching the
	// filesystem or starting any process.
	DryRun bool
}

// Plan computes the command line and environment of every selected flavor
// without side effects.
func (o *Orchestrator) Plan() ([]Step, error) {
	flavors, err := o.Catalog.Select(o.Only)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(flavors))
	for _, f := range flavors {
		steps = append(steps, o.plan(f))
	}
	return steps, nil
}

func (o *Orchestrator) plan(f flavor.Flavor) Step {
	buildDir := o.Layout.BuildDir(f.Name)
	prefix := o.Layout.Prefix(f.Name)
	generator := o.Generator
	if generator == "" {
		generator = meson.DefaultBinary
	}
	return Step{
		Flavor:   f.Name,
		BuildDir: buildDir,
		Prefix:   prefix,
		Args:     meson.Arguments(generator, o.Layout.SourceRoot, buildDir, o.Global, f.Options, prefix),
		Env:      o.Base.Overlay(f.Env),
	}
}

// Run configures the selected flavors in catalog order. The first failure
// ends the run: later flavors are not started and the error, a *FlavorError,
// is returned together with the report.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	flavors, err := o.Catalog.Select(o.Only)
	if err != nil {
		return &Report{State: Idle}, err
	}
	resetter := o.Resetter
	if resetter == nil {
		resetter = builddir.Resetter{}
	}

	report := &Report{State: Processing}
	abort := func(step Step, err error) (*Report, error) {
		step.Err = err
		report.Steps = append(report.Steps, step)
		report.State = Aborted
		if o.Progress != nil {
			o.Progress.Failed(step.Flavor, err)
		}
		return report, &FlavorError{Flavor: step.Flavor, Err: err}
	}

	for _, f := range flavors {
		if o.Progress != nil {
			o.Progress.Flavor(f.Name)
		}
		step := o.plan(f)
		if err := ctx.Err(); err != nil {
			return abort(step, err)
		}

		if o.DryRun {
			if o.Progress != nil {
				o.Progress.Command(step.Args)
			}
			report.Steps = append(report.Steps, step)
			continue
		}

		step.Reset = resetter.Reset(step.BuildDir)
		switch step.Reset.Status {
		case builddir.Failed:
			if o.StrictReset {
				return abort(step, fmt.Errorf("failed to reset %s: %w", step.BuildDir, step.Reset.Err))
			}
			log.Warnf("could not reset %s, continuing: %v", step.BuildDir, step.Reset.Err)
		case builddir.Removed:
			log.Debugf("removed %s", step.BuildDir)
		}

		log.Debugf("running %q", step.Args)
		if err := o.Runner.Run(ctx, step.Args, step.Env.Environ()); err != nil {
			return abort(step, err)
		}
		report.Steps = append(report.Steps, step)
	}

	report.State = Completed
	if o.Progress != nil && !o.DryRun {
		o.Progress.Done(len(report.Steps))
	}
	return report, nil
}
