package observation

import (
	"errors"
	"fmt"

	"github.com/litescript/ls-nightsky/internal/site"
)

// Stage names a compute stage.
type Stage string

const (
	StageConstruct Stage = "construct"
	StageSky       Stage = "sky"
	StageSunMoon   Stage = "sunmoon"
	StageNight     Stage = "night"
	StagePlanets   Stage = "planets"
	StageBary      Stage = "bary"
)

var (
	// ErrSiteNotFound is returned when a site code is not in the registry.
	ErrSiteNotFound = site.ErrNotFound

	// ErrNotComputed is returned by accessors for stages that never ran.
	ErrNotComputed = errors.New("stage has not been computed")

	// ErrStale is returned by accessors when the identity changed after the
	// stage last ran.
	ErrStale = errors.New("derived state is stale")
)

// ParseError reports malformed coordinate or time input.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Reason == "" && e.Err != nil {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PreconditionError reports a stage run before the stage it depends on.
type PreconditionError struct {
	Stage Stage
	Needs Stage
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("stage %s requires %s for the current site, target and time", e.Stage, e.Needs)
}

// ComputationError wraps a failure of the underlying ephemeris.
type ComputationError struct {
	Stage Stage
	Err   error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }
