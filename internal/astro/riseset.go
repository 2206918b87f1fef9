package astro

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Circumstance says whether an event happens inside its search window.
type Circumstance int

const (
	Occurs      Circumstance = iota // the crossing was found
	AlwaysAbove                     // body never drops below the threshold
	AlwaysBelow                     // body never climbs above the threshold
	NoCrossing                      // crosses only in the other direction
)

// String returns a short description of the circumstance.
func (c Circumstance) String() string {
	switch c {
	case Occurs:
		return "occurs"
	case AlwaysAbove:
		return "always above"
	case AlwaysBelow:
		return "always below"
	case NoCrossing:
		return "no crossing"
	default:
		return "unknown"
	}
}

// ErrUnboundedEvent matches any *UnboundedEventError.
var ErrUnboundedEvent = errors.New("event does not occur in search window")

// UnboundedEventError reports an event with no crossing in its window,
// e.g. sunset during polar day.
type UnboundedEventError struct {
	Event        string
	Circumstance Circumstance
}

func (e *UnboundedEventError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Event, ErrUnboundedEvent.Error(), e.Circumstance)
}

// Is lets errors.Is match ErrUnboundedEvent.
func (e *UnboundedEventError) Is(target error) bool {
	return target == ErrUnboundedEvent
}

// Event is a named instant of the night that may not occur.
type Event struct {
	Name         string
	T            time.Time
	Circumstance Circumstance
}

// Occurred reports whether the event has a time.
func (e Event) Occurred() bool {
	return e.Circumstance == Occurs
}

// Time returns the event instant, or *UnboundedEventError.
func (e Event) Time() (time.Time, error) {
	if e.Circumstance != Occurs {
		return time.Time{}, &UnboundedEventError{Event: e.Name, Circumstance: e.Circumstance}
	}
	return e.T, nil
}

// AltitudeFunc returns a body's altitude in degrees at t.
type AltitudeFunc func(t time.Time) (float64, error)

// ScanStep is the sampling interval of the crossing search.
const ScanStep = 10 * time.Minute

// crossingTolerance ends the bisection.
const crossingTolerance = time.Second

// FindCrossing searches [start, end] for the first time f crosses threshold
// in the given direction. Samples every step, then bisects the bracketing
// interval. When no such crossing exists the circumstance explains why and
// the returned time is zero.
func FindCrossing(f AltitudeFunc, start, end time.Time, threshold float64, rising bool, step time.Duration) (time.Time, Circumstance, error) {
	if step <= 0 {
		step = ScanStep
	}

	prevT := start
	prev, err := f(prevT)
	if err != nil {
		return time.Time{}, 0, err
	}
	lo, hi := prev, prev

	for !prevT.After(end) {
		curT := prevT.Add(step)
		if curT.After(end) {
			curT = end
		}
		cur, err := f(curT)
		if err != nil {
			return time.Time{}, 0, err
		}
		lo = math.Min(lo, cur)
		hi = math.Max(hi, cur)

		if crosses(prev, cur, threshold, rising) {
			t, err := bisect(f, prevT, curT, threshold, rising)
			return t, Occurs, err
		}
		if !curT.Before(end) {
			break
		}
		prevT, prev = curT, cur
	}

	switch {
	case lo > threshold:
		return time.Time{}, AlwaysAbove, nil
	case hi < threshold:
		return time.Time{}, AlwaysBelow, nil
	default:
		return time.Time{}, NoCrossing, nil
	}
}

func crosses(a, b, threshold float64, rising bool) bool {
	if rising {
		return a < threshold && b >= threshold
	}
	return a >= threshold && b < threshold
}

// bisect narrows a bracketed crossing to crossingTolerance.
func bisect(f AltitudeFunc, t1, t2 time.Time, threshold float64, rising bool) (time.Time, error) {
	for t2.Sub(t1) > crossingTolerance {
		mid := t1.Add(t2.Sub(t1) / 2)
		v, err := f(mid)
		if err != nil {
			return time.Time{}, err
		}
		// Keep the half whose ends still straddle the threshold.
		above := v >= threshold
		if above == rising {
			t2 = mid
		} else {
			t1 = mid
		}
	}
	return t1.Add(t2.Sub(t1) / 2).Round(time.Second), nil
}
