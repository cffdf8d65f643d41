package pathfind

import (
	"context"
	"errors"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrStartNotFound indicates the start location is not in the grid.
	ErrStartNotFound = errors.New("pathfind: start location not found")

	// ErrNoGoal indicates no goal predicate was configured.
	ErrNoGoal = errors.New("pathfind: no goal configured")

	// ErrUnreachable indicates the frontier emptied without reaching a goal.
	ErrUnreachable = errors.New("pathfind: goal unreachable")

	// ErrBadMaxSteps indicates a negative WithMaxSteps argument.
	ErrBadMaxSteps = errors.New("pathfind: MaxSteps must be non-negative")
)

// Options configures ShortestPath and Flood.
//
//	Ctx:      checked once per popped location; once done the search
//	          aborts with ctx.Err(). Default context.Background().
//	CanStep:  whether a move from a cell valued from to a cell valued to
//	          is allowed. Default permits every move.
//	Goal:     whether a popped location ends the search. Required by
//	          ShortestPath, ignored by Flood.
//	MaxSteps: paths with this many steps are not extended. -1 (default)
//	          means no cap.
type Options[L comparable, V any] struct {
	Ctx      context.Context
	CanStep  func(from, to V) bool
	Goal     func(loc L, value V) bool
	MaxSteps int
}

// Option is a functional option for ShortestPath and Flood.
type Option[L comparable, V any] func(*Options[L, V])

// DefaultOptions returns Options that permit every step, have no goal
// and no step cap.
func DefaultOptions[L comparable, V any]() Options[L, V] {
	return Options[L, V]{
		Ctx:      context.Background(),
		CanStep:  func(V, V) bool { return true },
		Goal:     nil,
		MaxSteps: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext[L comparable, V any](ctx context.Context) Option[L, V] {
	return func(o *Options[L, V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCanStep installs the step-validity predicate.
// A nil fn restores the permissive default.
func WithCanStep[L comparable, V any](fn func(from, to V) bool) Option[L, V] {
	return func(o *Options[L, V]) {
		if fn == nil {
			fn = func(V, V) bool { return true }
		}
		o.CanStep = fn
	}
}

// WithGoal installs the goal predicate.
func WithGoal[L comparable, V any](fn func(loc L, value V) bool) Option[L, V] {
	return func(o *Options[L, V]) {
		o.Goal = fn
	}
}

// WithGoalLocation ends the search at target.
func WithGoalLocation[L comparable, V any](target L) Option[L, V] {
	return func(o *Options[L, V]) {
		o.Goal = func(loc L, _ V) bool { return loc == target }
	}
}

// WithMaxSteps stops extending paths that already have n steps.
// Panics with ErrBadMaxSteps if n is negative.
func WithMaxSteps[L comparable, V any](n int) Option[L, V] {
	return func(o *Options[L, V]) {
		if n < 0 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
	}
}

// Result is a shortest path found by ShortestPath.
type Result[L comparable] struct {
	// Steps is the number of moves, len(Path)-1.
	Steps int
	// Path lists every location from start to goal inclusive.
	Path []L
}

// End returns the goal location that ended the search.
func (r *Result[L]) End() L { return r.Path[len(r.Path)-1] }
