// Package: plot
//
// errors.go — sentinel errors for the lane allocator.
//
// Error policy: sentinel variables only, checked with errors.Is. There
// are no recoverable errors once Enter is running; a violated internal
// invariant is a programmer error (a commit entered out of order, or a
// row looked up outside the current window) and is reported as a panic,
// not a returned error — see PlotCommitList.At.

package plot

import "errors"

// ErrWrongSource is returned by Bind when the commit source does not
// implement PlotAware.
var ErrWrongSource = errors.New("plot: commit source is not plot-aware")

// ErrNotBound is returned by Enter when Bind has not been called.
var ErrNotBound = errors.New("plot: Bind has not been called")
