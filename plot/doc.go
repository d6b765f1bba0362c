// Package plot assigns geometric lanes to commits delivered in
// topological (child-before-parent) order, so a commit-history graph can
// be rendered without any line passing through a commit node it doesn't
// touch.
//
// plot is pure CPU, single-threaded, and has no I/O of its own. It is
// driven by a CommitSource — usually a *PlotCommitList, either built
// incrementally by a caller-owned walker or, for graphs already held in
// memory, produced in one call by NewGraphCommitSource from a
// github.com/katalvlaran/gitwire/core Graph.
//
// Typical use — the commits are materialized in one pass (so every
// parent lookup in Allocator.Enter's step 1 succeeds regardless of
// topological position), then entered row by row:
//
//	list := plot.NewCommitList()
//	for _, c := range commitsInChildFirstOrder {
//	    list.Append(c)
//	}
//	alloc := plot.NewAllocator()
//	if err := alloc.Bind(list); err != nil { ... }
//	for row := 0; row < list.Len(); row++ {
//	    if err := alloc.Enter(row, list.At(row)); err != nil { ... }
//	}
//
// A streaming walker that cannot materialize the whole graph up front
// may instead call list.Materialize(parentStub) as soon as a parent id
// is first referenced, before that parent reaches its own row; see
// PlotCommitList.Materialize.
//
// Every commit ends with a non-nil Lane except those still waiting for a
// parent to open one — a tip with zero entered children stays laneless
// until one of its parents enters and connects to it (see Allocator.Enter,
// step 2).
package plot
