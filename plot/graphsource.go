package plot

import (
	"github.com/katalvlaran/gitwire/core"
	"github.com/katalvlaran/gitwire/dfs"
)

// NewGraphCommitSource adapts a fully in-memory commit DAG into a
// PlotCommitList, ready for Allocator.Bind. g must be directed, with
// edges running parent→child (AddEdge(parentID, childID, 0)); ordering
// is computed with dfs.TopologicalSort (parent-before-child) and then
// reversed to the child-before-parent order the allocator requires.
//
// Every vertex is materialized before any row is assigned, so step 1 of
// Allocator.Enter always finds a commit's parents regardless of where
// they sit in the topological order — the same guarantee a real commit
// walker gets for free by parsing the whole reachable graph up front.
func NewGraphCommitSource(g *core.Graph) (*PlotCommitList, error) {
	order, err := dfs.TopologicalSort(g) // parent-before-child
	if err != nil {
		return nil, err
	}

	parentsOf := make(map[string][]string, len(order))
	for _, e := range g.Edges() {
		parentsOf[e.To] = append(parentsOf[e.To], e.From)
	}

	list := NewCommitList()
	commits := make(map[string]*PlotCommit, len(order))
	for _, id := range order {
		c := NewPlotCommit(id, parentsOf[id])
		commits[id] = c
		list.Materialize(c)
	}

	// Reverse to child-before-parent delivery order.
	for i := len(order) - 1; i >= 0; i-- {
		list.Append(commits[order[i]])
	}

	return list, nil
}

// Run binds list to alloc and calls Enter for every row in increasing
// order, the standard drive loop for a fully-materialized source.
func Run(alloc *Allocator, list *PlotCommitList) error {
	if err := alloc.Bind(list); err != nil {
		return err
	}
	for row := 0; row < list.Len(); row++ {
		if err := alloc.Enter(row, list.At(row)); err != nil {
			return err
		}
	}

	return nil
}
