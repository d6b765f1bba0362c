package plot

// CommitSource is the allocator's view of the windowed commit list: row
// lookup by index, and id lookup among commits currently materialized.
// "Materialized" is deliberately weaker than "has a row": a commit
// becomes materialized the moment the underlying walker parses it and
// learns its id — typically as soon as it is referenced as someone
// else's parent — which in child-before-parent delivery order happens
// before that commit reaches its own row. Allocator.Bind refuses any
// source that doesn't also implement PlotAware.
type CommitSource interface {
	// At returns the commit materialized at row i.
	At(i int) *PlotCommit
	// Lookup returns the commit with the given id, if it is currently
	// materialized, and its row if one has been assigned yet (row is
	// meaningless when hasRow is false).
	Lookup(id string) (commit *PlotCommit, row int, hasRow bool, ok bool)
}

// PlotAware is implemented by commit sources that honor the allocator's
// enter-in-order, id-stable-while-windowed contract. It carries no
// methods beyond CommitSource; its sole purpose is to let Allocator.Bind
// distinguish a source that was actually built for plotting from one
// that merely happens to satisfy CommitSource's shape.
type PlotAware interface {
	CommitSource
	plotAware()
}

// PlotCommitList is the reference CommitSource/PlotAware implementation:
// an id-indexed pool of known commits, plus an append-only (until Trim)
// row order over the subset that has reached its turn.
//
// A commit can be known (via Materialize) before it has a row (via
// Append): this is what lets a child, entering before its parent's own
// turn, still find that parent's PlotCommit object and wire itself into
// its Children list (Allocator.Enter, step 1).
type PlotCommitList struct {
	rows   []*PlotCommit
	rowOf  map[string]int
	known  map[string]*PlotCommit
	offset int // row index of rows[0] in the logical, untrimmed sequence
}

// NewCommitList returns an empty, ready-to-use PlotCommitList.
func NewCommitList() *PlotCommitList {
	return &PlotCommitList{
		rowOf: make(map[string]int),
		known: make(map[string]*PlotCommit),
	}
}

// plotAware marks PlotCommitList as satisfying PlotAware.
func (l *PlotCommitList) plotAware() {}

// Materialize registers commit for id lookup without assigning it a
// row. Idempotent: re-materializing an id already known is a no-op. A
// bulk walker (e.g. GraphCommitSource) materializes every commit up
// front so every parent lookup during the Enter pass succeeds
// regardless of topological position.
func (l *PlotCommitList) Materialize(commit *PlotCommit) {
	if _, exists := l.known[commit.ID]; !exists {
		l.known[commit.ID] = commit
	}
}

// Append materializes commit (if not already) and gives it the next
// row. The caller is expected to follow with Allocator.Enter(index,
// commit).
func (l *PlotCommitList) Append(commit *PlotCommit) int {
	l.Materialize(commit)
	row := l.offset + len(l.rows)
	l.rows = append(l.rows, commit)
	l.rowOf[commit.ID] = row

	return row
}

// At returns the commit materialized at logical row i. It panics if i is
// outside the current window, mirroring the spec's "internal invariant
// violations are fatal assertions" for misuse by the caller's walker.
func (l *PlotCommitList) At(i int) *PlotCommit {
	idx := i - l.offset
	if idx < 0 || idx >= len(l.rows) {
		panic("plot: row index outside current window")
	}

	return l.rows[idx]
}

// Lookup returns the commit with the given id if it is known, and its
// row if one has been assigned.
func (l *PlotCommitList) Lookup(id string) (commit *PlotCommit, row int, hasRow bool, ok bool) {
	c, known := l.known[id]
	if !known {
		return nil, 0, false, false
	}
	row, hasRow = l.rowOf[id]

	return c, row, hasRow, true
}

// Len reports the number of commits currently holding a row in the
// window.
func (l *PlotCommitList) Len() int {
	return len(l.rows)
}

// Trim evicts every row older than the most recent keep rows, dropping
// their id-lookup entries entirely (both row and materialized-pool
// membership). PassingLanes on evicted commits is frozen in place
// (append-only "until the commit is evicted from the windowed list", per
// the data model) — Trim is the point at which that lifetime ends.
func (l *PlotCommitList) Trim(keep int) {
	if keep < 0 {
		keep = 0
	}
	drop := len(l.rows) - keep
	if drop <= 0 {
		return
	}
	for _, c := range l.rows[:drop] {
		delete(l.rowOf, c.ID)
		delete(l.known, c.ID)
	}
	l.rows = l.rows[drop:]
	l.offset += drop
}
