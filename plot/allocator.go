// Package: plot
//
// allocator.go — the Enter algorithm.
//
// Enter runs in four steps on every commit, in strict row order:
//
//  1. Wire children: register this commit as a child of each already-
//     materialized parent.
//  2. If this commit has no children yet, it's a tip; leave it laneless.
//  3. Single-child fast path: inherit the one child's lane.
//  4. Multi-child/merging-child path: pick a reserved lane from the
//     children, close the rest, allocate a fresh lane, then walk back
//     through the rows between the children and this commit to compute
//     blocking positions and passing lanes, repositioning if needed.
package plot

// Allocator assigns lane positions to commits as they enter in
// child-before-parent order. It is not safe for concurrent use: Enter
// calls must be strictly serialized in delivery order.
type Allocator struct {
	source CommitSource

	positionsAllocated int
	free               *positionSet
	active             map[*Lane]struct{}
	factory            LaneFactory
}

// Option configures an Allocator at construction time.
type Option func(*Allocator)

// WithLaneFactory overrides the default no-op lane factory, letting a
// downstream renderer attach color/label state to every created lane.
func WithLaneFactory(f LaneFactory) Option {
	return func(a *Allocator) {
		if f != nil {
			a.factory = f
		}
	}
}

// NewAllocator returns a ready-to-Bind Allocator.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{
		free:    newPositionSet(),
		active:  make(map[*Lane]struct{}),
		factory: defaultLaneFactory{},
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Bind attaches the commit source the allocator will read rows from via
// Enter. It returns ErrWrongSource if src does not implement PlotAware.
func (a *Allocator) Bind(src CommitSource) error {
	if _, ok := src.(PlotAware); !ok {
		return ErrWrongSource
	}
	a.source = src

	return nil
}

// Clear resets all allocator state: positionsAllocated to zero, and
// freePositions/activeLanes to empty. It does not touch the bound
// source.
func (a *Allocator) Clear() {
	a.positionsAllocated = 0
	a.free = newPositionSet()
	a.active = make(map[*Lane]struct{})
}

// nextFreeLane produces a fresh Lane via the injected factory and assigns
// it a position: the smallest free position if one exists, else the next
// never-used position. It does not add the lane to activeLanes — callers
// do that explicitly, matching the spec's separation of "create" from
// "activate".
func (a *Allocator) nextFreeLane() *Lane {
	l := a.factory.CreateLane()
	if pos, ok := a.free.popSmallest(); ok {
		l.position = pos
	} else {
		l.position = a.positionsAllocated
		a.positionsAllocated++
	}

	return l
}

// closeLane recycles l, removes it from activeLanes, and releases its
// position into freePositions. A no-op if l is already inactive: a
// diamond merge can have both of its incoming branches independently
// decide to close the same shared child's lane (each branch resolves
// the merge commit through the multi-child path on its own), and only
// the first closure may actually free the position.
func (a *Allocator) closeLane(l *Lane) {
	if _, active := a.active[l]; !active {
		return
	}
	a.factory.RecycleLane(l)
	delete(a.active, l)
	a.free.insert(l.position)
}

// FindPassingThrough appends every lane in commit.PassingLanes to out
// and returns the extended slice. Order is unspecified.
func FindPassingThrough(commit *PlotCommit, out []*Lane) []*Lane {
	for l := range commit.PassingLanes {
		out = append(out, l)
	}

	return out
}

// Enter assigns commit.Lane and updates the passing-lane sets of earlier
// rows. index is commit's row in the bound source; callers must enter
// each commit exactly once, in increasing row order.
func (a *Allocator) Enter(index int, commit *PlotCommit) error {
	if a.source == nil {
		return ErrNotBound
	}

	// Step 1: wire children. The incoming commit registers itself as a
	// child of every parent already materialized in the window; that
	// parent's own Enter call has not run yet (it appears later, since
	// commits are delivered child-first).
	for _, pid := range commit.Parents {
		if parent, _, _, ok := a.source.Lookup(pid); ok && !parent.hasChild(commit) {
			parent.Children = append(parent.Children, commit)
		}
	}

	// Step 2: a tip (zero children at enter time) is left laneless. It
	// gets a lane only when one of its parents later enters and finds it
	// in its children list.
	if len(commit.Children) == 0 {
		return nil
	}

	if len(commit.Children) == 1 && len(commit.Children[0].Parents) <= 1 {
		a.enterSingleChild(index, commit)
	} else {
		a.enterMultiChild(index, commit)
	}

	return nil
}

// enterSingleChild implements step 3: the commit inherits its one
// child's lane, opening it lazily if the child was itself laneless.
func (a *Allocator) enterSingleChild(index int, commit *PlotCommit) {
	child := commit.Children[0]
	if child.Lane == nil {
		child.Lane = a.nextFreeLane()
		a.active[child.Lane] = struct{}{}
	}

	// Only rows strictly between the child's row and this commit's row
	// are genuinely crossed by the connecting line: the child's own row
	// already carries the lane as its own Lane, not as a pass-through.
	_, childRow, _, _ := a.source.Lookup(child.ID)
	for r := index - 1; r > childRow; r-- {
		row := a.source.At(r)
		row.PassingLanes[child.Lane] = struct{}{}
	}

	commit.Lane = child.Lane
}

// enterMultiChild implements step 4: reserved-lane deferral across all
// children, then the blocking-position walk back through the rows
// between the children and this commit.
func (a *Allocator) enterMultiChild(index int, commit *PlotCommit) {
	var reserved *Lane
	for _, child := range commit.Children {
		if child.Lane == nil {
			l := a.nextFreeLane()
			child.Lane = l
			a.active[l] = struct{}{}
			if reserved != nil {
				a.closeLane(l)
			} else {
				reserved = l
			}

			continue
		}

		if reserved == nil {
			if _, isActive := a.active[child.Lane]; isActive {
				reserved = child.Lane

				continue
			}
		}
		// child.Lane may already be inactive here: a diamond merge can
		// have both incoming branches resolve the same shared child
		// through this path independently. closeLane no-ops in that case.
		a.closeLane(child.Lane)
	}

	if reserved != nil {
		a.closeLane(reserved)
	}

	commit.Lane = a.nextFreeLane()
	a.active[commit.Lane] = struct{}{}

	// Walk back through the rows between the children and this commit. A
	// row that is itself one of the children only counts down remaining:
	// the connecting line terminates there, it doesn't pass through it.
	// Only genuinely intermediate, unrelated rows get blocked/passing
	// treatment.
	blocked := make(map[int]struct{})
	remaining := len(commit.Children)
	for r := index - 1; r >= 0 && remaining > 0; r-- {
		row := a.source.At(r)
		if commit.hasChild(row) {
			remaining--
			continue
		}
		if row.Lane != nil {
			blocked[row.Lane.position] = struct{}{}
		}
		row.PassingLanes[commit.Lane] = struct{}{}
	}

	if _, isBlocked := blocked[commit.Lane.position]; isBlocked {
		newPos, ok := a.free.popSmallestExcluding(blocked)
		if !ok {
			newPos = a.positionsAllocated
			a.positionsAllocated++
		}
		a.free.insert(commit.Lane.position)
		commit.Lane.position = newPos
	}
}
